package donation

import (
	"context"
	"time"

	"gorm.io/gorm"

	"GiveBridge-Backend/entities"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonorDonations(ctx context.Context, donorID string) ([]*entities.Donation, error)
		GetNGODonations(ctx context.Context, ngoID string) ([]*entities.Donation, error)
		UpdateDonationStatus(ctx context.Context, id string, status string, reason string, completedAt *time.Time) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	// Items and their images ride along through gorm associations so the
	// donation is durable in a single transaction.
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("NGO").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("donation_items.position ASC")
		}).
		Preload("Items.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("donation_images.position ASC")
		}).
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonorDonations(ctx context.Context, donorID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("NGO").
		Preload("Items").
		Preload("Items.Images").
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetNGODonations(ctx context.Context, ngoID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("Items").
		Preload("Items.Images").
		Where("ngo_id = ?", ngoID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) UpdateDonationStatus(ctx context.Context, id string, status string, reason string, completedAt *time.Time) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if reason != "" {
		updates["rejection_reason"] = reason
	}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}

	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Updates(updates).Error
}
