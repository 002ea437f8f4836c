package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/entities"
)

type (
	AccountRepository interface {
		CreateDonor(ctx context.Context, donor *entities.Donor) error
		CreateNGO(ctx context.Context, ngo *entities.NGO) error
		FindDonorByEmail(ctx context.Context, email string) (*entities.Donor, error)
		FindNGOByEmail(ctx context.Context, email string) (*entities.NGO, error)
		FindNGOByRegistrationNumber(ctx context.Context, registrationNumber string) (*entities.NGO, error)
		FindDonorByID(ctx context.Context, id string) (*entities.Donor, error)
		FindNGOByID(ctx context.Context, id string) (*entities.NGO, error)
	}

	accountRepository struct {
		db *gorm.DB
	}
)

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateDonor(ctx context.Context, donor *entities.Donor) error {
	if err := r.db.WithContext(ctx).Create(donor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// CreateNGO reports a duplicate-key violation as ErrDuplicateAccount; the
// NGO table carries unique indexes on both email and registration number, so
// the caller decides which one collided.
func (r *accountRepository) CreateNGO(ctx context.Context, ngo *entities.NGO) error {
	if err := r.db.WithContext(ctx).Create(ngo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (r *accountRepository) FindDonorByEmail(ctx context.Context, email string) (*entities.Donor, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *accountRepository) FindNGOByEmail(ctx context.Context, email string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (r *accountRepository) FindNGOByRegistrationNumber(ctx context.Context, registrationNumber string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).Where("registration_number = ?", registrationNumber).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (r *accountRepository) FindDonorByID(ctx context.Context, id string) (*entities.Donor, error) {
	var donor entities.Donor
	if err := r.db.WithContext(ctx).Omit("password").Where("id = ?", id).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *accountRepository) FindNGOByID(ctx context.Context, id string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).Omit("password").Where("id = ?", id).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}
