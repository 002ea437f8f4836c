package ngo

import (
	"context"

	"gorm.io/gorm"

	"GiveBridge-Backend/entities"
)

type (
	NGORepository interface {
		GetNGOs(ctx context.Context) ([]*entities.NGO, error)
		GetNGOByID(ctx context.Context, id string) (*entities.NGO, error)
		UpdateRating(ctx context.Context, id string, rating float64, count int) error
	}

	ngoRepository struct {
		db *gorm.DB
	}
)

func NewNGORepository(db *gorm.DB) NGORepository {
	return &ngoRepository{db: db}
}

func (r *ngoRepository) GetNGOs(ctx context.Context) ([]*entities.NGO, error) {
	var ngos []*entities.NGO
	if err := r.db.WithContext(ctx).
		Omit("password").
		Order("name ASC").
		Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

func (r *ngoRepository) GetNGOByID(ctx context.Context, id string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).
		Omit("password").
		Where("id = ?", id).
		First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (r *ngoRepository) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	return r.db.WithContext(ctx).
		Model(&entities.NGO{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":       rating,
			"rating_count": count,
		}).Error
}
