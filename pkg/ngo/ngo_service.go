package ngo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/entities"
)

type (
	NGOService interface {
		GetNGOs(ctx context.Context) ([]*domain.NGOResponse, error)
		GetNGOByID(ctx context.Context, id string) (*domain.NGOResponse, error)
	}

	ngoService struct {
		ngoRepository NGORepository
	}
)

func NewNGOService(ngoRepository NGORepository) NGOService {
	return &ngoService{ngoRepository: ngoRepository}
}

func (s *ngoService) GetNGOs(ctx context.Context) ([]*domain.NGOResponse, error) {
	ngos, err := s.ngoRepository.GetNGOs(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.NGOResponse, 0, len(ngos))
	for _, ngo := range ngos {
		result = append(result, toNGOResponse(ngo))
	}
	return result, nil
}

func (s *ngoService) GetNGOByID(ctx context.Context, id string) (*domain.NGOResponse, error) {
	ngo, err := s.ngoRepository.GetNGOByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNGONotFound
		}
		return nil, err
	}
	return toNGOResponse(ngo), nil
}

func toNGOResponse(ngo *entities.NGO) *domain.NGOResponse {
	return &domain.NGOResponse{
		ID:                 ngo.ID.String(),
		Name:               ngo.Name,
		RegistrationNumber: ngo.RegistrationNumber,
		Email:              ngo.Email,
		PhoneNumber:        ngo.PhoneNumber,
		Street:             ngo.Street,
		City:               ngo.City,
		State:              ngo.State,
		PostalCode:         ngo.PostalCode,
		AcceptedCategories: ngo.AcceptedCategories,
		Rating:             ngo.Rating,
		RatingCount:        ngo.RatingCount,
	}
}
