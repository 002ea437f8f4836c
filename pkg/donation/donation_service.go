package donation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/entities"
	"GiveBridge-Backend/pkg/account"
	"GiveBridge-Backend/pkg/notification"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (*domain.DonationResponse, error)
		GetDonationByID(ctx context.Context, id string, donorID string) (*domain.DonationResponse, error)
		GetDonorDonations(ctx context.Context, donorID string) ([]*domain.DonationResponse, error)
		GetNGODonations(ctx context.Context, ngoID string) ([]*domain.DonationResponse, error)
		UpdateDonationStatus(ctx context.Context, req domain.UpdateDonationStatusRequest, actorRole string) (*domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		accountRepository  account.AccountRepository
		dispatcher         notification.Dispatcher
	}
)

func NewDonationService(donationRepository DonationRepository, accountRepository account.AccountRepository, dispatcher notification.Dispatcher) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		accountRepository:  accountRepository,
		dispatcher:         dispatcher,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (*domain.DonationResponse, error) {
	donor, err := s.accountRepository.FindDonorByID(ctx, donorID)
	if err != nil {
		return nil, domain.ErrDonorNotFound
	}
	ngo, err := s.accountRepository.FindNGOByID(ctx, req.NGOID)
	if err != nil {
		return nil, domain.ErrNGONotFound
	}

	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	var pickupDate *time.Time
	var pickupTime string
	switch req.PickupOption {
	case "scheduled":
		if req.PickupDate == "" || req.PickupTime == "" {
			return nil, domain.ErrMissingPickupSchedule
		}
		if req.PickupTime != "morning" && req.PickupTime != "afternoon" && req.PickupTime != "evening" {
			return nil, domain.ErrInvalidPickupTime
		}
		parsed, err := time.Parse("2006-01-02", req.PickupDate)
		if err != nil {
			return nil, domain.ErrMissingPickupSchedule
		}
		pickupDate = &parsed
		pickupTime = req.PickupTime
	case "asap":
		if req.PickupDate != "" || req.PickupTime != "" {
			return nil, domain.ErrUnexpectedPickupSchedule
		}
	default:
		return nil, domain.ErrInvalidPickupOption
	}

	donationID := uuid.New()
	items := make([]*entities.DonationItem, 0, len(req.Items))
	for i, item := range req.Items {
		itemID := uuid.New()
		images := make([]*entities.DonationImage, 0, len(item.Images))
		for j, img := range item.Images {
			images = append(images, &entities.DonationImage{
				ID:             uuid.New(),
				DonationItemID: itemID,
				URL:            img.URL,
				Analysis:       img.Analysis,
				Position:       j,
			})
		}
		items = append(items, &entities.DonationItem{
			ID:          itemID,
			DonationID:  donationID,
			Category:    item.Category,
			Quantity:    item.Quantity,
			Description: item.Description,
			Position:    i,
			Images:      images,
		})
	}

	record := &entities.Donation{
		ID:            donationID,
		DonorID:       donor.ID,
		NGOID:         ngo.ID,
		PickupAddress: req.PickupAddress,
		PickupOption:  req.PickupOption,
		PickupDate:    pickupDate,
		PickupTime:    pickupTime,
		Notes:         req.Notes,
		Status:        string(StatusPending),
		Items:         items,
	}

	if err := s.donationRepository.CreateDonation(ctx, record); err != nil {
		return nil, err
	}

	// Notifications are a best-effort side channel; the record above is the
	// source of truth whether or not delivery succeeds.
	go s.dispatcher.Notify(notification.EventCreated, record, donor, ngo)

	record.NGO = ngo
	return toDonationResponse(record), nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string, donorID string) (*domain.DonationResponse, error) {
	// A malformed id can never match a row; parsing up front keeps the
	// driver's uuid syntax error out of the response.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrDonationNotFound
	}

	record, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if record.DonorID.String() != donorID {
		return nil, domain.ErrForbiddenDonation
	}

	return toDonationResponse(record), nil
}

func (s *donationService) GetDonorDonations(ctx context.Context, donorID string) ([]*domain.DonationResponse, error) {
	records, err := s.donationRepository.GetDonorDonations(ctx, donorID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(records))
	for _, record := range records {
		result = append(result, toDonationResponse(record))
	}
	return result, nil
}

func (s *donationService) GetNGODonations(ctx context.Context, ngoID string) ([]*domain.DonationResponse, error) {
	records, err := s.donationRepository.GetNGODonations(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(records))
	for _, record := range records {
		result = append(result, toDonationResponse(record))
	}
	return result, nil
}

func (s *donationService) UpdateDonationStatus(ctx context.Context, req domain.UpdateDonationStatusRequest, actorRole string) (*domain.DonationResponse, error) {
	if actorRole != domain.RoleNGO {
		return nil, domain.ErrUserNotAllowed
	}
	if _, err := uuid.Parse(req.DonationID); err != nil {
		return nil, domain.ErrDonationNotFound
	}

	record, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	target, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if !CanTransition(Status(record.Status), target) {
		return nil, domain.ErrInvalidTransition
	}

	reason := ""
	if target == StatusRejected {
		reason = strings.TrimSpace(req.Reason)
		if len(reason) < MinRejectionReasonLen {
			return nil, domain.ErrRejectionReasonTooShort
		}
	}

	var completedAt *time.Time
	if target == StatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	// Last-write-wins: concurrent accept/reject clicks are not serialized
	// beyond this read-then-write.
	if err := s.donationRepository.UpdateDonationStatus(ctx, req.DonationID, string(target), reason, completedAt); err != nil {
		return nil, err
	}

	record.Status = string(target)
	record.RejectionReason = reason
	record.CompletedAt = completedAt

	donor, derr := s.accountRepository.FindDonorByID(ctx, record.DonorID.String())
	ngo, nerr := s.accountRepository.FindNGOByID(ctx, record.NGOID.String())
	if derr == nil && nerr == nil {
		go s.dispatcher.Notify(notification.EventStatusChanged, record, donor, ngo)
	}

	return toDonationResponse(record), nil
}

func toDonationResponse(record *entities.Donation) *domain.DonationResponse {
	items := make([]domain.DonationItemResponse, 0, len(record.Items))
	for _, item := range record.Items {
		images := make([]domain.DonationImageResponse, 0, len(item.Images))
		for _, img := range item.Images {
			images = append(images, domain.DonationImageResponse{
				URL:      img.URL,
				Analysis: img.Analysis,
			})
		}
		items = append(items, domain.DonationItemResponse{
			ID:          item.ID.String(),
			Category:    item.Category,
			Quantity:    item.Quantity,
			Description: item.Description,
			Images:      images,
		})
	}

	ngoName := ""
	if record.NGO != nil {
		ngoName = record.NGO.Name
	}

	return &domain.DonationResponse{
		ID:              record.ID.String(),
		DonorID:         record.DonorID.String(),
		NGOID:           record.NGOID.String(),
		NGOName:         ngoName,
		Items:           items,
		PickupAddress:   record.PickupAddress,
		PickupOption:    record.PickupOption,
		PickupDate:      record.PickupDate,
		PickupTime:      record.PickupTime,
		Notes:           record.Notes,
		Status:          record.Status,
		RejectionReason: record.RejectionReason,
		CompletedAt:     record.CompletedAt,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}
