package feedback

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/entities"
	"GiveBridge-Backend/pkg/ngo"
)

type (
	FeedbackService interface {
		SubmitFeedback(ctx context.Context, req domain.SubmitFeedbackRequest, donorID string) (*domain.FeedbackResponse, error)
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
		ngoRepository      ngo.NGORepository
	}
)

func NewFeedbackService(feedbackRepository FeedbackRepository, ngoRepository ngo.NGORepository) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		ngoRepository:      ngoRepository,
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, req domain.SubmitFeedbackRequest, donorID string) (*domain.FeedbackResponse, error) {
	target, err := s.ngoRepository.GetNGOByID(ctx, req.NGOID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNGONotFound
		}
		return nil, err
	}

	if req.EaseRating < 1 || req.EaseRating > 5 || req.OverallRating < 1 || req.OverallRating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if req.PickupExperience == domain.PickupExperienceImprove && strings.TrimSpace(req.PickupComment) == "" {
		return nil, domain.ErrPickupCommentRequired
	}

	donationUUID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	record := &entities.Feedback{
		ID:               uuid.New(),
		DonationID:       donationUUID,
		NGOID:            target.ID,
		EaseRating:       req.EaseRating,
		PickupExperience: req.PickupExperience,
		PickupComment:    req.PickupComment,
		Recommend:        req.Recommend,
		Improvement:      req.Improvement,
		OverallRating:    req.OverallRating,
	}
	if donorID != "" {
		donorUUID, err := uuid.Parse(donorID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		record.DonorID = &donorUUID
	}

	if err := s.feedbackRepository.UpsertFeedback(ctx, record); err != nil {
		return nil, err
	}

	// The rating aggregate follows the feedback table; a failed refresh
	// leaves the old aggregate standing until the next submission.
	avg, count, err := s.feedbackRepository.AggregateForNGO(ctx, req.NGOID)
	if err == nil {
		err = s.ngoRepository.UpdateRating(ctx, req.NGOID, avg, count)
	}
	if err != nil {
		log.Errorf("ngo %s: rating refresh failed: %v", req.NGOID, err)
	}

	resp := &domain.FeedbackResponse{
		ID:               record.ID.String(),
		DonationID:       record.DonationID.String(),
		NGOID:            record.NGOID.String(),
		EaseRating:       record.EaseRating,
		PickupExperience: record.PickupExperience,
		PickupComment:    record.PickupComment,
		Recommend:        record.Recommend,
		Improvement:      record.Improvement,
		OverallRating:    record.OverallRating,
	}
	if record.DonorID != nil {
		resp.DonorID = record.DonorID.String()
	}
	return resp, nil
}
