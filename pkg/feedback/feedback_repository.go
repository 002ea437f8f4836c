package feedback

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"GiveBridge-Backend/entities"
)

type (
	FeedbackRepository interface {
		UpsertFeedback(ctx context.Context, feedback *entities.Feedback) error
		AggregateForNGO(ctx context.Context, ngoID string) (float64, int, error)
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// UpsertFeedback keeps one feedback row per donation; resubmitting replaces
// the earlier answers.
func (r *feedbackRepository) UpsertFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "donation_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"ease_rating",
				"pickup_experience",
				"pickup_comment",
				"recommend",
				"improvement",
				"overall_rating",
				"updated_at",
			}),
		}).
		Create(feedback).Error
}

func (r *feedbackRepository) AggregateForNGO(ctx context.Context, ngoID string) (float64, int, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Feedback{}).
		Select("COALESCE(AVG(overall_rating), 0) as avg, COUNT(*) as count").
		Where("ngo_id = ?", ngoID).
		Scan(&result).Error; err != nil {
		return 0, 0, err
	}
	return result.Avg, int(result.Count), nil
}
