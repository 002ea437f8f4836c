package domain

import "errors"

const (
	PickupExperienceSmooth  = "smooth"
	PickupExperienceOkay    = "okay"
	PickupExperienceImprove = "could be improved"

	RecommendYes   = "yes"
	RecommendMaybe = "maybe"
	RecommendNo    = "no"
)

var (
	MessageSuccessSubmitFeedback = "feedback submitted successfully"
	MessageFailedSubmitFeedback  = "failed to submit feedback"

	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrPickupCommentRequired = errors.New("pickup comment is required when the pickup could be improved")
)

type (
	SubmitFeedbackRequest struct {
		DonationID       string `json:"donation_id" validate:"required,uuid"`
		NGOID            string `json:"ngo_id" validate:"required,uuid"`
		EaseRating       int    `json:"ease_rating" validate:"required,min=1,max=5"`
		PickupExperience string `json:"pickup_experience" validate:"required,oneof=smooth okay 'could be improved'"`
		PickupComment    string `json:"pickup_comment" validate:"omitempty"`
		Recommend        string `json:"recommend" validate:"required,oneof=yes maybe no"`
		Improvement      string `json:"improvement" validate:"omitempty"`
		OverallRating    int    `json:"overall_rating" validate:"required,min=1,max=5"`
	}

	FeedbackResponse struct {
		ID               string `json:"id"`
		DonationID       string `json:"donation_id"`
		NGOID            string `json:"ngo_id"`
		DonorID          string `json:"donor_id,omitempty"`
		EaseRating       int    `json:"ease_rating"`
		PickupExperience string `json:"pickup_experience"`
		PickupComment    string `json:"pickup_comment,omitempty"`
		Recommend        string `json:"recommend"`
		Improvement      string `json:"improvement,omitempty"`
		OverallRating    int    `json:"overall_rating"`
	}
)
