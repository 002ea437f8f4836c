package entities

import (
	"github.com/google/uuid"
)

type Feedback struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID       uuid.UUID  `gorm:"uniqueIndex" json:"donation_id"`
	NGOID            uuid.UUID  `json:"ngo_id"`
	DonorID          *uuid.UUID `json:"donor_id,omitempty"`
	EaseRating       int        `json:"ease_rating"`       // 1-5
	PickupExperience string     `json:"pickup_experience"` // smooth, okay, could be improved
	PickupComment    string     `json:"pickup_comment,omitempty"`
	Recommend        string     `json:"recommend"` // yes, maybe, no
	Improvement      string     `json:"improvement,omitempty"`
	OverallRating    int        `json:"overall_rating"` // 1-5

	NGO *NGO `gorm:"foreignKey:NGOID"`
	Timestamp
}
