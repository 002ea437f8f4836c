package entities

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID         uuid.UUID  `json:"donor_id"`
	NGOID           uuid.UUID  `json:"ngo_id"`
	PickupAddress   string     `json:"pickup_address"`
	PickupOption    string     `json:"pickup_option"` // scheduled or asap
	PickupDate      *time.Time `json:"pickup_date,omitempty"`
	PickupTime      string     `json:"pickup_time,omitempty"` // morning, afternoon, evening
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"` // Pending, Accepted, Rejected, Completed
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	Donor *Donor          `gorm:"foreignKey:DonorID"`
	NGO   *NGO            `gorm:"foreignKey:NGOID"`
	Items []*DonationItem `gorm:"foreignKey:DonationID"`
	Timestamp
}

type DonationItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID  uuid.UUID `json:"donation_id"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	Position    int       `json:"position"`

	Donation *Donation        `gorm:"foreignKey:DonationID"`
	Images   []*DonationImage `gorm:"foreignKey:DonationItemID"`
	Timestamp
}

type DonationImage struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationItemID uuid.UUID `json:"donation_item_id"`
	URL            string    `json:"url"`
	Analysis       string    `json:"analysis,omitempty"`
	Position       int       `json:"position"`

	Timestamp
}
