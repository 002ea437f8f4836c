package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type NGO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name               string         `json:"name"`
	RegistrationNumber string         `gorm:"uniqueIndex" json:"registration_number"`
	Email              string         `gorm:"uniqueIndex" json:"email"`
	Password           string         `json:"-"`
	PhoneNumber        string         `json:"phone_number"`
	Street             string         `json:"street"`
	City               string         `json:"city"`
	State              string         `json:"state"`
	PostalCode         string         `json:"postal_code"`
	AcceptedCategories pq.StringArray `gorm:"type:text[]" json:"accepted_categories"`
	Rating             float64        `json:"rating"`
	RatingCount        int            `json:"rating_count"`

	Donations []*Donation `gorm:"foreignKey:NGOID"`
	Timestamp
}
