package entities

import (
	"github.com/google/uuid"
)

type Donor struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phone_number"`

	Donations []*Donation `gorm:"foreignKey:DonorID"`
	Timestamp
}
