package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonation = "donation created successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessUpdateDonation = "donation status updated successfully"
	MessageSuccessUploadImage    = "item image uploaded successfully"

	MessageFailedCreateDonation = "failed to create donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedUpdateDonation = "failed to update donation status"
	MessageFailedUploadImage    = "failed to upload item image"

	ErrDonorNotFound            = errors.New("donor not found")
	ErrNGONotFound              = errors.New("ngo not found")
	ErrDonationNotFound         = errors.New("donation not found")
	ErrForbiddenDonation        = errors.New("donation belongs to another donor")
	ErrEmptyItems               = errors.New("donation must contain at least one item")
	ErrInvalidQuantity          = errors.New("item quantity must be at least 1")
	ErrInvalidPickupOption      = errors.New("pickup option must be scheduled or asap")
	ErrInvalidPickupTime        = errors.New("pickup time must be morning, afternoon or evening")
	ErrMissingPickupSchedule    = errors.New("scheduled pickup requires a date and time band")
	ErrUnexpectedPickupSchedule = errors.New("asap pickup cannot carry a date or time band")
	ErrInvalidTransition        = errors.New("status transition is not allowed")
	ErrRejectionReasonTooShort  = errors.New("rejection reason is too short")
)

type (
	DonationImageRequest struct {
		URL      string `json:"url" validate:"required"`
		Analysis string `json:"analysis" validate:"omitempty"`
	}

	DonationItemRequest struct {
		Category    string                 `json:"category" validate:"required"`
		Quantity    int                    `json:"quantity" validate:"required,min=1"`
		Description string                 `json:"description" validate:"omitempty"`
		Images      []DonationImageRequest `json:"images" validate:"omitempty,max=5,dive"`
	}

	CreateDonationRequest struct {
		NGOID         string                `json:"ngo_id" validate:"required,uuid"`
		Items         []DonationItemRequest `json:"items" validate:"required,min=1,dive"`
		PickupAddress string                `json:"pickup_address" validate:"required"`
		PickupOption  string                `json:"pickup_option" validate:"required,oneof=scheduled asap"`
		PickupDate    string                `json:"pickup_date" validate:"omitempty"`
		PickupTime    string                `json:"pickup_time" validate:"omitempty,oneof=morning afternoon evening"`
		Notes         string                `json:"notes" validate:"omitempty"`
	}

	UpdateDonationStatusRequest struct {
		DonationID string `json:"-"`
		Status     string `json:"status" validate:"required,oneof=Accepted Rejected Completed"`
		Reason     string `json:"reason" validate:"omitempty"`
	}

	DonationImageResponse struct {
		URL      string `json:"url"`
		Analysis string `json:"analysis,omitempty"`
	}

	DonationItemResponse struct {
		ID          string                  `json:"id"`
		Category    string                  `json:"category"`
		Quantity    int                     `json:"quantity"`
		Description string                  `json:"description,omitempty"`
		Images      []DonationImageResponse `json:"images"`
	}

	DonationResponse struct {
		ID              string                 `json:"id"`
		DonorID         string                 `json:"donor_id"`
		NGOID           string                 `json:"ngo_id"`
		NGOName         string                 `json:"ngo_name,omitempty"`
		Items           []DonationItemResponse `json:"items"`
		PickupAddress   string                 `json:"pickup_address"`
		PickupOption    string                 `json:"pickup_option"`
		PickupDate      *time.Time             `json:"pickup_date,omitempty"`
		PickupTime      string                 `json:"pickup_time,omitempty"`
		Notes           string                 `json:"notes,omitempty"`
		Status          string                 `json:"status"`
		RejectionReason string                 `json:"rejection_reason,omitempty"`
		CompletedAt     *time.Time             `json:"completed_at,omitempty"`
		CreatedAt       time.Time              `json:"created_at"`
		UpdatedAt       time.Time              `json:"updated_at"`
	}

	UploadItemImageResponse struct {
		URL      string `json:"url"`
		Analysis string `json:"analysis"`
	}
)
