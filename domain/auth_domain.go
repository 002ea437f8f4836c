package domain

import "errors"

var (
	MessageSuccessRegister = "account registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessLogout   = "logout successful"
	MessageSuccessMe       = "profile retrieved successfully"

	MessageFailedRegister = "failed to register account"
	MessageFailedLogin    = "failed to login"

	ErrEmailTaken         = errors.New("email already registered")
	ErrRegistrationTaken  = errors.New("registration number already registered")
	ErrDuplicateAccount   = errors.New("account already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	RegisterDonorRequest struct {
		Name        string `json:"name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		PhoneNumber string `json:"phone_number" validate:"required"`
	}

	RegisterNGORequest struct {
		Name               string   `json:"name" validate:"required"`
		RegistrationNumber string   `json:"registration_number" validate:"required"`
		Email              string   `json:"email" validate:"required,email"`
		Password           string   `json:"password" validate:"required,min=8"`
		PhoneNumber        string   `json:"phone_number" validate:"required"`
		Street             string   `json:"street" validate:"required"`
		City               string   `json:"city" validate:"required"`
		State              string   `json:"state" validate:"required"`
		PostalCode         string   `json:"postal_code" validate:"required"`
		AcceptedCategories []string `json:"accepted_categories" validate:"required,min=1"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	ProfileResponse struct {
		ID          string `json:"id"`
		Role        string `json:"role"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phone_number"`
	}
)
