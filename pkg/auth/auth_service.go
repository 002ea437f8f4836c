package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/entities"
	"GiveBridge-Backend/pkg/account"
	"GiveBridge-Backend/pkg/jwt"
)

type (
	AuthService interface {
		RegisterDonor(ctx context.Context, req domain.RegisterDonorRequest) (*domain.ProfileResponse, error)
		RegisterNGO(ctx context.Context, req domain.RegisterNGORequest) (*domain.ProfileResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		GetProfile(ctx context.Context, subjectID string, role string) (*domain.ProfileResponse, error)
	}

	authService struct {
		accountRepository account.AccountRepository
		jwtService        jwt.JWTService
	}
)

func NewAuthService(accountRepository account.AccountRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		accountRepository: accountRepository,
		jwtService:        jwtService,
	}
}

func (s *authService) RegisterDonor(ctx context.Context, req domain.RegisterDonorRequest) (*domain.ProfileResponse, error) {
	if _, err := s.accountRepository.FindDonorByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}
	if _, err := s.accountRepository.FindNGOByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	donor := &entities.Donor{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.accountRepository.CreateDonor(ctx, donor); err != nil {
		return nil, err
	}

	return &domain.ProfileResponse{
		ID:          donor.ID.String(),
		Role:        domain.RoleDonor,
		Name:        donor.Name,
		Email:       donor.Email,
		PhoneNumber: donor.PhoneNumber,
	}, nil
}

func (s *authService) RegisterNGO(ctx context.Context, req domain.RegisterNGORequest) (*domain.ProfileResponse, error) {
	if _, err := s.accountRepository.FindNGOByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}
	if _, err := s.accountRepository.FindDonorByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}
	if _, err := s.accountRepository.FindNGOByRegistrationNumber(ctx, req.RegistrationNumber); err == nil {
		return nil, domain.ErrRegistrationTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	ngo := &entities.NGO{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Email:              req.Email,
		Password:           string(hashed),
		PhoneNumber:        req.PhoneNumber,
		Street:             req.Street,
		City:               req.City,
		State:              req.State,
		PostalCode:         req.PostalCode,
		AcceptedCategories: req.AcceptedCategories,
	}
	if err := s.accountRepository.CreateNGO(ctx, ngo); err != nil {
		// A duplicate slipping past the pre-checks means a concurrent
		// registration landed first; re-check which constraint collided.
		if errors.Is(err, domain.ErrDuplicateAccount) {
			if _, lookErr := s.accountRepository.FindNGOByRegistrationNumber(ctx, req.RegistrationNumber); lookErr == nil {
				return nil, domain.ErrRegistrationTaken
			}
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return &domain.ProfileResponse{
		ID:          ngo.ID.String(),
		Role:        domain.RoleNGO,
		Name:        ngo.Name,
		Email:       ngo.Email,
		PhoneNumber: ngo.PhoneNumber,
	}, nil
}

// Login serves both account types from one endpoint. The role is inferred
// from whichever table matches the email; a missing account and a wrong
// password return the same error so the response does not leak which half
// failed.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	var (
		subjectID string
		role      string
		hash      string
	)

	donor, err := s.accountRepository.FindDonorByEmail(ctx, req.Email)
	switch {
	case err == nil:
		subjectID = donor.ID.String()
		role = domain.RoleDonor
		hash = donor.Password
	case errors.Is(err, gorm.ErrRecordNotFound):
		ngo, ngoErr := s.accountRepository.FindNGOByEmail(ctx, req.Email)
		if ngoErr != nil {
			if errors.Is(ngoErr, gorm.ErrRecordNotFound) {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, ngoErr
		}
		subjectID = ngo.ID.String()
		role = domain.RoleNGO
		hash = ngo.Password
	default:
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.LoginResponse{
		Token: s.jwtService.GenerateToken(subjectID, role),
		Role:  role,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, subjectID string, role string) (*domain.ProfileResponse, error) {
	if role == domain.RoleNGO {
		ngo, err := s.accountRepository.FindNGOByID(ctx, subjectID)
		if err != nil {
			return nil, domain.ErrNGONotFound
		}
		return &domain.ProfileResponse{
			ID:          ngo.ID.String(),
			Role:        domain.RoleNGO,
			Name:        ngo.Name,
			Email:       ngo.Email,
			PhoneNumber: ngo.PhoneNumber,
		}, nil
	}

	donor, err := s.accountRepository.FindDonorByID(ctx, subjectID)
	if err != nil {
		return nil, domain.ErrDonorNotFound
	}
	return &domain.ProfileResponse{
		ID:          donor.ID.String(),
		Role:        domain.RoleDonor,
		Name:        donor.Name,
		Email:       donor.Email,
		PhoneNumber: donor.PhoneNumber,
	}, nil
}
