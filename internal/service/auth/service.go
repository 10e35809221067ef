package auth

import (
	"context"
	"errors"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/admin"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/auth"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	adminRepo  admin.AdminRepository
	jwtService jwt.Service
}

func NewAuthService(adminRepo admin.AdminRepository, jwtService jwt.Service) auth.AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. A correct password yields only the
// short-lived PIN challenge token; the access token is withheld until the
// second step. Unknown emails and wrong passwords are indistinguishable to
// the caller.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.PinChallengeResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.PinChallengeResponse{}, err
	}

	adm, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return auth.PinChallengeResponse{}, auth.ErrInvalidCredentials
		}
		return auth.PinChallengeResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(req.Password)); err != nil {
		return auth.PinChallengeResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GeneratePinChallengeToken(adm.ID)
	if err != nil {
		return auth.PinChallengeResponse{}, err
	}

	return auth.PinChallengeResponse{
		ChallengeToken: token,
		ExpiresIn:      expiresIn,
	}, nil
}

// VerifyPin implements auth.AuthService.
func (s *authService) VerifyPin(ctx context.Context, req auth.VerifyPinRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	adminID, err := s.jwtService.ValidatePinChallengeToken(req.ChallengeToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	adm, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.PinHash), []byte(req.Pin)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidPin
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(adm.ID, adm.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}
