package service

import (
	"context"
	"errors"

	"github.com/Nirpat3/MSABC/internal/config"
	"github.com/Nirpat3/MSABC/internal/dto"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for every failed login, regardless of
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks the single configured admin credential pair. It issues
// no token and keeps no session: the identity it returns is stored by the
// frontend in local storage as an advisory session only. This is NOT a
// security boundary — no later request is validated against it.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// With no configured hash the endpoint rejects everything; the frontend
	// then falls back to its local-only default credentials.
	if s.cfg.AdminPasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if req.Username != s.cfg.AdminUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &dto.LoginResponse{
		Username: s.cfg.AdminUsername,
		Name:     s.cfg.AdminName,
	}, nil
}
