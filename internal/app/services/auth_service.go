package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/auth"
)

// AuthService authenticates the campus administrator
type AuthService struct {
	username     string
	passwordHash string
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates an AuthService for a single administrator account.
// A password that already is a bcrypt hash is used as is.
func NewAuthService(username, password string, jwtService *auth.JWTService, logger zerolog.Logger) (*AuthService, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: admin username and password are required", apperrors.ErrValidationFailed)
	}

	hash := password
	if !strings.HasPrefix(password, "$2") {
		var err error
		hash, err = auth.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("hashing admin password: %w", err)
		}
	}

	return &AuthService{
		username:     username,
		passwordHash: hash,
		jwtService:   jwtService,
		logger:       logger,
	}, nil
}

// Login checks the credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passOK := auth.CheckPassword(s.passwordHash, req.Password)
	if !userOK || !passOK {
		s.logger.Warn().Str("username", req.Username).Msg("Failed admin login")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(s.username, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}

	s.logger.Info().Str("username", s.username).Msg("Admin logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
	}, nil
}
