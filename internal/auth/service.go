package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGuardDisabled      = errors.New("editor guard disabled")
)

const editorSubject = "editor"

// Service issues and checks editor tokens against a single shared password.
type Service struct {
	tokens       *jwt.Manager
	passwordHash string
	logger       zerolog.Logger
}

// NewService returns nil when the guard is not configured; a nil *Service and
// the Guard built from it let every request through.
func NewService(cfg config.Security, logger zerolog.Logger) *Service {
	if !cfg.EditorGuardEnabled() {
		return nil
	}
	return &Service{
		tokens: jwt.NewManager(jwt.TokenConfig{
			Secret: []byte(cfg.EditorJWTSecret),
			TTL:    cfg.EditorTokenTTL,
		}),
		passwordHash: cfg.EditorPasswordHash,
		logger:       logger.With().Str("component", "auth").Logger(),
	}
}

// IssueToken checks the editor password and signs a token.
func (s *Service) IssueToken(ctx context.Context, req TokenRequest) (TokenResponse, error) {
	if s == nil {
		return TokenResponse{}, ErrGuardDisabled
	}
	if err := validator.ValidateStruct(req); err != nil {
		return TokenResponse{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if err := VerifyPassword(s.passwordHash, req.Password); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			s.logger.Warn().Msg("editor login rejected")
		} else {
			s.logger.Error().Err(err).Msg("EDITOR_PASSWORD_HASH is not a usable bcrypt hash")
		}
		return TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(editorSubject)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("sign token: %w", err)
	}
	s.logger.Info().Msg("editor token issued")
	return TokenResponse{
		Token:     token,
		ExpiresIn: int(s.tokens.TTL().Seconds()),
		Success:   true,
	}, nil
}

// ValidateToken verifies an editor token.
func (s *Service) ValidateToken(token string) (*jwt.Claims, error) {
	if s == nil {
		return nil, ErrGuardDisabled
	}
	return s.tokens.Validate(token)
}
