// Package auth implements identity registration, login, and token
// validation. Identities are thin collaborators: the lexicon core only
// ever sees the authenticated user id.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	jwtauth "github.com/wordmemo/wordmemo-backend/internal/auth"
	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	tokens     tokenIssuer
	bcryptCost int
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer, bcryptCost int) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// AuthResult carries the authenticated user and their access token.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}

// ValidateToken checks an access token and returns the user id it carries.
// Any parse/signature/expiry failure is ErrUnauthorized.
func (s *Service) ValidateToken(tokenString string) (uuid.UUID, error) {
	userID, err := s.tokens.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// GetUser returns a user by id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

var _ tokenIssuer = (*jwtauth.JWTManager)(nil)
