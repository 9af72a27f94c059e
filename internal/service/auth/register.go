package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// RegisterInput is the payload for creating a new identity.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate checks required fields and minimum lengths.
func (in *RegisterInput) Validate() error {
	var fields []domain.FieldError

	if in.Username == "" {
		fields = append(fields, domain.FieldError{Field: "username", Message: "required"})
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		fields = append(fields, domain.FieldError{Field: "email", Message: "valid email required"})
	}
	if len(in.Password) < 6 {
		fields = append(fields, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// Register creates a new user with username + password authentication.
// Returns ErrAlreadyExists if the username or email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}
	hashStr := string(hash)

	// Username and email uniqueness are enforced by DB constraints.
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: &hashStr,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return &AuthResult{User: user, AccessToken: token}, nil
}
