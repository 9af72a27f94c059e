package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
	"github.com/wordmemo/wordmemo-backend/internal/service/auth"
	"github.com/wordmemo/wordmemo-backend/pkg/ctxutil"
)

type authServiceMock struct {
	registerFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	loginFunc    func(ctx context.Context, username, password string) (*auth.AuthResult, error)
	getUserFunc  func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.registerFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, username, password string) (*auth.AuthResult, error) {
	return m.loginFunc(ctx, username, password)
}

func (m *authServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getUserFunc(ctx, id)
}

func sampleUser(username string) *domain.User {
	hash := "$2a$10$fakefakefakefakefakefake"
	return &domain.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: &hash,
		CreatedAt:    time.Now(),
	}
}

func TestRegister_Created(t *testing.T) {
	t.Parallel()

	user := sampleUser("alice")
	svc := &authServiceMock{
		registerFunc: func(_ context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			if input.Username != "alice" {
				t.Errorf("expected username 'alice', got %q", input.Username)
			}
			return &auth.AuthResult{User: user, AccessToken: "token123"}, nil
		},
	}
	h := NewAuthHandler(svc, testLogger())

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken != "token123" {
		t.Errorf("expected access token in response, got %q", resp.AccessToken)
	}
	if resp.User.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", resp.User.Username)
	}
}

func TestRegister_DuplicateIs409(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		registerFunc: func(context.Context, auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	h := NewAuthHandler(svc, testLogger())

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestLogin_OK(t *testing.T) {
	t.Parallel()

	user := sampleUser("alice")
	svc := &authServiceMock{
		loginFunc: func(_ context.Context, username, password string) (*auth.AuthResult, error) {
			if username != "alice" || password != "secret1" {
				t.Errorf("unexpected credentials: %q/%q", username, password)
			}
			return &auth.AuthResult{User: user, AccessToken: "token123"}, nil
		},
	}
	h := NewAuthHandler(svc, testLogger())

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestLogin_BadCredentialsIs401(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		loginFunc: func(context.Context, string, string) (*auth.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewAuthHandler(svc, testLogger())

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestMe_ReturnsProfile(t *testing.T) {
	t.Parallel()

	user := sampleUser("alice")
	svc := &authServiceMock{
		getUserFunc: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			if id != user.ID {
				t.Errorf("expected user id %s, got %s", user.ID, id)
			}
			return user, nil
		},
	}
	h := NewAuthHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(ctxutil.WithUserID(req.Context(), user.ID))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", resp.Username)
	}
}

func TestMe_NoIdentityIs401(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
