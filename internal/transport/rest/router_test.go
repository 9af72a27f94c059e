package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/config"
	"github.com/wordmemo/wordmemo-backend/internal/domain"
	"github.com/wordmemo/wordmemo-backend/internal/service/lexicon"
)

type tokenValidatorMock struct {
	userID uuid.UUID
}

func (m *tokenValidatorMock) ValidateToken(token string) (uuid.UUID, error) {
	if token != "good-token" {
		return uuid.Nil, errors.New("invalid token")
	}
	return m.userID, nil
}

func newTestRouter(t *testing.T, svc *lexiconServiceMock, validator *tokenValidatorMock) http.Handler {
	t.Helper()
	logger := testLogger()
	return NewRouter(RouterDeps{
		Words:  NewWordHandler(svc, logger),
		Stats:  NewStatsHandler(&statsServiceMock{}, logger),
		Auth:   NewAuthHandler(&authServiceMock{}, logger),
		Health: NewHealthHandler(&dbPingerMock{}, "test"),
		Media: NewMediaHandler(config.MediaProxyConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: time.Second,
		}, logger),
		TokenValidator: validator,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Logger: logger,
	})
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &lexiconServiceMock{}, &tokenValidatorMock{userID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_ValidTokenReachesHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &lexiconServiceMock{
		listWordsFunc: func(ctx context.Context, page, perPage int) ([]domain.Word, int64, error) {
			return nil, 0, nil
		},
	}
	router := newTestRouter(t, svc, &tokenValidatorMock{userID: userID})

	req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_PublicLookupNeedsNoToken(t *testing.T) {
	t.Parallel()

	svc := &lexiconServiceMock{
		publicLookupFunc: func(context.Context, string, string) (*lexicon.WordResult, error) {
			return sampleResult(sampleWord("banana", "ba", "na", "na"), lexicon.ActionQueried, 0), nil
		},
	}
	router := newTestRouter(t, svc, &tokenValidatorMock{})

	req := httptest.NewRequest(http.MethodPost, "/api/words/public-lookup",
		strings.NewReader(`{"word":"banana"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_HealthNeedsNoToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &lexiconServiceMock{}, &tokenValidatorMock{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_RequestIDHeaderSet(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &lexiconServiceMock{}, &tokenValidatorMock{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header to be set")
	}
}
