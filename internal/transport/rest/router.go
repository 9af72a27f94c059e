package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/config"
	"github.com/wordmemo/wordmemo-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router needs.
type RouterDeps struct {
	Words  *WordHandler
	Stats  *StatsHandler
	Auth   *AuthHandler
	Health *HealthHandler
	Media  *MediaHandler

	TokenValidator tokenValidator
	CORS           config.CORSConfig
	Logger         *slog.Logger
}

// tokenValidator mirrors the middleware's validator contract so callers
// wire the auth service once.
type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// NewRouter builds the full HTTP handler with middleware applied.
// Lookup, word reads, and stats require a bearer token; public lookup,
// the media proxy, health probes, and auth endpoints do not.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Auth(deps.TokenValidator)

	// auth
	mux.Handle("POST /api/auth/register", http.HandlerFunc(deps.Auth.Register))
	mux.Handle("POST /api/auth/login", http.HandlerFunc(deps.Auth.Login))
	mux.Handle("GET /api/auth/me", authed(http.HandlerFunc(deps.Auth.Me)))

	// words
	mux.Handle("POST /api/words", authed(http.HandlerFunc(deps.Words.Add)))
	mux.Handle("GET /api/words", authed(http.HandlerFunc(deps.Words.List)))
	mux.Handle("GET /api/words/search", authed(http.HandlerFunc(deps.Words.Find)))
	mux.Handle("GET /api/words/{id}", authed(http.HandlerFunc(deps.Words.Get)))
	mux.Handle("POST /api/words/lookup", authed(http.HandlerFunc(deps.Words.Lookup)))
	mux.Handle("POST /api/words/public-lookup", http.HandlerFunc(deps.Words.PublicLookup))

	// syllables
	mux.Handle("GET /api/syllables/words", authed(http.HandlerFunc(deps.Words.SyllableWords)))

	// stats
	mux.Handle("GET /api/stats/words", authed(http.HandlerFunc(deps.Stats.TopWords)))
	mux.Handle("GET /api/stats/syllables", authed(http.HandlerFunc(deps.Stats.TopSyllables)))
	mux.Handle("GET /api/stats/overview", authed(http.HandlerFunc(deps.Stats.Overview)))

	// media proxy
	mux.Handle("GET /api/nce/proxy", http.HandlerFunc(deps.Media.Proxy))

	// health
	mux.Handle("GET /api/health", http.HandlerFunc(deps.Health.Health))
	mux.Handle("GET /healthz", http.HandlerFunc(deps.Health.Live))
	mux.Handle("GET /readyz", http.HandlerFunc(deps.Health.Ready))

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)
	return base(mux)
}
