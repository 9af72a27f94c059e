package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
	"github.com/wordmemo/wordmemo-backend/pkg/ctxutil"
)

type statsService interface {
	TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WordQueryStat, error)
	TopSyllables(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SyllableQueryStat, error)
	Overview(ctx context.Context, userID uuid.UUID) (domain.StatsOverview, error)
}

// StatsHandler serves counter statistics endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type wordStatResponse struct {
	WordID        uuid.UUID `json:"word_id"`
	Word          string    `json:"word"`
	QueryCount    int64     `json:"query_count"`
	LastQueriedAt time.Time `json:"last_queried_at"`
}

type syllableStatResponse struct {
	SyllableID    uuid.UUID `json:"syllable_id"`
	Syllable      string    `json:"syllable"`
	QueryCount    int64     `json:"query_count"`
	LastQueriedAt time.Time `json:"last_queried_at"`
}

type overviewResponse struct {
	TotalWordQueries       int64 `json:"total_word_queries"`
	UniqueWordsQueried     int64 `json:"unique_words_queried"`
	TotalSyllableQueries   int64 `json:"total_syllable_queries"`
	UniqueSyllablesQueried int64 `json:"unique_syllables_queried"`
	TotalWordsInSystem     int64 `json:"total_words_in_system"`
	TotalSyllablesInSystem int64 `json:"total_syllables_in_system"`
}

// TopWords handles GET /api/stats/words.
func (h *StatsHandler) TopWords(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	statsList, err := h.svc.TopWords(r.Context(), userID, limitParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]wordStatResponse, 0, len(statsList))
	for _, st := range statsList {
		items = append(items, wordStatResponse{
			WordID:        st.WordID,
			Word:          st.Word,
			QueryCount:    st.QueryCount,
			LastQueriedAt: st.LastQueriedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": items})
}

// TopSyllables handles GET /api/stats/syllables.
func (h *StatsHandler) TopSyllables(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	statsList, err := h.svc.TopSyllables(r.Context(), userID, limitParam(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]syllableStatResponse, 0, len(statsList))
	for _, st := range statsList {
		items = append(items, syllableStatResponse{
			SyllableID:    st.SyllableID,
			Syllable:      st.Syllable,
			QueryCount:    st.QueryCount,
			LastQueriedAt: st.LastQueriedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"syllables": items})
}

// Overview handles GET /api/stats/overview.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ov, err := h.svc.Overview(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		TotalWordQueries:       ov.TotalWordQueries,
		UniqueWordsQueried:     ov.UniqueWordsQueried,
		TotalSyllableQueries:   ov.TotalSyllableQueries,
		UniqueSyllablesQueried: ov.UniqueSyllablesQueried,
		TotalWordsInSystem:     ov.TotalWordsInSystem,
		TotalSyllablesInSystem: ov.TotalSyllablesInSystem,
	})
}

// limitParam reads the limit query parameter; the service clamps it.
func limitParam(r *http.Request) int {
	v, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return v
}
