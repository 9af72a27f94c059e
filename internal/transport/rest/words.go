package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
	"github.com/wordmemo/wordmemo-backend/internal/service/lexicon"
	"github.com/wordmemo/wordmemo-backend/pkg/ctxutil"
)

// lexiconService defines the minimal interface needed by WordHandler.
type lexiconService interface {
	AddWord(ctx context.Context, userID uuid.UUID, in lexicon.AddWordInput) (*lexicon.WordResult, error)
	Lookup(ctx context.Context, userID uuid.UUID, text string) (*lexicon.WordResult, error)
	PublicLookup(ctx context.Context, code, text string) (*lexicon.WordResult, error)
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*lexicon.WordResult, error)
	FindWord(ctx context.Context, userID uuid.UUID, text string) (*lexicon.WordResult, error)
	ListWords(ctx context.Context, page, perPage int) ([]domain.Word, int64, error)
	SearchBySyllable(ctx context.Context, syllableText string, page, perPage int) ([]domain.Word, int64, error)
}

// WordHandler serves word REST endpoints.
type WordHandler struct {
	svc lexiconService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc lexiconService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

type addWordRequest struct {
	Word             string   `json:"word"`
	Translation      string   `json:"translation"`
	Phonetic         string   `json:"phonetic"`
	PhoneticAnalysis *string  `json:"phonetic_analysis"`
	RootAffix        *string  `json:"root_affix"`
	Syllables        []string `json:"syllables"`
}

type lookupRequest struct {
	Word string `json:"word"`
}

type publicLookupRequest struct {
	Word string `json:"word"`
	Code string `json:"code"`
}

// Add handles POST /api/words. A request carrying translation and syllables
// is a manual add; anything else falls back to automatic lookup via the
// enrichment gateway.
func (h *WordHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		result *lexicon.WordResult
		err    error
	)
	if req.Translation != "" && len(req.Syllables) > 0 {
		result, err = h.svc.AddWord(r.Context(), userID, lexicon.AddWordInput{
			Text:             req.Word,
			Translation:      req.Translation,
			Phonetic:         req.Phonetic,
			PhoneticAnalysis: req.PhoneticAnalysis,
			RootAffix:        req.RootAffix,
			Syllables:        req.Syllables,
		})
	} else {
		result, err = h.svc.Lookup(r.Context(), userID, req.Word)
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Action == lexicon.ActionAdded {
		status = http.StatusCreated
	}
	writeJSON(w, status, toWordResultResponse(result))
}

// Lookup handles POST /api/words/lookup.
func (h *WordHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Lookup(r.Context(), userID, req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResultResponse(result))
}

// PublicLookup handles POST /api/words/public-lookup. No authentication.
func (h *WordHandler) PublicLookup(w http.ResponseWriter, r *http.Request) {
	var req publicLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.PublicLookup(r.Context(), req.Code, req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResultResponse(result))
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	wordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	result, err := h.svc.GetWord(r.Context(), userID, wordID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResultResponse(result))
}

// Find handles GET /api/words/search?word=.
func (h *WordHandler) Find(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.svc.FindWord(r.Context(), userID, r.URL.Query().Get("word"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResultResponse(result))
}

// List handles GET /api/words.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r, 1, 20)

	words, total, err := h.svc.ListWords(r.Context(), page, perPage)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordPageResponse(words, total, page, perPage))
}

// SyllableWords handles GET /api/syllables/words?syllable=.
// The effective page size has a floor of 50.
func (h *WordHandler) SyllableWords(w http.ResponseWriter, r *http.Request) {
	syllable := r.URL.Query().Get("syllable")
	page, perPage := pageParams(r, 1, 50)
	if perPage < 50 {
		perPage = 50
	}

	words, total, err := h.svc.SearchBySyllable(r.Context(), syllable, page, perPage)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := struct {
		wordPageResponse
		Syllable string `json:"syllable"`
	}{
		wordPageResponse: toWordPageResponse(words, total, page, perPage),
		Syllable:         domain.NormalizeText(syllable),
	}
	writeJSON(w, http.StatusOK, resp)
}

// pageParams reads page/per_page query parameters with defaults.
func pageParams(r *http.Request, defaultPage, defaultPerPage int) (int, int) {
	page := defaultPage
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	perPage := defaultPerPage
	if v, err := strconv.Atoi(r.URL.Query().Get("per_page")); err == nil && v > 0 {
		perPage = v
	}
	return page, perPage
}
