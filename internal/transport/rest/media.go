package rest

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/wordmemo/wordmemo-backend/internal/config"
)

// MediaHandler proxies NCE lesson assets (lrc transcripts and mp3 audio)
// from the upstream host so browser clients avoid CORS restrictions.
type MediaHandler struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(cfg config.MediaProxyConfig, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		log:     logger.With("handler", "media"),
	}
}

// Proxy handles GET /api/nce/proxy?book=2&filename=...&type=lrc.
func (h *MediaHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	book := q.Get("book")
	filename := q.Get("filename")
	fileType := q.Get("type")

	if filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}
	if fileType != "lrc" && fileType != "mp3" {
		writeError(w, http.StatusBadRequest, "type must be lrc or mp3")
		return
	}
	switch book {
	case "1", "2", "3", "4":
	default:
		writeError(w, http.StatusBadRequest, "book must be 1-4")
		return
	}

	upstream := fmt.Sprintf("%s/NCE%s/%s.%s",
		h.baseURL, book, url.PathEscape(filename), fileType)

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset reference")
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warn("media proxy upstream failed", "url", upstream, "error", err)
		writeError(w, http.StatusBadGateway, "asset unavailable")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.log.Warn("media proxy upstream status", "url", upstream, "status", resp.StatusCode)
		writeError(w, resp.StatusCode, "asset load failed")
		return
	}

	contentType := "audio/mpeg"
	if fileType == "lrc" {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, resp.Body); err != nil {
		h.log.Warn("media proxy copy interrupted", "url", upstream, "error", err)
	}
}
