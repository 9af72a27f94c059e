package rest

import (
	"time"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
	"github.com/wordmemo/wordmemo-backend/internal/service/lexicon"
)

type wordResponse struct {
	ID               string    `json:"id"`
	Word             string    `json:"word"`
	Translation      string    `json:"translation"`
	Phonetic         string    `json:"phonetic"`
	PhoneticAnalysis *string   `json:"phonetic_analysis,omitempty"`
	RootAffix        *string   `json:"root_affix,omitempty"`
	Syllables        []string  `json:"syllables"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type wordResultResponse struct {
	Word          wordResponse `json:"word"`
	Action        string       `json:"action"`
	QueryCount    int64        `json:"query_count,omitempty"`
	LastQueriedAt *time.Time   `json:"last_queried_at,omitempty"`
}

type wordPageResponse struct {
	Words   []wordResponse `json:"words"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:               w.ID.String(),
		Word:             w.Text,
		Translation:      w.Translation,
		Phonetic:         w.Phonetic,
		PhoneticAnalysis: w.PhoneticAnalysis,
		RootAffix:        w.RootAffix,
		Syllables:        w.SyllableTexts(),
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func toWordResultResponse(res *lexicon.WordResult) wordResultResponse {
	out := wordResultResponse{
		Word:       toWordResponse(res.Word),
		Action:     string(res.Action),
		QueryCount: res.QueryCount,
	}
	if !res.LastQueriedAt.IsZero() {
		t := res.LastQueriedAt
		out.LastQueriedAt = &t
	}
	return out
}

func toWordPageResponse(words []domain.Word, total int64, page, perPage int) wordPageResponse {
	out := wordPageResponse{
		Words:   make([]wordResponse, len(words)),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
	for i := range words {
		out.Words[i] = toWordResponse(&words[i])
	}
	return out
}
