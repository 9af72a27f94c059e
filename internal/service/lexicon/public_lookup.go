package lexicon

import (
	"context"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// PublicLookup serves unauthenticated queries. A caller presenting the
// shared code gets full automatic ingestion counted against the aggregate
// identity. Without the code the word is only probed: no creation, no
// counter increments, and a miss is ErrNotFound.
func (s *Service) PublicLookup(ctx context.Context, code, text string) (*WordResult, error) {
	if s.publicCode != "" && code == s.publicCode {
		return s.Lookup(ctx, s.publicUserID, text)
	}

	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	w, err := s.words.FindByText(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return &WordResult{Word: w, Action: ActionQueried}, nil
}
