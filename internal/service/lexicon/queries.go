package lexicon

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// GetWord returns a word by id and counts the query for the identity.
func (s *Service) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*WordResult, error) {
	w, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}
	return s.count(ctx, userID, w, ActionQueried)
}

// FindWord returns a word by text and counts the query for the identity.
// A miss is ErrNotFound; nothing is created.
func (s *Service) FindWord(ctx context.Context, userID uuid.UUID, text string) (*WordResult, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	w, err := s.words.FindByText(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return s.count(ctx, userID, w, ActionQueried)
}

// ListWords returns words newest first, paginated, with the total count.
// Not a counted query.
func (s *Service) ListWords(ctx context.Context, page, perPage int) ([]domain.Word, int64, error) {
	words, total, err := s.words.List(ctx, page, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	return words, total, nil
}

// SearchBySyllable returns words containing the syllable, newest first.
// The page size floor of 50 is applied by the store. Not a counted query;
// an unknown syllable is an empty page, not an error.
func (s *Service) SearchBySyllable(ctx context.Context, syllableText string, page, perPage int) ([]domain.Word, int64, error) {
	normalized := domain.NormalizeText(syllableText)
	if normalized == "" {
		return nil, 0, domain.NewValidationError("syllable", "required")
	}

	words, total, err := s.words.SearchBySyllable(ctx, normalized, page, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("search by syllable: %w", err)
	}
	return words, total, nil
}
