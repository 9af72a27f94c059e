// Package stats exposes per-identity counter statistics.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

type counterReader interface {
	TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WordQueryStat, error)
	TopSyllables(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SyllableQueryStat, error)
	Overview(ctx context.Context, userID uuid.UUID) (domain.StatsOverview, error)
}

// Service implements counter statistics reads.
type Service struct {
	log      *slog.Logger
	counters counterReader
}

// NewService creates a new stats service.
func NewService(logger *slog.Logger, counters counterReader) *Service {
	return &Service{
		log:      logger.With("service", "stats"),
		counters: counters,
	}
}

// TopWords returns the identity's most queried words, highest count first.
// Limit is clamped to [1, 200], defaulting to 50.
func (s *Service) TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WordQueryStat, error) {
	statsList, err := s.counters.TopWords(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("top words: %w", err)
	}
	return statsList, nil
}

// TopSyllables returns the identity's most queried syllables, highest count first.
func (s *Service) TopSyllables(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SyllableQueryStat, error) {
	statsList, err := s.counters.TopSyllables(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("top syllables: %w", err)
	}
	return statsList, nil
}

// Overview returns the identity's aggregate statistics plus system totals.
func (s *Service) Overview(ctx context.Context, userID uuid.UUID) (domain.StatsOverview, error) {
	ov, err := s.counters.Overview(ctx, userID)
	if err != nil {
		return domain.StatsOverview{}, fmt.Errorf("stats overview: %w", err)
	}
	return ov, nil
}

// clampLimit ensures the limit is within [1, 200], defaulting 0 to 50.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}
