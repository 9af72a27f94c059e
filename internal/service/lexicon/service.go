// Package lexicon implements the ingestion state machine behind every word
// query: probe the store, source missing data (caller-supplied or enrichment),
// create once under races, and bump the identity's counters.
package lexicon

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
	"github.com/wordmemo/wordmemo-backend/internal/provider"
)

type wordStore interface {
	FindByText(ctx context.Context, text string) (*domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	CreateWithSyllables(ctx context.Context, w *domain.Word, syllableTexts []string) (*domain.Word, error)
	List(ctx context.Context, page, perPage int) ([]domain.Word, int64, error)
	SearchBySyllable(ctx context.Context, syllableText string, page, perPage int) ([]domain.Word, int64, error)
}

type counterLedger interface {
	RecordWordQuery(ctx context.Context, userID, wordID uuid.UUID) (domain.QueryCount, error)
	RecordSyllableQuery(ctx context.Context, userID, syllableID uuid.UUID) (domain.QueryCount, error)
}

type enricher interface {
	FetchWordInfo(ctx context.Context, word string) (*provider.EnrichmentResult, error)
}

// Service implements word ingestion and read operations.
type Service struct {
	log      *slog.Logger
	words    wordStore
	counters counterLedger
	enricher enricher

	publicCode   string
	publicUserID uuid.UUID
}

// NewService creates a new lexicon service. publicCode is the shared secret
// that gates counted public lookups; publicUserID is the aggregate identity
// that receives their counter increments.
func NewService(
	logger *slog.Logger,
	words wordStore,
	counters counterLedger,
	enricher enricher,
	publicCode string,
	publicUserID uuid.UUID,
) *Service {
	return &Service{
		log:          logger.With("service", "lexicon"),
		words:        words,
		counters:     counters,
		enricher:     enricher,
		publicCode:   publicCode,
		publicUserID: publicUserID,
	}
}
