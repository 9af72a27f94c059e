package lexicon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// wordSource holds the data needed to create a missing word. Manual adds
// fill it from caller input; automatic lookups fill it from the enrichment
// gateway.
type wordSource struct {
	translation      string
	phonetic         string
	phoneticAnalysis *string
	rootAffix        *string
	syllables        []string
}

// sourceFunc produces creation data on a probe miss. It runs outside any
// transaction; for automatic mode this is the only externally latent step.
type sourceFunc func(ctx context.Context) (*wordSource, error)

// ingest is the state machine shared by every counted query path:
// Resolve -> Probe -> Source -> Create -> Count -> Respond.
//
// The word is created at most once under races: a creation conflict means
// another ingestion committed first, so it re-probes and proceeds as Found.
// ErrAlreadyExists never escapes this function.
func (s *Service) ingest(ctx context.Context, identity uuid.UUID, text string, source sourceFunc) (*WordResult, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	existing, err := s.words.FindByText(ctx, normalized)
	if err == nil {
		return s.count(ctx, identity, existing, ActionQueried)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find word: %w", err)
	}

	src, err := source(ctx)
	if err != nil {
		return nil, err
	}

	syllables := domain.NormalizeSyllables(src.syllables)
	if len(syllables) == 0 {
		return nil, domain.NewValidationError("syllables", "at least one non-empty syllable required")
	}

	created, err := s.words.CreateWithSyllables(ctx, &domain.Word{
		ID:               uuid.New(),
		Text:             normalized,
		Translation:      src.translation,
		Phonetic:         src.phonetic,
		PhoneticAnalysis: src.phoneticAnalysis,
		RootAffix:        src.rootAffix,
	}, syllables)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Conflict-as-success: a concurrent ingestion won the race.
			winner, findErr := s.words.FindByText(ctx, normalized)
			if findErr != nil {
				return nil, fmt.Errorf("find word after conflict: %w", findErr)
			}
			return s.count(ctx, identity, winner, ActionQueried)
		}
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word", normalized),
		slog.String("word_id", created.ID.String()),
		slog.Int("syllables", len(created.Syllables)),
	)

	return s.count(ctx, identity, created, ActionAdded)
}

// count bumps the identity's word counter, then one counter per linked
// syllable position. A syllable counter failure is reported to the caller
// but already-applied increments stay: counters are monotonic telemetry,
// not a transactional unit.
func (s *Service) count(ctx context.Context, identity uuid.UUID, w *domain.Word, action Action) (*WordResult, error) {
	qc, err := s.counters.RecordWordQuery(ctx, identity, w.ID)
	if err != nil {
		return nil, fmt.Errorf("record word query: %w", err)
	}

	for _, syl := range w.Syllables {
		if _, err := s.counters.RecordSyllableQuery(ctx, identity, syl.ID); err != nil {
			return nil, fmt.Errorf("record syllable query %q: %w", syl.Text, err)
		}
	}

	return &WordResult{
		Word:          w,
		Action:        action,
		QueryCount:    qc.Count,
		LastQueriedAt: qc.LastQueriedAt,
	}, nil
}

// enrichSource builds a sourceFunc backed by the enrichment gateway.
// Gateway errors, nil results, and splits that do not survive normalization
// all fail the ingestion with ErrEnrichmentFailed before anything is created.
func (s *Service) enrichSource(text string) sourceFunc {
	return func(ctx context.Context) (*wordSource, error) {
		res, err := s.enricher.FetchWordInfo(ctx, domain.NormalizeText(text))
		if err != nil {
			s.log.ErrorContext(ctx, "enrichment gateway error",
				slog.String("word", text),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w: %v", domain.ErrEnrichmentFailed, err)
		}
		if res == nil || len(domain.NormalizeSyllables(res.Syllables)) == 0 {
			return nil, fmt.Errorf("%w: no usable data for %q", domain.ErrEnrichmentFailed, text)
		}

		return &wordSource{
			translation:      res.Translation,
			phonetic:         res.Phonetic,
			phoneticAnalysis: optional(res.PhoneticAnalysis),
			rootAffix:        optional(res.RootAffix),
			syllables:        res.Syllables,
		}, nil
	}
}

// optional maps an empty string to a NULL-able column value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
