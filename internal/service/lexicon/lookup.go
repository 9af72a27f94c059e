package lexicon

import (
	"context"

	"github.com/google/uuid"
)

// Lookup ingests a word in automatic mode: a probe miss is filled from the
// enrichment gateway. Fails with ErrEnrichmentFailed when the gateway is
// unavailable or returns unusable data; nothing is created in that case.
func (s *Service) Lookup(ctx context.Context, userID uuid.UUID, text string) (*WordResult, error) {
	return s.ingest(ctx, userID, text, s.enrichSource(text))
}
