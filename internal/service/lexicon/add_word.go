package lexicon

import (
	"context"

	"github.com/google/uuid"
)

// AddWord ingests a word with caller-supplied translation and syllable
// split (manual mode). If the word already exists the input data is
// discarded and the existing word is counted and returned: re-submitting
// the same request is an idempotent query, not a duplicate.
func (s *Service) AddWord(ctx context.Context, userID uuid.UUID, in AddWordInput) (*WordResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return s.ingest(ctx, userID, in.Text, func(context.Context) (*wordSource, error) {
		return &wordSource{
			translation:      in.Translation,
			phonetic:         in.Phonetic,
			phoneticAnalysis: in.PhoneticAnalysis,
			rootAffix:        in.RootAffix,
			syllables:        in.Syllables,
		}, nil
	})
}
