package lexicon

import (
	"time"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// Action reports what an ingestion did with the word.
type Action string

const (
	// ActionQueried means the word already existed and was only counted.
	ActionQueried Action = "queried"
	// ActionAdded means the word was created by this ingestion.
	ActionAdded Action = "added"
)

// WordResult is the outcome of an ingestion: the word with its ordered
// syllables and the identity's word counter after the increment.
// QueryCount is zero for uncounted (ungated public) probes.
type WordResult struct {
	Word          *domain.Word
	Action        Action
	QueryCount    int64
	LastQueriedAt time.Time
}
