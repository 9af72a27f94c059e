package domain

import (
	"time"

	"github.com/google/uuid"
)

// QueryCount is the result of recording one query against a counter:
// the post-increment count and the timestamp of that increment.
// Counts are monotonically non-decreasing; rows are never deleted.
type QueryCount struct {
	Count         int64
	LastQueriedAt time.Time
}

// WordQueryStat is one per-user word counter row joined with its word text.
type WordQueryStat struct {
	WordID        uuid.UUID
	Word          string
	QueryCount    int64
	LastQueriedAt time.Time
}

// SyllableQueryStat is one per-user syllable counter row joined with its
// syllable text.
type SyllableQueryStat struct {
	SyllableID    uuid.UUID
	Syllable      string
	QueryCount    int64
	LastQueriedAt time.Time
}

// StatsOverview aggregates a user's query activity plus global lexicon size.
type StatsOverview struct {
	TotalWordQueries       int64
	UniqueWordsQueried     int64
	TotalSyllableQueries   int64
	UniqueSyllablesQueried int64
	TotalWordsInSystem     int64
	TotalSyllablesInSystem int64
}
