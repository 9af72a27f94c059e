package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a canonical lexical entry with its ordered syllable decomposition.
// Words are created once on first successful ingestion and never deleted.
type Word struct {
	ID               uuid.UUID
	Text             string // normalized, unique
	Translation      string
	Phonetic         string
	PhoneticAnalysis *string
	RootAffix        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Syllables are ordered by link position (0-based, dense).
	Syllables []Syllable
}

// Syllable is a canonical sub-word unit shared across words.
type Syllable struct {
	ID        uuid.UUID
	Text      string // normalized, unique
	CreatedAt time.Time
}

// SyllableTexts returns the syllable texts in position order.
func (w *Word) SyllableTexts() []string {
	texts := make([]string, len(w.Syllables))
	for i, s := range w.Syllables {
		texts[i] = s.Text
	}
	return texts
}
