package lexicon

import (
	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// AddWordInput is the caller-supplied data for a manual add.
type AddWordInput struct {
	Text             string
	Translation      string
	Phonetic         string
	PhoneticAnalysis *string
	RootAffix        *string
	Syllables        []string
}

// Validate checks required fields. Syllables must survive normalization to
// at least one non-empty entry.
func (in *AddWordInput) Validate() error {
	var fields []domain.FieldError

	if domain.NormalizeText(in.Text) == "" {
		fields = append(fields, domain.FieldError{Field: "word", Message: "required"})
	}
	if domain.NormalizeText(in.Translation) == "" {
		fields = append(fields, domain.FieldError{Field: "translation", Message: "required"})
	}
	if len(domain.NormalizeSyllables(in.Syllables)) == 0 {
		fields = append(fields, domain.FieldError{Field: "syllables", Message: "at least one non-empty syllable required"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
