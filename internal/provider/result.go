// Package provider defines the data shapes returned by external
// text-enrichment providers. Adapters under internal/adapter/provider
// implement them; services consume them through small local interfaces.
package provider

// EnrichmentResult is the validated payload for one enriched word.
// Adapters parse the provider response exactly once at the boundary;
// anything that cannot be parsed into this shape is reported as
// unavailability (nil result), never as a partially-filled value.
type EnrichmentResult struct {
	Word             string
	Translation      string
	Phonetic         string
	PhoneticAnalysis string
	RootAffix        string

	// Syllables is the candidate decomposition in left-to-right order.
	// A usable result has at least one non-empty syllable.
	Syllables []string
}

// Usable reports whether the result carries enough data to create a word:
// a translation and a non-empty syllable split.
func (r *EnrichmentResult) Usable() bool {
	return r != nil && r.Translation != "" && len(r.Syllables) > 0
}
