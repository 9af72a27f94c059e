package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("word", "required")

	if got := err.Error(); got != "validation: word: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "translation", Message: "required"},
		{Field: "syllables", Message: "at least one required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("word %q: %w", "beautiful", ErrEnrichmentFailed)
	if !errors.Is(wrapped, ErrEnrichmentFailed) {
		t.Fatal("wrapped error should match ErrEnrichmentFailed")
	}

	wrapped = fmt.Errorf("create: %w", ErrAlreadyExists)
	if !errors.Is(wrapped, ErrAlreadyExists) {
		t.Fatal("wrapped error should match ErrAlreadyExists")
	}
}
