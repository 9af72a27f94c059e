package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: domain.ErrAlreadyExists},
		{name: "fk violation", err: &pgconn.PgError{Code: "23503"}, want: domain.ErrNotFound},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: domain.ErrValidation},
		{name: "deadline passes through", err: context.DeadlineExceeded, want: context.DeadlineExceeded},
		{name: "cancel passes through", err: context.Canceled, want: context.Canceled},
		{name: "other wrapped", err: plain, want: plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.err, "word", "conversation")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_MessageIncludesEntityAndKey(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "word", "conversation")
	assert.Contains(t, err.Error(), "word conversation")

	err = MapError(pgx.ErrNoRows, "syllable", "")
	assert.Contains(t, err.Error(), "syllable")
}

func TestMapError_WrappedPgError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, MapError(wrapped, "word", "x"), domain.ErrAlreadyExists)
}
