// Package counter implements per-identity query counters for words and
// syllables. Every increment is a single atomic upsert, so concurrent
// queries for the same pair never lose updates.
package counter

import (
	"context"
	"errors"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordmemo/wordmemo-backend/internal/adapter/postgres"
	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// Repo provides counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new counter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const recordWordQuerySQL = `
INSERT INTO word_query_counters (user_id, word_id, query_count, last_queried_at)
VALUES ($1, $2, 1, now())
ON CONFLICT (user_id, word_id)
DO UPDATE SET query_count = word_query_counters.query_count + 1, last_queried_at = now()
RETURNING query_count, last_queried_at`

// RecordWordQuery increments the word counter for the identity and returns
// the state after the increment. Creates the counter at 1 on first query.
// A word_id or user_id that does not exist maps to domain.ErrNotFound.
func (r *Repo) RecordWordQuery(ctx context.Context, userID, wordID uuid.UUID) (domain.QueryCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var qc domain.QueryCount
	err := q.QueryRow(ctx, recordWordQuerySQL, userID, wordID).Scan(&qc.Count, &qc.LastQueriedAt)
	if err != nil {
		return domain.QueryCount{}, postgres.MapError(err, "word_query_counter", wordID.String())
	}
	return qc, nil
}

const recordSyllableQuerySQL = `
INSERT INTO syllable_query_counters (user_id, syllable_id, query_count, last_queried_at)
VALUES ($1, $2, 1, now())
ON CONFLICT (user_id, syllable_id)
DO UPDATE SET query_count = syllable_query_counters.query_count + 1, last_queried_at = now()
RETURNING query_count, last_queried_at`

// RecordSyllableQuery increments the syllable counter for the identity and
// returns the state after the increment.
func (r *Repo) RecordSyllableQuery(ctx context.Context, userID, syllableID uuid.UUID) (domain.QueryCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var qc domain.QueryCount
	err := q.QueryRow(ctx, recordSyllableQuerySQL, userID, syllableID).Scan(&qc.Count, &qc.LastQueriedAt)
	if err != nil {
		return domain.QueryCount{}, postgres.MapError(err, "syllable_query_counter", syllableID.String())
	}
	return qc, nil
}

const getWordCountSQL = `
SELECT query_count, last_queried_at FROM word_query_counters
WHERE user_id = $1 AND word_id = $2`

// GetWordCount returns the identity's counter for a word, or a zero
// QueryCount (no error) when the pair has never been queried.
func (r *Repo) GetWordCount(ctx context.Context, userID, wordID uuid.UUID) (domain.QueryCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var qc domain.QueryCount
	err := q.QueryRow(ctx, getWordCountSQL, userID, wordID).Scan(&qc.Count, &qc.LastQueriedAt)
	if err != nil {
		mapped := postgres.MapError(err, "word_query_counter", wordID.String())
		if errors.Is(mapped, domain.ErrNotFound) {
			return domain.QueryCount{}, nil
		}
		return domain.QueryCount{}, mapped
	}
	return qc, nil
}

const topWordsSQL = `
SELECT c.word_id, w.text AS word, c.query_count, c.last_queried_at
FROM word_query_counters c
JOIN words w ON w.id = c.word_id
WHERE c.user_id = $1
ORDER BY c.query_count DESC, c.last_queried_at DESC
LIMIT $2`

type wordStatRow struct {
	WordID        uuid.UUID `db:"word_id"`
	Word          string    `db:"word"`
	QueryCount    int64     `db:"query_count"`
	LastQueriedAt time.Time `db:"last_queried_at"`
}

// TopWords returns the identity's most queried words, highest count first.
func (r *Repo) TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WordQueryStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []wordStatRow
	if err := pgxscan.Select(ctx, q, &rows, topWordsSQL, userID, limit); err != nil {
		return nil, postgres.MapError(err, "word_query_counters", "")
	}

	stats := make([]domain.WordQueryStat, len(rows))
	for i, row := range rows {
		stats[i] = domain.WordQueryStat{
			WordID:        row.WordID,
			Word:          row.Word,
			QueryCount:    row.QueryCount,
			LastQueriedAt: row.LastQueriedAt,
		}
	}
	return stats, nil
}

const topSyllablesSQL = `
SELECT c.syllable_id, s.text AS syllable, c.query_count, c.last_queried_at
FROM syllable_query_counters c
JOIN syllables s ON s.id = c.syllable_id
WHERE c.user_id = $1
ORDER BY c.query_count DESC, c.last_queried_at DESC
LIMIT $2`

type syllableStatRow struct {
	SyllableID    uuid.UUID `db:"syllable_id"`
	Syllable      string    `db:"syllable"`
	QueryCount    int64     `db:"query_count"`
	LastQueriedAt time.Time `db:"last_queried_at"`
}

// TopSyllables returns the identity's most queried syllables, highest count first.
func (r *Repo) TopSyllables(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SyllableQueryStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []syllableStatRow
	if err := pgxscan.Select(ctx, q, &rows, topSyllablesSQL, userID, limit); err != nil {
		return nil, postgres.MapError(err, "syllable_query_counters", "")
	}

	stats := make([]domain.SyllableQueryStat, len(rows))
	for i, row := range rows {
		stats[i] = domain.SyllableQueryStat{
			SyllableID:    row.SyllableID,
			Syllable:      row.Syllable,
			QueryCount:    row.QueryCount,
			LastQueriedAt: row.LastQueriedAt,
		}
	}
	return stats, nil
}

const overviewSQL = `
SELECT
	(SELECT coalesce(sum(query_count), 0) FROM word_query_counters WHERE user_id = $1)     AS total_word_queries,
	(SELECT count(*) FROM word_query_counters WHERE user_id = $1)                          AS unique_words_queried,
	(SELECT coalesce(sum(query_count), 0) FROM syllable_query_counters WHERE user_id = $1) AS total_syllable_queries,
	(SELECT count(*) FROM syllable_query_counters WHERE user_id = $1)                      AS unique_syllables_queried,
	(SELECT count(*) FROM words)                                                           AS total_words_in_system,
	(SELECT count(*) FROM syllables)                                                       AS total_syllables_in_system`

// Overview returns the identity's aggregate counter statistics alongside
// system-wide word and syllable totals.
func (r *Repo) Overview(ctx context.Context, userID uuid.UUID) (domain.StatsOverview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ov domain.StatsOverview
	err := q.QueryRow(ctx, overviewSQL, userID).Scan(
		&ov.TotalWordQueries,
		&ov.UniqueWordsQueried,
		&ov.TotalSyllableQueries,
		&ov.UniqueSyllablesQueried,
		&ov.TotalWordsInSystem,
		&ov.TotalSyllablesInSystem,
	)
	if err != nil {
		return domain.StatsOverview{}, postgres.MapError(err, "stats_overview", userID.String())
	}
	return ov, nil
}
