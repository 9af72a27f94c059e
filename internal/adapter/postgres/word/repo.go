// Package word implements the lexicon store: words, syllables, and the
// ordered links between them. Words and syllables are immutable once
// created; the whole word-plus-links creation is a single transaction.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordmemo/wordmemo-backend/internal/adapter/postgres"
	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// Repo provides lexicon persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new lexicon repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = "id, text, translation, phonetic, phonetic_analysis, root_affix, created_at, updated_at"

// ---------------------------------------------------------------------------
// Row types (pgxscan)
// ---------------------------------------------------------------------------

type wordRow struct {
	ID               uuid.UUID `db:"id"`
	Text             string    `db:"text"`
	Translation      string    `db:"translation"`
	Phonetic         string    `db:"phonetic"`
	PhoneticAnalysis *string   `db:"phonetic_analysis"`
	RootAffix        *string   `db:"root_affix"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type linkedSyllableRow struct {
	WordID    uuid.UUID `db:"word_id"`
	ID        uuid.UUID `db:"id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	Position  int       `db:"position"`
}

func (r wordRow) toDomain() domain.Word {
	return domain.Word{
		ID:               r.ID,
		Text:             r.Text,
		Translation:      r.Translation,
		Phonetic:         r.Phonetic,
		PhoneticAnalysis: r.PhoneticAnalysis,
		RootAffix:        r.RootAffix,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		Syllables:        []domain.Syllable{},
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + wordColumns + ` FROM words WHERE id = $1`

// GetByID returns a word with its syllables ordered by position.
// Returns domain.ErrNotFound if no such word exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row wordRow
	if err := pgxscan.Get(ctx, q, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}

	w := row.toDomain()
	if err := r.loadSyllables(ctx, q, []*domain.Word{&w}); err != nil {
		return nil, err
	}
	return &w, nil
}

const findByTextSQL = `SELECT ` + wordColumns + ` FROM words WHERE text = $1`

// FindByText returns a word by its normalized text, with ordered syllables.
// Returns domain.ErrNotFound if absent. No side effects.
func (r *Repo) FindByText(ctx context.Context, text string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row wordRow
	if err := pgxscan.Get(ctx, q, &row, findByTextSQL, text); err != nil {
		return nil, postgres.MapError(err, "word", text)
	}

	w := row.toDomain()
	if err := r.loadSyllables(ctx, q, []*domain.Word{&w}); err != nil {
		return nil, err
	}
	return &w, nil
}

// List returns words ordered by creation time descending, paginated,
// with syllables loaded, plus the total word count.
func (r *Repo) List(ctx context.Context, page, perPage int) ([]domain.Word, int64, error) {
	f := newFilter(page, perPage, 0)
	return r.page(ctx, psql.Select(wordColumns).From("words"), psql.Select("count(*)").From("words"), f)
}

// SearchBySyllable returns words whose link set contains the given syllable
// text, newest first, paginated with a minimum page size of 50, plus the
// total number of distinct matching words. An unknown syllable yields an
// empty page with total 0.
func (r *Repo) SearchBySyllable(ctx context.Context, syllableText string, page, perPage int) ([]domain.Word, int64, error) {
	f := newFilter(page, perPage, searchPerPageFloor)

	match := sq.Expr(
		`w.id IN (SELECT ws.word_id FROM word_syllables ws
		          JOIN syllables s ON s.id = ws.syllable_id
		          WHERE s.text = ?)`, syllableText)

	sel := psql.Select(
		"w.id", "w.text", "w.translation", "w.phonetic",
		"w.phonetic_analysis", "w.root_affix", "w.created_at", "w.updated_at",
	).From("words w").Where(match)

	count := psql.Select("count(*)").From("words w").Where(match)

	return r.page(ctx, sel, count, f)
}

// page runs a select/count builder pair with newest-first ordering and
// loads syllables for the returned page.
func (r *Repo) page(ctx context.Context, sel, count sq.SelectBuilder, f filter) ([]domain.Word, int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "words", "")
	}

	pageSQL, pageArgs, err := sel.
		OrderBy("created_at DESC", "id DESC").
		Limit(f.limit()).
		Offset(f.offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, q, &rows, pageSQL, pageArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "words", "")
	}

	words := make([]domain.Word, len(rows))
	refs := make([]*domain.Word, len(rows))
	for i, row := range rows {
		words[i] = row.toDomain()
		refs[i] = &words[i]
	}

	if err := r.loadSyllables(ctx, q, refs); err != nil {
		return nil, 0, err
	}

	return words, total, nil
}

const countWordsSQL = `SELECT count(*) FROM words`
const countSyllablesSQL = `SELECT count(*) FROM syllables`

// CountWords returns the total number of words in the system.
func (r *Repo) CountWords(ctx context.Context) (int64, error) {
	var n int64
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countWordsSQL).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "words", "")
	}
	return n, nil
}

// CountSyllables returns the total number of syllables in the system.
func (r *Repo) CountSyllables(ctx context.Context) (int64, error) {
	var n int64
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countSyllablesSQL).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "syllables", "")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertWordSQL = `
INSERT INTO words (id, text, translation, phonetic, phonetic_analysis, root_affix, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING ` + wordColumns

const upsertSyllableSQL = `
INSERT INTO syllables (id, text, created_at)
VALUES ($1, $2, now())
ON CONFLICT (text) DO NOTHING`

const getSyllableByTextSQL = `SELECT id, text, created_at FROM syllables WHERE text = $1`

const insertLinkSQL = `
INSERT INTO word_syllables (word_id, syllable_id, position, created_at)
VALUES ($1, $2, $3, now())`

// CreateWithSyllables atomically creates a word and its ordered syllable
// links. Each syllable text is created if missing or reused if present;
// positions are assigned densely from 0 in the order given, so the same
// syllable may appear at several positions. Returns domain.ErrAlreadyExists
// if a word with the same text was committed first; no partial state is
// observable in that case.
func (r *Repo) CreateWithSyllables(ctx context.Context, w *domain.Word, syllableTexts []string) (*domain.Word, error) {
	var result domain.Word

	err := r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		q := postgres.QuerierFromCtx(txCtx, r.pool)

		var row wordRow
		err := pgxscan.Get(txCtx, q, &row, insertWordSQL,
			w.ID, w.Text, w.Translation, w.Phonetic, w.PhoneticAnalysis, w.RootAffix)
		if err != nil {
			return postgres.MapError(err, "word", w.Text)
		}
		result = row.toDomain()

		result.Syllables = make([]domain.Syllable, 0, len(syllableTexts))
		for position, text := range syllableTexts {
			syl, err := getOrCreateSyllable(txCtx, q, text)
			if err != nil {
				return err
			}
			if _, err := q.Exec(txCtx, insertLinkSQL, result.ID, syl.ID, position); err != nil {
				return postgres.MapError(err, "word_syllable", text)
			}
			result.Syllables = append(result.Syllables, syl)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// getOrCreateSyllable upserts a syllable row by text and returns it.
// INSERT ON CONFLICT DO NOTHING followed by SELECT is race-safe: a
// concurrent insert of the same text blocks the upsert until it commits,
// after which the select sees the winner's row.
func getOrCreateSyllable(ctx context.Context, q postgres.Querier, text string) (domain.Syllable, error) {
	if _, err := q.Exec(ctx, upsertSyllableSQL, uuid.New(), text); err != nil {
		return domain.Syllable{}, postgres.MapError(err, "syllable", text)
	}

	var syl domain.Syllable
	if err := q.QueryRow(ctx, getSyllableByTextSQL, text).Scan(&syl.ID, &syl.Text, &syl.CreatedAt); err != nil {
		return domain.Syllable{}, postgres.MapError(err, "syllable", text)
	}
	return syl, nil
}

// ---------------------------------------------------------------------------
// Syllable loading
// ---------------------------------------------------------------------------

const linkedSyllablesSQL = `
SELECT ws.word_id, s.id, s.text, s.created_at, ws.position
FROM word_syllables ws
JOIN syllables s ON s.id = ws.syllable_id
WHERE ws.word_id = ANY($1)
ORDER BY ws.word_id, ws.position`

// loadSyllables populates Syllables (in position order) for every word in
// the slice with one batch query.
func (r *Repo) loadSyllables(ctx context.Context, q postgres.Querier, words []*domain.Word) error {
	if len(words) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(words))
	byID := make(map[uuid.UUID]*domain.Word, len(words))
	for i, w := range words {
		ids[i] = w.ID
		byID[w.ID] = w
	}

	var rows []linkedSyllableRow
	if err := pgxscan.Select(ctx, q, &rows, linkedSyllablesSQL, ids); err != nil {
		return postgres.MapError(err, "word_syllables", "")
	}

	for _, row := range rows {
		w, ok := byID[row.WordID]
		if !ok {
			continue
		}
		w.Syllables = append(w.Syllables, domain.Syllable{
			ID:        row.ID,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		})
	}

	return nil
}
