package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a login-capable user with a fake password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	hash := "$2a$10$test-hash-" + suffix
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedWord creates a word with the given syllable texts linked at positions
// 0..n-1. Syllables are created if absent, reused otherwise. Returns a filled
// domain.Word with Syllables in position order.
func SeedWord(t *testing.T, pool *pgxpool.Pool, text string, syllables ...string) domain.Word {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	word := domain.Word{
		ID:          uuid.New(),
		Text:        domain.NormalizeText(text),
		Translation: "translation of " + text,
		Phonetic:    "/" + text + "/",
		CreatedAt:   now,
		UpdatedAt:   now,
		Syllables:   []domain.Syllable{},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, text, translation, phonetic, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		word.ID, word.Text, word.Translation, word.Phonetic, word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	for position, sylText := range syllables {
		syl := SeedSyllable(t, pool, sylText)

		_, err := pool.Exec(ctx,
			`INSERT INTO word_syllables (word_id, syllable_id, position) VALUES ($1, $2, $3)`,
			word.ID, syl.ID, position,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWord insert link[%d]: %v", position, err)
		}
		word.Syllables = append(word.Syllables, syl)
	}

	return word
}

// SeedSyllable creates a syllable by text, or returns the existing one.
func SeedSyllable(t *testing.T, pool *pgxpool.Pool, text string) domain.Syllable {
	t.Helper()
	ctx := context.Background()

	normalized := domain.NormalizeText(text)

	_, err := pool.Exec(ctx,
		`INSERT INTO syllables (id, text) VALUES ($1, $2) ON CONFLICT (text) DO NOTHING`,
		uuid.New(), normalized,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSyllable insert: %v", err)
	}

	var syl domain.Syllable
	err = pool.QueryRow(ctx,
		`SELECT id, text, created_at FROM syllables WHERE text = $1`, normalized,
	).Scan(&syl.ID, &syl.Text, &syl.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSyllable select: %v", err)
	}

	return syl
}

// SeedWordQuery bumps the word query counter for (userID, wordID) n times.
func SeedWordQuery(t *testing.T, pool *pgxpool.Pool, userID, wordID uuid.UUID, n int) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < n; i++ {
		_, err := pool.Exec(ctx,
			`INSERT INTO word_query_counters (user_id, word_id, query_count, last_queried_at)
			 VALUES ($1, $2, 1, now())
			 ON CONFLICT (user_id, word_id)
			 DO UPDATE SET query_count = word_query_counters.query_count + 1, last_queried_at = now()`,
			userID, wordID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWordQuery upsert: %v", err)
		}
	}
}

// SeedSyllableQuery bumps the syllable query counter for (userID, syllableID) n times.
func SeedSyllableQuery(t *testing.T, pool *pgxpool.Pool, userID, syllableID uuid.UUID, n int) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < n; i++ {
		_, err := pool.Exec(ctx,
			`INSERT INTO syllable_query_counters (user_id, syllable_id, query_count, last_queried_at)
			 VALUES ($1, $2, 1, now())
			 ON CONFLICT (user_id, syllable_id)
			 DO UPDATE SET query_count = syllable_query_counters.query_count + 1, last_queried_at = now()`,
			userID, syllableID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSyllableQuery upsert: %v", err)
		}
	}
}
