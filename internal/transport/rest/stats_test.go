package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wordmemo/wordmemo-backend/internal/domain"
)

type statsServiceMock struct {
	topWordsFunc     func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WordQueryStat, error)
	topSyllablesFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SyllableQueryStat, error)
	overviewFunc     func(ctx context.Context, userID uuid.UUID) (domain.StatsOverview, error)
}

func (m *statsServiceMock) TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WordQueryStat, error) {
	return m.topWordsFunc(ctx, userID, limit)
}

func (m *statsServiceMock) TopSyllables(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SyllableQueryStat, error) {
	return m.topSyllablesFunc(ctx, userID, limit)
}

func (m *statsServiceMock) Overview(ctx context.Context, userID uuid.UUID) (domain.StatsOverview, error) {
	return m.overviewFunc(ctx, userID)
}

func TestTopWords_PassesLimit(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &statsServiceMock{
		topWordsFunc: func(_ context.Context, uid uuid.UUID, limit int) ([]domain.WordQueryStat, error) {
			if uid != userID {
				t.Errorf("expected user %s, got %s", userID, uid)
			}
			if limit != 10 {
				t.Errorf("expected limit 10, got %d", limit)
			}
			return []domain.WordQueryStat{
				{WordID: uuid.New(), Word: "banana", QueryCount: 7, LastQueriedAt: time.Now()},
			}, nil
		},
	}
	h := NewStatsHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.TopWords(rec, authedRequest(http.MethodGet, "/api/stats/words?limit=10", nil, userID))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Words []wordStatResponse `json:"words"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Words) != 1 || resp.Words[0].Word != "banana" {
		t.Errorf("unexpected stats: %+v", resp.Words)
	}
}

func TestTopWords_MissingLimitIsZero(t *testing.T) {
	t.Parallel()

	svc := &statsServiceMock{
		topWordsFunc: func(_ context.Context, _ uuid.UUID, limit int) ([]domain.WordQueryStat, error) {
			if limit != 0 {
				t.Errorf("expected limit 0 when absent, got %d", limit)
			}
			return nil, nil
		},
	}
	h := NewStatsHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.TopWords(rec, authedRequest(http.MethodGet, "/api/stats/words", nil, uuid.New()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestTopSyllables_OK(t *testing.T) {
	t.Parallel()

	svc := &statsServiceMock{
		topSyllablesFunc: func(context.Context, uuid.UUID, int) ([]domain.SyllableQueryStat, error) {
			return []domain.SyllableQueryStat{
				{SyllableID: uuid.New(), Syllable: "na", QueryCount: 12, LastQueriedAt: time.Now()},
			}, nil
		},
	}
	h := NewStatsHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.TopSyllables(rec, authedRequest(http.MethodGet, "/api/stats/syllables", nil, uuid.New()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Syllables []syllableStatResponse `json:"syllables"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Syllables) != 1 || resp.Syllables[0].QueryCount != 12 {
		t.Errorf("unexpected stats: %+v", resp.Syllables)
	}
}

func TestOverview_OK(t *testing.T) {
	t.Parallel()

	svc := &statsServiceMock{
		overviewFunc: func(context.Context, uuid.UUID) (domain.StatsOverview, error) {
			return domain.StatsOverview{
				TotalWordQueries:       9,
				UniqueWordsQueried:     3,
				TotalSyllableQueries:   20,
				UniqueSyllablesQueried: 5,
				TotalWordsInSystem:     100,
				TotalSyllablesInSystem: 250,
			}, nil
		},
	}
	h := NewStatsHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.Overview(rec, authedRequest(http.MethodGet, "/api/stats/overview", nil, uuid.New()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp overviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalWordQueries != 9 || resp.TotalSyllablesInSystem != 250 {
		t.Errorf("unexpected overview: %+v", resp)
	}
}

func TestOverview_ServiceErrorIs500(t *testing.T) {
	t.Parallel()

	svc := &statsServiceMock{
		overviewFunc: func(context.Context, uuid.UUID) (domain.StatsOverview, error) {
			return domain.StatsOverview{}, errors.New("db down")
		},
	}
	h := NewStatsHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	h.Overview(rec, authedRequest(http.MethodGet, "/api/stats/overview", nil, uuid.New()))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestStats_NoIdentityIs401(t *testing.T) {
	t.Parallel()

	h := NewStatsHandler(&statsServiceMock{}, testLogger())

	rec := httptest.NewRecorder()
	h.TopWords(rec, httptest.NewRequest(http.MethodGet, "/api/stats/words", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
