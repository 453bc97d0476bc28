package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revisa-app/revisa/internal/cardgen"
	"github.com/revisa-app/revisa/internal/perf"
	"github.com/revisa-app/revisa/internal/review"
	"github.com/revisa-app/revisa/internal/store"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, *cardgen.MockGenerator) {
	t.Helper()

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	st, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	seedCatalog(t, st)

	now := func() time.Time { return testNow }
	gen := cardgen.NewMockGenerator()

	srv := NewServer(Options{
		Review:    review.NewService(st.Records(), st.Events(), st.Catalog(), now),
		Perf:      perf.NewService(st.Events(), st.Records(), st.Catalog(), now),
		Catalog:   st.Catalog(),
		Generator: gen,
		Logger:    slog.New(slog.NewTextHandler(testWriter{t}, nil)),
	})
	return srv, gen
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func seedCatalog(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()
	cat := st.Catalog()
	require.NoError(t, cat.CreateContest(ctx, &store.Contest{ID: "contest-1", Name: "TRF Analista"}))
	require.NoError(t, cat.CreateTopic(ctx, &store.Topic{ID: "topic-1", ContestID: "contest-1", Name: "Direito Constitucional"}))
	require.NoError(t, cat.CreateSubtopic(ctx, &store.Subtopic{ID: "sub-1", TopicID: "topic-1", Name: "Direitos Fundamentais"}))
	require.NoError(t, cat.CreateCard(ctx, &store.Card{ID: "card-1", SubtopicID: "sub-1", Front: "Art. 5o", Back: "Igualdade", Difficulty: "medium"}))
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEnrollAndSubmitReview(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/study/cards",
		`{"userId": "user-1", "cardId": "card-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var enrolled recordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enrolled))
	assert.Equal(t, "new", enrolled.Status)
	assert.Nil(t, enrolled.NextDueAt)

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/study/reviews",
		`{"userId": "user-1", "cardId": "card-1", "quality": 5, "responseTime": 8.2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Record recordResponse `json:"record"`
		Status string         `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "learning", out.Status)
	assert.Equal(t, 1, out.Record.Repetitions)
	assert.Equal(t, 1, out.Record.IntervalDays)
	assert.InDelta(t, 2.6, out.Record.EaseFactor, 1e-9)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"userId": "user-1", "cardId": "card-1"}`
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEnrollUnknownCard(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/study/cards",
		`{"userId": "user-1", "cardId": "missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitReview_InvalidQuality(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", `{"userId": "user-1", "cardId": "card-1"}`)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/study/reviews",
		`{"userId": "user-1", "cardId": "card-1", "quality": 7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitReview_QualityZeroAccepted(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", `{"userId": "user-1", "cardId": "card-1"}`)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/study/reviews",
		`{"userId": "user-1", "cardId": "card-1", "quality": 0}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSubmitReview_NotEnrolled(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/study/reviews",
		`{"userId": "user-1", "cardId": "card-1", "quality": 4}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDueCards(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", `{"userId": "user-1", "cardId": "card-1"}`)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/study/due?userId=user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Cards []recordResponse `json:"cards"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "card-1", out.Cards[0].CardID)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/study/due", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudyStats(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", `{"userId": "user-1", "cardId": "card-1"}`)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/study/stats?userId=user-1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats struct {
		Total        int `json:"total"`
		NewCards     int `json:"newCards"`
		Learning     int `json:"learning"`
		DueForReview int `json:"dueForReview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.NewCards)
	assert.Equal(t, 1, stats.DueForReview)

	// After a correct first review the card moves to learning and is
	// no longer due today.
	doJSON(t, srv, http.MethodPost, "/api/v1/study/reviews",
		`{"userId": "user-1", "cardId": "card-1", "quality": 4}`)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/study/stats?userId=user-1&contestId=contest-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.NewCards)
	assert.Equal(t, 1, stats.Learning)
	assert.Equal(t, 0, stats.DueForReview)

	// Outside the scope everything is zero.
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/study/stats?userId=user-1&contestId=other", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.Total)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/study/stats", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveCard(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", `{"userId": "user-1", "cardId": "card-1"}`)

	rec := doJSON(t, srv, http.MethodDelete, "/api/v1/study/cards/card-1?userId=user-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/v1/study/cards/card-1?userId=user-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOverallPerformance(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", `{"userId": "user-1", "cardId": "card-1"}`)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/reviews",
		`{"userId": "user-1", "cardId": "card-1", "quality": 4, "responseTime": 10}`)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/performance/overall?userId=user-1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		TotalReviews  int     `json:"totalReviews"`
		Accuracy      float64 `json:"accuracy"`
		ContestsCount int     `json:"contestsCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.TotalReviews)
	assert.Equal(t, 100.0, out.Accuracy)
	assert.Equal(t, 1, out.ContestsCount)
}

func TestScopedStats(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/cards", `{"userId": "user-1", "cardId": "card-1"}`)
	doJSON(t, srv, http.MethodPost, "/api/v1/study/reviews",
		`{"userId": "user-1", "cardId": "card-1", "quality": 2}`)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/performance/stats?userId=user-1&contestId=contest-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		TotalReviews     int `json:"totalReviews"`
		IncorrectAnswers int `json:"incorrectAnswers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.TotalReviews)
	assert.Equal(t, 1, out.IncorrectAnswers)

	// A scope with no events yields zeroes, not an error.
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/performance/stats?userId=user-1&subtopicId=other", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 0, out.TotalReviews)

	// The review above happened at testNow; a window covering that day
	// sees it, a window before it does not.
	day := testNow.Format("2006-01-02")
	rec = doJSON(t, srv, http.MethodGet, "/api/v1/performance/stats?userId=user-1&from="+day+"&to="+day, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.TotalReviews)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/performance/stats?userId=user-1&to=2020-01-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 0, out.TotalReviews)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/performance/stats?userId=user-1&from=notadate", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContestPerformance_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/performance/contests/missing?userId=user-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogCreateChain(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/contests", `{"name": "Concurso PF"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var contest store.Contest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contest))
	require.NotEmpty(t, contest.ID)

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/topics",
		fmt.Sprintf(`{"contestId": %q, "name": "Informática"}`, contest.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Parent must exist.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/topics", `{"contestId": "missing", "name": "X"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/cards",
		`{"subtopicId": "sub-1", "front": "Q", "back": "A"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var card store.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "medium", card.Difficulty)
}

func TestListCards(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/subtopics/sub-1/cards", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Count)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/subtopics/missing/cards", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateCards(t *testing.T) {
	srv, gen := newTestServer(t)
	gen.AddBatch(cardgen.MockBatch{Cards: []cardgen.CardDraft{
		{Front: "O que é habeas corpus?", Back: "Remédio constitucional contra ilegalidade na liberdade de locomoção.", Difficulty: "easy"},
	}})

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/cards/generate",
		`{"subtopicId": "sub-1", "count": 1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Equal(t, 1, gen.CallCount())
	call := gen.Calls[0]
	assert.Equal(t, "TRF Analista", call.ContestName)
	assert.Equal(t, "Direito Constitucional", call.TopicName)
	assert.Equal(t, "Direitos Fundamentais", call.SubtopicName)
}

func TestGenerateCards_Persist(t *testing.T) {
	srv, gen := newTestServer(t)
	gen.AddBatch(cardgen.MockBatch{Cards: []cardgen.CardDraft{
		{Front: "Q1", Back: "A1", Difficulty: "hard"},
		{Front: "Q2", Back: "A2", Difficulty: "easy"},
	}})

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/cards/generate",
		`{"subtopicId": "sub-1", "count": 2, "persist": true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/subtopics/sub-1/cards", "")
	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 3, out.Count) // seed card plus two generated
}

func TestGenerateCards_UnknownSubtopic(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/cards/generate",
		`{"subtopicId": "missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
