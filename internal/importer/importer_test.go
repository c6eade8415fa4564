package importer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type recordingSink struct {
	categories []trivia.Category
	inserted   []trivia.NewQuestion
}

func (s *recordingSink) ListCategories(context.Context) ([]trivia.Category, error) {
	return s.categories, nil
}

func (s *recordingSink) InsertQuestion(_ context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	s.inserted = append(s.inserted, q)
	return trivia.Question{ID: int64(len(s.inserted)), Text: q.Text, Answer: q.Answer, CategoryID: q.CategoryID, Difficulty: q.Difficulty}, nil
}

func TestImportFromOpenTDB(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response_code":0,"results":[
			{"category":"Science & Nature","type":"multiple","difficulty":"hard","question":"What is &quot;H2O&quot;?","correct_answer":"Water","incorrect_answers":["Salt"]},
			{"category":"Science & Nature","type":"boolean","difficulty":"easy","question":"The sun is a star.","correct_answer":"True","incorrect_answers":["False"]}
		]}`)
	}))
	defer srv.Close()

	sink := &recordingSink{categories: []trivia.Category{{ID: 1, Name: "Science"}, {ID: 2, Name: "Art"}}}
	imp := New(NewOpenTDBClient(srv.URL, srv.Client()), sink, zerolog.Nop())

	n, err := imp.Import(context.Background(), "science", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "amount=2&category=17", gotQuery)

	require.Len(t, sink.inserted, 2)
	assert.Equal(t, trivia.NewQuestion{Text: `What is "H2O"?`, Answer: "Water", CategoryID: 1, Difficulty: 5}, sink.inserted[0])
	assert.Equal(t, 1, sink.inserted[1].Difficulty)
}

func TestImportUnknownCategory(t *testing.T) {
	sink := &recordingSink{categories: []trivia.Category{{ID: 1, Name: "Science"}}}
	imp := New(NewOpenTDBClient("http://127.0.0.1:0", nil), sink, zerolog.Nop())

	_, err := imp.Import(context.Background(), "Cooking", 5)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestImportUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response_code":1,"results":[]}`)
	}))
	defer srv.Close()

	sink := &recordingSink{categories: []trivia.Category{{ID: 6, Name: "Sports"}}}
	imp := New(NewOpenTDBClient(srv.URL, srv.Client()), sink, zerolog.Nop())

	_, err := imp.Import(context.Background(), "Sports", 3)
	assert.ErrorContains(t, err, "opentdb response code 1")
	assert.Empty(t, sink.inserted)
}

func TestOpenTDBNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewOpenTDBClient(srv.URL, srv.Client()).Fetch(context.Background(), 5, 0)
	assert.ErrorContains(t, err, "opentdb status 429")
}
