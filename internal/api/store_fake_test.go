package api

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// memoryStore is an in-process trivia.Store for handler tests.
type memoryStore struct {
	categories []trivia.Category
	questions  map[int64]trivia.Question
	nextID     int64
	failInsert bool
}

var _ trivia.Store = (*memoryStore)(nil)

func newMemoryStore(categories ...string) *memoryStore {
	s := &memoryStore{questions: map[int64]trivia.Question{}, nextID: 1}
	for i, name := range categories {
		s.categories = append(s.categories, trivia.Category{ID: int64(i + 1), Name: name})
	}
	return s
}

func (s *memoryStore) add(text string, categoryID int64) trivia.Question {
	q := trivia.Question{ID: s.nextID, Text: text, Answer: "answer", CategoryID: categoryID, Difficulty: 1}
	s.questions[q.ID] = q
	s.nextID++
	return q
}

func (s *memoryStore) addFake(faker *gofakeit.Faker, n int, categoryID int64) {
	for i := 0; i < n; i++ {
		s.add(faker.Sentence(6), categoryID)
	}
}

func (s *memoryStore) ListCategories(context.Context) ([]trivia.Category, error) {
	return append([]trivia.Category{}, s.categories...), nil
}

func (s *memoryStore) GetCategory(_ context.Context, id int64) (trivia.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return trivia.Category{}, trivia.ErrNotFound
}

func (s *memoryStore) ListQuestions(context.Context) ([]trivia.Question, error) {
	return s.filter(func(trivia.Question) bool { return true }), nil
}

func (s *memoryStore) ListQuestionsByCategory(_ context.Context, categoryID int64) ([]trivia.Question, error) {
	return s.filter(func(q trivia.Question) bool { return q.CategoryID == categoryID }), nil
}

func (s *memoryStore) InsertQuestion(_ context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	if s.failInsert {
		return trivia.Question{}, errors.New("disk full")
	}
	created := trivia.Question{ID: s.nextID, Text: q.Text, Answer: q.Answer, CategoryID: q.CategoryID, Difficulty: q.Difficulty}
	s.questions[created.ID] = created
	s.nextID++
	return created, nil
}

func (s *memoryStore) DeleteQuestion(_ context.Context, id int64) error {
	if _, ok := s.questions[id]; !ok {
		return trivia.ErrNotFound
	}
	delete(s.questions, id)
	return nil
}

func (s *memoryStore) SearchQuestions(_ context.Context, term string) ([]trivia.Question, error) {
	term = strings.ToLower(term)
	return s.filter(func(q trivia.Question) bool {
		return strings.Contains(strings.ToLower(q.Text), term)
	}), nil
}

func (s *memoryStore) filter(keep func(trivia.Question) bool) []trivia.Question {
	out := []trivia.Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
