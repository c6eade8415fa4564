package trivia

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

var _ Store = (*mockStore)(nil)

func (m *mockStore) ListCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Category), args.Error(1)
}

func (m *mockStore) GetCategory(ctx context.Context, id int64) (Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Category), args.Error(1)
}

func (m *mockStore) ListQuestions(ctx context.Context) ([]Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Question), args.Error(1)
}

func (m *mockStore) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]Question), args.Error(1)
}

func (m *mockStore) InsertQuestion(ctx context.Context, q NewQuestion) (Question, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(Question), args.Error(1)
}

func (m *mockStore) DeleteQuestion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]Question), args.Error(1)
}

// fixedChooser always answers the same index, clamped to n.
type fixedChooser struct {
	index int
	calls []int
}

func (c *fixedChooser) IntN(n int) int {
	c.calls = append(c.calls, n)
	if c.index >= n {
		return n - 1
	}
	return c.index
}

func questionsFor(categoryID int64, ids ...int64) []Question {
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, Question{ID: id, Text: "q", Answer: "a", CategoryID: categoryID, Difficulty: 1})
	}
	return out
}
