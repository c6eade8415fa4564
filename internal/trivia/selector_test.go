package trivia

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSelectorTranslatesWireCategory(t *testing.T) {
	store := new(mockStore)
	store.On("ListQuestionsByCategory", mock.Anything, int64(1)).Return(questionsFor(1, 10, 11), nil)

	chooser := &fixedChooser{index: 1}
	pick, err := NewSelector(store, chooser).Next(context.Background(), QuizRequest{
		Category: QuizCategory{Type: "Science", ID: "0"},
	})
	require.NoError(t, err)
	require.NotNil(t, pick.Question)
	assert.Equal(t, int64(11), pick.Question.ID)
	assert.Equal(t, 2, pick.Remaining)
	assert.Equal(t, int64(1), pick.CategoryID)
	assert.Equal(t, []int{2}, chooser.calls)
	store.AssertExpectations(t)
}

func TestSelectorNeverReturnsPreviousQuestions(t *testing.T) {
	store := new(mockStore)
	store.On("ListQuestionsByCategory", mock.Anything, int64(3)).Return(questionsFor(3, 1, 2, 3, 4, 5), nil)

	previous := []int64{1, 3, 5}
	for i := 0; i < 50; i++ {
		pick, err := NewSelector(store, nil).Next(context.Background(), QuizRequest{
			PreviousIDs: previous,
			Category:    QuizCategory{Type: "Art", ID: "2"},
		})
		require.NoError(t, err)
		require.NotNil(t, pick.Question)
		assert.NotContains(t, previous, pick.Question.ID)
		assert.Equal(t, 2, pick.Remaining)
	}
}

func TestSelectorSingleUnseenIsDeterministic(t *testing.T) {
	store := new(mockStore)
	store.On("ListQuestionsByCategory", mock.Anything, int64(2)).Return(questionsFor(2, 7, 8), nil)

	chooser := &fixedChooser{}
	pick, err := NewSelector(store, chooser).Next(context.Background(), QuizRequest{
		PreviousIDs: []int64{7},
		Category:    QuizCategory{Type: "Art", ID: "1"},
	})
	require.NoError(t, err)
	require.NotNil(t, pick.Question)
	assert.Equal(t, int64(8), pick.Question.ID)
	assert.Equal(t, 1, pick.Remaining)
	assert.Empty(t, chooser.calls, "no random draw for a single candidate")
}

func TestSelectorExhausted(t *testing.T) {
	store := new(mockStore)
	store.On("ListQuestionsByCategory", mock.Anything, int64(1)).Return(questionsFor(1, 1, 2), nil)

	pick, err := NewSelector(store, nil).Next(context.Background(), QuizRequest{
		PreviousIDs: []int64{1, 2},
		Category:    QuizCategory{Type: "Science", ID: "0"},
	})
	require.NoError(t, err)
	assert.True(t, pick.Exhausted())
	assert.Nil(t, pick.Question)
	assert.Equal(t, 0, pick.Remaining)
}

func TestSelectorEmptyCategoryIsNotFound(t *testing.T) {
	store := new(mockStore)
	store.On("ListQuestionsByCategory", mock.Anything, int64(6)).Return([]Question{}, nil)

	_, err := NewSelector(store, nil).Next(context.Background(), QuizRequest{
		Category: QuizCategory{Type: "Sports", ID: "5"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Provided category id 5 not found!", Message(err))
}

func TestSelectorAnyCategoryUsesStorageIDs(t *testing.T) {
	store := new(mockStore)
	store.On("ListCategories", mock.Anything).Return([]Category{{1, "Science"}, {2, "Art"}, {3, "Geography"}}, nil)
	store.On("ListQuestionsByCategory", mock.Anything, int64(3)).Return(questionsFor(3, 42), nil)

	chooser := &fixedChooser{index: 2}
	pick, err := NewSelector(store, chooser).Next(context.Background(), QuizRequest{
		Category: QuizCategory{Type: AnyCategory, ID: "0"},
	})
	require.NoError(t, err)
	require.NotNil(t, pick.Question)
	assert.Equal(t, int64(42), pick.Question.ID)
	assert.Equal(t, int64(3), pick.CategoryID)
	store.AssertExpectations(t)
}

func TestSelectorAnyCategoryWithoutCategories(t *testing.T) {
	store := new(mockStore)
	store.On("ListCategories", mock.Anything).Return([]Category{}, nil)

	_, err := NewSelector(store, nil).Next(context.Background(), QuizRequest{
		Category: QuizCategory{Type: AnyCategory},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSelectorRejectsNonNumericCategory(t *testing.T) {
	store := new(mockStore)

	_, err := NewSelector(store, nil).Next(context.Background(), QuizRequest{
		Category: QuizCategory{Type: "Science", ID: "science"},
	})
	assert.ErrorIs(t, err, ErrInvalid)
	store.AssertNotCalled(t, "ListQuestionsByCategory", mock.Anything, mock.Anything)
}

func TestSelectorPropagatesStoreErrors(t *testing.T) {
	store := new(mockStore)
	boom := errors.New("connection reset")
	store.On("ListQuestionsByCategory", mock.Anything, int64(1)).Return([]Question(nil), boom)

	_, err := NewSelector(store, nil).Next(context.Background(), QuizRequest{
		Category: QuizCategory{Type: "Science", ID: "0"},
	})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
