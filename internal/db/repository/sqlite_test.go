package repository

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// seededStore returns an in-memory store with the seed migrations applied.
func seededStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, db.Up(context.Background(), store.DB(), db.DriverSQLite))
	return store
}

func TestSQLiteSeedCategoriesStartAtOne(t *testing.T) {
	store := seededStore(t)

	categories, err := store.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)
	for i, c := range categories {
		assert.Equal(t, trivia.StorageCategoryID(int64(i)), c.ID, "wire id %d", i)
	}
	assert.Equal(t, "Science", categories[0].Name)
	assert.Equal(t, "Sports", categories[5].Name)
}

func TestSQLiteGetCategory(t *testing.T) {
	store := seededStore(t)

	c, err := store.GetCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, trivia.Category{ID: 2, Name: "Art"}, c)

	_, err = store.GetCategory(context.Background(), 99)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestSQLiteQuestionsOrderedByID(t *testing.T) {
	store := seededStore(t)

	questions, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 19)
	for i := 1; i < len(questions); i++ {
		assert.Less(t, questions[i-1].ID, questions[i].ID)
	}
}

func TestSQLiteInsertAndDelete(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	faker := gofakeit.New(11)

	created, err := store.InsertQuestion(ctx, trivia.NewQuestion{
		Text:       faker.Question(),
		Answer:     faker.Word(),
		CategoryID: 1,
		Difficulty: 3,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byCategory, err := store.ListQuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, byCategory, created)

	require.NoError(t, store.DeleteQuestion(ctx, created.ID))
	assert.ErrorIs(t, store.DeleteQuestion(ctx, created.ID), trivia.ErrNotFound)

	all, err := store.ListQuestions(ctx)
	require.NoError(t, err)
	assert.NotContains(t, all, created)
	assert.Len(t, all, 19)
}

func TestSQLiteSearchIsCaseInsensitive(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	_, err := store.InsertQuestion(ctx, trivia.NewQuestion{Text: "This has a Title in it", Answer: "a", CategoryID: 1, Difficulty: 1})
	require.NoError(t, err)
	_, err = store.InsertQuestion(ctx, trivia.NewQuestion{Text: "ALL CAPS TITLE", Answer: "a", CategoryID: 1, Difficulty: 1})
	require.NoError(t, err)

	found, err := store.SearchQuestions(ctx, "title")
	require.NoError(t, err)
	// two seeded questions match too: "the title of" and "entitled"
	assert.Len(t, found, 4)

	found, err = store.SearchQuestions(ctx, "100%")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSQLiteCategoryWithoutQuestions(t *testing.T) {
	store := seededStore(t)

	questions, err := store.ListQuestionsByCategory(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
