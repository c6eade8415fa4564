// Package importer seeds the question store from the Open Trivia DB.
// It runs out of band (cmd/importer); the API never calls it.
package importer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// openTDBCategories maps local category names to OpenTDB category ids.
var openTDBCategories = map[string]int{
	"science":       17,
	"art":           25,
	"geography":     22,
	"history":       23,
	"entertainment": 11,
	"sports":        21,
}

var difficulties = map[string]int{
	"easy":   1,
	"medium": 3,
	"hard":   5,
}

type questionSource interface {
	Fetch(ctx context.Context, amount, category int) ([]OpenTDBQuestion, error)
}

type questionSink interface {
	ListCategories(ctx context.Context) ([]trivia.Category, error)
	InsertQuestion(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error)
}

// Importer copies questions from a source into the store.
type Importer struct {
	source questionSource
	sink   questionSink
	logger zerolog.Logger
}

func New(source questionSource, sink questionSink, logger zerolog.Logger) *Importer {
	return &Importer{
		source: source,
		sink:   sink,
		logger: logger.With().Str("component", "importer").Logger(),
	}
}

// Import fetches amount questions for the named local category and stores them.
// It returns the number of questions inserted.
func (i *Importer) Import(ctx context.Context, categoryName string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %d", amount)
	}

	category, err := i.findCategory(ctx, categoryName)
	if err != nil {
		return 0, err
	}
	remote, ok := openTDBCategories[strings.ToLower(category.Name)]
	if !ok {
		return 0, fmt.Errorf("category %q has no OpenTDB counterpart", category.Name)
	}

	fetched, err := i.source.Fetch(ctx, amount, remote)
	if err != nil {
		return 0, fmt.Errorf("fetch opentdb: %w", err)
	}

	inserted := 0
	for _, q := range fetched {
		if _, err := i.sink.InsertQuestion(ctx, normalize(q, category.ID)); err != nil {
			return inserted, fmt.Errorf("insert question: %w", err)
		}
		inserted++
	}

	i.logger.Info().
		Str("category", category.Name).
		Int("fetched", len(fetched)).
		Int("inserted", inserted).
		Msg("import finished")
	return inserted, nil
}

func (i *Importer) findCategory(ctx context.Context, name string) (trivia.Category, error) {
	categories, err := i.sink.ListCategories(ctx)
	if err != nil {
		return trivia.Category{}, fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return trivia.Category{}, trivia.NotFound("unknown category %q", name)
}

// normalize converts an OpenTDB record; categoryID is already a storage id.
// OpenTDB escapes text as HTML entities.
func normalize(q OpenTDBQuestion, categoryID int64) trivia.NewQuestion {
	difficulty, ok := difficulties[q.Difficulty]
	if !ok {
		difficulty = difficulties["medium"]
	}
	return trivia.NewQuestion{
		Text:       html.UnescapeString(q.Question),
		Answer:     html.UnescapeString(q.CorrectAnswer),
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}
