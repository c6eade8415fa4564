package trivia

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Chooser returns an index in [0, n). Implementations need not be seeded or secure.
type Chooser interface {
	IntN(n int) int
}

type chooserFunc func(n int) int

func (f chooserFunc) IntN(n int) int { return f(n) }

// DefaultChooser draws from the runtime's shared math/rand/v2 source.
var DefaultChooser Chooser = chooserFunc(rand.IntN)

type quizStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)
}

// QuizCategory is the quiz_category selector as sent by the client.
// ID holds the raw wire id; it is ignored when Type is AnyCategory.
type QuizCategory struct {
	Type string
	ID   string
}

// QuizRequest describes one "next question" call of a quiz round.
type QuizRequest struct {
	PreviousIDs []int64
	Category    QuizCategory
}

// QuizPick is the outcome of a selection. Question is nil when the round is exhausted.
type QuizPick struct {
	Question   *Question
	Remaining  int
	CategoryID int64
}

// Exhausted reports whether every question of the category was already served.
func (p QuizPick) Exhausted() bool { return p.Question == nil }

// Selector picks the next unseen quiz question.
type Selector struct {
	store   quizStore
	chooser Chooser
}

// NewSelector builds a Selector. A nil chooser falls back to DefaultChooser.
func NewSelector(store quizStore, chooser Chooser) *Selector {
	if chooser == nil {
		chooser = DefaultChooser
	}
	return &Selector{store: store, chooser: chooser}
}

// Next resolves the category, drops previously served questions and picks one
// of the rest uniformly. A category without questions is ErrNotFound; a category
// whose questions were all served yields an exhausted pick and no error.
func (s *Selector) Next(ctx context.Context, req QuizRequest) (QuizPick, error) {
	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return QuizPick{}, err
	}

	candidates, err := s.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return QuizPick{}, err
	}
	if len(candidates) == 0 {
		return QuizPick{}, NotFound("Provided category id %s not found!", req.Category.ID)
	}

	unseen := excludeSeen(candidates, req.PreviousIDs)
	pick := QuizPick{Remaining: len(unseen), CategoryID: categoryID}

	switch len(unseen) {
	case 0:
		return pick, nil
	case 1:
		pick.Question = &unseen[0]
	default:
		pick.Question = &unseen[s.chooser.IntN(len(unseen))]
	}
	return pick, nil
}

func (s *Selector) resolveCategory(ctx context.Context, sel QuizCategory) (int64, error) {
	if sel.Type == AnyCategory {
		categories, err := s.store.ListCategories(ctx)
		if err != nil {
			return 0, err
		}
		if len(categories) == 0 {
			return 0, NotFound("no categories available")
		}
		return categories[s.chooser.IntN(len(categories))].ID, nil
	}

	wireID, err := strconv.ParseInt(strings.TrimSpace(sel.ID), 10, 64)
	if err != nil {
		return 0, Invalid("invalid quiz category id %q", sel.ID)
	}
	return StorageCategoryID(wireID), nil
}

func excludeSeen(questions []Question, previous []int64) []Question {
	seen := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		out = append(out, q)
	}
	return out
}
