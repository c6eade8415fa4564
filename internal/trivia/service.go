package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is the persistence contract for categories and questions.
// ListQuestions and ListCategories return records ordered by id.
// GetCategory and DeleteQuestion return ErrNotFound for unknown ids.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
}

// PageRequest selects a page of the question listing.
type PageRequest struct {
	Page     int
	Explicit bool
}

// QuestionPage is one page of questions with listing totals.
type QuestionPage struct {
	Questions  []Question
	Total      int
	Categories []string
}

// Service orchestrates store access, pagination and quiz selection.
type Service struct {
	store    Store
	selector *Selector
	logger   zerolog.Logger
}

type ServiceOptions struct {
	Chooser Chooser
}

func NewService(store Store, logger zerolog.Logger, opts ServiceOptions) *Service {
	return &Service{
		store:    store,
		selector: NewSelector(store, opts.Chooser),
		logger:   logger.With().Str("component", "trivia").Logger(),
	}
}

// Categories lists every category in id order.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	const op = "trivia.Categories"

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

// Category fetches a single category by storage id.
func (s *Service) Category(ctx context.Context, id int64) (Category, error) {
	const op = "trivia.Category"

	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return category, nil
}

// CategoryQuestions lists all questions of the category with the given wire id.
func (s *Service) CategoryQuestions(ctx context.Context, wireID int64) ([]Question, error) {
	const op = "trivia.CategoryQuestions"

	categoryID := StorageCategoryID(wireID)
	questions, err := s.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(questions) == 0 {
		return nil, NotFound("No questions found for category id %d", categoryID)
	}
	return questions, nil
}

// Questions returns a page of all questions plus every category name.
// An explicitly requested page that comes back empty is ErrNotFound.
func (s *Service) Questions(ctx context.Context, req PageRequest) (QuestionPage, error) {
	const op = "trivia.Questions"

	page, err := s.page(ctx, req.Page)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("%s: %w", op, err)
	}
	if req.Explicit && len(page.Questions) == 0 {
		return QuestionPage{}, NotFound("")
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("%s: %w", op, err)
	}
	page.Categories = CategoryNames(categories)
	return page, nil
}

// DeleteQuestion removes a question and returns the requested page of what remains.
func (s *Service) DeleteQuestion(ctx context.Context, id int64, page int) (QuestionPage, error) {
	const op = "trivia.DeleteQuestion"

	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		return QuestionPage{}, fmt.Errorf("%s: %w", op, err)
	}
	s.logger.Info().Int64("question_id", id).Msg("question deleted")

	remaining, err := s.page(ctx, page)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("%s: %w", op, err)
	}
	return remaining, nil
}

// CreateQuestion stores a question whose category is given as a wire id and
// returns the new record with the requested page of questions.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion, page int) (Question, QuestionPage, error) {
	const op = "trivia.CreateQuestion"

	q.CategoryID = StorageCategoryID(q.CategoryID)
	created, err := s.store.InsertQuestion(ctx, q)
	if err != nil {
		return Question{}, QuestionPage{}, fmt.Errorf("%s: %w", op, err)
	}
	s.logger.Info().
		Int64("question_id", created.ID).
		Int64("category_id", created.CategoryID).
		Msg("question created")

	listing, err := s.page(ctx, page)
	if err != nil {
		return Question{}, QuestionPage{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, listing, nil
}

// Search returns questions whose text contains term, ignoring case.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	const op = "trivia.Search"

	questions, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(questions) == 0 {
		return nil, NotFound("Unable to locate any questions based on search term %s", term)
	}
	return questions, nil
}

// NextQuizQuestion picks the next unseen question of a quiz round.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (QuizPick, error) {
	const op = "trivia.NextQuizQuestion"

	pick, err := s.selector.Next(ctx, req)
	if err != nil {
		return QuizPick{}, fmt.Errorf("%s: %w", op, err)
	}
	if pick.Exhausted() {
		s.logger.Debug().
			Int64("category_id", pick.CategoryID).
			Int("previous", len(req.PreviousIDs)).
			Msg("quiz round exhausted")
	}
	return pick, nil
}

func (s *Service) page(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{
		Questions: Paginate(page, QuestionsPerPage, all),
		Total:     len(all),
	}, nil
}
