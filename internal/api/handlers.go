package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// HandlerFunc is a pure request handler: no writer, no globals.
type HandlerFunc func(ctx context.Context, req Request) Result

// Handlers maps trivia operations onto requests and results.
type Handlers struct {
	svc    *trivia.Service
	logger zerolog.Logger
}

// NewHandlers constructs the trivia handlers.
func NewHandlers(svc *trivia.Service, logger zerolog.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /categories
func (h *Handlers) ListCategories(ctx context.Context, _ Request) Result {
	categories, err := h.svc.Categories(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}
	return OK(categoriesResponse{
		Success:    true,
		Categories: trivia.CategoryNames(categories),
		Total:      len(categories),
	})
}

// GetCategory handles GET /categories/{id}
func (h *Handlers) GetCategory(ctx context.Context, req Request) Result {
	id, err := req.ParamInt("id")
	if err != nil {
		return Fail(http.StatusNotFound, "")
	}
	category, err := h.svc.Category(ctx, id)
	if err != nil {
		return h.fail(ctx, err)
	}
	return OK(categoryResponse{Success: true, ID: category.ID, Type: category.Name})
}

// CategoryQuestions handles GET /categories/{id}/questions; id is a wire id.
func (h *Handlers) CategoryQuestions(ctx context.Context, req Request) Result {
	wireID, err := req.ParamInt("id")
	if err != nil {
		return Fail(http.StatusNotFound, "")
	}
	questions, err := h.svc.CategoryQuestions(ctx, wireID)
	if err != nil {
		return h.fail(ctx, err)
	}
	return OK(categoryQuestionsResponse{
		Success:   true,
		Questions: questions,
		Total:     len(questions),
	})
}

// ListQuestions handles GET /questions?page=n
func (h *Handlers) ListQuestions(ctx context.Context, req Request) Result {
	page, explicit := req.Page()
	listing, err := h.svc.Questions(ctx, trivia.PageRequest{Page: page, Explicit: explicit})
	if err != nil {
		return h.fail(ctx, err)
	}
	return OK(questionsPageResponse{
		Success:    true,
		Questions:  listing.Questions,
		Total:      listing.Total,
		Categories: listing.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *Handlers) DeleteQuestion(ctx context.Context, req Request) Result {
	id, err := req.ParamInt("id")
	if err != nil {
		return Fail(http.StatusNotFound, "")
	}
	page, _ := req.Page()
	remaining, err := h.svc.DeleteQuestion(ctx, id, page)
	if err != nil {
		return h.fail(ctx, err)
	}
	return OK(deleteResponse{
		Success:   true,
		Deleted:   id,
		Questions: remaining.Questions,
		Total:     remaining.Total,
	})
}

// createFields lists the required create fields in check order.
var createFields = []string{"question", "answer", "category", "difficulty"}

// CreateQuestion handles POST /questions
func (h *Handlers) CreateQuestion(ctx context.Context, req Request) Result {
	for _, field := range createFields {
		if !req.Has(field) {
			return Fail(http.StatusUnprocessableEntity, "Missing "+field+" property")
		}
	}

	text, err := req.String("question")
	if err != nil {
		return Fail(http.StatusBadRequest, "")
	}
	answer, err := req.String("answer")
	if err != nil {
		return Fail(http.StatusBadRequest, "")
	}
	category, err := req.Int("category")
	if err != nil {
		return Fail(http.StatusBadRequest, "")
	}
	difficulty, err := req.Int("difficulty")
	if err != nil {
		return Fail(http.StatusBadRequest, "")
	}

	page, _ := req.Page()
	created, listing, err := h.svc.CreateQuestion(ctx, trivia.NewQuestion{
		Text:       text,
		Answer:     answer,
		CategoryID: category,
		Difficulty: int(difficulty),
	}, page)
	if err != nil {
		return h.fail(ctx, err)
	}
	return OK(createResponse{
		Success:   true,
		ID:        created.ID,
		Questions: listing.Questions,
		Total:     listing.Total,
	})
}

// SearchQuestions handles POST /questions/search
func (h *Handlers) SearchQuestions(ctx context.Context, req Request) Result {
	if !req.Has("searchTerm") {
		return Fail(http.StatusUnprocessableEntity, "Missing question search term")
	}
	term, err := req.String("searchTerm")
	if err != nil {
		return Fail(http.StatusBadRequest, "")
	}

	questions, err := h.svc.Search(ctx, term)
	if err != nil {
		return h.fail(ctx, err)
	}
	return OK(searchResponse{
		Success:   true,
		Questions: questions,
		Total:     len(questions),
	})
}

type quizCategoryBody struct {
	Type string          `json:"type"`
	ID   json.RawMessage `json:"id"`
}

// NextQuizQuestion handles POST /quizzes. An exhausted round is a success with a null question.
func (h *Handlers) NextQuizQuestion(ctx context.Context, req Request) Result {
	if !req.Has("previous_questions") {
		return Fail(http.StatusUnprocessableEntity, "Missing previous_questions property")
	}
	if !req.Has("quiz_category") {
		return Fail(http.StatusUnprocessableEntity, "Missing quiz_category property")
	}

	previous, err := req.IntList("previous_questions")
	if err != nil {
		return Fail(http.StatusBadRequest, "")
	}
	var category quizCategoryBody
	if err := json.Unmarshal(req.Body["quiz_category"], &category); err != nil {
		return Fail(http.StatusBadRequest, "")
	}

	pick, err := h.svc.NextQuizQuestion(ctx, trivia.QuizRequest{
		PreviousIDs: previous,
		Category:    trivia.QuizCategory{Type: category.Type, ID: rawText(category.ID)},
	})
	if err != nil {
		quizOutcomes.WithLabelValues(outcomeFor(err)).Inc()
		return h.fail(ctx, err)
	}

	if pick.Exhausted() {
		quizOutcomes.WithLabelValues(outcomeExhausted).Inc()
	} else {
		quizOutcomes.WithLabelValues(outcomePicked).Inc()
	}
	return OK(quizResponse{
		Success:       true,
		Question:      pick.Question,
		QuestionCount: pick.Remaining,
	})
}

// fail maps a service error onto an error result. Unexpected errors are
// logged and answered with a generic 500.
func (h *Handlers) fail(ctx context.Context, err error) Result {
	switch {
	case errors.Is(err, trivia.ErrNotFound):
		return Fail(http.StatusNotFound, trivia.Message(err))
	case errors.Is(err, trivia.ErrInvalid):
		return Fail(http.StatusBadRequest, trivia.Message(err))
	default:
		h.log(ctx).Error().Err(err).Msg("request failed")
		return Fail(http.StatusInternalServerError, "")
	}
}

func (h *Handlers) log(ctx context.Context) *zerolog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return &logger
	}
	return &h.logger
}
