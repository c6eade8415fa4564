package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// pgxQuerier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresStore implements trivia.Store on top of pgx.
type PostgresStore struct {
	db pgxQuerier
}

var _ trivia.Store = (*PostgresStore)(nil)

func NewPostgresStore(db pgxQuerier) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	pgListCategories = `SELECT id, type FROM categories ORDER BY id`
	pgGetCategory    = `SELECT id, type FROM categories WHERE id = $1`
	pgListQuestions  = `SELECT id, question, answer, category, difficulty FROM questions ORDER BY id`
	pgByCategory     = `SELECT id, question, answer, category, difficulty FROM questions WHERE category = $1 ORDER BY id`
	pgInsertQuestion = `INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id, question, answer, category, difficulty`
	pgDeleteQuestion = `DELETE FROM questions WHERE id = $1`
	pgSearch         = `SELECT id, question, answer, category, difficulty FROM questions
		WHERE strpos(lower(question), lower($1)) > 0
		ORDER BY id`
)

// ListCategories returns every category ordered by id.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	const op = "storage.postgres.ListCategories"

	rows, err := s.db.Query(ctx, pgListCategories)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (trivia.Category, error) {
		var c trivia.Category
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

// GetCategory fetches one category by storage id.
func (s *PostgresStore) GetCategory(ctx context.Context, id int64) (trivia.Category, error) {
	const op = "storage.postgres.GetCategory"

	var c trivia.Category
	if err := s.db.QueryRow(ctx, pgGetCategory, id).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, fmt.Errorf("%s: %w", op, trivia.ErrNotFound)
		}
		return trivia.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListQuestions returns every question ordered by id.
func (s *PostgresStore) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	const op = "storage.postgres.ListQuestions"

	questions, err := s.queryQuestions(ctx, pgListQuestions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}

// ListQuestionsByCategory returns the questions of one category (storage id).
func (s *PostgresStore) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]trivia.Question, error) {
	const op = "storage.postgres.ListQuestionsByCategory"

	questions, err := s.queryQuestions(ctx, pgByCategory, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}

// InsertQuestion stores a question and returns it with its assigned id.
func (s *PostgresStore) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	const op = "storage.postgres.InsertQuestion"

	var created trivia.Question
	err := s.db.QueryRow(ctx, pgInsertQuestion, q.Text, q.Answer, q.CategoryID, q.Difficulty).Scan(
		&created.ID,
		&created.Text,
		&created.Answer,
		&created.CategoryID,
		&created.Difficulty,
	)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// DeleteQuestion removes a question; unknown ids are trivia.ErrNotFound.
func (s *PostgresStore) DeleteQuestion(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteQuestion"

	tag, err := s.db.Exec(ctx, pgDeleteQuestion, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, trivia.ErrNotFound)
	}
	return nil
}

// SearchQuestions matches term as a case-insensitive substring of the question text.
func (s *PostgresStore) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	const op = "storage.postgres.SearchQuestions"

	questions, err := s.queryQuestions(ctx, pgSearch, term)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}

func (s *PostgresStore) queryQuestions(ctx context.Context, query string, args ...any) ([]trivia.Question, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanQuestion)
}

func scanQuestion(row pgx.CollectableRow) (trivia.Question, error) {
	var q trivia.Question
	err := row.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty)
	return q, err
}
