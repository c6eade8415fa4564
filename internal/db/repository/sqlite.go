package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// SQLiteStore implements trivia.Store on a local SQLite file. It backs local
// development and the repository tests.
type SQLiteStore struct {
	db *sql.DB
}

var _ trivia.Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path. ":memory:" is supported;
// the pool is limited to one connection so every query sees the same database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	const op = "storage.sqlite.Open"

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetMaxOpenConns(1)

	return &SQLiteStore{db: db}, nil
}

// DB exposes the underlying handle for migrations.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListCategories returns every category ordered by id.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	const op = "storage.sqlite.ListCategories"

	rows, err := s.db.QueryContext(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := []trivia.Category{}
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

// GetCategory fetches one category by storage id.
func (s *SQLiteStore) GetCategory(ctx context.Context, id int64) (trivia.Category, error) {
	const op = "storage.sqlite.GetCategory"

	var c trivia.Category
	err := s.db.QueryRowContext(ctx, "SELECT id, type FROM categories WHERE id = ?", id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trivia.Category{}, fmt.Errorf("%s: %w", op, trivia.ErrNotFound)
		}
		return trivia.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListQuestions returns every question ordered by id.
func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	const op = "storage.sqlite.ListQuestions"

	questions, err := s.queryQuestions(ctx, "SELECT id, question, answer, category, difficulty FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}

// ListQuestionsByCategory returns the questions of one category (storage id).
func (s *SQLiteStore) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]trivia.Question, error) {
	const op = "storage.sqlite.ListQuestionsByCategory"

	questions, err := s.queryQuestions(ctx,
		"SELECT id, question, answer, category, difficulty FROM questions WHERE category = ? ORDER BY id", categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}

// InsertQuestion stores a question and returns it with its assigned id.
func (s *SQLiteStore) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	const op = "storage.sqlite.InsertQuestion"

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)",
		q.Text, q.Answer, q.CategoryID, q.Difficulty)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return trivia.Question{}, fmt.Errorf("%s: %w", op, err)
	}

	return trivia.Question{
		ID:         id,
		Text:       q.Text,
		Answer:     q.Answer,
		CategoryID: q.CategoryID,
		Difficulty: q.Difficulty,
	}, nil
}

// DeleteQuestion removes a question; unknown ids are trivia.ErrNotFound.
func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int64) error {
	const op = "storage.sqlite.DeleteQuestion"

	res, err := s.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, trivia.ErrNotFound)
	}
	return nil
}

// SearchQuestions matches term as a case-insensitive substring of the question text.
// SQLite's lower() folds ASCII only.
func (s *SQLiteStore) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	const op = "storage.sqlite.SearchQuestions"

	questions, err := s.queryQuestions(ctx,
		"SELECT id, question, answer, category, difficulty FROM questions WHERE instr(lower(question), lower(?)) > 0 ORDER BY id", term)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}

func (s *SQLiteStore) queryQuestions(ctx context.Context, query string, args ...any) ([]trivia.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []trivia.Question{}
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
