package api

import "github.com/gokatarajesh/trivia-api/internal/trivia"

type categoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
	Total      int      `json:"categories_total"`
}

type categoryResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Type    string `json:"type"`
}

type categoryQuestionsResponse struct {
	Success   bool              `json:"success"`
	Questions []trivia.Question `json:"questions"`
	Total     int               `json:"total_questions"`
}

type questionsPageResponse struct {
	Success    bool              `json:"success"`
	Questions  []trivia.Question `json:"questions"`
	Total      int               `json:"total_questions"`
	Categories []string          `json:"categories"`
}

type deleteResponse struct {
	Success   bool              `json:"success"`
	Deleted   int64             `json:"deleted"`
	Questions []trivia.Question `json:"questions"`
	Total     int               `json:"total_questions"`
}

type createResponse struct {
	Success   bool              `json:"success"`
	ID        int64             `json:"id"`
	Questions []trivia.Question `json:"questions"`
	Total     int               `json:"total_questions"`
}

// searchResponse uses camelCase keys; the frontend search view expects them.
type searchResponse struct {
	Success         bool              `json:"success"`
	Questions       []trivia.Question `json:"questions"`
	Total           int               `json:"totalQuestions"`
	CurrentCategory *string           `json:"currentCategory"`
}

type quizResponse struct {
	Success       bool             `json:"success"`
	Question      *trivia.Question `json:"question"`
	QuestionCount int              `json:"question_count"`
}
