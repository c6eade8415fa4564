package api

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

const (
	outcomePicked    = "picked"
	outcomeExhausted = "exhausted"
	outcomeNotFound  = "not_found"
	outcomeError     = "error"
)

var quizOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trivia",
	Name:      "quiz_selections_total",
	Help:      "Quiz next-question requests by outcome.",
}, []string{"outcome"})

func outcomeFor(err error) string {
	if errors.Is(err, trivia.ErrNotFound) {
		return outcomeNotFound
	}
	return outcomeError
}
