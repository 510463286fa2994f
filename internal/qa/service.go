package qa

import (
	"context"
	"log/slog"

	"github.com/vokinneberg/sigma-ai/internal/calc"
	"github.com/vokinneberg/sigma-ai/internal/routing"
)

// Question is a single user question with optional context
type Question struct {
	Text    string
	Context string
}

// Answer is the text produced for a question and the handler that produced it
type Answer struct {
	Text  string
	Route routing.Route
}

// Service dispatches questions to the evaluator or the answerer
type Service struct {
	answerer *Answerer
}

// NewService creates a dispatcher over the given answerer
func NewService(answerer *Answerer) *Service {
	return &Service{answerer: answerer}
}

// Ask answers a question. Arithmetic failures come back as *calc.ExpressionError,
// completion failures as wrapped service errors.
func (s *Service) Ask(ctx context.Context, q Question) (Answer, error) {
	route := routing.Classify(q.Text)
	slog.Debug("Routing question", "route", route)

	var (
		text string
		err  error
	)
	switch route {
	case routing.Arithmetic:
		text, err = calc.Solve(q.Text)
	default:
		text, err = s.answerer.Answer(ctx, q.Text, q.Context)
	}

	return Answer{Text: text, Route: route}, err
}
