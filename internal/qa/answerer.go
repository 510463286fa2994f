package qa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

//go:generate mockgen -source=answerer.go -destination=mock_answerer.go -package=qa

// Completer defines the completion service the answerer delegates to
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Retriever supplies context for questions that arrive without one
type Retriever interface {
	Retrieve(ctx context.Context, question string) (string, error)
}

// FallbackAnswer is returned when the completion service has no usable text
const FallbackAnswer = "I couldn't find an answer."

const (
	contextPromptTemplate  = "Based on the following context, answer the question:\n\nContext: %s\n\nQuestion: %s"
	questionPromptTemplate = "Answer the following question: %s"
)

// Answerer builds prompts and asks the completion service
type Answerer struct {
	completer Completer
	retriever Retriever
	faq       *FAQ
}

// NewAnswerer creates an answerer. retriever may be nil.
func NewAnswerer(completer Completer, retriever Retriever) *Answerer {
	return &Answerer{
		completer: completer,
		retriever: retriever,
	}
}

// WithFAQ makes the answerer reply from faq before asking the completion
// service. Questions that arrive with context skip it.
func (a *Answerer) WithFAQ(faq *FAQ) *Answerer {
	a.faq = faq
	return a
}

// BuildPrompt embeds the context block only when context is non-blank
func BuildPrompt(question, contextText string) string {
	if strings.TrimSpace(contextText) != "" {
		return fmt.Sprintf(contextPromptTemplate, contextText, question)
	}
	return fmt.Sprintf(questionPromptTemplate, question)
}

// Answer returns the trimmed completion for the question
func (a *Answerer) Answer(ctx context.Context, question, contextText string) (string, error) {
	if strings.TrimSpace(contextText) == "" {
		if a.faq != nil {
			if answer, ok := a.faq.Lookup(question); ok {
				slog.Debug("Answered from FAQ")
				return answer, nil
			}
		}
		if a.retriever != nil {
			contextText = a.retrieve(ctx, question)
		}
	}

	text, err := a.completer.Complete(ctx, BuildPrompt(question, contextText))
	if err != nil {
		return "", fmt.Errorf("failed to answer question: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackAnswer, nil
	}
	return text, nil
}

// retrieve never fails the request: without knowledge the question is asked on its own
func (a *Answerer) retrieve(ctx context.Context, question string) string {
	contextText, err := a.retriever.Retrieve(ctx, question)
	if err != nil {
		slog.Warn("Knowledge retrieval failed, answering without context", "error", err)
		return ""
	}
	return contextText
}
