package routing

import "strings"

// Route names the handler a question is dispatched to
type Route string

const (
	// Arithmetic sends the question to the expression evaluator
	Arithmetic Route = "arithmetic"
	// LanguageModel sends the question to the completion service
	LanguageModel Route = "language_model"
)

// triggerTokens are matched against the lowercased question.
// Any hit routes to the evaluator, so "What does minus mean in algebra"
// is sent there too. This is a keyword heuristic and is kept as one.
var triggerTokens = []string{"+", "-", "*", "/", "multiplied", "divided", "plus", "minus"}

// Classify picks the handler for a question
func Classify(question string) Route {
	if IsArithmetic(question) {
		return Arithmetic
	}
	return LanguageModel
}

// IsArithmetic reports whether the question contains any trigger token
func IsArithmetic(question string) bool {
	q := strings.ToLower(question)
	for _, token := range triggerTokens {
		if strings.Contains(q, token) {
			return true
		}
	}
	return false
}
