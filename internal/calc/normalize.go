package calc

import "strings"

// replacements run in order over the raw question. Matching is literal and
// case sensitive, so "what is" (lower case) survives and fails to parse.
var replacements = []struct {
	old string
	new string
}{
	{"What is", ""},
	{"Calculate", ""},
	{"?", ""},
	{"multiplied by", "*"},
	{"divided by", "/"},
	{"add", "+"},
	{"plus", "+"},
	{"minus", "-"},
}

// Normalize turns an arithmetic question into an expression string
func Normalize(question string) string {
	expr := question
	for _, r := range replacements {
		expr = strings.ReplaceAll(expr, r.old, r.new)
	}
	return strings.TrimSpace(expr)
}

// Solve normalizes the question and evaluates the result.
// Failures are returned as *ExpressionError.
func Solve(question string) (string, error) {
	return Evaluate(Normalize(question))
}
