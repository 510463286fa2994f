package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Route
	}{
		{name: "plus sign", question: "What is 2+2?", want: Arithmetic},
		{name: "minus sign", question: "10 - 3", want: Arithmetic},
		{name: "star", question: "3 * 4", want: Arithmetic},
		{name: "slash", question: "8/2", want: Arithmetic},
		{name: "multiplied keyword", question: "What is 6 multiplied by 7?", want: Arithmetic},
		{name: "divided keyword", question: "Calculate 10 divided by 2", want: Arithmetic},
		{name: "plus keyword", question: "What is 2 plus 2?", want: Arithmetic},
		{name: "keyword is case folded", question: "What is 9 MINUS 4?", want: Arithmetic},
		{name: "general question", question: "What is the capital of France?", want: LanguageModel},
		{name: "empty question", question: "", want: LanguageModel},
		{name: "minus in prose is still arithmetic", question: "What does minus mean in algebra", want: Arithmetic},
		{name: "hyphenated word is arithmetic", question: "Who wrote state-of-the-art papers", want: Arithmetic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}

func TestIsArithmetic_EveryTriggerToken(t *testing.T) {
	for _, token := range triggerTokens {
		assert.Truef(t, IsArithmetic("Tell me about "+token), "token %q should route to arithmetic", token)
	}
}
