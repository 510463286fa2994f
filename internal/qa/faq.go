package qa

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

//go:embed faq.toml
var defaultFAQ []byte

// FAQEntry is one curated question with its answer
type FAQEntry struct {
	Question string `toml:"question" validate:"required"`
	Answer   string `toml:"answer" validate:"required"`
}

type faqFile struct {
	Entries []FAQEntry `toml:"entry" validate:"required,min=1,dive"`
}

// FAQ is a curated question set answered without the completion service
type FAQ struct {
	entries []FAQEntry
}

// DefaultFAQ returns the built-in question set
func DefaultFAQ() (*FAQ, error) {
	return ParseFAQ(defaultFAQ)
}

// LoadFAQ reads a question set from a TOML file of [[entry]] tables
func LoadFAQ(path string) (*FAQ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ file %s: %w", path, err)
	}
	return ParseFAQ(data)
}

// ParseFAQ decodes and validates a TOML question set
func ParseFAQ(data []byte) (*FAQ, error) {
	var file faqFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid FAQ: %w", err)
	}
	return &FAQ{entries: file.Entries}, nil
}

// Len returns the number of entries
func (f *FAQ) Len() int {
	return len(f.entries)
}

// Lookup matches case-insensitively. An exact match wins; otherwise the
// first entry whose question contains, or is contained in, the input.
func (f *FAQ) Lookup(question string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return "", false
	}

	for _, e := range f.entries {
		if strings.ToLower(e.Question) == q {
			return e.Answer, true
		}
	}

	for _, e := range f.entries {
		eq := strings.ToLower(e.Question)
		if strings.Contains(eq, q) || strings.Contains(q, eq) {
			return e.Answer, true
		}
	}

	return "", false
}
