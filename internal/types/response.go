package types

// AnswerResponse represents an answer to a question
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// IngestResponse represents a stored knowledge document
type IngestResponse struct {
	Status string `json:"status"`
	Source string `json:"source"`
	Chunks int    `json:"chunks"`
}

// StatusResponse represents a health check response
type StatusResponse struct {
	Status string `json:"status"`
}
