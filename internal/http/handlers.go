package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/vokinneberg/sigma-ai/internal/calc"
	"github.com/vokinneberg/sigma-ai/internal/knowledge"
	"github.com/vokinneberg/sigma-ai/internal/qa"
	"github.com/vokinneberg/sigma-ai/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=http

// Asker answers a single question
type Asker interface {
	Ask(ctx context.Context, q qa.Question) (qa.Answer, error)
}

// KnowledgeBase stores documents used as question context
type KnowledgeBase interface {
	Ingest(ctx context.Context, text, source string) (knowledge.IngestResult, error)
}

const (
	msgQuestionRequired = "The 'question' field is required"
	msgTextRequired     = "The 'text' field is required"
)

type QuestionReq struct {
	Question string `json:"question" validate:"required"`
	Context  string `json:"context,omitempty"`
}

type IngestReq struct {
	Text   string `json:"text" validate:"required"`
	Source string `json:"source,omitempty"`
}

type Handler struct {
	asker    Asker
	kb       KnowledgeBase
	validate *validator.Validate
}

// NewHandlers initializes handlers with dependencies. kb may be nil when
// the knowledge base is disabled.
func NewHandlers(asker Asker, kb KnowledgeBase) *Handler {
	return &Handler{
		asker:    asker,
		kb:       kb,
		validate: validator.New(),
	}
}

// GetAnswerHandler answers a question. Expression errors are answers, not
// failures, so they come back with 200 and an "Error: " prefix.
func (h *Handler) GetAnswerHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req QuestionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Rejected question body", "error", err, "request_id", middleware.GetReqID(r.Context()))
		errorResponse(w, http.StatusBadRequest, msgQuestionRequired)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, msgQuestionRequired)
		return
	}

	answer, err := h.asker.Ask(r.Context(), qa.Question{Text: req.Question, Context: req.Context})

	var exprErr *calc.ExpressionError
	switch {
	case errors.As(err, &exprErr):
		slog.Info("Arithmetic expression rejected", "expression", exprErr.Expression, "error", exprErr.Err)
		jsonResponse(w, http.StatusOK, types.AnswerResponse{Answer: "Error: " + exprErr.Error()})
	case err != nil:
		slog.Error("Error answering question", "error", err, "route", answer.Route)
		errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
	default:
		jsonResponse(w, http.StatusOK, types.AnswerResponse{Answer: answer.Text})
	}
}

func (h *Handler) IngestHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req IngestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		errorResponse(w, http.StatusBadRequest, msgTextRequired)
		return
	}

	result, err := h.kb.Ingest(r.Context(), req.Text, req.Source)
	if err != nil {
		slog.Error("Error ingesting document", "error", err, "source", req.Source)
		errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err))
		return
	}

	slog.Info("Ingested document", "source", result.Source, "chunks", result.Chunks)
	jsonResponse(w, http.StatusOK, types.IngestResponse{
		Status: "success",
		Source: result.Source,
		Chunks: result.Chunks,
	})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, types.StatusResponse{Status: "ok"})
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, types.ErrorResponse{Error: message})
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err, "status", status)
	}
}
