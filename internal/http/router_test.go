package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vokinneberg/sigma-ai/internal/knowledge"
	"github.com/vokinneberg/sigma-ai/internal/qa"
)

// promptRecorder is a completion stub that keeps the last prompt it saw
type promptRecorder struct {
	prompt string
	answer string
}

func (p *promptRecorder) Complete(_ context.Context, prompt string) (string, error) {
	p.prompt = prompt
	return p.answer, nil
}

func newTestRouter(t *testing.T, asker Asker, kb KnowledgeBase) http.Handler {
	t.Helper()
	pages, err := NewPages("test-secret")
	require.NoError(t, err)
	return NewRouter(NewHandlers(asker, kb), pages, []string{"*"})
}

func TestRouter_Pages(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, NewMockAsker(ctrl), nil)

	tests := []struct {
		path     string
		contains string
	}{
		{"/", "Sigma AI"},
		{"/about", "About"},
		{"/signup", "Sign up"},
		{"/model", "script-model.js"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestRouter_Static(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, NewMockAsker(ctrl), nil)

	req := httptest.NewRequest(http.MethodGet, "/static/script-model.js", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/get_answer")
}

func TestRouter_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, NewMockAsker(ctrl), nil)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRouter_KnowledgeRouteOptional(t *testing.T) {
	ctrl := gomock.NewController(t)

	body := `{"text": "Go is a programming language."}`

	t.Run("disabled", func(t *testing.T) {
		router := newTestRouter(t, NewMockAsker(ctrl), nil)

		req := httptest.NewRequest(http.MethodPost, "/knowledge", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		kb := NewMockKnowledgeBase(ctrl)
		kb.EXPECT().Ingest(gomock.Any(), "Go is a programming language.", "").Return(knowledge.IngestResult{Source: "generated", Chunks: 1}, nil)
		router := newTestRouter(t, NewMockAsker(ctrl), kb)

		req := httptest.NewRequest(http.MethodPost, "/knowledge", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_CORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, NewMockAsker(ctrl), nil)

	req := httptest.NewRequest(http.MethodOptions, "/get_answer", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_GetAnswerWithContext(t *testing.T) {
	completer := &promptRecorder{answer: "  Shakespeare  "}
	router := newTestRouter(t, qa.NewService(qa.NewAnswerer(completer, nil)), nil)

	body := `{"question": "Who wrote Hamlet?", "context": "Hamlet is a tragedy by William Shakespeare."}`
	req := httptest.NewRequest(http.MethodPost, "/get_answer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answer": "Shakespeare"}`, w.Body.String())
	assert.Equal(t,
		"Based on the following context, answer the question:\n\nContext: Hamlet is a tragedy by William Shakespeare.\n\nQuestion: Who wrote Hamlet?",
		completer.prompt,
	)
}

func TestRouter_GetAnswerRejectsGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, NewMockAsker(ctrl), nil)

	req := httptest.NewRequest(http.MethodGet, "/get_answer", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
