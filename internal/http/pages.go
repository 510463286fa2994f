package http

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

//go:embed templates/*.html static/*
var assetsFS embed.FS

const sessionName = "sigma_session"

// pageData is passed to every page template
type pageData struct {
	Title  string
	Active string
}

// Pages renders the HTML pages and owns the session cookie
type Pages struct {
	templates *template.Template
	sessions  sessions.Store
	static    http.Handler
}

// NewPages parses the embedded templates and sets up a cookie store signed with secret
func NewPages(sessionSecret string) (*Pages, error) {
	tmpl, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	staticRoot, err := fs.Sub(assetsFS, "static")
	if err != nil {
		return nil, err
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Pages{
		templates: tmpl,
		sessions:  store,
		static:    http.FileServer(http.FS(staticRoot)),
	}, nil
}

// Page returns a handler rendering the named template
func (p *Pages) Page(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := p.templates.ExecuteTemplate(&buf, name, pageData{Title: title, Active: name}); err != nil {
			slog.Error("Error rendering page", "error", err, "template", name)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			slog.Error("Error writing page", "error", err, "template", name)
		}
	}
}

// LogoutHandler expires the session cookie and sends the user home
func (p *Pages) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	// an invalid cookie still yields a fresh session that can be expired
	session, err := p.sessions.Get(r, sessionName)
	if err != nil {
		slog.Debug("Discarding unreadable session", "error", err)
	}

	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		slog.Error("Error clearing session", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// StaticHandler serves embedded CSS and JavaScript
func (p *Pages) StaticHandler() http.Handler {
	return p.static
}
