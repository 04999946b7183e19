package main

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagesum"
)

// shutdownTimeout bounds graceful shutdown once the command context ends.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command. The server runs until it fails or the
// command context is cancelled, at which point it shuts down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := &http.Server{
		Addr:    c.Addr,
		Handler: NewHandler(deps),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	deps.Logger.Info("listening", "addr", c.Addr)

	select {
	case err := <-errc:
		return err
	case <-deps.Ctx.Done():
		deps.Logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

// NewHandler returns the HTTP handler serving the summarization form.
func NewHandler(deps *Dependencies) http.Handler {
	h := &handler{deps: deps}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.form)
	mux.HandleFunc("POST /summarize", h.summarize)
	return mux
}

type handler struct {
	deps *Dependencies
}

// pageView is the template data for the form page.
type pageView struct {
	URL     string
	Error   string
	Done    bool
	Summary string
	Images  []string
	Text    string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Content Summarizer</title>
</head>
<body>
<h1>Content Summarizer</h1>
<p>Enter a URL to scrape for text and images, and to generate a summary with Gemini.</p>
<form method="post" action="/summarize">
<input type="text" name="url" value="{{.URL}}" size="80" placeholder="https://example.com/">
<button type="submit">Analyze</button>
</form>
{{if .Error}}
<p class="error">{{.Error}}</p>
{{end}}
{{if .Done}}
<h2>Summary</h2>
<p>{{.Summary}}</p>
<h2>Extracted Images</h2>
{{if .Images}}
{{range .Images}}<img src="{{.}}" width="150">
{{end}}
{{else}}
<p>No images found.</p>
{{end}}
<h2>Extracted Text</h2>
<p>{{.Text}}</p>
{{end}}
</body>
</html>
`))

func (h *handler) form(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageView{})
}

func (h *handler) summarize(w http.ResponseWriter, r *http.Request) {
	deps := h.deps
	logger := deps.Logger.With("request_id", uuid.NewString())

	url := strings.TrimSpace(r.FormValue("url"))
	if url == "" {
		h.render(w, pageView{Error: "Please enter a valid URL."})
		return
	}
	logger = logger.With("url", url)

	content, err := deps.Extractor.Extract(r.Context(), url)
	if err != nil {
		logger.Error("extraction failed", "err", err)
		h.render(w, pageView{URL: url, Error: "Error: " + pagesum.ErrorMessage(err)})
		return
	}

	summary, err := deps.Summarizer.Summarize(r.Context(), content.Text, content.Images)
	if err != nil {
		// Shown in place of the summary; extracted content still renders.
		logger.Error("summarization failed", "err", err)
		summary = pagesum.ErrorMessage(err)
	}

	h.render(w, pageView{
		URL:     url,
		Done:    true,
		Summary: summary,
		Images:  content.Images,
		Text:    content.Text,
	})
}

func (h *handler) render(w http.ResponseWriter, view pageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, view); err != nil {
		h.deps.Logger.Error("template render failed", "err", err)
	}
}
