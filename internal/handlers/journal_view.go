package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"neuronova/internal/contextutil"
	"neuronova/internal/store"
)

// JournalViewHandler renders the journal as an HTML page, treating each
// entry's text as markdown.
type JournalViewHandler struct {
	store    *store.Store
	parser   goldmark.Markdown
	template *template.Template
}

// journalPageData holds template data for the rendered journal page.
type journalPageData struct {
	Entries []journalPageEntry
}

type journalPageEntry struct {
	Time    string
	Content template.HTML
}

// NewJournalViewHandler creates a new handler for the journal page.
func NewJournalViewHandler(s *store.Store) *JournalViewHandler {
	tmpl := template.Must(template.New("journal").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Journal</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 720px;
      line-height: 1.7;
      background: #050b18;
      color: #e4ecff;
    }
    h1 {
      color: #fff;
    }
    article {
      background: rgba(12, 19, 35, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 1.5rem 2rem;
      margin-bottom: 1.5rem;
    }
    time {
      color: #94a3b8;
      font-size: 0.85rem;
    }
  </style>
</head>
<body>
  <h1>Journal</h1>
  {{if not .Entries}}<p>No entries yet.</p>{{end}}
  {{range .Entries}}
  <article>
    <time>{{.Time}}</time>
    <div>{{.Content}}</div>
  </article>
  {{end}}
</body>
</html>`))

	return &JournalViewHandler{
		store: s,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		template: tmpl,
	}
}

// Page handles GET /journal/view.
func (h *JournalViewHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	doc, err := h.store.Load()
	if err != nil {
		logger.ErrorContext(ctx, "failed to load journals", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load journals")
		return
	}

	data := journalPageData{}
	for _, entry := range doc.Journals {
		text := entryText(entry)
		if text == "" {
			continue
		}

		var rendered bytes.Buffer
		if err := h.parser.Convert([]byte(text), &rendered); err != nil {
			logger.WarnContext(ctx, "failed to render journal entry", "error", err)
			continue
		}

		when, _ := entry["time"].(string)
		data.Entries = append(data.Entries, journalPageEntry{
			Time:    when,
			Content: template.HTML(rendered.String()),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := h.template.Execute(w, data); err != nil {
		logger.ErrorContext(ctx, "failed to render journal page", "error", err)
	}
}

// entryText picks the first conventional text field from a free-form
// journal entry.
func entryText(entry store.JournalEntry) string {
	for _, key := range []string{"text", "entry", "content", "note"} {
		if s, ok := entry[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
