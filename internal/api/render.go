package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// writeDocument sends a converted document in the format selected by the
// "format" query parameter: json (default), md, or html. The HTML form is
// a goldmark-rendered preview of the Markdown.
func (s *Server) writeDocument(w http.ResponseWriter, r *http.Request, doc, title string) {
	switch r.URL.Query().Get("format") {
	case "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(doc))
	case "html":
		var buf bytes.Buffer
		if err := htmlRenderer.Convert([]byte(doc), &buf); err != nil {
			jsonError(w, "render html: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"title":    title,
			"markdown": doc,
		})
	}
}
