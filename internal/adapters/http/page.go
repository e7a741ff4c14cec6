package http

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"
)

//go:embed page.html.tmpl
var pageTemplate string

var parsePage = sync.OnceValues(func() (*template.Template, error) {
	return template.New("page").Parse(pageTemplate)
})

// getPage serves the embedded demo page with the configured palette baked
// in. The page builds its tabs and forms from /api/catalog at load time.
func (s *Server) getPage(w http.ResponseWriter, _ *http.Request) {
	tmpl, err := parsePage()
	if err != nil {
		s.logger.Error("page template broken", "err", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, s.theme); err != nil {
		s.logger.Error("page render failed", "err", err)
	}
}
