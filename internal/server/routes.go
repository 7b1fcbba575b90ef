package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storyflow/techguide/internal/icons"
	"github.com/storyflow/techguide/internal/registry"
	"github.com/storyflow/techguide/internal/site"
	"github.com/storyflow/techguide/internal/viewer"
)

// sectionSummary is one element of GET /api/sections.
type sectionSummary struct {
	ID    registry.SectionID `json:"id"`
	Slug  string             `json:"slug"`
	Label string             `json:"label"`
	Icon  icons.Glyph        `json:"icon"`
}

// sectionDetail is the body of GET /api/sections/{slug}.
type sectionDetail struct {
	ID       registry.SectionID `json:"id"`
	Slug     string             `json:"slug"`
	Label    string             `json:"label"`
	Title    string             `json:"title"`
	Markdown string             `json:"markdown"`
	HTML     string             `json:"html"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, viewer.New(s.reg))
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	shell := viewer.New(s.reg)
	if err := shell.SelectSlug(chi.URLParam(r, "slug")); err != nil {
		http.Error(w, "section not found", http.StatusNotFound)
		return
	}
	s.writePage(w, shell)
}

// writePage renders into a buffer first so a template failure still yields
// a clean 500.
func (s *Server) writePage(w http.ResponseWriter, shell *viewer.Shell) {
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, shell, site.ServerLinks); err != nil {
		s.log.Error("rendering page", "section", shell.Active(), "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	descs := s.reg.List()
	out := make([]sectionSummary, len(descs))
	for i, d := range descs {
		out[i] = sectionSummary{ID: d.ID, Slug: d.Slug(), Label: d.Label, Icon: d.Icon}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	d, ok := s.reg.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "section not found"})
		return
	}

	block := s.reg.Render(d.ID)
	html, err := s.renderer.HTML(block.Markdown)
	if err != nil {
		s.log.Error("rendering section", "section", d.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "rendering failed"})
		return
	}

	writeJSON(w, http.StatusOK, sectionDetail{
		ID:       d.ID,
		Slug:     d.Slug(),
		Label:    d.Label,
		Title:    block.Title,
		Markdown: block.Markdown,
		HTML:     string(html),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}
	results := site.Search(s.search, q)
	if results == nil {
		results = []site.SearchEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"results": results,
	})
}

func (s *Server) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.search)
}

func (s *Server) handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
