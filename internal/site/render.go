package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/storyflow/techguide/internal/viewer"
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "dracula"

// ValidHighlightStyle reports whether name is a registered chroma style.
func ValidHighlightStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// Links maps the page's outgoing references onto a URL scheme. The HTTP
// server and the static export use different ones.
type Links struct {
	Section    func(slug string) string
	Home       string
	Stylesheet string
	Script     string
	Search     string
}

// ServerLinks are absolute paths served by the chi router.
var ServerLinks = Links{
	Section:    func(slug string) string { return "/sections/" + slug },
	Home:       "/",
	Stylesheet: "/style.css",
	Script:     "/script.js",
	Search:     "/search-index.json",
}

// StaticLinks are relative file names written by the generator.
var StaticLinks = Links{
	Section:    func(slug string) string { return slug + ".html" },
	Home:       "index.html",
	Stylesheet: "style.css",
	Script:     "script.js",
	Search:     "search-index.json",
}

// Renderer converts section markdown to HTML and lays sections out in the
// page shell. It is safe for concurrent use once built.
type Renderer struct {
	Title    string
	Subtitle string

	md   goldmark.Markdown
	page *template.Template
}

// NewRenderer builds the goldmark converter and parses the page template.
// An empty style selects DefaultHighlightStyle.
func NewRenderer(title, subtitle, highlightStyle string) (*Renderer, error) {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}
	if !ValidHighlightStyle(highlightStyle) {
		return nil, fmt.Errorf("unknown highlight style %q", highlightStyle)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Renderer{Title: title, Subtitle: subtitle, md: md, page: tmpl}, nil
}

// HTML converts markdown to an HTML fragment. Raw HTML in the source is
// omitted by goldmark's default renderer.
func (r *Renderer) HTML(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

type navItem struct {
	Href   string
	Label  string
	Icon   template.HTML
	Active bool
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title        string
	Subtitle     string
	SectionTitle string
	Description  string
	Nav          []navItem
	Content      template.HTML
	Links        Links
	// Diagrams loads mermaid.js for ```mermaid blocks.
	Diagrams bool
}

// Page writes the full HTML document for the shell's current section.
func (r *Renderer) Page(w io.Writer, shell *viewer.Shell, links Links) error {
	block := shell.Current()
	content, err := r.HTML(block.Markdown)
	if err != nil {
		return err
	}

	entries := shell.Nav()
	nav := make([]navItem, len(entries))
	for i, e := range entries {
		nav[i] = navItem{
			Href:   links.Section(e.Slug),
			Label:  e.Label,
			Icon:   template.HTML(e.Icon.SVG("nav-icon")),
			Active: e.Active,
		}
	}

	data := pageData{
		Title:        r.Title,
		Subtitle:     r.Subtitle,
		SectionTitle: block.Title,
		Description:  Description(string(content)),
		Nav:          nav,
		Content:      content,
		Links:        links,
		Diagrams:     strings.Contains(block.Markdown, "```mermaid"),
	}
	if err := r.page.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// Stylesheet returns the CSS shared by every page.
func Stylesheet() string { return cssContent }

// Script returns the client-side search script.
func Script() string { return jsContent }
