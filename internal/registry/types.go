package registry

import (
	"strings"

	"github.com/storyflow/techguide/internal/icons"
)

// SectionID identifies one navigable section of the guide.
type SectionID string

// Slug returns the URL-safe form of the identifier
// ("Product Requirements" -> "product-requirements").
func (id SectionID) Slug() string {
	words := strings.FieldsFunc(strings.ToLower(string(id)), func(c rune) bool {
		return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
	})
	return strings.Join(words, "-")
}

// Block is the static content produced by a section renderer.
// Markdown is converted to HTML or terminal output by the presentation layer.
type Block struct {
	Title    string
	Markdown string
}

// Renderer produces the content block for one section. Renderers are pure:
// every call returns the same block.
type Renderer func() Block

// Descriptor is one entry of the registry.
type Descriptor struct {
	ID     SectionID
	Label  string
	Icon   icons.Glyph
	Render Renderer
}

// Slug is shorthand for d.ID.Slug().
func (d Descriptor) Slug() string { return d.ID.Slug() }
