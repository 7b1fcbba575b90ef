package viewer

import (
	"errors"
	"fmt"

	"github.com/storyflow/techguide/internal/icons"
	"github.com/storyflow/techguide/internal/registry"
)

// ErrUnknownSection is returned when a selection names no registered section.
var ErrUnknownSection = errors.New("unknown section")

// NavEntry is one item of the navigation list.
type NavEntry struct {
	ID     registry.SectionID
	Slug   string
	Label  string
	Icon   icons.Glyph
	Active bool
}

// Shell owns the selection state of one viewer session. It is not safe for
// concurrent use; each session (TUI program, HTTP request) holds its own.
type Shell struct {
	reg    *registry.Registry
	active registry.SectionID
}

// New returns a shell showing the first section of reg.
func New(reg *registry.Registry) *Shell {
	return &Shell{
		reg:    reg,
		active: reg.First().ID,
	}
}

// Registry returns the registry the shell navigates.
func (s *Shell) Registry() *registry.Registry { return s.reg }

// Active returns the selected section identifier.
func (s *Shell) Active() registry.SectionID { return s.active }

// Select makes id the active section.
func (s *Shell) Select(id registry.SectionID) error {
	if !s.reg.Contains(id) {
		return fmt.Errorf("select %q: %w", id, ErrUnknownSection)
	}
	s.active = id
	return nil
}

// SelectSlug selects the section whose identifier slugs to slug.
func (s *Shell) SelectSlug(slug string) error {
	d, ok := s.reg.BySlug(slug)
	if !ok {
		return fmt.Errorf("select %q: %w", slug, ErrUnknownSection)
	}
	s.active = d.ID
	return nil
}

// Current returns the content of the active section. If the selection does
// not match any section the first section is shown instead.
func (s *Shell) Current() registry.Block {
	if !s.reg.Contains(s.active) {
		return s.reg.Render(s.reg.First().ID)
	}
	return s.reg.Render(s.active)
}

// CurrentDescriptor returns the descriptor of the section Current renders.
func (s *Shell) CurrentDescriptor() registry.Descriptor {
	if d, ok := s.reg.Lookup(s.active); ok {
		return d
	}
	return s.reg.First()
}

// Nav returns one entry per section in registry order.
func (s *Shell) Nav() []NavEntry {
	shown := s.CurrentDescriptor().ID
	descs := s.reg.List()
	nav := make([]NavEntry, len(descs))
	for i, d := range descs {
		nav[i] = NavEntry{
			ID:     d.ID,
			Slug:   d.Slug(),
			Label:  d.Label,
			Icon:   d.Icon,
			Active: d.ID == shown,
		}
	}
	return nav
}

// Index returns the position of the shown section in navigation order.
func (s *Shell) Index() int {
	shown := s.CurrentDescriptor().ID
	for i, d := range s.reg.List() {
		if d.ID == shown {
			return i
		}
	}
	return 0
}

// SelectIndex selects the i-th section in navigation order.
func (s *Shell) SelectIndex(i int) error {
	descs := s.reg.List()
	if i < 0 || i >= len(descs) {
		return fmt.Errorf("select index %d: %w", i, ErrUnknownSection)
	}
	s.active = descs[i].ID
	return nil
}

// Next advances to the following section, wrapping to the first.
func (s *Shell) Next() {
	n := s.reg.Len()
	_ = s.SelectIndex((s.Index() + 1) % n)
}

// Prev moves to the preceding section, wrapping to the last.
func (s *Shell) Prev() {
	n := s.reg.Len()
	_ = s.SelectIndex((s.Index() - 1 + n) % n)
}
