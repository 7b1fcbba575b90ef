package registry

import (
	"fmt"
)

// Registry is the fixed, ordered set of sections shown by the viewer.
// It is immutable after New and safe for concurrent reads.
type Registry struct {
	descs  []Descriptor
	byID   map[SectionID]int
	bySlug map[string]int
}

// New builds a registry from descriptors in navigation order.
func New(descs ...Descriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("registry requires at least one section")
	}

	r := &Registry{
		descs:  make([]Descriptor, len(descs)),
		byID:   make(map[SectionID]int, len(descs)),
		bySlug: make(map[string]int, len(descs)),
	}
	copy(r.descs, descs)

	for i, d := range r.descs {
		if d.ID == "" {
			return nil, fmt.Errorf("section %d has an empty identifier", i)
		}
		if d.Render == nil {
			return nil, fmt.Errorf("section %q has no renderer", d.ID)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate section identifier %q", d.ID)
		}
		slug := d.Slug()
		if slug == "" {
			return nil, fmt.Errorf("section %q has no usable slug", d.ID)
		}
		if prev, dup := r.bySlug[slug]; dup {
			return nil, fmt.Errorf("sections %q and %q share slug %q", r.descs[prev].ID, d.ID, slug)
		}
		r.byID[d.ID] = i
		r.bySlug[slug] = i
	}

	return r, nil
}

// MustNew is New for package-level tables known to be valid.
func MustNew(descs ...Descriptor) *Registry {
	r, err := New(descs...)
	if err != nil {
		panic("registry: " + err.Error())
	}
	return r
}

// List returns the descriptors in navigation order. The slice is a copy.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}

// Len returns the number of sections.
func (r *Registry) Len() int { return len(r.descs) }

// First returns the descriptor shown by default.
func (r *Registry) First() Descriptor { return r.descs[0] }

// Contains reports whether id names a registered section.
func (r *Registry) Contains(id SectionID) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id SectionID) (Descriptor, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.descs[i], true
}

// BySlug returns the descriptor whose identifier slugs to slug.
func (r *Registry) BySlug(slug string) (Descriptor, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Descriptor{}, false
	}
	return r.descs[i], true
}

// Render returns the content block for id. Callers must only pass registered
// identifiers; an unknown id is a programming error and panics.
func (r *Registry) Render(id SectionID) Block {
	i, ok := r.byID[id]
	if !ok {
		panic(fmt.Sprintf("registry: render of unknown section %q", id))
	}
	return r.descs[i].Render()
}
