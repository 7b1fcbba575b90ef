package viewer

import (
	"errors"
	"testing"

	"github.com/storyflow/techguide/internal/icons"
	"github.com/storyflow/techguide/internal/registry"
)

func block(title string) registry.Renderer {
	return func() registry.Block {
		return registry.Block{Title: title, Markdown: "## " + title + "\n\nfixed body"}
	}
}

// twoSections is the PRD/Roadmap registry used throughout these tests.
func twoSections(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(
		registry.Descriptor{ID: "Product Requirements", Label: "PRD", Icon: icons.DocumentText, Render: block("Product Requirements")},
		registry.Descriptor{ID: "Roadmap", Label: "Roadmap", Icon: icons.Flag, Render: block("Roadmap")},
	)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

func threeSections(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(
		registry.Descriptor{ID: "A", Label: "Alpha", Render: block("A")},
		registry.Descriptor{ID: "B", Label: "Beta", Render: block("B")},
		registry.Descriptor{ID: "C", Label: "Gamma", Render: block("C")},
	)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

func TestNewShowsFirstSection(t *testing.T) {
	reg := twoSections(t)
	s := New(reg)

	if s.Active() != "Product Requirements" {
		t.Errorf("Active() = %q, want Product Requirements", s.Active())
	}
	if s.Current() != reg.Render(reg.List()[0].ID) {
		t.Error("Current() of a new shell should render the first section")
	}
}

func TestSelectThenCurrent(t *testing.T) {
	reg := threeSections(t)
	s := New(reg)
	for _, d := range reg.List() {
		if err := s.Select(d.ID); err != nil {
			t.Fatalf("Select(%q): %v", d.ID, err)
		}
		if got := s.Current(); got != reg.Render(d.ID) {
			t.Errorf("after Select(%q), Current() = %+v", d.ID, got)
		}
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	reg := threeSections(t)
	s := New(reg)

	_ = s.Select("B")
	once := s.Current()
	_ = s.Select("B")
	if s.Current() != once {
		t.Error("selecting the same section twice changed the content")
	}
}

func TestRoundTrip(t *testing.T) {
	reg := threeSections(t)
	s := New(reg)

	_ = s.Select("A")
	first := s.Current()
	_ = s.Select("B")
	_ = s.Select("A")
	if s.Current() != first {
		t.Error("A -> B -> A should show the same content as the first visit to A")
	}
}

func TestSelectUnknown(t *testing.T) {
	s := New(twoSections(t))
	_ = s.Select("Roadmap")

	err := s.Select("Pricing")
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("Select(Pricing) error = %v, want ErrUnknownSection", err)
	}
	if s.Active() != "Roadmap" {
		t.Errorf("failed Select changed the selection to %q", s.Active())
	}
}

func TestCurrentFallsBackToFirst(t *testing.T) {
	reg := twoSections(t)
	s := New(reg)
	s.active = "Deleted Section"

	if s.Current() != reg.Render("Product Requirements") {
		t.Error("Current() should fall back to the first section")
	}
	nav := s.Nav()
	if !nav[0].Active || nav[1].Active {
		t.Errorf("nav should mark the fallback section active: %+v", nav)
	}
}

func TestNavMatchesRegistry(t *testing.T) {
	reg := threeSections(t)
	s := New(reg)
	_ = s.Select("C")

	nav := s.Nav()
	descs := reg.List()
	if len(nav) != len(descs) {
		t.Fatalf("nav has %d entries, registry has %d", len(nav), len(descs))
	}
	for i := range nav {
		if nav[i].ID != descs[i].ID || nav[i].Label != descs[i].Label {
			t.Errorf("nav[%d] = %+v, want %q/%q", i, nav[i], descs[i].ID, descs[i].Label)
		}
		if nav[i].Active != (descs[i].ID == "C") {
			t.Errorf("nav[%d].Active = %v", i, nav[i].Active)
		}
	}
}

func TestPRDRoadmapScenario(t *testing.T) {
	reg := twoSections(t)
	s := New(reg)

	if s.Active() != "Product Requirements" {
		t.Fatalf("initial selection = %q", s.Active())
	}
	if err := s.Select("Roadmap"); err != nil {
		t.Fatalf("Select(Roadmap): %v", err)
	}
	if s.Current() != reg.Render("Roadmap") {
		t.Error("Current() should be the Roadmap block")
	}

	nav := s.Nav()
	if len(nav) != 2 || nav[0].Label != "PRD" || nav[1].Label != "Roadmap" {
		t.Errorf("nav labels = %+v, want [PRD Roadmap]", nav)
	}
}

func TestSelectSlug(t *testing.T) {
	s := New(twoSections(t))
	if err := s.SelectSlug("roadmap"); err != nil {
		t.Fatalf("SelectSlug(roadmap): %v", err)
	}
	if s.Active() != "Roadmap" {
		t.Errorf("Active() = %q", s.Active())
	}
	if err := s.SelectSlug("pricing"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("SelectSlug(pricing) error = %v", err)
	}
}

func TestNextPrevWrap(t *testing.T) {
	s := New(threeSections(t))

	s.Prev()
	if s.Active() != "C" {
		t.Errorf("Prev from first = %q, want C", s.Active())
	}
	s.Next()
	if s.Active() != "A" {
		t.Errorf("Next from last = %q, want A", s.Active())
	}
	s.Next()
	if s.Active() != "B" || s.Index() != 1 {
		t.Errorf("Next = %q (index %d), want B (1)", s.Active(), s.Index())
	}
}

func TestSelectIndexBounds(t *testing.T) {
	s := New(threeSections(t))
	for _, i := range []int{-1, 3} {
		if err := s.SelectIndex(i); !errors.Is(err, ErrUnknownSection) {
			t.Errorf("SelectIndex(%d) error = %v", i, err)
		}
	}
	if err := s.SelectIndex(2); err != nil || s.Active() != "C" {
		t.Errorf("SelectIndex(2) = %v, active %q", err, s.Active())
	}
}
