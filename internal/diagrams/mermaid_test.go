package diagrams

import (
	"strings"
	"testing"
)

func TestFlowchart(t *testing.T) {
	nodes := []Node{
		{Name: "Frontend"},
		{Name: "Backend API"},
		{Name: "Gemini", Highlight: true},
	}
	edges := []Edge{
		{From: "Frontend", To: "Backend API"},
		{From: "Backend API", To: "Gemini"},
	}

	got := Flowchart("LR", nodes, edges)

	for _, want := range []string{
		"flowchart LR\n",
		`Frontend["Frontend"]`,
		`Backend_API["Backend API"]`,
		"Frontend --> Backend_API",
		"Backend_API --> Gemini",
		"class Gemini accent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("flowchart missing %q:\n%s", want, got)
		}
	}
}

func TestFlowchartWithoutHighlight(t *testing.T) {
	got := Flowchart("TD", []Node{{Name: "A"}}, nil)
	if strings.Contains(got, "classDef") {
		t.Errorf("no highlighted nodes, but classDef emitted:\n%s", got)
	}
}

func TestChain(t *testing.T) {
	if Chain([]Node{{Name: "solo"}}) != nil {
		t.Error("a single node has no edges")
	}
	edges := Chain([]Node{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if edges[1].From != "b" || edges[1].To != "c" {
		t.Errorf("second edge = %+v", edges[1])
	}
}

func TestFenced(t *testing.T) {
	got := Fenced("flowchart TD\n    A\n\n")
	want := "```mermaid\nflowchart TD\n    A\n```\n"
	if got != want {
		t.Errorf("Fenced = %q, want %q", got, want)
	}
}

func TestSanitizeID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Image & Audio Generation (Worker -> Gemini)", "Image___Audio_Generation__Worker____Gemini_"},
		{"src/main.go", "src_main_go"},
		{"simple", "simple"},
	}
	for _, tt := range tests {
		if got := sanitizeID(tt.in); got != tt.want {
			t.Errorf("sanitizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeMermaid(t *testing.T) {
	got := escapeMermaid(`Worker -> "Gemini" (Veo)`)
	want := "Worker -#gt; #quot;Gemini#quot; #lpar;Veo#rpar;"
	if got != want {
		t.Errorf("escapeMermaid = %q, want %q", got, want)
	}
}
