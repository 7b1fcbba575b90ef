package site

import (
	"strings"
	"testing"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"first paragraph", "<h2>PRD</h2><p>The tool turns <strong>scripts</strong> into videos.</p><p>Second.</p>", "The tool turns scripts into videos."},
		{"no paragraph", "<h2>Only a heading</h2><pre><code>x</code></pre>", ""},
		{"collapses whitespace", "<p>one\n   two\tthree</p>", "one two three"},
		{"entities decoded", "<p>Worker -&gt; Gemini &amp; Veo</p>", "Worker -> Gemini & Veo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Description(tt.content); got != tt.want {
				t.Errorf("Description = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptionTruncates(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 60) + "</p>"
	got := Description(long)
	if len(got) > maxDescription+3 {
		t.Errorf("description too long: %d chars", len(got))
	}
	if !strings.HasSuffix(got, "word...") {
		t.Errorf("description should end on a whole word: %q", got)
	}
}
