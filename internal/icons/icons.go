// Package icons is the fixed glyph set used by section navigation.
//
// A Glyph carries no behaviour; each presentation surface resolves it at
// render time, HTML pages to inline SVG and the terminal UI to a symbol.
// SVG paths follow the 24x24 outline grid used by Heroicons (MIT).
package icons

import (
	"fmt"
)

// Glyph is a symbolic icon reference.
type Glyph int

const (
	None Glyph = iota
	DocumentText
	Flag
	Sitemap
	Wand
	Database
	Dollar
	Shield
	Code
)

type glyphDef struct {
	name   string
	symbol string
	path   string
}

var glyphs = map[Glyph]glyphDef{
	DocumentText: {
		name:   "document-text",
		symbol: "▤",
		path:   "M19.5 14.25v-2.625a3.375 3.375 0 00-3.375-3.375h-1.5A1.125 1.125 0 0113.5 7.125v-1.5a3.375 3.375 0 00-3.375-3.375H8.25m0 12.75h7.5m-7.5 3H12M10.5 2.25H5.625c-.621 0-1.125.504-1.125 1.125v17.25c0 .621.504 1.125 1.125 1.125h12.75c.621 0 1.125-.504 1.125-1.125V11.25a9 9 0 00-9-9z",
	},
	Flag: {
		name:   "flag",
		symbol: "⚑",
		path:   "M3 3v1.5M3 21v-6m0 0l2.77-.693a9 9 0 016.208.682l.108.054a9 9 0 006.086.71l3.114-.732a48.524 48.524 0 01-.005-10.499l-3.11.732a9 9 0 01-6.085-.711l-.108-.054a9 9 0 00-6.208-.682L3 4.5M3 15V4.5",
	},
	Sitemap: {
		name:   "sitemap",
		symbol: "⋔",
		path:   "M9 3h6v4.5H9zM12 7.5V12m-7.5 4.5V12h15v4.5M2.25 16.5h4.5V21h-4.5zm7.5 0h4.5V21h-4.5zm7.5 0h4.5V21h-4.5z",
	},
	Wand: {
		name:   "wand",
		symbol: "✦",
		path:   "M9.813 15.904L9 18.75l-.813-2.846a4.5 4.5 0 00-3.09-3.09L2.25 12l2.846-.813a4.5 4.5 0 003.09-3.09L9 5.25l.813 2.846a4.5 4.5 0 003.09 3.09L15.75 12l-2.846.813a4.5 4.5 0 00-3.09 3.09zM18.259 8.715L18 9.75l-.259-1.035a3.375 3.375 0 00-2.455-2.456L14.25 6l1.036-.259a3.375 3.375 0 002.455-2.456L18 2.25l.259 1.035a3.375 3.375 0 002.456 2.456L21.75 6l-1.035.259a3.375 3.375 0 00-2.456 2.456z",
	},
	Database: {
		name:   "database",
		symbol: "◎",
		path:   "M20.25 6.375c0 2.278-3.694 4.125-8.25 4.125S3.75 8.653 3.75 6.375m16.5 0c0-2.278-3.694-4.125-8.25-4.125S3.75 4.097 3.75 6.375m16.5 0v11.25c0 2.278-3.694 4.125-8.25 4.125s-8.25-1.847-8.25-4.125V6.375m16.5 0v3.75m-16.5-3.75v3.75m16.5 0v3.75C20.25 16.153 16.556 18 12 18s-8.25-1.847-8.25-4.125v-3.75m16.5 0c0 2.278-3.694 4.125-8.25 4.125s-8.25-1.847-8.25-4.125",
	},
	Dollar: {
		name:   "dollar",
		symbol: "$",
		path:   "M12 6v12m-3-2.818l.879.659c1.171.879 3.07.879 4.242 0 1.172-.879 1.172-2.303 0-3.182C13.536 12.219 12.768 12 12 12c-.725 0-1.45-.22-2.003-.659-1.106-.879-1.106-2.303 0-3.182s2.9-.879 4.006 0l.415.33M21 12a9 9 0 11-18 0 9 9 0 0118 0z",
	},
	Shield: {
		name:   "shield",
		symbol: "◈",
		path:   "M9 12.75L11.25 15 15 9.75m-3-7.036A11.959 11.959 0 013.598 6 11.99 11.99 0 003 9.749c0 5.592 3.824 10.29 9 11.623 5.176-1.332 9-6.03 9-11.622 0-1.31-.21-2.571-.598-3.751h-.152c-3.196 0-6.1-1.248-8.25-3.285z",
	},
	Code: {
		name:   "code",
		symbol: "⌘",
		path:   "M17.25 6.75L22.5 12l-5.25 5.25m-10.5 0L1.5 12l5.25-5.25m7.5-3l-4.5 16.5",
	},
}

// All returns every defined glyph in declaration order.
func All() []Glyph {
	return []Glyph{DocumentText, Flag, Sitemap, Wand, Database, Dollar, Shield, Code}
}

// Valid reports whether g is a defined glyph.
func (g Glyph) Valid() bool {
	_, ok := glyphs[g]
	return ok
}

// String returns the glyph's kebab-case name, or "none".
func (g Glyph) String() string {
	if def, ok := glyphs[g]; ok {
		return def.name
	}
	return "none"
}

// MarshalText encodes the glyph by name for JSON APIs.
func (g Glyph) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Parse resolves a glyph by name.
func Parse(name string) (Glyph, error) {
	for g, def := range glyphs {
		if def.name == name {
			return g, nil
		}
	}
	return None, fmt.Errorf("unknown icon %q", name)
}

// Symbol returns a single-cell terminal symbol; undefined glyphs render as a bullet.
func (g Glyph) Symbol() string {
	if def, ok := glyphs[g]; ok {
		return def.symbol
	}
	return "•"
}

// SVG returns an inline outline SVG with the given CSS class. Undefined
// glyphs yield an empty string.
func (g Glyph) SVG(class string) string {
	def, ok := glyphs[g]
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<svg class="%s" xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" d="%s"/></svg>`, class, def.path)
}
