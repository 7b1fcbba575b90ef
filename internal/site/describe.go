package site

import (
	"strings"

	"golang.org/x/net/html"
)

const maxDescription = 160

// Description returns the text of the first paragraph of rendered content,
// cut to a meta-description length. Empty when there is no paragraph.
func Description(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}
	p := findFirst(doc, "p")
	if p == nil {
		return ""
	}
	text := strings.Join(strings.Fields(textContent(p)), " ")
	if len(text) <= maxDescription {
		return text
	}
	cut := strings.LastIndex(text[:maxDescription], " ")
	if cut <= 0 {
		cut = maxDescription
	}
	return text[:cut] + "..."
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
