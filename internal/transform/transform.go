// Package transform performs the miracle: rewriting secular source code into
// DivinePL. The rewrite is a fixed, ordered replacement table, not a parse.
package transform

import (
	"strings"

	"golang.org/x/net/html"
)

type replacement struct {
	secular string
	divine  string
}

// Applied in order; earlier replacements can shadow later ones, which is the
// historical behavior and kept as-is.
var replacements = []replacement{
	{"function ", "bless function "},
	{"class ", "covenant class "},
	{"async function", "miracle async function"},
	{"throw new Error", "confess new Sin"},
	{"try {", "attempt_salvation {"},
	{"catch (", "forgive ("},
	{"console.log", "revelation"},
	{"for (", "preach ("},
	{"return", "ascend with"},
}

const header = `// Transformed by the Divine Miracle of DivinePL
// This code has been sanctified from its secular origins

🙏 BEGIN PRAYER 🙏
Lord, bless this transformed code
Guide it to run with divine efficiency
Protect it from bugs and runtime errors
🙏 END PRAYER 🙏

`

const footer = `

// End of sanctified code
// "In the beginning was the code, and the code was with God." - DivinePL 1:1
`

// Transformer sanctifies secular code
type Transformer struct{}

// NewTransformer creates a new transformer
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Sanctify applies the replacement table and wraps the result in the divine
// header and footer
func (t *Transformer) Sanctify(content string) string {
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r.secular, r.divine)
	}
	return header + content + footer
}

// ExtractScripts pulls the text of every <script> element out of an HTML
// document, so embedded secular code can be sanctified on its own. Script
// bodies are joined in document order.
func ExtractScripts(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var scripts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			var buf strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					buf.WriteString(c.Data)
				}
			}
			if text := strings.TrimSpace(buf.String()); text != "" {
				scripts = append(scripts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.Join(scripts, "\n\n"), nil
}

// IsHTMLPath reports whether a path should go through script extraction first
func IsHTMLPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
