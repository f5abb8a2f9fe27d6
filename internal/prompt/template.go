package prompt

import (
	"fmt"
	"os"
	"strings"
)

// Placeholder is the single token substituted with the reduced diff text.
const Placeholder = "${diff_content}"

const defaultTemplate = `You are a code reviewer. The text below contains the lines added in a fork
of a repository relative to its upstream project. Produce a concise Markdown
summary of what the fork changes: group related additions, describe the
intent of each group in one or two sentences, and call out notable new
dependencies, configuration or API surface. If there are no added lines,
state that the fork introduces no changes.

Added lines:
` + Placeholder + `
`

// Template is a prompt document with one recognized placeholder.
type Template struct {
	text string
}

// Load reads a template from path. A missing or unreadable file is an error
// naming the path.
func Load(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read prompt template %s: %w", path, err)
	}
	return Template{text: string(data)}, nil
}

// Default returns the built-in summary template.
func Default() Template {
	return Template{text: defaultTemplate}
}

// HasPlaceholder reports whether the template contains the placeholder
// token. When it does not, Render returns the template text unmodified.
func (t Template) HasPlaceholder() bool {
	return strings.Contains(t.text, Placeholder)
}

// Render substitutes the placeholder with diffText. Substitution is a
// literal text replacement: no escaping, no recursive expansion.
func (t Template) Render(diffText string) string {
	return strings.ReplaceAll(t.text, Placeholder, diffText)
}

// Text returns the raw template text.
func (t Template) Text() string {
	return t.text
}
