package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderSubstitutesPlaceholder(t *testing.T) {
	tmpl := Template{text: "DIFF:\n${diff_content}\nEND"}
	if got := tmpl.Render("+x"); got != "DIFF:\n+x\nEND" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestRenderEmptyDiffKeepsTemplateText(t *testing.T) {
	tmpl := Template{text: "Summarize this:\n${diff_content}\n"}
	got := tmpl.Render("")
	if got != "Summarize this:\n\n" {
		t.Fatalf("unexpected render %q", got)
	}
	if got == "" {
		t.Fatalf("rendered prompt must not be empty for an empty diff")
	}
}

func TestRenderMissingPlaceholderReturnsTemplateUnmodified(t *testing.T) {
	tmpl := Template{text: "no placeholder here"}
	if tmpl.HasPlaceholder() {
		t.Fatalf("expected no placeholder")
	}
	if got := tmpl.Render("+lots\n+of\n+diff"); got != "no placeholder here" {
		t.Fatalf("template was modified: %q", got)
	}
}

func TestRenderIsLiteralNotRecursive(t *testing.T) {
	tmpl := Template{text: "A ${diff_content} B"}
	got := tmpl.Render("+inner ${diff_content} line")
	if got != "A +inner ${diff_content} line B" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestLoadMissingFileNamesPath(t *testing.T) {
	_, err := Load("no/such/template.txt")
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
	if !strings.Contains(err.Error(), "no/such/template.txt") {
		t.Fatalf("error does not name the path: %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("T: ${diff_content}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tmpl, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !tmpl.HasPlaceholder() {
		t.Fatalf("expected placeholder in loaded template")
	}
	if got := tmpl.Render("+x"); got != "T: +x" {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestDefaultTemplateHasPlaceholder(t *testing.T) {
	if !Default().HasPlaceholder() {
		t.Fatalf("default template must contain the placeholder")
	}
}
