package diff

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/niklub/github-scraper/internal/logging"
)

const twoFileDiff = `diff --git a/file1.txt b/file1.txt
index 123..456 100644
--- a/file1.txt
+++ b/file1.txt
@@ -1 +1 @@
-foo
+bar

diff --git a/file2.txt b/file2.txt
index 789..abc 100644
--- a/file2.txt
+++ b/file2.txt
@@ -1 +1 @@
-baz
+qux
`

func TestSplitFiles(t *testing.T) {
	files := SplitFiles(twoFileDiff, logging.New(logr.Discard()))
	if len(files) != 2 {
		t.Fatalf("expected 2 file sections, got %d", len(files))
	}
	if files[0].Path != "file1.txt" {
		t.Fatalf("unexpected file path %s", files[0].Path)
	}
	if files[1].Path != "file2.txt" {
		t.Fatalf("unexpected file path %s", files[1].Path)
	}
	if !strings.Contains(files[1].Body, "+qux") {
		t.Fatalf("section body lost content: %q", files[1].Body)
	}
}

func TestSplitFilesEmpty(t *testing.T) {
	if files := SplitFiles("   \n", logging.New(logr.Discard())); files != nil {
		t.Fatalf("expected nil for blank diff, got %v", files)
	}
}

func TestJoinFilesRoundtrip(t *testing.T) {
	files := SplitFiles(twoFileDiff, logging.New(logr.Discard()))
	joined := JoinFiles(files)
	again := SplitFiles(joined, logging.New(logr.Discard()))
	if len(again) != len(files) {
		t.Fatalf("roundtrip changed section count: %d vs %d", len(again), len(files))
	}
	for i := range files {
		if again[i].Path != files[i].Path {
			t.Fatalf("roundtrip changed path %s vs %s", again[i].Path, files[i].Path)
		}
	}
}

func TestJoinFilesEmpty(t *testing.T) {
	if out := JoinFiles(nil); out != "" {
		t.Fatalf("expected empty string, got %q", out)
	}
}
