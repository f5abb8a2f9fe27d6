package diff

import (
	"regexp"
	"strings"

	"github.com/niklub/github-scraper/internal/logging"
)

var diffHeaderRegexp = regexp.MustCompile(`(?m)^diff --git a/(?P<old>.*?) b/(?P<new>.*?)$`)

// FileDiff is a single file's section of a unified diff document.
type FileDiff struct {
	Path string
	Body string
}

// SplitFiles sections a unified diff on its per-file "diff --git" headers.
// Sections without a parseable header are skipped.
func SplitFiles(diffText string, log logging.Logger) []FileDiff {
	if strings.TrimSpace(diffText) == "" {
		return nil
	}

	matches := diffHeaderRegexp.FindAllStringIndex(diffText, -1)
	if len(matches) == 0 {
		return nil
	}

	results := make([]FileDiff, 0, len(matches))
	for i, loc := range matches {
		start := loc[0]
		end := len(diffText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		section := strings.TrimSpace(diffText[start:end])
		header := diffHeaderRegexp.FindStringSubmatch(section)
		if header == nil {
			preview := section
			if len(preview) > 80 {
				preview = preview[:80]
			}
			log.Debug("skip section without header", "section", preview)
			continue
		}
		oldPath := header[diffHeaderRegexp.SubexpIndex("old")]
		newPath := header[diffHeaderRegexp.SubexpIndex("new")]
		path := newPath
		if path == "/dev/null" {
			path = oldPath
		}
		results = append(results, FileDiff{Path: path, Body: section})
	}
	return results
}

// JoinFiles reassembles file sections into a single diff document.
func JoinFiles(files []FileDiff) string {
	if len(files) == 0 {
		return ""
	}
	bodies := make([]string, 0, len(files))
	for _, f := range files {
		bodies = append(bodies, f.Body)
	}
	return strings.Join(bodies, "\n") + "\n"
}
