package diff

import "strings"

const (
	additionMarker = "+"
	additionHeader = "+++"
	removalMarker  = "-"
	removalHeader  = "---"
)

// Reduce projects a unified diff down to its added lines, dropping removals,
// context lines and the +++ file headers. Relative order is preserved. It
// returns the newline-joined result and the number of retained lines; an
// empty diff reduces to an empty string.
func Reduce(diffText string) (string, int) {
	var kept []string
	for _, line := range strings.Split(diffText, "\n") {
		if strings.HasPrefix(line, additionMarker) && !strings.HasPrefix(line, additionHeader) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), len(kept)
}

// Stats counts added and removed lines in a unified diff, excluding the
// +++/--- file header lines.
func Stats(diffText string) (additions, deletions int) {
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, additionMarker) && !strings.HasPrefix(line, additionHeader):
			additions++
		case strings.HasPrefix(line, removalMarker) && !strings.HasPrefix(line, removalHeader):
			deletions++
		}
	}
	return additions, deletions
}
