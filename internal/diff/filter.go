package diff

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"sigs.k8s.io/yaml"
)

const excludeMagic = ":(exclude)"

// DefaultFilters restricts the comparison to source files and drops
// generated, vendored and bundled artifacts.
func DefaultFilters() []string {
	return []string{
		"*.py", "*.js", "*.jsx", "*.ts", "*.tsx",
		excludeMagic + "**/dist/**",
		excludeMagic + "**/build/**",
		excludeMagic + "**/node_modules/**",
		excludeMagic + "**/.cache/**",
		excludeMagic + "**/coverage/**",
		excludeMagic + "**/*.min.js",
		excludeMagic + "**/*.bundle.js",
		excludeMagic + "**/*.chunk.js",
		excludeMagic + "**/*.generated.*",
		excludeMagic + "**/*.d.ts",
		excludeMagic + "**/package-lock.json",
		excludeMagic + "**/yarn.lock",
	}
}

// Patterns holds compiled include/exclude path filters. The syntax mirrors
// git pathspecs: plain glob patterns include, ":(exclude)" patterns exclude.
type Patterns struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

func CompilePatterns(specs []string) (Patterns, error) {
	var p Patterns
	for _, spec := range specs {
		pattern := spec
		target := &p.include
		if strings.HasPrefix(spec, excludeMagic) {
			pattern = strings.TrimPrefix(spec, excludeMagic)
			target = &p.exclude
		}
		rx, err := regexp.Compile(globToRegexp(pattern))
		if err != nil {
			return Patterns{}, fmt.Errorf("compile filter %q: %w", spec, err)
		}
		*target = append(*target, rx)
	}
	return p, nil
}

// Match reports whether path passes the filters: it must match at least one
// include pattern (or there are none) and no exclude pattern.
func (p Patterns) Match(path string) bool {
	for _, rx := range p.exclude {
		if rx.MatchString(path) {
			return false
		}
	}
	if len(p.include) == 0 {
		return true
	}
	for _, rx := range p.include {
		if rx.MatchString(path) {
			return true
		}
	}
	return false
}

// Filter partitions file sections into those passing the filters and those
// rejected by them.
func (p Patterns) Filter(files []FileDiff) (included, skipped []FileDiff) {
	for _, f := range files {
		if p.Match(f.Path) {
			included = append(included, f)
			continue
		}
		skipped = append(skipped, f)
	}
	return included, skipped
}

// globToRegexp translates a glob pattern into an anchored regexp. "**"
// crosses directory boundaries, "*" and "?" do not. A pattern without a
// slash matches at any depth, as git pathspecs do.
func globToRegexp(pattern string) string {
	var b strings.Builder
	if strings.Contains(pattern, "/") {
		b.WriteString(`^`)
	} else {
		b.WriteString(`(^|/)`)
	}
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				i++
				if i+1 < len(pattern) && pattern[i+1] == '/' {
					i++
					b.WriteString(`(?:.*/)?`)
				} else {
					b.WriteString(`.*`)
				}
			} else {
				b.WriteString(`[^/]*`)
			}
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexp.QuoteMeta(string(pattern[i])))
		}
	}
	b.WriteString(`$`)
	return b.String()
}

// LoadFilterFile reads a YAML list of filter patterns.
func LoadFilterFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filter file %s: %w", path, err)
	}
	var filters []string
	if err := yaml.Unmarshal(data, &filters); err != nil {
		return nil, fmt.Errorf("parse filter file %s: %w", path, err)
	}
	return filters, nil
}
