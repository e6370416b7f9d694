// Package sections parses the "=== NAME ===" block grammar that agents
// use to structure produced content.
package sections

import "strings"

// Section is one named block of content.
type Section struct {
	Name string
	Body string
}

// Parse splits content into its named sections. Text before the first
// header is ignored. Section bodies keep interior blank lines but are
// trimmed of leading and trailing whitespace.
func Parse(content string) []Section {
	var (
		out     []Section
		current *Section
		body    []string
	)
	flush := func() {
		if current != nil {
			current.Body = strings.TrimSpace(strings.Join(body, "\n"))
			out = append(out, *current)
		}
		body = body[:0]
	}
	for _, line := range strings.Split(content, "\n") {
		if name, ok := headerName(line); ok {
			flush()
			current = &Section{Name: name}
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return out
}

// Find returns the body of the first section with the given name.
func Find(content, name string) (string, bool) {
	for _, s := range Parse(content) {
		if s.Name == name {
			return s.Body, true
		}
	}
	return "", false
}

// headerName extracts NAME from a "=== NAME ===" line.
func headerName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "===") || !strings.HasSuffix(trimmed, "===") || len(trimmed) < 7 {
		return "", false
	}
	name := strings.TrimSpace(trimmed[3 : len(trimmed)-3])
	if name == "" {
		return "", false
	}
	return name, true
}
