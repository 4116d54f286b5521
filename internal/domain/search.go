package domain

import "strings"

// Matches reports whether line satisfies at least one matcher. Matchers are
// tried in insertion order and evaluation stops at the first hit.
func (c *SearchConfig) Matches(line string) bool {
	for _, m := range c.Matchers {
		if m.MatchLine(c, line) {
			return true
		}
	}
	return false
}

// Selects applies InvertMatch on top of Matches.
func (c *SearchConfig) Selects(line string) bool {
	return c.Matches(line) != c.InvertMatch
}

// Locate returns the merged spans of line matched by any matcher.
// Inverted searches select lines that did not match, so nothing is located.
func (c *SearchConfig) Locate(line string) [][2]int {
	if c.InvertMatch {
		return nil
	}
	var spans [][2]int
	for _, m := range c.Matchers {
		spans = append(spans, m.Locate(c, line)...)
	}
	return mergeSpans(spans)
}

// Search scans contents line by line and returns the selected lines in
// source order. Results point into contents.
func Search(cfg *SearchConfig, contents string) []SearchResult {
	var results []SearchResult
	ScanLines(contents, func(n int, line string) bool {
		if cfg.Selects(line) {
			results = append(results, SearchResult{Text: line, LineNumber: n})
		}
		return true
	})
	return results
}

// ScanLines calls fn for every line of contents with its 1-based number
// until fn returns false. Lines end at '\n'; a trailing '\r' is dropped and
// a final unterminated fragment is a line of its own.
func ScanLines(contents string, fn func(n int, line string) bool) {
	n := 0
	for len(contents) > 0 {
		n++
		var line string
		if i := strings.IndexByte(contents, '\n'); i >= 0 {
			line, contents = contents[:i], contents[i+1:]
		} else {
			line, contents = contents, ""
		}
		if !fn(n, TrimLineEnd(line)) {
			return
		}
	}
}

// SplitLines returns the lines of s as ScanLines sees them.
func SplitLines(s string) []string {
	var out []string
	ScanLines(s, func(_ int, line string) bool {
		out = append(out, line)
		return true
	})
	return out
}

// TrimLineEnd strips one trailing "\n" or "\r\n".
func TrimLineEnd(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
