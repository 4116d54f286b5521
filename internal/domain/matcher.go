package domain

import (
	"regexp"
	"sort"
	"strings"
)

// Matcher decides whether a single line satisfies one pattern.
//
// The set of implementations is closed: LiteralMatcher and RegexMatcher.
type Matcher interface {
	MatchLine(cfg *SearchConfig, line string) bool

	// Locate returns the byte spans of line matched by the pattern.
	// It is only used for highlighting and may return nil when spans
	// cannot be mapped back onto the original line.
	Locate(cfg *SearchConfig, line string) [][2]int

	sealed()
}

// LiteralMatcher matches by plain substring containment.
type LiteralMatcher struct {
	query  string
	folded string
}

func NewLiteralMatcher(query string) *LiteralMatcher {
	return &LiteralMatcher{
		query:  query,
		folded: strings.ToLower(query),
	}
}

func (m *LiteralMatcher) Query() string { return m.query }

// MatchLine folds both sides with Unicode lowercase when cfg.IgnoreCase is set.
func (m *LiteralMatcher) MatchLine(cfg *SearchConfig, line string) bool {
	if cfg != nil && cfg.IgnoreCase {
		return strings.Contains(strings.ToLower(line), m.folded)
	}
	return strings.Contains(line, m.query)
}

func (m *LiteralMatcher) Locate(cfg *SearchConfig, line string) [][2]int {
	needle, hay := m.query, line
	if cfg != nil && cfg.IgnoreCase {
		needle, hay = m.folded, strings.ToLower(line)
		// Offsets in the folded line are only valid if folding kept the length.
		if len(hay) != len(line) {
			return nil
		}
	}
	if needle == "" {
		return nil
	}

	var spans [][2]int
	for off := 0; off <= len(hay); {
		i := strings.Index(hay[off:], needle)
		if i < 0 {
			break
		}
		start := off + i
		spans = append(spans, [2]int{start, start + len(needle)})
		off = start + len(needle)
	}
	return spans
}

func (*LiteralMatcher) sealed() {}

// RegexMatcher matches with a compiled regular expression. Its case
// sensitivity is fixed when it is built.
type RegexMatcher struct {
	pattern    string
	ignoreCase bool
	re         *regexp.Regexp
}

// NewRegexMatcher compiles pattern (RE2 syntax). Literals and case folding
// are Unicode aware; \w, \d, \s and \b only cover ASCII. A syntax error is
// returned as *PatternError.
func NewRegexMatcher(pattern string, ignoreCase bool) (*RegexMatcher, error) {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &RegexMatcher{
		pattern:    pattern,
		ignoreCase: ignoreCase,
		re:         re,
	}, nil
}

func (m *RegexMatcher) Pattern() string { return m.pattern }

func (m *RegexMatcher) IgnoreCase() bool { return m.ignoreCase }

// MatchLine ignores cfg: the case flag was captured at construction.
func (m *RegexMatcher) MatchLine(_ *SearchConfig, line string) bool {
	return m.re.MatchString(line)
}

func (m *RegexMatcher) Locate(_ *SearchConfig, line string) [][2]int {
	idx := m.re.FindAllStringIndex(line, -1)
	spans := make([][2]int, 0, len(idx))
	for _, loc := range idx {
		if loc[1] > loc[0] {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	return spans
}

func (*RegexMatcher) sealed() {}

// mergeSpans sorts spans and joins overlapping or adjacent ones.
func mergeSpans(spans [][2]int) [][2]int {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i][0] == spans[j][0] {
			return spans[i][1] < spans[j][1]
		}
		return spans[i][0] < spans[j][0]
	})

	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s[0] <= last[1] {
			if s[1] > last[1] {
				last[1] = s[1]
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
