package report

import (
	"strings"

	"github.com/LowByteFox/novagrep/internal/domain"
)

// Highlight passes every span of line located by cfg through style and
// returns the rebuilt line. Lines without spans come back unchanged.
func Highlight(cfg *domain.SearchConfig, line string, style func(string) string) string {
	if cfg == nil {
		return line
	}
	spans := cfg.Locate(line)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s[0]])
		b.WriteString(style(line[s[0]:s[1]]))
		last = s[1]
	}
	b.WriteString(line[last:])
	return b.String()
}
