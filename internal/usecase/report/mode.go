// Package report renders search results per source. The output mode is
// derived from the search configuration with a fixed priority:
// quiet, list files, count, then plain lines.
package report

import "github.com/LowByteFox/novagrep/internal/domain"

type Mode int

const (
	ModeLines Mode = iota
	ModeCount
	ModeListFiles
	ModeQuiet
)

func (m Mode) String() string {
	switch m {
	case ModeCount:
		return "count"
	case ModeListFiles:
		return "list-files"
	case ModeQuiet:
		return "quiet"
	default:
		return "lines"
	}
}

// ModeFor picks the highest priority output mode enabled in cfg.
func ModeFor(cfg *domain.SearchConfig) Mode {
	switch {
	case cfg.Quiet:
		return ModeQuiet
	case cfg.ListMatchedFiles:
		return ModeListFiles
	case cfg.ShowCount:
		return ModeCount
	default:
		return ModeLines
	}
}

// StdinName is how the "-" source is shown in output.
const StdinName = "(stdin)"

// DisplayName returns the identifier printed for source.
func DisplayName(source string) string {
	if source == domain.StdinSource {
		return StdinName
	}
	return source
}
