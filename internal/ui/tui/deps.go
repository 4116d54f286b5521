package tui

import (
	"io"
	"log/slog"

	"github.com/LowByteFox/novagrep/internal/domain"
)

type Deps struct {
	// Config is the search that produced the hits; it drives highlighting.
	Config *domain.SearchConfig

	// InputTTY makes the program read keys from the terminal because
	// stdin was consumed as a search source.
	InputTTY bool
	Output   io.Writer

	Logger *slog.Logger
}
