package usecase

import (
	"io"
	"log/slog"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
)

// PrepareSearch loads pattern files and builds the validated search
// configuration. Nothing is read from the sources here.
type PrepareSearch struct {
	patterns ports.PatternLoader
	log      *slog.Logger
}

type PrepareOption func(*PrepareSearch)

func WithPrepareLogger(l *slog.Logger) PrepareOption {
	return func(uc *PrepareSearch) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewPrepareSearch(pl ports.PatternLoader, opts ...PrepareOption) *PrepareSearch {
	uc := &PrepareSearch{
		patterns: pl,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads every file in patternFiles (in order) into opts and
// validates the result.
func (uc *PrepareSearch) Execute(opts domain.Options, patternFiles []string) (*domain.SearchConfig, error) {
	for _, path := range patternFiles {
		lines, err := uc.patterns.LoadPatterns(path)
		if err != nil {
			return nil, err
		}
		opts.PatternFiles = append(opts.PatternFiles, domain.PatternFile{Path: path, Lines: lines})
	}

	cfg, err := domain.NewSearchConfig(opts)
	if err != nil {
		uc.log.Debug("search.config_rejected", "error", err.Error())
		return nil, err
	}

	uc.log.Debug("search.config_built",
		"matchers", len(cfg.Matchers),
		"sources", len(cfg.Sources),
		"regex", cfg.AllRegex,
		"ignore_case", cfg.IgnoreCase,
		"invert", cfg.InvertMatch,
	)
	return cfg, nil
}
