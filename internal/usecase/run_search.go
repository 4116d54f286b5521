package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
)

// RunSearch processes the configured sources in order and reports each one
// as soon as it has been searched.
type RunSearch struct {
	sources  ports.SourceResolver
	reporter ports.Reporter
	warn     io.Writer
	log      *slog.Logger
}

type RunOption func(*RunSearch)

// WithWarnings sets where not-found warnings go (stderr in the CLI).
func WithWarnings(w io.Writer) RunOption {
	return func(uc *RunSearch) {
		if w != nil {
			uc.warn = w
		}
	}
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunSearch) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewRunSearch(sr ports.SourceResolver, rep ports.Reporter, opts ...RunOption) *RunSearch {
	uc := &RunSearch{
		sources:  sr,
		reporter: rep,
		warn:     io.Discard,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Summary describes a finished run.
type Summary struct {
	Searched       int
	MatchedSources int
	SelectedLines  int
	Missing        []string
}

// Execute searches every source of cfg. A missing source is warned about
// (or skipped silently with SuppressMissing) and the run goes on; any other
// error aborts the run.
func (uc *RunSearch) Execute(ctx context.Context, cfg *domain.SearchConfig) (Summary, error) {
	var sum Summary

	for _, src := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		selected, err := uc.searchSource(cfg, src)
		if err != nil {
			if !domain.IsKind(err, domain.KindNotFound) {
				return sum, err
			}

			sum.Missing = append(sum.Missing, src)
			uc.log.Info("source.missing", "source", src, "suppressed", cfg.SuppressMissing)
			if !cfg.SuppressMissing {
				fmt.Fprintf(uc.warn, "%s: %v\n", src, notFoundReason(err))
			}
			continue
		}

		sum.Searched++
		sum.SelectedLines += selected
		if selected > 0 {
			sum.MatchedSources++
		}
		uc.log.Debug("source.done", "source", src, "selected", selected)
	}

	uc.log.Debug("search.done",
		"searched", sum.Searched,
		"matched_sources", sum.MatchedSources,
		"selected_lines", sum.SelectedLines,
		"missing", len(sum.Missing),
	)
	return sum, nil
}

func (uc *RunSearch) searchSource(cfg *domain.SearchConfig, src string) (int, error) {
	if src == domain.StdinSource {
		return uc.streamStdin(cfg, src)
	}

	text, err := uc.sources.ReadAll(src)
	if err != nil {
		return 0, err
	}

	results := domain.Search(cfg, text)
	sink := uc.reporter.Open(src)
	for _, res := range results {
		more, err := sink.Add(res)
		if err != nil {
			return len(results), err
		}
		if !more {
			break
		}
	}
	return len(results), sink.Close()
}

// streamStdin matches and reports each line as it is read, so interactive
// input gets immediate output. It stops at end of input.
func (uc *RunSearch) streamStdin(cfg *domain.SearchConfig, src string) (int, error) {
	r := uc.sources.Stdin()
	sink := uc.reporter.Open(src)

	n, selected := 0, 0
	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return selected, err
		}

		n++
		if !cfg.Selects(line) {
			continue
		}
		selected++

		more, err := sink.Add(domain.SearchResult{Text: line, LineNumber: n})
		if err != nil {
			return selected, err
		}
		if !more {
			break
		}
	}
	return selected, sink.Close()
}

// notFoundReason strips the "open <path>:" part of a path error, since the
// source is already printed in front of it.
func notFoundReason(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return domain.Cause(err)
}
