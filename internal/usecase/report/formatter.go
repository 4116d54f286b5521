package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
)

// Formatter is the text Reporter.
type Formatter struct {
	w      io.Writer
	cfg    *domain.SearchConfig
	mode   Mode
	multi  bool
	styler Styler
}

type Option func(*Formatter)

func WithStyler(s Styler) Option {
	return func(f *Formatter) {
		if s != nil {
			f.styler = s
		}
	}
}

func NewFormatter(w io.Writer, cfg *domain.SearchConfig, opts ...Option) *Formatter {
	f := &Formatter{
		w:      w,
		cfg:    cfg,
		mode:   ModeFor(cfg),
		multi:  cfg.MultiSource(),
		styler: Plain{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.Reporter = (*Formatter)(nil)

func (f *Formatter) Mode() Mode { return f.mode }

func (f *Formatter) Open(source string) ports.ResultSink {
	name := DisplayName(source)
	switch f.mode {
	case ModeQuiet:
		return quietSink{}
	case ModeListFiles:
		return &listSink{f: f, name: name}
	case ModeCount:
		return &countSink{f: f, name: name}
	default:
		return &lineSink{f: f, name: name}
	}
}

func (f *Formatter) prefix(b *strings.Builder, name string) {
	if f.multi {
		b.WriteString(f.styler.Source(name))
		b.WriteString(f.styler.Separator(":"))
	}
}

// highlight wraps matched spans of line when styling is on.
func (f *Formatter) highlight(line string) string {
	if !f.styler.Enabled() {
		return line
	}
	return Highlight(f.cfg, line, f.styler.Match)
}

type quietSink struct{}

func (quietSink) Add(domain.SearchResult) (bool, error) { return false, nil }
func (quietSink) Close() error                          { return nil }

type listSink struct {
	f       *Formatter
	name    string
	printed bool
}

func (s *listSink) Add(domain.SearchResult) (bool, error) {
	if s.printed {
		return false, nil
	}
	s.printed = true
	_, err := fmt.Fprintln(s.f.w, s.f.styler.Source(s.name))
	return false, err
}

func (s *listSink) Close() error { return nil }

type countSink struct {
	f     *Formatter
	name  string
	count int
}

func (s *countSink) Add(domain.SearchResult) (bool, error) {
	s.count++
	return true, nil
}

func (s *countSink) Close() error {
	var b strings.Builder
	s.f.prefix(&b, s.name)
	fmt.Fprintf(&b, "%d\n", s.count)
	_, err := io.WriteString(s.f.w, b.String())
	return err
}

type lineSink struct {
	f    *Formatter
	name string
}

func (s *lineSink) Add(res domain.SearchResult) (bool, error) {
	var b strings.Builder
	s.f.prefix(&b, s.name)
	if s.f.cfg.ShowLineNumbers {
		b.WriteString(s.f.styler.LineNumber(res.LineNumber))
		b.WriteString(s.f.styler.Separator(":"))
	}
	b.WriteString(s.f.highlight(res.Text))
	b.WriteByte('\n')

	_, err := io.WriteString(s.f.w, b.String())
	return err == nil, err
}

func (s *lineSink) Close() error { return nil }
