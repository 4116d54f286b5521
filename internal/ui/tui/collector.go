package tui

import (
	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
	"github.com/LowByteFox/novagrep/internal/usecase/report"
)

// Hit is one selected line together with the source it came from.
type Hit struct {
	Source string
	domain.SearchResult
}

// Collector is a Reporter that keeps every selected line in memory for
// the browser.
type Collector struct {
	hits []Hit
}

func NewCollector() *Collector { return &Collector{} }

var _ ports.Reporter = (*Collector)(nil)

func (c *Collector) Open(source string) ports.ResultSink {
	return &collectSink{c: c, name: report.DisplayName(source)}
}

func (c *Collector) Hits() []Hit { return c.hits }

type collectSink struct {
	c    *Collector
	name string
}

func (s *collectSink) Add(res domain.SearchResult) (bool, error) {
	s.c.hits = append(s.c.hits, Hit{Source: s.name, SearchResult: res})
	return true, nil
}

func (s *collectSink) Close() error { return nil }
