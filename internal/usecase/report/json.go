package report

import (
	"encoding/json"
	"io"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/ports"
)

// JSONReporter writes one JSON object per output record (JSON Lines).
type JSONReporter struct {
	enc  *json.Encoder
	mode Mode
}

func NewJSONReporter(w io.Writer, cfg *domain.SearchConfig) *JSONReporter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONReporter{enc: enc, mode: ModeFor(cfg)}
}

var _ ports.Reporter = (*JSONReporter)(nil)

type lineRecord struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
}

type countRecord struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type fileRecord struct {
	Source string `json:"source"`
}

func (r *JSONReporter) Open(source string) ports.ResultSink {
	return &jsonSink{r: r, name: DisplayName(source)}
}

type jsonSink struct {
	r     *JSONReporter
	name  string
	count int
}

func (s *jsonSink) Add(res domain.SearchResult) (bool, error) {
	s.count++
	switch s.r.mode {
	case ModeQuiet:
		return false, nil
	case ModeListFiles:
		if s.count > 1 {
			return false, nil
		}
		return false, s.r.enc.Encode(fileRecord{Source: s.name})
	case ModeCount:
		return true, nil
	default:
		err := s.r.enc.Encode(lineRecord{Source: s.name, Line: res.LineNumber, Text: res.Text})
		return err == nil, err
	}
}

func (s *jsonSink) Close() error {
	if s.r.mode != ModeCount {
		return nil
	}
	return s.r.enc.Encode(countRecord{Source: s.name, Count: s.count})
}
