package ports

import "github.com/LowByteFox/novagrep/internal/domain"

// Reporter turns search results into output, one source at a time.
type Reporter interface {
	Open(source string) ResultSink
}

// ResultSink receives the selected lines of one source in order.
type ResultSink interface {
	// Add reports one result. more is false when further results of this
	// source cannot change the output, so the caller may stop scanning.
	Add(res domain.SearchResult) (more bool, err error)
	// Close ends the source and flushes any per-source summary.
	Close() error
}
