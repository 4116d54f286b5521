package domain

// SearchResult is one selected line of a source.
type SearchResult struct {
	// Text is a substring of the searched text; it is not copied.
	Text string
	// LineNumber is the 1-based position of the line within its source.
	LineNumber int
}

// Equal compares results by text only; line numbers are ignored.
func (r SearchResult) Equal(other SearchResult) bool {
	return r.Text == other.Text
}
