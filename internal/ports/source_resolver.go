package ports

// LineReader yields one line at a time without its line terminator.
// It returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// SourceResolver maps source identifiers to text.
type SourceResolver interface {
	// ReadAll reads a file source to completion.
	ReadAll(path string) (string, error)
	// Stdin returns the line stream behind the "-" source.
	Stdin() LineReader
}
