package ports

// PatternLoader loads a pattern list file, one pattern per line.
type PatternLoader interface {
	LoadPatterns(path string) ([]string, error)
}
