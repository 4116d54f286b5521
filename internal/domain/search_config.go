package domain

// StdinSource is the source identifier that denotes standard input.
const StdinSource = "-"

// PatternFile holds the lines of a pattern list file passed with -f.
type PatternFile struct {
	Path  string
	Lines []string
}

// Options is a fully parsed option set, as produced by the command line
// layer. It carries no behavior; NewSearchConfig validates it.
type Options struct {
	Extended bool
	Fixed    bool

	// Extend holds raw -e values; each contributes one pattern per line.
	Extend       []string
	PatternFiles []PatternFile

	IgnoreCase  bool
	Count       bool
	ListFiles   bool
	Numbers     bool
	Quiet       bool
	Suppress    bool
	InvertMatch bool

	// Args are the positional arguments: [pattern] source...
	Args []string
}

// SearchConfig is the validated, read-only configuration of a search run.
type SearchConfig struct {
	Matchers []Matcher
	Sources  []string

	AllRegex         bool
	AllStrings       bool
	IgnoreCase       bool
	InvertMatch      bool
	ShowCount        bool
	Quiet            bool
	ListMatchedFiles bool
	ShowLineNumbers  bool
	SuppressMissing  bool
}

// NewSearchConfig validates opts and builds the matcher set and source list.
// Errors are *OpError of kind KindInvalidConfig or KindInvalidPattern.
func NewSearchConfig(opts Options) (*SearchConfig, error) {
	if opts.Extended && opts.Fixed {
		return nil, invalidConfig(ErrConflictingModes)
	}

	cfg := &SearchConfig{
		AllRegex:         opts.Extended,
		AllStrings:       opts.Fixed,
		IgnoreCase:       opts.IgnoreCase,
		InvertMatch:      opts.InvertMatch,
		ShowCount:        opts.Count,
		Quiet:            opts.Quiet,
		ListMatchedFiles: opts.ListFiles,
		ShowLineNumbers:  opts.Numbers,
		SuppressMissing:  opts.Suppress,
	}

	args := opts.Args
	hasPatterns := len(opts.Extend) > 0 || len(opts.PatternFiles) > 0

	for _, value := range opts.Extend {
		for _, p := range SplitLines(value) {
			if err := cfg.addPattern(p, ""); err != nil {
				return nil, err
			}
		}
	}
	for _, pf := range opts.PatternFiles {
		for _, p := range pf.Lines {
			if err := cfg.addPattern(p, pf.Path); err != nil {
				return nil, err
			}
		}
	}

	if !hasPatterns {
		if len(args) == 0 {
			return nil, invalidConfig(ErrMissingPattern)
		}
		if err := cfg.addPattern(args[0], ""); err != nil {
			return nil, err
		}
		args = args[1:]
	}

	if len(cfg.Matchers) == 0 {
		return nil, invalidConfig(ErrNoPatterns)
	}

	cfg.Sources = append([]string(nil), args...)
	if len(cfg.Sources) == 0 {
		cfg.Sources = []string{StdinSource}
	}

	return cfg, nil
}

func (c *SearchConfig) addPattern(p, origin string) error {
	if !c.AllRegex {
		c.Matchers = append(c.Matchers, NewLiteralMatcher(p))
		return nil
	}

	m, err := NewRegexMatcher(p, c.IgnoreCase)
	if err != nil {
		return &OpError{
			Op:   "config.pattern",
			Kind: KindInvalidPattern,
			Path: origin,
			Err:  err,
		}
	}
	c.Matchers = append(c.Matchers, m)
	return nil
}

// MultiSource reports whether output lines need a source prefix.
func (c *SearchConfig) MultiSource() bool {
	return len(c.Sources) > 1
}

func invalidConfig(err error) error {
	return &OpError{
		Op:   "config.build",
		Kind: KindInvalidConfig,
		Err:  err,
	}
}
