package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/LowByteFox/novagrep/internal/domain"
)

type flags struct {
	extended bool
	fixed    bool
	extend   []string
	fromFile []string

	ignoreCase bool
	count      bool
	listFiles  bool
	numbers    bool
	quiet      bool
	suppress   bool
	invert     bool

	color  string
	format string
	browse bool

	configPath string
	debug      bool
	logFile    string

	help bool
}

func (f *flags) bind(fs *pflag.FlagSet) {
	fs.SortFlags = false

	fs.BoolVarP(&f.extended, "extended", "E", false, "treat patterns as regular expressions")
	fs.BoolVarP(&f.fixed, "fixed", "F", false, "treat patterns as literal strings (default)")
	fs.StringArrayVarP(&f.extend, "extend", "e", nil, "add each line of `patterns` as a pattern (repeatable)")
	fs.StringArrayVarP(&f.fromFile, "from-file", "f", nil, "read patterns from `file`, one per line (repeatable)")
	fs.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "ignore case distinctions")
	fs.BoolVarP(&f.count, "count", "c", false, "print only the number of selected lines per source")
	fs.BoolVarP(&f.listFiles, "list-files", "l", false, "print only the names of sources with selected lines")
	fs.BoolVarP(&f.numbers, "numbers", "n", false, "prefix each line with its line number")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress all normal output")
	fs.BoolVarP(&f.suppress, "suppress", "s", false, "suppress errors about missing sources")
	fs.BoolVarP(&f.invert, "invert-match", "v", false, "select non-matching lines")
	fs.StringVar(&f.color, "color", string(domain.ColorAuto), "highlight matches: `when` is auto, always or never")
	fs.StringVar(&f.format, "format", string(domain.FormatText), "output `format`: text or json")
	fs.BoolVar(&f.browse, "browse", false, "open the selected lines in an interactive browser")
	fs.StringVar(&f.configPath, "config", "", "read settings from `path`")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.StringVar(&f.logFile, "log-file", "", "write JSON logs to `path`")
	fs.BoolVarP(&f.help, "help", "h", false, "print this help")
}

// applySettings fills every flag the user did not set from the settings file.
func (f *flags) applySettings(cmd *cobra.Command, s domain.Config) {
	changed := cmd.Flags().Changed

	if !changed("ignore-case") {
		f.ignoreCase = s.Defaults.IgnoreCase
	}
	if !changed("numbers") {
		f.numbers = s.Defaults.LineNumbers
	}
	if !changed("suppress") {
		f.suppress = s.Defaults.Suppress
	}
	if !changed("color") && s.Defaults.Color != "" {
		f.color = string(s.Defaults.Color)
	}
	if !changed("format") && s.Defaults.Format != "" {
		f.format = string(s.Defaults.Format)
	}
	if !changed("log-file") && s.Log.File != "" {
		f.logFile = s.Log.File
	}
	if !changed("debug") {
		f.debug = s.Log.Debug
	}
}

func (f *flags) options(args []string) domain.Options {
	return domain.Options{
		Extended:    f.extended,
		Fixed:       f.fixed,
		Extend:      f.extend,
		IgnoreCase:  f.ignoreCase,
		Count:       f.count,
		ListFiles:   f.listFiles,
		Numbers:     f.numbers,
		Quiet:       f.quiet,
		Suppress:    f.suppress,
		InvertMatch: f.invert,
		Args:        args,
	}
}

// checkBrowse rejects output modes the browser cannot show.
func (f *flags) checkBrowse(format domain.OutputFormat) error {
	if !f.browse {
		return nil
	}
	var other string
	switch {
	case f.count:
		other = "--count"
	case f.listFiles:
		other = "--list-files"
	case f.quiet:
		other = "--quiet"
	case format == domain.FormatJSON:
		other = "--format json"
	default:
		return nil
	}
	return &domain.OpError{
		Op:   "cli.flags",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("cannot use --browse with %s", other),
	}
}
