package cli

import (
	"github.com/spf13/cobra"

	"github.com/LowByteFox/novagrep/internal/domain"
	"github.com/LowByteFox/novagrep/internal/infra/fssource"
	"github.com/LowByteFox/novagrep/internal/infra/logger"
	"github.com/LowByteFox/novagrep/internal/infra/patternfile"
	"github.com/LowByteFox/novagrep/internal/infra/rcfile"
	"github.com/LowByteFox/novagrep/internal/infra/termstyle"
	"github.com/LowByteFox/novagrep/internal/ports"
	"github.com/LowByteFox/novagrep/internal/ui/tui"
	"github.com/LowByteFox/novagrep/internal/usecase"
	"github.com/LowByteFox/novagrep/internal/usecase/report"
)

// search is the root command body. Errors returned before the first source
// is read are configuration errors; later ones are wrapped in runError.
func search(cmd *cobra.Command, f *flags, args []string, e env) error {
	settings, err := loadSettings(f.configPath, e.getenv)
	if err != nil {
		return err
	}
	f.applySettings(cmd, settings)

	color, err := domain.ParseColorMode(f.color)
	if err != nil {
		return err
	}
	format, err := domain.ParseOutputFormat(f.format)
	if err != nil {
		return err
	}
	if err := f.checkBrowse(format); err != nil {
		return err
	}

	cleanup, err := logger.Setup(logger.Config{
		Path:   f.logFile,
		Debug:  f.debug,
		Stderr: e.stderr,
	})
	if err != nil {
		return &runError{err: err}
	}
	defer func() { _ = cleanup() }()
	log := logger.L()

	prepare := usecase.NewPrepareSearch(patternfile.NewLoader(), usecase.WithPrepareLogger(log))
	cfg, err := prepare.Execute(f.options(args), f.fromFile)
	if err != nil {
		return err
	}

	var (
		rep       ports.Reporter
		collector *tui.Collector
	)
	switch {
	case f.browse:
		collector = tui.NewCollector()
		rep = collector
	case format == domain.FormatJSON:
		rep = report.NewJSONReporter(e.stdout, cfg)
	default:
		rep = report.NewFormatter(e.stdout, cfg, report.WithStyler(termstyle.New(e.stdout, color)))
	}

	uc := usecase.NewRunSearch(fssource.NewResolver(e.stdin), rep,
		usecase.WithWarnings(e.stderr),
		usecase.WithLogger(log),
	)
	if _, err := uc.Execute(cmd.Context(), cfg); err != nil {
		return &runError{err: err}
	}

	if collector == nil {
		return nil
	}
	deps := tui.Deps{
		Config:   cfg,
		InputTTY: readsStdin(cfg),
		Output:   e.stdout,
		Logger:   log,
	}
	if err := tui.Run(deps, collector.Hits()); err != nil {
		return &runError{err: err}
	}
	return nil
}

// loadSettings reads the settings file. A missing file is only an error
// when the user named it.
func loadSettings(explicit string, getenv func(string) string) (domain.Config, error) {
	path, named := rcfile.Resolve(explicit, getenv)
	if path == "" {
		return domain.DefaultConfig(), nil
	}

	cfg, err := rcfile.NewLoader().LoadConfig(path)
	if err != nil {
		if !named && domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), nil
		}
		return cfg, err
	}
	return cfg, nil
}

func readsStdin(cfg *domain.SearchConfig) bool {
	for _, src := range cfg.Sources {
		if src == domain.StdinSource {
			return true
		}
	}
	return false
}
