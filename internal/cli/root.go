package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flynn/go-shlex"
	"github.com/spf13/cobra"

	"github.com/LowByteFox/novagrep/internal/buildinfo"
)

// OptionsEnv holds extra arguments placed before the command line.
const OptionsEnv = "NOVAGREP_OPTIONS"

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

func Execute() {
	os.Exit(run(os.Args[1:], env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}))
}

// run executes one invocation and returns the process exit status.
func run(args []string, e env) int {
	if len(args) == 0 {
		writeUsage(e.stderr, newRootCmd(e, new(state)))
		return 1
	}

	if extra := e.getenv(OptionsEnv); extra != "" {
		pre, err := shlex.Split(extra)
		if err != nil {
			fmt.Fprintf(e.stderr, "Argument parsing error: %s: %v\n", OptionsEnv, err)
			return 1
		}
		args = append(pre, args...)
	}

	st := new(state)
	cmd := newRootCmd(e, st)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var re *runError
		if errors.As(err, &re) {
			fmt.Fprintf(e.stderr, "Application error: %s\n", userMessage(re.err))
		} else {
			fmt.Fprintf(e.stderr, "Argument parsing error: %s\n", userMessage(err))
		}
		return 1
	}
	if st.helpShown {
		return 1
	}
	return 0
}

// state carries what the command learned during Execute back to run.
type state struct {
	helpShown bool
}

// runError marks failures that happen after the configuration was accepted.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

func newRootCmd(e env, st *state) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "novagrep [OPTIONS] [pattern] [source...]",
		Short:         "Search sources for lines matching patterns",
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return search(cmd, f, args, e)
		},
	}

	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetVersionTemplate(buildinfo.String() + "\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		st.helpShown = true
		writeUsage(e.stderr, c)
	})

	f.bind(cmd.Flags())
	cmd.InitDefaultVersionFlag()
	return cmd
}
