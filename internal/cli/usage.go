package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	usageWidth  = 78
	flagColumn  = 28
	description = "Search each source for lines matching any pattern and print them. " +
		"A source of - or no source at all reads standard input. " +
		"Without -e or -f the first argument is the pattern. " +
		"Extra options may be given in the NOVAGREP_OPTIONS environment variable."
)

func writeUsage(w io.Writer, cmd *cobra.Command) {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s\n\n", cmd.UseLine())
	b.WriteString(text.Wrap(description, usageWidth))
	b.WriteString("\n\nOptions:\n")

	cmd.Flags().VisitAll(func(fl *pflag.Flag) {
		if fl.Hidden {
			return
		}
		b.WriteString(flagLine(fl))
	})

	io.WriteString(w, b.String())
}

func flagLine(fl *pflag.Flag) string {
	name, usage := pflag.UnquoteUsage(fl)

	left := "    --" + fl.Name
	if fl.Shorthand != "" {
		left = "-" + fl.Shorthand + ", --" + fl.Name
	}
	if name != "" && fl.Value.Type() != "bool" {
		left += " <" + name + ">"
	}
	left = "  " + left

	lines := strings.SplitN(text.Wrap(usage, usageWidth-flagColumn), "\n", 2)
	var b strings.Builder
	if len(left) >= flagColumn {
		b.WriteString(left + "\n" + strings.Repeat(" ", flagColumn) + lines[0] + "\n")
	} else {
		fmt.Fprintf(&b, "%-*s%s\n", flagColumn, left, lines[0])
	}
	if len(lines) > 1 {
		b.WriteString(text.Indent(lines[1], strings.Repeat(" ", flagColumn)))
		b.WriteString("\n")
	}
	return b.String()
}
