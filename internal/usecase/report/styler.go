package report

import "strconv"

// Styler decorates the pieces of a text output line.
type Styler interface {
	Enabled() bool
	Source(s string) string
	LineNumber(n int) string
	Separator(s string) string
	Match(s string) string
}

// Plain is the Styler used when color is off.
type Plain struct{}

func (Plain) Enabled() bool             { return false }
func (Plain) Source(s string) string    { return s }
func (Plain) LineNumber(n int) string   { return strconv.Itoa(n) }
func (Plain) Separator(s string) string { return s }
func (Plain) Match(s string) string     { return s }
