// color.go: terminal color detection for diagnostics and REPL value echo.
//
// Colorizing unconditionally would leak escape codes into piped output
// (`lox script.lox > out.txt`) or a dumb terminal, so capability is
// detected via isatty before termenv ever emits a code.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// colorizer renders diagnostic and REPL-echo text, degrading to plain text
// when color is unsupported or disabled.
type colorizer struct {
	profile termenv.Profile
	enabled bool
}

// newColorizer decides whether to colorize based on the REPL config's Color
// setting and whether stdout looks like a real terminal.
func newColorizer(mode string) *colorizer {
	enabled := isatty.IsTerminal(os.Stdout.Fd())
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	}

	return &colorizer{profile: termenv.NewOutput(os.Stdout).Profile, enabled: enabled}
}

func (c *colorizer) style(s string, fg termenv.Color) string {
	if !c.enabled {
		return s
	}
	return termenv.String(s).Foreground(fg).String()
}

func (c *colorizer) red(s string) string   { return c.style(s, c.profile.Color("1")) }
func (c *colorizer) green(s string) string { return c.style(s, c.profile.Color("2")) }
func (c *colorizer) blue(s string) string  { return c.style(s, c.profile.Color("4")) }

// coloringPrinter is the REPL's `print` sink: string and number values echo
// in blue, and the singleton keyword-like values (nil, true, false) echo in
// a muted green so they read as distinct from ordinary data.
type coloringPrinter struct {
	color *colorizer
	out   io.Writer
}

func newColoringPrinter(c *colorizer, out io.Writer) *coloringPrinter {
	return &coloringPrinter{color: c, out: out}
}

func (p *coloringPrinter) Println(s string) {
	switch s {
	case "nil", "true", "false":
		fmt.Fprintln(p.out, p.color.green(s))
	default:
		fmt.Fprintln(p.out, p.color.blue(s))
	}
}
