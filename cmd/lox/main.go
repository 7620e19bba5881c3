// main.go: the `lox` CLI. With no arguments it starts a REPL; given one
// path it runs that script, exiting 65 on a static error, 70 on a runtime
// error, 0 on success. More than one positional argument is a usage error
// (exit 64).
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/zzkzzzz/jlox/lox"
)

const (
	appName        = "lox"
	defaultHistory = ".lox_history"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var configPath string
	var positional []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Println(lox.Version)
			return 0
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "lox: --config requires a path")
				return 64
			}
			i++
			configPath = args[i]
		case "-h", "--help", "help":
			usage()
			return 0
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) > 0 && positional[0] == "run" {
		positional = positional[1:]
	}

	cfg := loadReplConfig(configPath)

	switch len(positional) {
	case 0:
		return cmdRepl(cfg)
	case 1:
		return cmdRun(positional[0], cfg)
	default:
		usage()
		return 64
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  %s                      Start the REPL.
  %s <path>                Run a Lox script.
  %s run <path>            Run a Lox script.
  %s --config <path>       Use an alternate REPL config file.
  %s --version             Print the version.
`, appName, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------
// run
// -----------------------------------------------------------------------

func cmdRun(path string, cfg replConfig) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	color := newColorizer(cfg.Color)

	var diag bytes.Buffer
	reporter := lox.NewErrorReporter(&diag)
	interp := lox.NewInterpreter(reporter, lox.NewWriterPrinter(os.Stdout))

	lox.Run(string(src), interp, reporter)

	if diag.Len() > 0 {
		fmt.Fprint(os.Stderr, color.red(diag.String()))
	}

	switch {
	case reporter.HadError:
		return 65
	case reporter.HadRuntimeError:
		return 70
	default:
		return 0
	}
}

// -----------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------

func cmdRepl(cfg replConfig) int {
	color := newColorizer(cfg.Color)

	fmt.Printf("Lox %s REPL. Ctrl+C cancels input, Ctrl+D exits.\n", lox.Version)

	histPath := cfg.HistoryFile
	if histPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, defaultHistory)
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "> "
	}

	var diag bytes.Buffer
	reporter := lox.NewErrorReporter(&diag)
	interp := lox.NewInterpreter(reporter, newColoringPrinter(color, os.Stdout))

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return 0
		}
		if line == "" {
			continue
		}

		diag.Reset()
		reporter.Reset()

		lox.Run(line, interp, reporter)

		if diag.Len() > 0 {
			fmt.Fprint(os.Stderr, color.red(diag.String()))
		}

		ln.AppendHistory(line)
	}
}
