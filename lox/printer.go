// printer.go: Printer implementations for `print` statement output. The
// interpreter only knows about the Printer interface (interpreter.go); this
// file supplies the concrete sinks used by tests and cmd/lox.
package lox

import (
	"fmt"
	"io"
)

// WriterPrinter writes each print statement's value as its own line to W.
type WriterPrinter struct {
	W io.Writer
}

// NewWriterPrinter wraps w as a Printer.
func NewWriterPrinter(w io.Writer) *WriterPrinter {
	return &WriterPrinter{W: w}
}

func (p *WriterPrinter) Println(s string) {
	fmt.Fprintln(p.W, s)
}
