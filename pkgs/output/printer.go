package output

import (
	"io"
	"os"
)

type Printer interface {
	Printf(format string, a ...any) (n int, err error)
}

// WriterPrinter renders into W using Engine (fmt verbs when nil)
type WriterPrinter struct {
	W      io.Writer
	Engine Engine
}

func (p WriterPrinter) Printf(format string, a ...any) (n int, err error) {
	return engineOrDefault(p.Engine).Render(p.W, format, a...)
}

// ConsolePrinter renders into the standard output of the process
type ConsolePrinter struct {
	Engine Engine
}

func (c ConsolePrinter) Printf(format string, a ...any) (n int, err error) {
	return WriterPrinter{W: os.Stdout, Engine: c.Engine}.Printf(format, a...)
}

// Fprint renders template with args straight into w. Nothing is added or stripped,
// and errors of the engine or of w are returned as they are.
func Fprint(w io.Writer, template string, args ...any) (n int, err error) {
	return FmtEngine{}.Render(w, template, args...)
}

// Print is Fprint on the standard output
func Print(template string, args ...any) (n int, err error) {
	return Fprint(os.Stdout, template, args...)
}

func engineOrDefault(e Engine) Engine {
	if e == nil {
		return FmtEngine{}
	}
	return e
}
