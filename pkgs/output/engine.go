package output

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const (
	FmtEngineName      = "fmt"
	TemplateEngineName = "template"
)

// Engine renders a template with its arguments into w and reports the number of bytes written
type Engine interface {
	Render(w io.Writer, tmpl string, args ...any) (n int, err error)
}

// NewEngine returns the engine registered under name
func NewEngine(name string) (Engine, error) {
	switch name {
	case "", FmtEngineName:
		return FmtEngine{}, nil
	case TemplateEngineName:
		return TemplateEngine{}, nil
	}
	return nil, fmt.Errorf("unknown output engine '%s', must be either '%s' or '%s'", name, FmtEngineName, TemplateEngineName)
}

// FmtEngine uses the fmt verbs, e.g. "Hello, %s!\n"
type FmtEngine struct{}

func (FmtEngine) Render(w io.Writer, tmpl string, args ...any) (int, error) {
	return fmt.Fprintf(w, tmpl, args...)
}

// TemplateEngine uses text/template with the sprig functions.
// The arguments are the dot value, so "{{ index . 0 | upper }}" picks the first one.
type TemplateEngine struct {
	// Funcs are added on top of the sprig functions
	Funcs template.FuncMap
}

func (e TemplateEngine) Render(w io.Writer, tmpl string, args ...any) (int, error) {
	funcMap := sprig.TxtFuncMap()
	for name, fn := range e.Funcs {
		funcMap[name] = fn
	}

	parsed, err := template.New("conprint").Funcs(funcMap).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return 0, err
	}

	if args == nil {
		args = []any{}
	}
	cw := &countingWriter{w: w}
	err = parsed.Execute(cw, args)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
