package app

import (
	"os"

	"github.com/keskad/conprint/pkgs/codepage"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// CodePageAction prints the console code pages of this process and the configured target.
// The report always uses fmt verbs, the configured output engine only applies to user templates.
func (app *ConprintApp) CodePageAction() error {
	target, targetErr := app.Config.TargetCodePage()
	if targetErr != nil {
		logrus.Warn(targetErr)
	}

	p := app.reportPrinter()
	if _, err := p.Printf("Target code page      : %s\n", target); err != nil {
		return err
	}
	if _, err := p.Printf("Stdout is a terminal  : %s\n", yesNo(term.IsTerminal(int(os.Stdout.Fd())))); err != nil {
		return err
	}

	if app.Console == nil {
		_, err := p.Printf("Console code pages    : not supported on this platform\n")
		return err
	}

	if _, err := p.Printf("Input code page       : %s\n", describe(app.Console.InputCP())); err != nil {
		return err
	}
	_, err := p.Printf("Output code page      : %s\n", describe(app.Console.OutputCP()))
	return err
}

func describe(cp codepage.CodePage, err error) string {
	if err != nil {
		logrus.Debug(err)
		return "unavailable (no console attached)"
	}
	return cp.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
