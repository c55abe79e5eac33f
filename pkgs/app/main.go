package app

import (
	"fmt"
	"io"

	"github.com/keskad/conprint/pkgs/codepage"
	"github.com/keskad/conprint/pkgs/config"
	"github.com/keskad/conprint/pkgs/output"
	"github.com/sirupsen/logrus"
)

type ConprintApp struct {
	Config  *config.Configuration
	P       output.Printer
	Console codepage.Console

	// Out is where printed text goes, stdout when nil
	Out io.Writer

	// runtime parameters
	Debug  bool
	Engine string
}

// Initialize is running after parsing the arguments, so we know how to configure the app
func (app *ConprintApp) Initialize() error {
	// logging
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// configuration
	if app.Config == nil {
		logrus.Debug("Reading configuration files")
		cfg, cfgErr := config.NewConfig()
		app.Config = cfg
		if cfgErr != nil {
			return fmt.Errorf("cannot initialize app: %w", cfgErr)
		}
	}

	// output
	engineName := app.Engine
	if engineName == "" {
		engineName = app.Config.Output.Engine
	}
	engine, engineErr := output.NewEngine(engineName)
	if engineErr != nil {
		return fmt.Errorf("cannot initialize app: %w", engineErr)
	}
	logrus.Debugf("Using the '%s' output engine", engineName)
	if app.Out == nil {
		app.P = output.ConsolePrinter{Engine: engine}
	} else {
		app.P = output.WriterPrinter{W: app.Out, Engine: engine}
	}

	return nil
}

// reportPrinter writes fixed fmt-style reports to the same destination as P, whatever engine P uses
func (app *ConprintApp) reportPrinter() output.Printer {
	if app.Out == nil {
		return output.ConsolePrinter{}
	}
	return output.WriterPrinter{W: app.Out}
}
