package main

import (
	"os"

	"github.com/keskad/conprint/pkgs/app"
	"github.com/keskad/conprint/pkgs/cli"
	"github.com/keskad/conprint/pkgs/codepage"
	"github.com/keskad/conprint/pkgs/config"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run owns the only console code page guard of the process; it is released before the exit status is returned
func run(args []string) int {
	cfg, cfgErr := config.NewConfig()
	target, targetErr := cfg.TargetCodePage()

	// the guard logs before cobra sees --debug
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	err := codepage.With(target, func() error {
		for _, e := range []error{cfgErr, targetErr} {
			if e != nil {
				logrus.Error(e)
				return e
			}
		}

		app := app.ConprintApp{Config: cfg, Console: codepage.System()}
		cmd := cli.NewRootCommand(&app)
		if args == nil {
			args = []string{}
		}
		cmd.SetArgs(args)
		return cmd.Execute()
	})

	if err != nil {
		return 1
	}
	return 0
}
