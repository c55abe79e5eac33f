package cli

import (
	"github.com/keskad/conprint/pkgs/app"
	"github.com/spf13/cobra"
)

func NewPrintCommand(app *app.ConprintApp) *cobra.Command {
	type PrintArgs struct {
		Escapes bool
	}

	cmdArgs := PrintArgs{}
	command := &cobra.Command{
		Use:   "print TEMPLATE [ARG...]",
		Short: "Render a template with the given arguments",
		Long: `Render a template with the given arguments and write the result to stdout as is.

Nothing is appended, so end the template with \n (together with --escapes) to get a newline.

Engines:
  fmt       Go fmt verbs, e.g. 'Hello, %s!\n'
  template  Go text/template with sprig functions, arguments are the dot value,
            e.g. 'Hello, {{ index . 0 | upper }}!\n'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.PrintAction(args[0], args[1:], cmdArgs.Escapes)
		},
	}

	command.Flags().StringVarP(&app.Engine, "engine", "", "", "Template engine: 'fmt' or 'template' (defaults to output.engine from the configuration)")
	command.Flags().BoolVarP(&cmdArgs.Escapes, "escapes", "e", false, "Interpret \\n, \\t, \\r and \\\\ in the template")

	return command
}
