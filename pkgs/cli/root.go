package cli

import (
	"github.com/keskad/conprint/pkgs/app"
	"github.com/spf13/cobra"
)

func NewRootCommand(app *app.ConprintApp) *cobra.Command {
	command := &cobra.Command{
		Use:          "conprint",
		Short:        "Prints text to the console with its code page switched to a known encoding",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.HelloAction()
		},
	}

	command.PersistentFlags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")

	command.AddCommand(NewPrintCommand(app))
	command.AddCommand(NewCodePageCommand(app))

	return command
}
