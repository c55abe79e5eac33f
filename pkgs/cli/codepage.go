package cli

import (
	"github.com/keskad/conprint/pkgs/app"
	"github.com/spf13/cobra"
)

func NewCodePageCommand(app *app.ConprintApp) *cobra.Command {
	return &cobra.Command{
		Use:   "codepage",
		Short: "Show the console code pages of this process",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.CodePageAction()
		},
	}
}
