package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"blogsmith/internal/openrouter"
)

func newRawCommand(app *App) *cobra.Command {
	var temperature float64

	cmd := &cobra.Command{
		Use:   "raw <prompt>",
		Short: "Send an arbitrary prompt to the model",
		Long: `Send an arbitrary prompt to the configured model and print the reply.
Useful for testing credentials or trying prompt variations.

Example:
  blogsmith raw "Draft three titles for a post about vector databases"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")

			client, err := app.client()
			if err != nil {
				app.Printer.Error("%v", err)
				return NewExitError(1)
			}

			reply, err := client.Complete(cmd.Context(), []openrouter.Message{openrouter.UserMessage(prompt)}, temperature)
			if err != nil {
				app.Printer.Failure(err)
				return NewExitError(1)
			}

			app.Printer.Println(reply)
			return nil
		},
	}

	cmd.Flags().Float64Var(&temperature, "temperature", 0.7, "sampling temperature")

	return cmd
}
