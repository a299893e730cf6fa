package cli

import (
	"github.com/spf13/cobra"

	"blogsmith/internal/workflow"
)

func newQueueCommand(app *App) *cobra.Command {
	var (
		outputDir  string
		saveReport bool
	)

	cmd := &cobra.Command{
		Use:   "queue <topic> [topic...]",
		Short: "Generate posts for multiple topics",
		Long: `Generate a blog post for each topic in sequence. Unlike generate,
every argument is its own topic, so topics containing spaces must be
quoted. The queue stops on the first failure.

Example:
  blogsmith queue "How to build an AI SDR" "Vector databases explained"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, topic := range args {
				if err := workflow.ValidateTopic(topic); err != nil {
					app.Printer.Error("Skipping %q: topics need at least 5 characters", topic)
					return NewExitError(1)
				}
			}

			client, err := app.client()
			if err != nil {
				app.Printer.Error("%v", err)
				return NewExitError(1)
			}

			for i, topic := range args {
				app.Printer.Info("[%d/%d] %s", i+1, len(args), topic)
				if err := app.runTopic(cmd.Context(), client, topic, outputDir, saveReport); err != nil {
					return err
				}
			}

			app.Printer.Success("Queue complete: %d posts generated", len(args))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to save posts into (default from config)")
	cmd.Flags().BoolVar(&saveReport, "report", false, "also save YAML run reports")

	return cmd
}
