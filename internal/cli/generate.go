package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"blogsmith/internal/workflow"
)

func newGenerateCommand(app *App) *cobra.Command {
	var (
		outputDir  string
		saveReport bool
		model      string
	)

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate an optimized blog post",
		Long: `Generate a blog post for the given topic. Multiple arguments are
joined into a single topic, so quoting is optional.

The run analyzes search intent, drafts the post, then cycles through
claim verification and SEO/AEO scoring, revising up to the configured
budget. The finished post is saved as markdown with a timestamped name.

Example:
  blogsmith generate How to build an AI SDR`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")

			if err := workflow.ValidateTopic(topic); err != nil {
				app.Printer.Error("Please enter a topic (at least 5 characters)")
				return NewExitError(1)
			}
			if model != "" {
				app.Config.API.Model = model
			}

			client, err := app.client()
			if err != nil {
				app.Printer.Error("%v", err)
				app.Printer.Info("Get a free API key from https://openrouter.ai/keys and set BLOGSMITH_API_KEY.")
				return NewExitError(1)
			}

			app.Printer.Info("Generating your SEO-optimized blog post... This may take 2-3 minutes.")
			return app.runTopic(cmd.Context(), client, topic, outputDir, saveReport)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to save the post into (default from config)")
	cmd.Flags().BoolVar(&saveReport, "report", false, "also save a YAML run report")
	cmd.Flags().StringVar(&model, "model", "", "override the configured model")

	return cmd
}
