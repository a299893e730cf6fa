package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"blogsmith/internal/runlog"
	"blogsmith/internal/workflow"
)

func newAnalyzeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <topic>",
		Short: "Analyze search intent without generating a post",
		Long: `Run only the search-intent analysis step and print the resulting
profile. Useful for previewing how a topic will be framed before
spending a full generation run on it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")

			if err := workflow.ValidateTopic(topic); err != nil {
				app.Printer.Error("Please enter a topic (at least 5 characters)")
				return NewExitError(1)
			}

			client, err := app.client()
			if err != nil {
				app.Printer.Error("%v", err)
				return NewExitError(1)
			}

			log := runlog.New()
			log.Observer = app.Printer.Entry

			runner := workflow.NewRunner(client, log, app.Config)
			analysis, err := runner.Analyze(cmd.Context(), topic)
			if err != nil {
				app.Printer.Failure(err)
				return NewExitError(1)
			}

			app.Printer.Analysis(analysis)
			return nil
		},
	}
}
