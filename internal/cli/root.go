// Package cli implements the blogsmith command line interface.
//
// Commands are built around an [App] container holding the loaded
// configuration and the injectable dependencies (completion client,
// printer, artifact writer), which keeps every command testable without
// network access. Failures propagate as [ExitError] values so tests can
// assert on exit codes; only [Execute] ever terminates the process.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"blogsmith/internal/artifact"
	"blogsmith/internal/config"
	"blogsmith/internal/openrouter"
	"blogsmith/internal/output"
	"blogsmith/internal/runlog"
	"blogsmith/internal/workflow"
)

// App carries the dependencies commands run against. Tests inject a
// [openrouter.MockClient], a buffer-backed printer, and a temp-dir
// artifact writer; production leaves Client and Artifacts nil and lets
// the App build them from Config.
type App struct {
	Config    *config.Config
	Client    openrouter.Client
	Printer   *output.Printer
	Artifacts *artifact.Writer
}

// client returns the injected completion client or builds one from the
// configuration. Key validation happens here, before any network call.
func (app *App) client() (openrouter.Client, error) {
	if app.Client != nil {
		return app.Client, nil
	}

	api := app.Config.API
	switch api.Provider {
	case config.ProviderOpenAI:
		return openrouter.NewOpenAIClient(api.Key, api.Model, api.BaseURL)
	default:
		return openrouter.NewHTTPClient(api.Key, api.Model,
			openrouter.WithBaseURL(api.BaseURL),
			openrouter.WithTimeout(time.Duration(api.TimeoutSeconds)*time.Second),
			openrouter.WithAttribution(api.Referer, api.Title),
		)
	}
}

// artifacts returns the injected artifact writer or one targeting dir,
// falling back to the configured output directory.
func (app *App) artifacts(dir string) *artifact.Writer {
	if app.Artifacts != nil {
		return app.Artifacts
	}
	if dir == "" {
		dir = app.Config.Output.Dir
	}
	return artifact.NewWriter(dir)
}

// runTopic executes the full workflow for one topic, printing progress
// live and saving the finished post. Returns nil on success or an
// [ExitError] after printing the failure.
func (app *App) runTopic(ctx context.Context, client openrouter.Client, topic, outputDir string, saveReport bool) error {
	log := runlog.New()
	log.Observer = app.Printer.Entry

	runner := workflow.NewRunner(client, log, app.Config)
	result, err := runner.Run(ctx, topic)
	if err != nil {
		app.Printer.Failure(err)
		return NewExitError(1)
	}

	app.Printer.Summary(result)

	writer := app.artifacts(outputDir)
	path, err := writer.SavePost(result.Content)
	if err != nil {
		app.Printer.Error("%v", err)
		return NewExitError(1)
	}
	app.Printer.Success("Blog post saved to %s", path)

	if saveReport || app.Config.Output.SaveReport {
		reportPath, err := writer.SaveReport(result, log.Entries())
		if err != nil {
			app.Printer.Error("%v", err)
			return NewExitError(1)
		}
		app.Printer.Success("Run report saved to %s", reportPath)
	}
	return nil
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blogsmith",
		Short: "Generate SEO and AEO optimized blog posts",
		Long: `blogsmith generates technical blog posts optimized for search engines
and AI answer engines. Each run analyzes search intent, drafts the post,
then loops through claim verification, SEO scoring, and AEO scoring,
revising until every quality gate passes or the revision budget runs out.

Requires an OpenRouter API key in BLOGSMITH_API_KEY or OPENROUTER_API_KEY.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCommand(app))
	rootCmd.AddCommand(newQueueCommand(app))
	rootCmd.AddCommand(newAnalyzeCommand(app))
	rootCmd.AddCommand(newRawCommand(app))

	return rootCmd
}

// ExecuteResult is the outcome of running the CLI once.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// RunWithConfig builds the application from cfg and runs the command
// line given by args. It never calls os.Exit, which makes it the entry
// point tests drive.
func RunWithConfig(cfg *config.Config, args []string) ExecuteResult {
	app := &App{
		Config:  cfg,
		Printer: output.NewPrinter(),
	}

	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute loads configuration, runs the CLI, and exits the process with
// the resulting code.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result := RunWithConfig(cfg, os.Args[1:])
	if result.Err != nil {
		if _, ok := IsExitError(result.Err); !ok {
			fmt.Fprintln(os.Stderr, result.Err)
		}
	}
	os.Exit(result.ExitCode)
}
