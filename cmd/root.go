// Package cmd wires the CLI entrypoint: flag parsing, credential and config
// loading, and starting the TUI.
package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/thisorthat/internal/app"
	"github.com/zhubert/thisorthat/internal/config"
	"github.com/zhubert/thisorthat/internal/errors"
	"github.com/zhubert/thisorthat/internal/generation"
	"github.com/zhubert/thisorthat/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "thisorthat",
	Short: "A terminal game of impossible choices",
	Long: `This or That is a terminal game that serves endless would-you-rather
questions. Pick a category and the game generates two contrasting options
for you to argue about. Questions come from the Gemini API, so a
GEMINI_API_KEY environment variable (or .env file) is required.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging (verbose output to "+logger.DefaultLogPath+")")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("thisorthat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("thisorthat %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Resolve the credential before anything else so a missing key fails
	// fast with a clear message instead of a mid-game error banner.
	apiKey, err := config.LoadAPIKey()
	if err != nil {
		return fmt.Errorf("%s\n\nSet it in the environment or a .env file and try again", errors.UserMessage(err))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	gen, err := generation.NewGeminiGenerator(
		context.Background(),
		apiKey,
		cfg.GetModel(),
		cfg.GetTemperature(generation.DefaultTemperature),
	)
	if err != nil {
		return fmt.Errorf("error creating generation client: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m := app.New(cfg, gen, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
