package cmd

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/nikogura/career-compass/pkg/config"
	"github.com/nikogura/career-compass/pkg/explorer"
	"github.com/nikogura/career-compass/pkg/gateway"
	"github.com/nikogura/career-compass/pkg/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "career-compass",
	Short: "Explore careers with AI-powered discovery and deep-dive reports",
	Long: `career-compass turns curiosity into career direction.

Describe what you love and discover matching careers, unpack everyday
objects into the jobs behind them, explore problems through personas,
chat with an AI career companion, and generate personalized market
reports grounded in live search data.`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.career-compass/config.json)")
}

// newSession builds the logger, gateway, and orchestrator from config.
// Shared by every command that talks to the model.
func newSession(ctx context.Context) (session *explorer.Session, cfg config.Config, logger *zap.Logger, err error) {
	// A local .env is a convenience for development, not a requirement.
	_ = godotenv.Load()

	cfg, err = config.Load(configFile)
	if err != nil {
		err = errors.Wrap(err, "loading config")
		return session, cfg, logger, err
	}

	logger, err = logging.NewLogger(cfg.LogLevel, verbose)
	if err != nil {
		err = errors.Wrap(err, "building logger")
		return session, cfg, logger, err
	}

	client, err := gateway.NewClient(ctx, cfg.GeminiAPIKey, cfg.GetModel(), logger)
	if err != nil {
		err = errors.Wrap(err, "connecting to model")
		return session, cfg, logger, err
	}

	session = explorer.NewSession(client, logger)
	return session, cfg, logger, err
}
