package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/wynnapi/config"
	"github.com/s0up4200/wynnapi/filter"
	"github.com/s0up4200/wynnapi/wapi"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	client       *wapi.Client
	filters      *filter.Manager
	outputFormat string
	filterExpr   string

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wynnapi",
	Short: "Query the Wynncraft API from the command line",
	Long: `wynnapi is a read-only command line client for the Wynncraft v3 API.

Results can be printed as a table, JSON or YAML and narrowed down with
expr filters, for example:

  wynnapi leaderboard guildLevel --filter 'get("level") >= 100'
  wynnapi guilds --output json`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: reportRateLimit,
}

// SetVersion sets the build information reported by the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.config/wynnapi/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or preset name")
}

// initializeApp loads the configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if outputFormat != "" {
		if err := config.ValidateOutput(outputFormat); err != nil {
			return err
		}
		cfg.Output.Format = outputFormat
	}

	logger = setupLogger(cfg.Logging)

	opts := append(cfg.API.ClientOptions(), wapi.WithLogger(logger.With().Str("component", "wapi").Logger()))
	client, err = wapi.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("failed to create Wynncraft client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterAll(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func reportRateLimit(cmd *cobra.Command, args []string) error {
	if client == nil {
		return nil
	}
	status := client.RateLimitStatus()
	logger.Debug().
		Int("remaining", status.Remaining).
		Int("limit", status.Limit).
		Int64("reset_in", status.SecondsUntilReset).
		Msg("Rate limit status")
	return nil
}

// commandContext bounds a command by the configured request timeout and
// the retry budget.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	budget := cfg.API.RequestTimeout * time.Duration(cfg.API.MaxRetries+1)
	return context.WithTimeout(cmd.Context(), budget+time.Minute)
}
