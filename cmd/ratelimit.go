package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wynnapi/wapi"
)

var ratelimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Show the current rate limit quota",
	Long: `Make a lightweight request and show the rate limit quota reported
by the API in its response headers.`,
	Args: cobra.NoArgs,
	RunE: runRateLimit,
}

func init() {
	rootCmd.AddCommand(ratelimitCmd)
}

// rateLimitRow is the printable form of a rate limit snapshot
type rateLimitRow struct {
	Remaining int    `json:"remaining"`
	Limit     int    `json:"limit"`
	ResetIn   int64  `json:"resetIn"`
	ResetAt   string `json:"resetAt,omitempty"`
}

func runRateLimit(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	probe := client.Leaderboards.Types(ctx)
	if probe.IsFailure() {
		logger.Warn().Str("error", probe.ErrorMessage()).Msg("Probe request failed, showing last known quota")
	}

	status := client.RateLimitStatus()
	row := rateLimitRow{
		Remaining: status.Remaining,
		Limit:     status.Limit,
		ResetIn:   status.SecondsUntilReset,
	}
	if status.ResetEpoch > 0 {
		row.ResetAt = status.ResetAt().Format(time.RFC3339)
	}

	return emit(ctx, cmd.OutOrStdout(), wapi.Success(row), view{
		columns: []string{"remaining", "limit", "resetIn", "resetAt"},
	})
}
