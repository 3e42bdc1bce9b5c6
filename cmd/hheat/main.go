// Hheat shows and changes the state of a Hive heating thermostat.
//
// It logs in to the Hive cloud API with the credentials in ~/.hheat/conf.toml,
// caches the session token in ~/.hheat/token, and reuses it until the API
// rejects it.
//
// Usage:
//
//	hheat                      show mode, temperature and target
//	hheat off|manual|schedule  change mode
//	hheat <temperature>        set the target temperature (°C)
//
// Set HHEAT_LOG_LEVEL=debug to trace the API calls on stderr.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/hheat/hheat/internal/heating"
	"github.com/hheat/hheat/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// Root command flags
type rootOptions struct {
	format string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hheat [off|manual|schedule|<temperature>]",
		Short: "Show or change the Hive heating thermostat",
		Long: `Show or change the state of a Hive heating thermostat.

Without arguments, prints the current mode, room temperature and target.
With off, manual or schedule, switches the heating mode.
With a number, sets the target temperature; if the heating is off it is
switched to manual at the same time.

Credentials are read from ~/.hheat/conf.toml:

  username = "me@example.com"
  password = "..."`,
		Example: `  # Show status
  hheat

  # Status for scripts
  hheat --format json

  # Turn the heating off
  hheat off

  # Set 20.5°
  hheat 20.5`,
		Version:       version.Full(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().StringVar(&opts.format, "format", heating.FormatDetailed, "Status output format (detailed, json, yaml)")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return cmd
}
