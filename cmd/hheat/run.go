package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hheat/hheat/internal/config"
	"github.com/hheat/hheat/internal/heating"
	"github.com/hheat/hheat/internal/hive"
	"github.com/hheat/hheat/internal/logging"
	"github.com/hheat/hheat/internal/session"
	"github.com/hheat/hheat/internal/tokenstore"
	"github.com/hheat/hheat/internal/ui"
)

// stderrIsTerminal decides whether confirmations and errors are styled.
var stderrIsTerminal = func() bool {
	return ui.IsTerminal(os.Stderr)
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	command, err := heating.ParseCommand(args)
	if err != nil {
		return err
	}
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	tokenPath, err := config.TokenPath()
	if err != nil {
		return err
	}

	client := hive.NewClientWithURL(cfg.Endpoint)
	manager := session.NewManager(client, tokenstore.New(tokenPath), cfg.Credentials())

	controller := &heating.Controller{
		Session: manager,
		Updater: client,
		Out:     cmd.OutOrStdout(),
		Format:  opts.format,
	}

	result, err := controller.Run(cmd.Context(), command)
	if err != nil {
		return err
	}

	logging.Debug("Command complete",
		zap.String("action", command.Action.String()),
		zap.Bool("relogged", manager.Relogged()),
	)

	if result.Update != nil && stderrIsTerminal() {
		fmt.Fprintln(cmd.ErrOrStderr(), confirmation(result).
			SetWidth(ui.GetTerminalWidth(os.Stderr)))
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case heating.FormatDetailed, heating.FormatJSON, heating.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q (use detailed, json or yaml)", heating.ErrInvalidArgument, format)
	}
}

// confirmation builds the success box for a mutation.
func confirmation(result *heating.Result) *ui.Result {
	update := result.Update

	title := "Heating updated"
	var details []ui.Detail
	if update.Target != nil {
		title = "Target set"
		details = append(details, ui.Detail{Key: "Target", Value: fmt.Sprintf("%.1f°", *update.Target)})
	}
	if update.Mode != "" {
		if update.Target == nil {
			title = "Mode set"
		}
		details = append(details, ui.Detail{Key: "Mode", Value: strings.ToLower(string(update.Mode))})
	}
	details = append(details, ui.Detail{Key: "Room", Value: fmt.Sprintf("%.1f°", result.Device.Props.Temperature)})

	return ui.NewSuccessResult(title, details...)
}

// reportError writes a failure box for err.
func reportError(w io.Writer, err error) {
	styled := stderrIsTerminal()

	result := ui.NewFailureResult(errorTitle(err), err, errorHints(err)).SetPlain(!styled)
	if styled {
		result.SetWidth(ui.GetTerminalWidth(os.Stderr))
	}
	fmt.Fprintln(w, result)
}
