package heating

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hheat/hheat/internal/hive"
	"github.com/hheat/hheat/internal/logging"
)

// Session supplies the product listing and the token it was fetched with.
type Session interface {
	Products(ctx context.Context) (hive.Listing, error)
	Token() string
}

// Updater sends a change to the heating node.
type Updater interface {
	UpdateHeating(ctx context.Context, token string, deviceID string, update hive.HeatingUpdate) error
}

// MutationError wraps a failed mode or target change.
type MutationError struct {
	Update hive.HeatingUpdate
	Err    error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("failed to update heating: %v", e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// Result describes what a command did.
type Result struct {
	Device *hive.HeatingDevice
	Update *hive.HeatingUpdate // nil for status
}

// Controller runs commands against the account's heating device.
type Controller struct {
	Session Session
	Updater Updater
	Out     io.Writer
	Format  string
}

// Run fetches the heating device and performs cmd. Status is written to Out;
// mutations write nothing.
func (c *Controller) Run(ctx context.Context, cmd Command) (*Result, error) {
	listing, err := c.Session.Products(ctx)
	if err != nil {
		return nil, err
	}

	device, err := hive.FindHeating(listing)
	if err != nil {
		return nil, err
	}

	logging.Debug("Resolved heating device",
		zap.String("device_id", device.ID),
		zap.String("mode", string(device.State.Mode)),
		zap.String("action", cmd.Action.String()),
	)

	result := &Result{Device: device}

	var update hive.HeatingUpdate
	switch cmd.Action {
	case ActionStatus:
		return result, WriteStatus(c.Out, device, c.Format)
	case ActionSetMode:
		update = ModeUpdate(cmd.Mode)
	case ActionSetTarget:
		update = TargetUpdate(device.State.Mode, cmd.Target)
	default:
		return nil, fmt.Errorf("unknown action %v", cmd.Action)
	}

	if err := c.Updater.UpdateHeating(ctx, c.Session.Token(), device.ID, update); err != nil {
		return nil, &MutationError{Update: update, Err: err}
	}

	result.Update = &update
	return result, nil
}
