package main

import (
	"errors"

	"github.com/hheat/hheat/internal/config"
	"github.com/hheat/hheat/internal/heating"
	"github.com/hheat/hheat/internal/hive"
	"github.com/hheat/hheat/internal/session"
)

// Process exit codes
const (
	exitFailure  = 1
	exitConfig   = 2
	exitAuth     = 3
	exitNoDevice = 4
	exitMutation = 5
	exitUsage    = 64 // EX_USAGE
)

const usageLine = "Usage: hheat [off|manual|schedule|<temperature>] [--format detailed|json|yaml]"

// usageError marks command-line flag errors reported by cobra.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func isUsage(err error) bool {
	var ue *usageError
	return errors.As(err, &ue) || errors.Is(err, heating.ErrInvalidArgument)
}

func isConfig(err error) bool {
	return errors.Is(err, config.ErrConfigMissing) || errors.Is(err, config.ErrConfigMalformed)
}

func isMutation(err error) bool {
	var me *heating.MutationError
	return errors.As(err, &me)
}

func isAuth(err error) bool {
	var le *session.LoginError
	return errors.As(err, &le) || hive.IsAuthError(err) || hive.IsResponseError(err)
}

// exitCode maps an error to the process exit status.
// Mutation failures are checked before auth so a rejected update keeps its own code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case isUsage(err):
		return exitUsage
	case isConfig(err):
		return exitConfig
	case isMutation(err):
		return exitMutation
	case errors.Is(err, hive.ErrDeviceNotFound):
		return exitNoDevice
	case isAuth(err):
		return exitAuth
	default:
		return exitFailure
	}
}

func errorTitle(err error) string {
	switch {
	case isUsage(err):
		return "Invalid argument"
	case isConfig(err):
		return "Configuration error"
	case isMutation(err):
		return "Update failed"
	case errors.Is(err, hive.ErrDeviceNotFound):
		return "No heating device"
	case isAuth(err):
		return "Login failed"
	default:
		return "Request failed"
	}
}

func errorHints(err error) []string {
	switch {
	case isUsage(err):
		return []string{usageLine}
	case errors.Is(err, config.ErrConfigMissing):
		return []string{"Create ~/.hheat/conf.toml with username and password entries"}
	case errors.Is(err, config.ErrConfigMalformed):
		return []string{"~/.hheat/conf.toml must be TOML with string username and password entries"}
	case errors.Is(err, hive.ErrDeviceNotFound):
		return []string{"Check that a Hive heating thermostat is registered on this account"}
	default:
		return hive.TroubleshootingHints(err)
	}
}
