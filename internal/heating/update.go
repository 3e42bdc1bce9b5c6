package heating

import "github.com/hheat/hheat/internal/hive"

// ModeUpdate builds the request body for a mode change.
func ModeUpdate(mode hive.Mode) hive.HeatingUpdate {
	return hive.HeatingUpdate{Mode: mode}
}

// TargetUpdate builds the request body for a new target temperature. When the
// heating is OFF the update also switches it to MANUAL so the target takes effect.
func TargetUpdate(current hive.Mode, target float64) hive.HeatingUpdate {
	update := hive.HeatingUpdate{Target: &target}
	if current == hive.ModeOff {
		update.Mode = hive.ModeManual
	}
	return update
}
