package heating

import (
	"fmt"
	"math"
)

// Target temperature limits accepted by Hive thermostats, in °C.
const (
	MinTarget = 5.0
	MaxTarget = 32.0
)

// ValidateTarget validates a target temperature.
// Valid range is MinTarget-MaxTarget inclusive; NaN and infinities are rejected.
func ValidateTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return fmt.Errorf("%w: target temperature must be a finite number", ErrInvalidArgument)
	}
	if target < MinTarget || target > MaxTarget {
		return fmt.Errorf("%w: target temperature must be %.1f-%.1f°, got %.1f", ErrInvalidArgument, MinTarget, MaxTarget, target)
	}
	return nil
}
