package hive

import (
	"encoding/json"
	"errors"
)

// ErrDeviceNotFound is returned when the listing has no heating record.
var ErrDeviceNotFound = errors.New("no heating device found on this account")

// FindHeating returns the first record of type "heating" in listing order.
// Accounts are expected to have exactly one; any later heating records are ignored.
func FindHeating(listing Listing) (*HeatingDevice, error) {
	for _, p := range listing {
		if p.Type != ProductTypeHeating {
			continue
		}

		var device HeatingDevice
		if err := json.Unmarshal(p.Raw(), &device); err != nil {
			return nil, NewParseError("failed to parse heating device", err)
		}
		return &device, nil
	}

	return nil, ErrDeviceNotFound
}
