package main

//go:generate go run ./build

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

var ErrUnknownTimezone = errors.New("unknown timezone")

// loadZone resolves an IANA name ("America/Chicago"), a link ("US/Central")
// or a city ("chicago"), ignoring case.
func loadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownTimezone)
	}
	if strings.EqualFold(name, "utc") {
		return time.UTC, nil
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}
	if zone, ok := zoneNames[strings.ToLower(name)]; ok {
		if loc, err := time.LoadLocation(zone); err == nil {
			return loc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
}
