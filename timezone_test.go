package main

import (
	"errors"
	"testing"
	"time"
)

func TestLoadZone(t *testing.T) {
	tests := map[string]string{
		"America/Chicago": "America/Chicago",
		"america/chicago": "America/Chicago",
		"chicago":         "America/Chicago",
		"CHICAGO":         "America/Chicago",
		"us/central":      "America/Chicago",
		"kolkata":         "Asia/Kolkata",
		"utc":             "UTC",
		" UTC ":           "UTC",
	}
	for name, want := range tests {
		loc, err := loadZone(name)
		if err != nil {
			t.Errorf("loadZone(%q): %v", name, err)
			continue
		}
		// Links may load under their own name; compare offsets instead.
		ref, _ := time.LoadLocation(want)
		at := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
		_, got := at.In(loc).Zone()
		_, exp := at.In(ref).Zone()
		if got != exp {
			t.Errorf("loadZone(%q) = %v, want %v", name, loc, want)
		}
	}
}

func TestLoadZoneUnknown(t *testing.T) {
	for _, name := range []string{"", "  ", "Nowhere/Special", "gotham"} {
		if _, err := loadZone(name); !errors.Is(err, ErrUnknownTimezone) {
			t.Errorf("loadZone(%q) = %v, want ErrUnknownTimezone", name, err)
		}
	}
}

func TestZoneNames(t *testing.T) {
	for key, zone := range zoneNames {
		if _, err := time.LoadLocation(zone); err != nil {
			t.Errorf("zoneNames[%q] = %q does not load: %v", key, zone, err)
		}
	}
}
