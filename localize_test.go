package main

import (
	"errors"
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatal(err)
	}
	return loc
}

func TestLocalize(t *testing.T) {
	chicago := mustLoad(t, "America/Chicago")
	kolkata := mustLoad(t, "Asia/Kolkata")

	tests := []struct {
		wall time.Time
		loc  *time.Location
		want int64
	}{
		{time.Date(1993, 5, 1, 4, 50, 0, 0, time.UTC), chicago, 736249800},
		{time.Date(1993, 5, 1, 4, 50, 0, 0, time.UTC), time.UTC, 736231800},
		{time.Date(2022, 4, 22, 13, 40, 9, 0, time.UTC), chicago, 1650652809},
		{time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC), chicago, 1641794400},
		// The location of wall itself is ignored.
		{time.Date(2022, 1, 10, 0, 0, 0, 0, kolkata), chicago, 1641794400},
		{time.Date(2022, 1, 10, 5, 30, 0, 0, time.UTC), kolkata, 1641772800},
		// Just either side of the Chicago transitions.
		{time.Date(2022, 3, 13, 1, 59, 59, 0, time.UTC), chicago, 1647158399},
		{time.Date(2022, 3, 13, 3, 0, 0, 0, time.UTC), chicago, 1647158400},
		{time.Date(2022, 11, 6, 2, 0, 0, 0, time.UTC), chicago, 1667721600},
	}
	for _, tt := range tests {
		got, err := localize(tt.wall, tt.loc)
		if err != nil {
			t.Errorf("localize(%v, %v): %v", tt.wall, tt.loc, err)
			continue
		}
		if got.Unix() != tt.want {
			t.Errorf("localize(%v, %v) = %d, want %d", tt.wall, tt.loc, got.Unix(), tt.want)
		}
		if got.Location() != tt.loc {
			t.Errorf("localize(%v, %v) returned location %v", tt.wall, tt.loc, got.Location())
		}
	}
}

func TestLocalizeTransitions(t *testing.T) {
	chicago := mustLoad(t, "America/Chicago")

	_, err := localize(time.Date(2022, 3, 13, 2, 30, 0, 0, time.UTC), chicago)
	if !errors.Is(err, ErrNonexistentLocalTime) || !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("spring forward gap: got %v", err)
	}

	_, err = localize(time.Date(2022, 11, 6, 1, 30, 0, 0, time.UTC), chicago)
	if !errors.Is(err, ErrAmbiguousLocalTime) || !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("fall back overlap: got %v", err)
	}
}
