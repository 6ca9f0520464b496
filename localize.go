package main

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPattern       = errors.New("invalid pattern")
	ErrNonexistentLocalTime = fmt.Errorf("%w: local time does not exist", ErrInvalidPattern)
	ErrAmbiguousLocalTime   = fmt.Errorf("%w: local time is ambiguous", ErrInvalidPattern)
)

const secondsPerDay = 24 * 60 * 60

// localize interprets the calendar fields of wall (whatever its location) as
// wall-clock time in loc. Wall-clock times skipped or repeated by a zone
// transition are refused rather than guessed.
func localize(wall time.Time, loc *time.Location) (time.Time, error) {
	year, month, day := wall.Date()
	hour, min, sec := wall.Clock()
	naive := time.Date(year, month, day, hour, min, sec, 0, time.UTC).Unix()

	// Any offset that can apply to this wall time is in effect within a day
	// of the naive instant.
	var candidates []int64
	seen := make(map[int]bool)
	for _, at := range []int64{naive - secondsPerDay, naive, naive + secondsPerDay} {
		_, offset := time.Unix(at, 0).In(loc).Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true
		instant := naive - int64(offset)
		if _, actual := time.Unix(instant, 0).In(loc).Zone(); actual == offset {
			candidates = append(candidates, instant)
		}
	}

	switch len(candidates) {
	case 0:
		return time.Time{}, fmt.Errorf("%w: %s in %s", ErrNonexistentLocalTime, wall.Format(time.DateTime), loc)
	case 1:
		return time.Unix(candidates[0], 0).In(loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %s in %s", ErrAmbiguousLocalTime, wall.Format(time.DateTime), loc)
	}
}
