package main

import (
	"errors"
	"fmt"
	"time"
)

var ErrConversion = errors.New("epoch out of range")

// MillisecondThreshold is the magnitude above which an epoch is taken to be
// in milliseconds. It is a heuristic: the comparison is strict, so exactly
// 1_000_000_000_000 is still seconds, and a genuine seconds value this far
// out (about 31700 years) cannot be expressed.
const MillisecondThreshold int64 = 1_000_000_000_000

// DateTimeLayout is the fixed rendering of an epoch, MM-DD-YYYY HH:MM:SS.
const DateTimeLayout = "01-02-2006 15:04:05"

// renderLimit bounds the seconds handed to time.Unix, far inside the range
// where its internal arithmetic cannot overflow. Years past 9999 render with
// more digits.
const renderLimit int64 = 1 << 62

// Rendering is an epoch formatted for display.
type Rendering struct {
	Text string
	// Milliseconds reports that the input was reinterpreted as milliseconds.
	Milliseconds bool
}

// EpochToDateTime renders epoch seconds (or milliseconds, see
// MillisecondThreshold) as DateTimeLayout in loc.
func EpochToDateTime(epoch int64, loc *time.Location) (Rendering, error) {
	if loc == nil {
		loc = time.UTC
	}
	var r Rendering
	if epoch > MillisecondThreshold || epoch < -MillisecondThreshold {
		epoch /= 1000
		r.Milliseconds = true
	}
	text, err := renderSeconds(epoch, loc)
	if err != nil {
		return Rendering{}, err
	}
	r.Text = text
	return r, nil
}

func renderSeconds(epoch int64, loc *time.Location) (string, error) {
	if epoch > renderLimit || epoch < -renderLimit {
		return "", fmt.Errorf("%w: %d", ErrConversion, epoch)
	}
	return time.Unix(epoch, 0).In(loc).Format(DateTimeLayout), nil
}
