package main

import (
	"fmt"
	"strconv"
	"time"
)

// Stage is one tier of string to epoch resolution.
type Stage int

const (
	StageCustom Stage = iota
	StageTime
	StageDate
	StageDateTime
	StageTimeDate
	StageKeyword
)

func (s Stage) String() string {
	switch s {
	case StageCustom:
		return "custom"
	case StageTime:
		return "time"
	case StageDate:
		return "date"
	case StageDateTime:
		return "datetime"
	case StageTimeDate:
		return "timedate"
	case StageKeyword:
		return "keyword"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Stages returns the resolution tiers in the order they are tried. The first
// stage to match wins; later stages are never consulted.
func Stages() []Stage {
	return []Stage{
		StageCustom,
		StageTime,
		StageDate,
		StageDateTime,
		StageTimeDate,
		StageKeyword,
	}
}

// Match describes how an input was resolved.
type Match struct {
	Epoch   int64
	Stage   Stage
	Pattern string
}

// Resolver turns date/time text into epoch seconds. A Resolver is read-only
// once built and safe for concurrent use.
type Resolver struct {
	Location     *time.Location
	CustomTokens []string
	Now          func() time.Time
}

func NewResolver(loc *time.Location, customTokens []string) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{
		Location:     loc,
		CustomTokens: customTokens,
		Now:          time.Now,
	}
}

// ParseArg resolves input and returns the epoch seconds as a decimal string.
func (r *Resolver) ParseArg(input string) (string, error) {
	m, err := r.Resolve(input)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(m.Epoch, 10), nil
}

// Resolve tries each stage in order and returns the first match.
func (r *Resolver) Resolve(input string) (Match, error) {
	for _, stage := range Stages() {
		m, ok, err := r.tryStage(stage, input)
		if err != nil {
			return Match{}, err
		}
		if ok {
			return m, nil
		}
	}
	return Match{}, fmt.Errorf("%w: %q", ErrInvalidPattern, input)
}

func (r *Resolver) tryStage(stage Stage, input string) (Match, bool, error) {
	switch stage {
	case StageCustom:
		return r.tryPatterns(stage, input, r.customPatterns())
	case StageTime:
		return r.tryPatterns(stage, input, eachOf(timePatterns))
	case StageDate:
		return r.tryPatterns(stage, input, eachOf(datePatterns))
	case StageDateTime:
		return r.tryPatterns(stage, input, DateTimePatterns())
	case StageTimeDate:
		return r.tryPatterns(stage, input, TimeDatePatterns())
	case StageKeyword:
		return r.tryKeyword(input)
	}
	return Match{}, false, fmt.Errorf("unknown stage %v", stage)
}

// customPatterns yields the caller's tokens in order. Tokens that do not
// compile are skipped.
func (r *Resolver) customPatterns() func(yield func(FormatPattern) bool) {
	return func(yield func(FormatPattern) bool) {
		for _, token := range r.CustomTokens {
			p, err := newCustomPattern(token)
			if err != nil {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func eachOf(patterns []FormatPattern) func(yield func(FormatPattern) bool) {
	return func(yield func(FormatPattern) bool) {
		for _, p := range patterns {
			if !yield(p) {
				return
			}
		}
	}
}

// tryPatterns returns the first pattern in seq that parses input. Once a
// pattern has parsed, a localization failure ends the search.
func (r *Resolver) tryPatterns(stage Stage, input string, seq func(yield func(FormatPattern) bool)) (Match, bool, error) {
	var (
		match   Match
		matched bool
		err     error
	)
	seq(func(p FormatPattern) bool {
		parsed, perr := time.Parse(p.Layout, input)
		if perr != nil {
			return true
		}
		if p.hour12 && !validHour12(p.expr, input) {
			return true
		}
		var epoch int64
		epoch, err = r.instant(p, parsed)
		if err == nil {
			match = Match{Epoch: epoch, Stage: stage, Pattern: p.Directive}
			matched = true
		}
		return false
	})
	if err != nil {
		return Match{}, false, fmt.Errorf("%q with %s pattern: %w", input, stage, err)
	}
	return match, matched, nil
}

// instant anchors the fields a pattern parsed and converts them to epoch
// seconds. Zone-aware patterns already name their instant.
func (r *Resolver) instant(p FormatPattern, parsed time.Time) (int64, error) {
	wall := parsed
	if p.shortYear && wall.Year() == 1969 {
		// time.Parse puts 69 in 1969; two digit years up to 69 are 20xx.
		wall = wall.AddDate(100, 0, 0)
	}
	if p.Kind == KindTime {
		// A bare time belongs to today's date in UTC, whatever the target zone.
		year, month, day := r.Now().UTC().Date()
		hour, min, sec := parsed.Clock()
		wall = time.Date(year, month, day, hour, min, sec, 0, parsed.Location())
	}
	if p.Zoned {
		return wall.Unix(), nil
	}
	local, err := localize(wall, r.Location)
	if err != nil {
		return 0, err
	}
	return local.Unix(), nil
}

// Keywords are case-sensitive and relative to the current instant, not to
// the target zone's calendar day.
var keywordOffsets = map[string]time.Duration{
	"yesterday": -24 * time.Hour,
	"now":       0,
	"tomorrow":  24 * time.Hour,
}

func (r *Resolver) tryKeyword(input string) (Match, bool, error) {
	offset, ok := keywordOffsets[input]
	if !ok {
		return Match{}, false, nil
	}
	return Match{
		Epoch:   r.Now().Add(offset).Unix(),
		Stage:   StageKeyword,
		Pattern: input,
	}, true, nil
}
