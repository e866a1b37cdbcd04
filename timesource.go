package clockface

import (
	"time"

	"github.com/rs/zerolog"
)

// Clock provides the current instant. Tests inject a fake clock to control
// time deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// TimeSource reads the current wall-clock time in a timezone. An empty
// timezone means local time.
type TimeSource interface {
	Now(timezone string) time.Time
}

// TimeSourceFunc adapts a function to a TimeSource.
type TimeSourceFunc func(timezone string) time.Time

// Now calls f(timezone).
func (f TimeSourceFunc) Now(timezone string) time.Time { return f(timezone) }

// ZoneSource is a TimeSource backed by a Clock and the IANA timezone
// database. Resolved locations are cached per name. Unknown names fall back
// to local time; this is not reported as an error.
//
// ZoneSource is not safe for concurrent use.
type ZoneSource struct {
	clock Clock
	log   zerolog.Logger
	zones map[string]*time.Location
}

// NewZoneSource creates a ZoneSource. A nil clock selects SystemClock.
func NewZoneSource(clock Clock, log zerolog.Logger) *ZoneSource {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ZoneSource{
		clock: clock,
		log:   log,
		zones: make(map[string]*time.Location),
	}
}

// Now returns the clock's current instant expressed in timezone.
func (s *ZoneSource) Now(timezone string) time.Time {
	return s.clock.Now().In(s.location(timezone))
}

// Location resolves a timezone name the way Now does.
func (s *ZoneSource) Location(timezone string) *time.Location {
	return s.location(timezone)
}

func (s *ZoneSource) location(timezone string) *time.Location {
	if timezone == "" {
		return time.Local
	}
	if loc, ok := s.zones[timezone]; ok {
		return loc
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		s.log.Debug().Err(err).Str("timezone", timezone).Msg("unknown timezone, using local time")
		loc = time.Local
	}
	s.zones[timezone] = loc
	return loc
}
