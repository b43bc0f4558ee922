package darkdays

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBell is returned for bell times outside a single day
var ErrInvalidBell = errors.New("invalid bell time")

// BellTime is a first-bell start time in seconds after local midnight
type BellTime int

// NewBellTime builds a bell time from a wall-clock hour, minute and second
func NewBellTime(hour, minute, second int) BellTime {
	return BellTime((hour*60+minute)*60 + second)
}

// ParseBellTime parses H:MM or H:MM:SS in 24-hour time
func ParseBellTime(s string) (BellTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBell, s)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidBell, s)
		}
		fields[i] = n
	}
	if fields[0] > 23 || fields[1] > 59 || fields[2] > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBell, s)
	}

	return NewBellTime(fields[0], fields[1], fields[2]), nil
}

// Validate checks that b lies in [0, 86400)
func (b BellTime) Validate() error {
	if b < 0 || b >= 86400 {
		return fmt.Errorf("%w: %d seconds", ErrInvalidBell, int(b))
	}
	return nil
}

// Seconds returns the bell as seconds after midnight
func (b BellTime) Seconds() int {
	return int(b)
}

// String renders the bell as HH:MM:SS
func (b BellTime) String() string {
	s := int(b)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}
