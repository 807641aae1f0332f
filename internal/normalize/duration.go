package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"

	"aicc-assembler/utils"
)

// maxHours is the whole number of hours a time.Duration can hold. Anything
// at or beyond it is treated as absent.
const maxHours = math.MaxInt64 / int64(time.Hour)

// Duration converts a max-time-allowed value into a time.Duration. The AICC
// "HH:MM:SS" form (seconds may carry a fraction) is tried first, then an
// ISO-8601 duration such as "PT1H30M". The boolean is false when neither
// form matches.
func Duration(raw string) (time.Duration, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if d, ok := parseClock(s); ok {
		return d, true
	}

	return parseISO(s)
}

// parseClock reads HH:MM:SS. Hours may use any number of digits; minutes
// and seconds must be below 60.
func parseClock(s string) (time.Duration, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}

	hours, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return 0, false
	}

	if hours >= uint64(maxHours) {
		return 0, false
	}

	minutes, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
	if err != nil || !utils.IsBelow(0, minutes, 60) {
		return 0, false
	}

	secText := strings.TrimSpace(parts[2])
	if secText == "" || strings.ContainsAny(secText, "+-eE") {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(secText, 64)
	if err != nil || !utils.IsBelow(0, seconds, 60) {
		return 0, false
	}

	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))

	return d, true
}

func parseISO(s string) (time.Duration, bool) {
	d, err := duration.Parse(s)
	if err != nil || d == nil {
		return 0, false
	}

	if d.Negative || !utils.IsBelow(0, isoHours(d), float64(maxHours)) {
		return 0, false
	}

	return d.ToTimeDuration(), true
}

// isoHours totals d in hours with the calendar lengths the duration package
// uses (365-day years, 730-hour months).
func isoHours(d *duration.Duration) float64 {
	return d.Years*365*24 + d.Months*730 + d.Weeks*7*24 + d.Days*24 +
		d.Hours + d.Minutes/60 + d.Seconds/3600
}
