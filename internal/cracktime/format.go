package cracktime

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Bucket boundaries in seconds.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 604800
	secondsPerMonth  = 2629746  // mean Gregorian month
	secondsPerYear   = 31556952 // mean Gregorian year
)

// FormatSeconds renders a crack-time projection as a human string. Large
// values lose precision on purpose: years round to the nearest 10, 100,
// or 1000 as they grow, switch to a "K years" suffix past 10,000, and
// cap at "1M+ years".
func FormatSeconds(s float64) string {
	switch {
	case math.IsNaN(s) || math.IsInf(s, 0):
		return "virtually forever"
	case s < 0.001:
		return "instantly"
	case s < 1:
		return "less than a second"
	case s < secondsPerMinute:
		return plural(int64(math.Round(s)), "second")
	case s < secondsPerHour:
		return plural(int64(math.Round(s/secondsPerMinute)), "minute")
	case s < secondsPerDay:
		return plural(int64(math.Round(s/secondsPerHour)), "hour")
	case s < secondsPerWeek:
		return plural(int64(math.Round(s/secondsPerDay)), "day")
	case s < secondsPerMonth:
		return plural(int64(math.Round(s/secondsPerWeek)), "week")
	case s < secondsPerYear:
		return plural(int64(math.Round(s/secondsPerMonth)), "month")
	}

	years := s / secondsPerYear
	switch {
	case years > 1_000_000:
		return "1M+ years"
	case years >= 10_000:
		return fmt.Sprintf("%sK years", humanize.Comma(int64(math.Round(years/1000))))
	case years >= 1_000:
		return plural(int64(math.Round(years/100))*100, "year")
	case years >= 100:
		return plural(int64(math.Round(years/10))*10, "year")
	default:
		return plural(int64(math.Round(years)), "year")
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(n), unit)
}
