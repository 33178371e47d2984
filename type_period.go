package cashflow

import (
	"fmt"
	"strings"
)

// Period selects the reporting window used when listing business entries.
type Period int

const (
	// AllTime places no lower bound on the window.
	AllTime Period = iota
	// Daily covers today only.
	Daily
	// Weekly covers the last seven days.
	Weekly
	// Cycle covers the rolling business cycle starting on the configured
	// cycle day of the current or previous month.
	Cycle
)

func (p Period) String() string {
	switch p {
	case AllTime:
		return "all"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Cycle:
		return "monthly"
	default:
		return "periodic"
	}
}

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "all", "":
		return AllTime, nil
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month", "cycle":
		return Cycle, nil
	default:
		return 0, fmt.Errorf("unknown period: %q", s)
	}
}
