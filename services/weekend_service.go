package services

import "time"

const (
	// how far ahead the wizard looks for a free weekend
	weekendHorizonDays = 120
	// a weekend still counts as free with up to this many busy hours
	maxBusyHours = 18.0
	weekendHours = 72.0
)

// BusyInterval is a half-open [Start, End) busy span in UTC
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WeekendWindow is a Friday 00:00 - Sunday 24:00 UTC span with its free time
type WeekendWindow struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	FreeHours float64   `json:"free_hours"`
	BusyHours float64   `json:"busy_hours"`
}

// FindFreeWeekend scans day by day from now and returns the first weekend
// window whose overlap with busy intervals leaves at least 54 free hours,
// or nil when the horizon is exhausted.
func FindFreeWeekend(now time.Time, busy []BusyInterval) *WeekendWindow {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := 0; i <= weekendHorizonDays; i++ {
		d := day.AddDate(0, 0, i)
		if d.Weekday() != time.Friday {
			continue
		}
		start := d
		end := d.AddDate(0, 0, 3) // Friday 00:00 + 72h = Monday 00:00

		busyHours := overlapHours(busy, start, end)
		if busyHours <= maxBusyHours {
			return &WeekendWindow{
				Start:     start,
				End:       end,
				FreeHours: weekendHours - busyHours,
				BusyHours: busyHours,
			}
		}
	}
	return nil
}

// overlapHours sums the overlap of every busy interval with [start, end)
func overlapHours(busy []BusyInterval, start, end time.Time) float64 {
	total := 0.0
	for _, b := range busy {
		from := b.Start
		if start.After(from) {
			from = start
		}
		to := b.End
		if end.Before(to) {
			to = end
		}
		if to.After(from) {
			total += to.Sub(from).Hours()
		}
	}
	return total
}
