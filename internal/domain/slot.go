package domain

import (
	"fmt"
	"time"
)

const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// SlotInstant combines a date part and a clock part into the single absolute
// instant a slot is keyed on. All slots live in UTC.
func SlotInstant(date, clock string) (time.Time, error) {
	t, err := time.Parse(DateFormat+" "+TimeFormat, fmt.Sprintf("%s %s", date, clock))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
