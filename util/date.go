package util

import (
	"fmt"
	"time"
)

// FormatDate renders t in the local time zone as "Y-M-D H:MM:SS".
// Year, month, day and hour carry no padding; minutes and seconds always
// use two digits. A zero time is formatted as the current time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	t = t.Local()
	return fmt.Sprintf("%d-%d-%d %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
