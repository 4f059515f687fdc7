package ui

import (
	"fmt"
	"time"
)

// RelTime formats how long ago ts was relative to now, coarsening with
// distance: seconds, minutes, hours, days, then the date itself.
func RelTime(now, ts time.Time) string {
	d := now.Sub(ts)
	switch {
	case d < 0:
		return "in the future"
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return ts.Format("2006-01-02")
	}
}
