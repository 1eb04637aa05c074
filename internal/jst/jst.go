// Package jst provides calendar-date and timestamp helpers pinned to
// Japan Standard Time. A fixed UTC+9 offset is used on purpose so the
// binary never depends on the host's tzdata.
package jst

import "time"

// Location is the fixed UTC+9 zone used for every date computation and
// every displayed timestamp.
var Location = time.FixedZone("JST", 9*60*60)

// now is swapped out in tests to freeze the calendar.
var now = time.Now

// DaysAgo returns the calendar date (YYYY-MM-DD) that lies x days
// before "now" in JST. Negative x moves into the future, so
// DaysAgo(1) is yesterday and DaysAgo(-1) is tomorrow. The result is
// date-only and therefore stable for repeated calls within the same
// JST calendar day.
func DaysAgo(x int) string {
	return now().In(Location).AddDate(0, 0, -x).Format("2006-01-02")
}

// Format renders a parsed published time as "YYYY-MM-DD HH:MM" in JST.
// A nil input means the feed entry carried no parseable published time;
// the caller gets an empty string instead of an error so that one bad
// timestamp never sinks a whole result set.
func Format(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(Location).Format("2006-01-02 15:04")
}
