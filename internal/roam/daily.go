package roam

import "time"

// Daily pages use a fixed naming scheme: the title is the long-form date
// and the UID is the zero-padded MM-DD-YYYY form Roam assigns to daily
// notes. Both derive from the same instant, so two calls on the same
// calendar day resolve to the same page.

// dailyPageTitle returns the daily note title, e.g. "January 02, 2006".
func dailyPageTitle(t time.Time) string {
	return t.Format("January 02, 2006")
}

// dailyPageUID returns the daily note UID, e.g. "01-02-2006".
func dailyPageUID(t time.Time) string {
	return t.Format("01-02-2006")
}
