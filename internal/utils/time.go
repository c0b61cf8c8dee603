package utils

import (
	"strings"
	"time"
	_ "time/tzdata" // display zone must resolve on hosts without zoneinfo
)

const (
	layoutDate    = "2006-01-02"
	layoutDisplay = "1/2/2006, 3:04:05 PM"

	DefaultDisplayZone = "Asia/Bangkok"
)

// LoadZone resolves an IANA zone name, falling back to Asia/Bangkok.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultDisplayZone
	}
	return time.LoadLocation(name)
}

// FormatInZone renders an RFC 3339 timestamp in loc as "11/15/2024, 8:30:00 AM".
// Unparseable input yields ok=false.
func FormatInZone(rfc3339 string, loc *time.Location) (string, bool) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(rfc3339))
	if err != nil {
		return "", false
	}
	return t.In(loc).Format(layoutDisplay), true
}

// FormatDate formats t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// CopyrightYear is the year shown in the footer.
func CopyrightYear(now time.Time) int {
	return now.Year()
}
