package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force timezone to be NYC regardless of where the job runs, otherwise
// issues cut near midnight flip their month label depending on the
// server's region
func Now() time.Time {
	return time.Now().In(Location)
}

// MonthLabel renders the issue period, e.g. "February 2026".
func MonthLabel(t time.Time) string {
	return t.In(Location).Format("January 2006")
}

// IssueSlug renders the file-friendly issue date, e.g. "2026-02-01".
func IssueSlug(t time.Time) string {
	return t.In(Location).Format("2006-01-02")
}
