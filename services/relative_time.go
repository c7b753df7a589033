package services

import "time"

const (
	sameDayLayout = "15:04"
	olderLayout   = "02/01/2006"
	yesterday     = "Yesterday"
)

// FormatRelative renders ts for the chat list relative to now. Calendar days
// are taken in now's location: ts is converted there before comparing.
func FormatRelative(ts, now time.Time) string {
	local := ts.In(now.Location())

	if sameDay(local, now) {
		return local.Format(sameDayLayout)
	}

	y, m, d := now.Date()
	prev := time.Date(y, m, d-1, 12, 0, 0, 0, now.Location())
	if sameDay(local, prev) {
		return yesterday
	}
	return local.Format(olderLayout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
