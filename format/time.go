// Adapted from https://raw.githubusercontent.com/dustin/go-humanize/master/times.go

package format

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

type relTimeMagnitude struct {
	D      time.Duration
	Format string
	DivBy  time.Duration
}

var magnitudes = []relTimeMagnitude{
	{time.Second, "just now", time.Second},
	{2 * time.Second, "1s %s", 1},
	{time.Minute, "%ds %s", time.Second},
	{2 * time.Minute, "1m %s", 1},
	{time.Hour, "%dm %s", time.Minute},
	{2 * time.Hour, "1h %s", 1},
	{day, "%dh %s", time.Hour},
	{2 * day, "1d %s", 1},
	{week, "%dd %s", day},
	{2 * week, "1w %s", 1},
	{month, "%dw %s", week},
}

// Time formats a time into a short relative string: Time(someT) -> "3w ago".
// Anything older than a month falls back to an absolute date.
func Time(then time.Time) string {
	return relTime(then.UTC(), time.Now().UTC(), "ago", "from now")
}

func relTime(a, b time.Time, albl, blbl string) string {
	lbl := albl
	diff := b.Sub(a)

	if a.After(b) {
		lbl = blbl
		diff = a.Sub(b)
	}

	if diff >= magnitudes[len(magnitudes)-1].D {
		return a.Local().Format("Jan 2 2006")
	}

	n := sort.Search(len(magnitudes), func(i int) bool {
		return magnitudes[i].D > diff
	})
	if n >= len(magnitudes) {
		n = len(magnitudes) - 1
	}
	mag := magnitudes[n]

	if !strings.Contains(mag.Format, "%") {
		return mag.Format
	}

	if mag.DivBy == 1 {
		return fmt.Sprintf(mag.Format, lbl)
	}

	return fmt.Sprintf(mag.Format, diff/mag.DivBy, lbl)
}
