package format

import (
	"time"

	"github.com/yuin/goldmark/util"
)

// DateTimeLayout renders as 2026/10/17 09:05:03.
const DateTimeLayout = "2006/01/02 15:04:05"

// EscapeHTML escapes s for safe inclusion in HTML text.
func EscapeHTML(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}

// DateTime formats t in loc. A nil loc means local time.
func DateTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateTimeLayout)
}

