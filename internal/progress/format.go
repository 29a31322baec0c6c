// Package progress formats the labels and elapsed-time lines printed by the
// bulk object commands.
package progress

import (
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// FormatDuration renders an elapsed days/seconds pair, e.g.
// "2 days 3 hours 34 mins". Anything under a minute is "less than 1 minute".
func FormatDuration(days, seconds int) string {
	if days == 0 && seconds < secondsPerMinute {
		return "less than 1 minute"
	}
	hours := seconds / secondsPerHour
	mins := (seconds % secondsPerHour) / secondsPerMinute
	return fmt.Sprintf("%d %s %d %s %d mins", days, plural(days, "day"), hours, plural(hours, "hour"), mins)
}

// FormatElapsed is FormatDuration for a time.Duration.
func FormatElapsed(d time.Duration) string {
	total := int(d / time.Second)
	return FormatDuration(total/86400, total%86400)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// Label builds the label shown next to an item. A non-empty label is returned
// as is. Otherwise "<verb> <name>" is used when it fits in half the terminal
// width, and "<verb> item" when it does not. Width is counted in runes.
func Label(label, name, verb string, width int) string {
	if label != "" {
		return label
	}
	if width <= 0 {
		width = DefaultWidth
	}
	full := verb + " " + name
	if utf8.RuneCountInString(full) > width/2 {
		return verb + " item"
	}
	return full
}

// TerminalWidth returns the column count of the terminal behind fd, or
// DefaultWidth when fd is not a terminal.
func TerminalWidth(fd uintptr) int {
	width, _, err := term.GetSize(int(fd))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
