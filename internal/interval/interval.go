// Package interval holds the wall-clock arithmetic used by conflict
// detection: "HH:MM" strings compared as minute offsets over half-open
// intervals.
package interval

import (
	"strconv"
	"strings"
)

// ToMinutes converts a wall-clock "HH:MM" string to a minute offset
// from midnight. Input is expected to be well-formed; malformed parts
// count as zero. Callers validate format at the boundary.
func ToMinutes(hhmm string) int {
	h, m, _ := strings.Cut(hhmm, ":")
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	return hour*60 + minute
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) share more than a boundary instant. Touching windows
// (endA == startB) do not overlap, which is what makes back-to-back
// scheduling legal.
func Overlaps(startA, endA, startB, endB int) bool {
	return !(endA <= startB || endB <= startA)
}

// WindowsOverlap is Overlaps applied directly to "HH:MM" strings.
func WindowsOverlap(startA, endA, startB, endB string) bool {
	return Overlaps(ToMinutes(startA), ToMinutes(endA), ToMinutes(startB), ToMinutes(endB))
}
