package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 0, ToMinutes("00:00"))
	assert.Equal(t, 480, ToMinutes("08:00"))
	assert.Equal(t, 570, ToMinutes("09:30"))
	assert.Equal(t, 1439, ToMinutes("23:59"))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{"touching boundary is not a conflict", "09:00", "10:00", "10:00", "11:00", false},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"containment", "08:00", "12:00", "09:00", "10:00", true},
		{"identical windows", "08:00", "10:00", "08:00", "10:00", true},
		{"disjoint", "07:00", "08:00", "10:00", "11:00", false},
		{"reverse touching", "10:00", "11:00", "09:00", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowsOverlap(tt.startA, tt.endA, tt.startB, tt.endB)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	windows := [][2]int{{480, 600}, {540, 660}, {600, 720}, {0, 1440}, {420, 420}}
	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t,
				Overlaps(a[0], a[1], b[0], b[1]),
				Overlaps(b[0], b[1], a[0], a[1]),
				"overlap must be symmetric for %v vs %v", a, b)
		}
	}
}
