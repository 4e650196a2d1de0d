package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hoursOf(values ...float64) []Hour {
	out := make([]Hour, len(values))
	for i, v := range values {
		out[i] = Hour{ID: i + 1, HourValue: v, Status: "active"}
	}
	return out
}

func TestSnapIndex(t *testing.T) {
	catalog := hoursOf(0.5, 1, 1.5, 2)

	tests := []struct {
		name  string
		probe float64
		want  int
	}{
		{"between entries picks nearer", 1.2, 1},
		{"exact match", 1.5, 2},
		{"below range clamps to first", 0.1, 0},
		{"above range clamps to last", 9, 3},
		{"midpoint tie keeps earlier entry", 0.75, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnapIndex(tt.probe, catalog))
		})
	}
}

func TestSnapIndex_EmptyCatalog(t *testing.T) {
	assert.Equal(t, -1, SnapIndex(1, nil))
}
