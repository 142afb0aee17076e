package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowAround(t *testing.T) {
	tests := []struct {
		name  string
		line  int
		start int
		end   int
	}{
		{"near top clamps to first line", 5, 1, 20},
		{"deep in file", 100, 85, 115},
		{"first line", 1, 1, 16},
		{"last line before clamp stops", 16, 1, 31},
		{"exactly at radius", 15, 1, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WindowAround(tt.line)
			assert.Equal(t, tt.start, w.Start)
			assert.Equal(t, tt.end, w.End)
		})
	}
}
