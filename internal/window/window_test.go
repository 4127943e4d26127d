package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          float32
	}{
		{"square", 1000, 1000, 1},
		{"wide", 1600, 800, 2},
		{"tall", 400, 800, 0.5},
		{"zero height", 800, 0, 1},
		{"zero width", 0, 600, 1},
		{"minimised", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aspectRatio(tt.width, tt.height))
		})
	}
}
