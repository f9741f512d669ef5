package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name    string
		current string
		minimum string
		want    bool
	}{
		{"no minimum", "1.0.0", "", true},
		{"equal", "1.2.0", "1.2.0", true},
		{"newer", "1.3.1", "1.2.0", true},
		{"older", "1.1.9", "1.2.0", false},
		{"v prefix", "v2.0.0", "1.9.0", true},
		{"dev build", Version, "1.0.0", true},
		{"bad minimum", "1.0.0", "latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Satisfies(tt.current, tt.minimum))
		})
	}
}
