package dnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareEVR(t *testing.T) {
	tests := []struct {
		name     string
		a        Package
		b        Package
		expected int
	}{
		{
			name:     "equal versions",
			a:        Package{Version: "2.45.1", Release: "1.fc40"},
			b:        Package{Version: "2.45.1", Release: "1.fc40"},
			expected: 0,
		},
		{
			name:     "numeric segments compare numerically, not lexically",
			a:        Package{Version: "1.10", Release: "1.fc40"},
			b:        Package{Version: "1.9", Release: "1.fc40"},
			expected: 1,
		},
		{
			name:     "epoch dominates version",
			a:        Package{Epoch: "1", Version: "0.1", Release: "1.fc40"},
			b:        Package{Version: "9.9", Release: "1.fc40"},
			expected: 1,
		},
		{
			name:     "missing epoch counts as zero",
			a:        Package{Version: "1.0", Release: "1.fc40"},
			b:        Package{Epoch: "0", Version: "1.0", Release: "1.fc40"},
			expected: 0,
		},
		{
			name:     "release breaks version ties",
			a:        Package{Version: "1.0", Release: "2.fc40"},
			b:        Package{Version: "1.0", Release: "10.fc40"},
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareEVR(tt.a, tt.b)
			switch {
			case tt.expected < 0:
				assert.Negative(t, result)
			case tt.expected > 0:
				assert.Positive(t, result)
			default:
				assert.Zero(t, result)
			}
		})
	}
}
