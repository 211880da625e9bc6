package glucose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxCarbsAndLabel(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		maxCarbs int
		label    string
	}{
		{"well above high threshold", 12.3, 35, "High"},
		{"exactly high threshold", 8.0, 35, "High"},
		{"just below high threshold", 7.9, 55, "In Range"},
		{"middle of range", 6.5, 55, "In Range"},
		{"just above low threshold", 4.1, 55, "In Range"},
		{"exactly low threshold", 4.0, 80, "Low"},
		{"below low threshold", 2.8, 80, "Low"},
		{"negative value not rejected", -1.0, 80, "Low"},
		{"absurdly high value not rejected", 99.0, 35, "High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.maxCarbs, MaxCarbs(tt.value))
			assert.Equal(t, tt.label, Label(tt.value))
		})
	}
}
