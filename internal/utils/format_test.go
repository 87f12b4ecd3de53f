package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1250, "1.2K"},
		{999_999, "999.9K"},
		{3_400_000, "3.4M"},
		{5_670_000_000, "5.6B"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCompact(tt.value))
		})
	}
}

func TestFormatGrouped(t *testing.T) {
	assert.Equal(t, "0", FormatGrouped(0))
	assert.Equal(t, "999", FormatGrouped(999))
	assert.Equal(t, "1,234,567", FormatGrouped(1234567))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Boost Multiplier", TitleCase("boost-multiplier"))
	assert.Equal(t, "Join Channel", TitleCase("join_channel"))
}
