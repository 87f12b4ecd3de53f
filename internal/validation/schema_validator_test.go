package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "complete snapshot",
			data: `{"version":1,"generation":7,"balance":120,"total_earned":900,"total_taps":40,
				"owned_upgrades":{"tap-power":2},"completed_tasks":["join_channel"],
				"referral_count":1,"last_tick_at":"2025-01-01T12:00:00Z"}`,
		},
		{
			name: "minimal snapshot",
			data: `{"version":1,"balance":0,"total_earned":0}`,
		},
		{
			name:      "missing balance",
			data:      `{"version":1,"total_earned":0}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "fractional balance",
			data:      `{"version":1,"balance":1.5,"total_earned":0}`,
			wantError: true,
			errorMsg:  "/balance",
		},
		{
			name:      "owned count as string",
			data:      `{"version":1,"balance":0,"total_earned":0,"owned_upgrades":{"tap-power":"two"}}`,
			wantError: true,
			errorMsg:  "/owned_upgrades/tap-power",
		},
		{
			name:      "zero version",
			data:      `{"version":0,"balance":0,"total_earned":0}`,
			wantError: true,
			errorMsg:  "minimum",
		},
		{
			name:      "not json",
			data:      `{"version":`,
			wantError: true,
			errorMsg:  "parse document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshot([]byte(tt.data))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestRegistry_UnknownSchema(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	err = r.Validate("nope", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestRegistry_ReportsEveryViolation(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	err = r.Validate(SchemaSnapshot, []byte(`{"version":1,"balance":1.5,"total_earned":"lots"}`))

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, SchemaSnapshot, se.Schema)

	paths := make(map[string]bool)
	for _, v := range se.Violations {
		paths[v.Path] = true
	}
	assert.True(t, paths["/balance"], "violations: %v", se.Violations)
	assert.True(t, paths["/total_earned"], "violations: %v", se.Violations)
}

func TestViolation_String(t *testing.T) {
	assert.Equal(t, "(root): required", Violation{Keyword: "required"}.String())
	assert.Equal(t, "/balance: type", Violation{Path: "/balance", Keyword: "type"}.String())
}
