// Package config provides configuration validation tests for the nameforge CLI.
//
// Tests cover the flag validation run before any command executes:
// - Output format acceptance (table, json) and rejection of anything else
// - TLD list validation shared by the check and hunt commands
// - Empty TLD lists falling back to the defaults without error
package config

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		expectError bool
	}{
		{
			name:        "table_ok",
			output:      "table",
			expectError: false,
		},
		{
			name:        "json_ok",
			output:      "json",
			expectError: false,
		},
		{
			name:        "yaml_rejected",
			output:      "yaml",
			expectError: true,
		},
		{
			name:        "empty_rejected",
			output:      "",
			expectError: true,
		},
		{
			name:        "uppercase_rejected",
			output:      "JSON",
			expectError: true,
		},
	}

	original := Global.Output
	defer func() { Global.Output = original }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.Output = tt.output
			err := ValidateOutputFormat()
			if tt.expectError && err == nil {
				t.Errorf("ValidateOutputFormat() = nil for %q, want error", tt.output)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateOutputFormat() = %v for %q, want nil", err, tt.output)
			}
		})
	}
}

func TestValidateTLDFlags(t *testing.T) {
	tests := []struct {
		name        string
		tlds        []string
		expectError bool
	}{
		{
			name:        "empty_falls_back_to_defaults",
			tlds:        nil,
			expectError: false,
		},
		{
			name:        "valid_list",
			tlds:        []string{".com", ".io", ".dev"},
			expectError: false,
		},
		{
			name:        "missing_dot",
			tlds:        []string{"com"},
			expectError: true,
		},
		{
			name:        "uppercase_rejected",
			tlds:        []string{".COM"},
			expectError: true,
		},
		{
			name:        "bare_dot_rejected",
			tlds:        []string{"."},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTLDFlags(tt.tlds)
			if tt.expectError && err == nil {
				t.Errorf("ValidateTLDFlags(%v) = nil, want error", tt.tlds)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateTLDFlags(%v) = %v, want nil", tt.tlds, err)
			}
		})
	}
}
