package handlers

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nameforge-dev/nameforge/internal/config"
)

// TestNormalizeCheckInput tests request input normalization and validation
func TestNormalizeCheckInput(t *testing.T) {
	tests := []struct {
		name        string
		names       []string
		tlds        []string
		wantNames   []string
		wantTLDs    []string
		expectError bool
		description string
	}{
		{
			name:        "lowercased and trimmed",
			names:       []string{"  TaskIfy ", "forge"},
			tlds:        []string{".com"},
			wantNames:   []string{"taskify", "forge"},
			wantTLDs:    []string{".com"},
			expectError: false,
			description: "names are normalized before validation",
		},
		{
			name:        "empty tlds fall back to defaults",
			names:       []string{"taskify"},
			tlds:        nil,
			wantNames:   []string{"taskify"},
			wantTLDs:    config.DefaultTLDs,
			expectError: false,
			description: "no TLDs means the default list",
		},
		{
			name:        "two character name accepted",
			names:       []string{"go"},
			tlds:        []string{".dev"},
			wantNames:   []string{"go"},
			wantTLDs:    []string{".dev"},
			expectError: false,
			description: "user-supplied names may be shorter than generated ones",
		},
		{
			name:        "sixty three character name accepted",
			names:       []string{strings.Repeat("a", config.MaxCheckNameLen)},
			tlds:        []string{".com"},
			wantNames:   []string{strings.Repeat("a", config.MaxCheckNameLen)},
			wantTLDs:    []string{".com"},
			expectError: false,
			description: "DNS label limit is the upper bound",
		},
		{
			name:        "single character rejected",
			names:       []string{"x"},
			tlds:        []string{".com"},
			expectError: true,
			description: "below the minimum check length",
		},
		{
			name:        "over label limit rejected",
			names:       []string{strings.Repeat("a", config.MaxCheckNameLen+1)},
			tlds:        []string{".com"},
			expectError: true,
			description: "64 characters exceeds a DNS label",
		},
		{
			name:        "invalid tld rejected",
			names:       []string{"taskify"},
			tlds:        []string{"com"},
			expectError: true,
			description: "TLDs must carry the leading dot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, tlds, err := normalizeCheckInput(tt.names, tt.tlds)

			if tt.expectError {
				if err == nil {
					t.Errorf("normalizeCheckInput() = nil error: %s", tt.description)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeCheckInput() error = %v: %s", err, tt.description)
			}
			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("names = %v, want %v", names, tt.wantNames)
			}
			if !reflect.DeepEqual(tlds, tt.wantTLDs) {
				t.Errorf("tlds = %v, want %v", tlds, tt.wantTLDs)
			}
		})
	}
}
