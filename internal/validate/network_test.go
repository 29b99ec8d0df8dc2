package validate

import (
	"testing"
)

// TestParseBindAddress tests bind address parsing and validation
func TestParseBindAddress(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{
			name:     "loopback with port",
			input:    "127.0.0.1:8909",
			wantHost: "127.0.0.1",
			wantPort: 8909,
		},
		{
			name:     "all interfaces",
			input:    "0.0.0.0:8080",
			wantHost: "0.0.0.0",
			wantPort: 8080,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "missing port",
			input:       "127.0.0.1",
			expectError: true,
		},
		{
			name:        "hostname not IP",
			input:       "localhost:8080",
			expectError: true,
		},
		{
			name:        "port out of range",
			input:       "127.0.0.1:99999",
			expectError: true,
		},
		{
			name:        "non numeric port",
			input:       "127.0.0.1:http",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseBindAddress(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseBindAddress(%q) = nil error, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBindAddress(%q) error = %v", tt.input, err)
			}
			if addr.Host != tt.wantHost || addr.Port != tt.wantPort {
				t.Errorf("ParseBindAddress(%q) = %s:%d, want %s:%d",
					tt.input, addr.Host, addr.Port, tt.wantHost, tt.wantPort)
			}
		})
	}
}

// TestNetworkAddressString tests host:port formatting
func TestNetworkAddressString(t *testing.T) {
	addr := NetworkAddress{Host: "10.0.0.1", Port: 8909}
	if got := addr.String(); got != "10.0.0.1:8909" {
		t.Errorf("String() = %q, want \"10.0.0.1:8909\"", got)
	}
}

// TestValidateField tests single-value validation rules
func TestValidateField(t *testing.T) {
	if err := ValidateField(8909, "required,min=1,max=65535"); err != nil {
		t.Errorf("ValidateField(8909) = %v, want nil", err)
	}
	if err := ValidateField(99999, "max=65535"); err == nil {
		t.Error("ValidateField(99999, max=65535) = nil, want error")
	}
	if err := ValidateField("10.0.0.1", "ip"); err != nil {
		t.Errorf("ValidateField(ip) = %v, want nil", err)
	}
	if err := ValidateField("not-an-ip", "ip"); err == nil {
		t.Error("ValidateField(not-an-ip) = nil, want error")
	}
}
