package phone

import "testing"

func TestIsPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		// Valid phone numbers
		{"10 digits", "5551234567", true},
		{"10 digits with dashes", "555-123-4567", true},
		{"10 digits with parens", "(555) 123-4567", true},
		{"10 digits with dots", "555.123.4567", true},
		{"11 digits with leading 1", "15551234567", true},
		{"E.164 format", "+15551234567", true},
		{"E.164 with spaces", "+1 555 123 4567", true},
		{"international", "+525512345678", true},

		// Invalid - emails
		{"simple email", "user@example.com", false},
		{"email with plus tag", "user+tag@example.com", false},
		{"numeric local part email", "5551234567@carrier.com", false},

		// Invalid - too short or garbage
		{"empty string", "", false},
		{"single digit", "5", false},
		{"letters only", "abcdefghij", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPhoneNumber(tt.input)
			if got != tt.expected {
				t.Errorf("IsPhoneNumber(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"10 digits plain", "5551234567", "+15551234567"},
		{"10 digits with dashes", "555-123-4567", "+15551234567"},
		{"10 digits with parens", "(555) 123-4567", "+15551234567"},
		{"already E.164", "+15551234567", "+15551234567"},
		{"email passthrough", "user@example.com", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
