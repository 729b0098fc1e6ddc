package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"spaces only", "   ", ""},
		{"leading and trailing", "  Lekki Phase 1  ", "Lekki Phase 1"},
		{"internal runs collapse", "Victoria   Island", "Victoria Island"},
		{"tabs and newlines", "Banana\t\nIsland", "Banana Island"},
		{"already clean", "Ikoyi", "Ikoyi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ada.Obi@Example.COM "); got != "ada.obi@example.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"+234 801 234 5678", "+2348012345678"},
		{"(0801) 234-5678", "08012345678"},
		{"0801.234.5678", "08012345678"},
		{"+2348012345678", "+2348012345678"},
		{"80+12345678", "8012345678"},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.input); got != tt.expected {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
