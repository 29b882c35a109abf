package normalizer

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"00:00:00", 0},
		{"00:00:10", 10},
		{"00:01:30", 90},
		{"01:02:03", 3723},
		{"2:5:7", 7507},
		{"00:90:00", 5400},
		{"9999:9999:9999", 36606339},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseDuration(tt.input); got != tt.expected {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidTimecode(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"00:00:10", true},
		{"1:2:3", true},
		{"00:10", false},
		{"00:00:00:01", false},
		{"aa:bb:cc", false},
		{"-1:00:00", false},
		{"00:00:1.5", false},
		{"", false},
		{"9999:9999:9999", true},
		{"123456789:00:00", false},
		{"00:00:12345", false},
	}

	for _, tt := range tests {
		if got := ValidTimecode(tt.input); got != tt.valid {
			t.Errorf("ValidTimecode(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestCleanTimecode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"~00:01:00", "00:01:00"},
		{"00:01:00~", "00:01:00"},
		{" ~ 00:01:00 ", "00:01:00"},
		{"00:01:00", "00:01:00"},
		{"~", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanTimecode(tt.input, "~"); got != tt.expected {
			t.Errorf("CleanTimecode(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
