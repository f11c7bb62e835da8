package errors

import (
	"testing"
)

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		maxHeight int
		wantErr   bool
	}{
		{"valid", 10, 20, false},
		{"minimal", 1, 1, false},
		{"zero width", 0, 20, true},
		{"negative height", 10, -1, true},
		{"zero height", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds(tt.width, tt.maxHeight)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBounds(%d, %d) error = %v, wantErr %v", tt.width, tt.maxHeight, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"named", "red", false},
		{"dashed", "dark-blue", false},
		{"hex long", "#ff00aa", false},
		{"hex short", "#f0a", false},

		{"empty", "", true},
		{"space", "light blue", true},
		{"bad hex", "#zzzzzz", true},
		{"leading digit", "1red", true},
		{"too long", "abcdefghijklmnopqrstuvwxyzabcdefghij", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "scripts/demo.cups", false},
		{"absolute", "/tmp/demo.cups", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"trailing space", "demo.cups ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
