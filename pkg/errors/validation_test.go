package errors

import (
	"strings"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "postcard.png", false},
		{"nested file", "out/cards/0000000000000001.png", false},
		{"absolute file", "/tmp/card.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "foo\x00.png", true},
		{"control char", "foo\x01.png", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"trailing separator", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{10, false},
		{100000, false},
		{0, true},
		{-3, true},
		{100001, true},
	}

	for _, tt := range tests {
		err := ValidateCount(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCount(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}

func TestValidateFontSize(t *testing.T) {
	tests := []struct {
		size    float64
		wantErr bool
	}{
		{24, false},
		{0.5, false},
		{512, false},
		{0, true},
		{-1, true},
		{600, true},
	}

	for _, tt := range tests {
		err := ValidateFontSize(tt.size)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFontSize(%g) error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
	}
}
