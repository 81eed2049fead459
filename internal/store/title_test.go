package store

import (
	"errors"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"Milk", "Milk", nil},
		{"  Milk\t", "Milk", nil},
		{"1234567890", "1234567890", nil},
		{"12345678901", "", ErrTitleTooLong},
		{"", "", ErrTitleRequired},
		{" \n ", "", ErrTitleRequired},
	}
	for _, tt := range tests {
		got, err := ValidateTitle(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidateTitle(%q) err = %v, want %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ValidateTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleHint(t *testing.T) {
	tests := []struct {
		in        string
		kind      HintKind
		text      string
		canSubmit bool
	}{
		{"", HintEmpty, "Max length task title is 10 characters", false},
		{"   ", HintEmpty, "Max length task title is 10 characters", false},
		{"Milk", HintRemaining, "There are 6 characters to enter", true},
		{"1234567890", HintRemaining, "There are 0 characters to enter", true},
		{"12345678901", HintTooLong, "Task title is too long", false},
	}
	for _, tt := range tests {
		h := TitleHint(tt.in)
		if h.Kind != tt.kind {
			t.Errorf("TitleHint(%q).Kind = %v, want %v", tt.in, h.Kind, tt.kind)
		}
		if h.String() != tt.text {
			t.Errorf("TitleHint(%q) = %q, want %q", tt.in, h.String(), tt.text)
		}
		if h.CanSubmit() != tt.canSubmit {
			t.Errorf("TitleHint(%q).CanSubmit() = %v", tt.in, h.CanSubmit())
		}
	}
}
