package pagesize

import (
	"testing"

	"github.com/kweiler/papergrid/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Size
		wantCode errors.Code
	}{
		{
			name:  "letter",
			input: "letter",
			want:  Size{612, 792},
		},
		{
			name:  "case insensitive",
			input: "Letter",
			want:  Size{612, 792},
		},
		{
			name:  "surrounding whitespace",
			input: " a4 ",
			want:  Size{595.28, 841.89},
		},
		{
			name:  "legal",
			input: "legal",
			want:  Size{612, 1008},
		},
		{
			name:     "unknown name",
			input:    "a7",
			wantCode: errors.ErrCodeInvalidPageSize,
		},
		{
			name:     "empty name",
			input:    "",
			wantCode: errors.ErrCodeInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.input)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Lookup(%q) error = %v, want code %v", tt.input, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	if got := Letter.Landscape(); got != (Size{792, 612}) {
		t.Errorf("Letter.Landscape() = %v, want {792 612}", got)
	}
	if got := Ledger.Landscape(); got != Ledger {
		t.Errorf("Ledger.Landscape() = %v, want unchanged %v", got, Ledger)
	}
	if got := Ledger.Portrait(); got != (Size{792, 1224}) {
		t.Errorf("Ledger.Portrait() = %v, want {792 1224}", got)
	}
	if got := Letter.Portrait(); got != Letter {
		t.Errorf("Letter.Portrait() = %v, want unchanged %v", got, Letter)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(registry) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(registry))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted at index %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	for _, name := range names {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) failed for listed name: %v", name, err)
		}
	}
}
