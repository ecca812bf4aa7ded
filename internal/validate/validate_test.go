package validate_test

import (
	"errors"
	"testing"

	"github.com/5w1tchy/bookshelf-api/internal/validate"
)

func TestBook(t *testing.T) {
	tests := []struct {
		name      string
		book      string
		pageCount int
		readPage  int
		want      string
	}{
		{"valid", "Dune", 500, 120, ""},
		{"finished", "Dune", 500, 500, ""},
		{"empty shelf entry", "Pamphlet", 0, 0, ""},
		{"missing name", "", 10, 0, validate.ReasonMissingName},
		{"missing name wins over pages", "", 10, 20, validate.ReasonMissingName},
		{"read beyond count", "Dune", 10, 20, validate.ReasonReadPageExceeds},
		{"negative read page", "Dune", 10, -1, validate.ReasonNegativePageCount},
		{"negative page count", "Dune", -5, -5, validate.ReasonNegativePageCount},
		{"whitespace name is a name", " ", 1, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Book(tt.book, tt.pageCount, tt.readPage)
			if got := validate.Reason(err); got != tt.want {
				t.Errorf("Expected reason %q, got %q (err=%v)", tt.want, got, err)
			}
			if tt.want != "" && !errors.Is(err, validate.ErrInvalid) {
				t.Errorf("Expected errors.Is(err, ErrInvalid) for %v", err)
			}
		})
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want *bool
	}{
		{"0", boolPtr(false)},
		{"1", boolPtr(true)},
		{" 1 ", nil},
		{"", nil},
		{"true", nil},
		{"2", nil},
	}
	for _, tt := range tests {
		got := validate.ParseFlag(tt.raw)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseFlag(%q): expected nil, got %v", tt.raw, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("ParseFlag(%q): expected %v, got %v", tt.raw, *tt.want, got)
		}
	}
}

func TestReason_NonValidationError(t *testing.T) {
	if got := validate.Reason(errors.New("boom")); got != "" {
		t.Errorf("Expected empty reason, got %q", got)
	}
	if got := validate.Reason(nil); got != "" {
		t.Errorf("Expected empty reason for nil, got %q", got)
	}
}

func boolPtr(b bool) *bool { return &b }
