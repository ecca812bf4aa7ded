package validate

import "errors"

// Reasons a BookInput can be rejected. They are stable identifiers; the HTTP
// layer turns them into operator-facing messages.
const (
	ReasonMissingName       = "missing name"
	ReasonReadPageExceeds   = "readPage exceeds pageCount"
	ReasonNegativePageCount = "negative page count"
)

// Error is a rejected field set.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string { return e.Field + ": " + e.Reason }

// Is lets errors.Is(err, ErrInvalid) match any *Error.
func (e *Error) Is(target error) bool { return target == ErrInvalid }

var ErrInvalid = errors.New("invalid")

// Book checks a book payload. Order matters: a missing name is reported before
// a page mismatch, which is reported before negative counts.
func Book(name string, pageCount, readPage int) error {
	if name == "" {
		return &Error{Field: "name", Reason: ReasonMissingName}
	}
	if readPage > pageCount {
		return &Error{Field: "readPage", Reason: ReasonReadPageExceeds}
	}
	if pageCount < 0 || readPage < 0 {
		return &Error{Field: "pageCount", Reason: ReasonNegativePageCount}
	}
	return nil
}

// ParseFlag maps the two-valued query flags: "0" -> false, "1" -> true.
// Anything else means "don't filter" and returns nil.
func ParseFlag(raw string) *bool {
	switch raw {
	case "0":
		v := false
		return &v
	case "1":
		v := true
		return &v
	default:
		return nil
	}
}

// Reason extracts the rejection reason from err, or "" if err is not a validation error.
func Reason(err error) string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return ""
}
