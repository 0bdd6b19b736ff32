package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is reported when encoding text with no symbols.
	// There is no frequency to count, so no tree and no code table
	// can exist.
	ErrEmptyInput = errors.New("cannot encode empty input")

	// ErrCorruptData is reported when a decode consumes every payload
	// bit but is left with bits that match no code. The container's
	// codes and payload are inconsistent, or the payload is truncated.
	ErrCorruptData = errors.New("leftover bits after decoding")
)

// FormatError is reported when container bytes cannot be parsed:
// the declared header length exceeds the available bytes, the header
// is not the expected {codes, padding} shape, or one of its values is
// out of range.
type FormatError struct {
	Reason string
	Err    error // optional underlying cause
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid archive: %v: %v", e.Reason, e.Err)
	}
	return "invalid archive: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// UnknownSymbolError is reported when a symbol being encoded has no
// entry in the code table. The table is derived from the input's own
// frequencies, so this signals an inconsistent table, not bad input.
type UnknownSymbolError struct {
	Symbol rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("no code for symbol %q", e.Symbol)
}
