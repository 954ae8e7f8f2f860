package pmtable

import "fmt"

// UnsupportedVersionError reports a PM table format version with no
// registered layout. Raised before any byte of the blob is read.
type UnsupportedVersionError struct {
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported PM table version: %#x", e.Version)
}

// InvalidSizeError reports a blob shorter than the minimum required by
// the selected layout and core count.
type InvalidSizeError struct {
	Expected int // minimum byte length required
	Actual   int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid PM table size: expected at least %d bytes, got %d", e.Expected, e.Actual)
}
