// SPDX-License-Identifier: GPL-2.0-or-later

package sol

import (
	"fmt"
)

// FormatError reports input that is not a well formed SOL file.
type FormatError struct {
	Offset int64 // position of the cursor when the problem was found
	Reason string
	Err    error // underlying read error, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sol: %s at offset %d: %v", e.Reason, e.Offset, e.Err)
	}
	return fmt.Sprintf("sol: %s at offset %d", e.Reason, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

type UnsupportedVersionError struct {
	Version int32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("sol: version %d is not supported (want %d..%d)", e.Version, minVersion, maxVersion)
}

// IndexError reports a cross reference that does not resolve. It is only
// produced by Validate.
type IndexError struct {
	Kind   string // record kind holding the reference
	Record int    // position of that record
	Field  string
	Index  int32
	Len    int // length of the referenced slice
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("sol: %s[%d].%s = %d out of range [0,%d)", e.Kind, e.Record, e.Field, e.Index, e.Len)
}

// ValueError reports a float field that can not describe geometry.
type ValueError struct {
	Kind   string
	Record int
	Field  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("sol: %s[%d].%s is not a usable value", e.Kind, e.Record, e.Field)
}
