package core

import "fmt"

// ByteRange selects a byte window of a bulkdata resource. End is inclusive
// and optional; a nil End requests everything from Start onward. The zero
// ByteRange addresses the whole resource.
type ByteRange struct {
	Start int64
	End   *int64
}

// Validate checks the range invariants: a non-negative start and, when an
// end is given, end >= start.
func (r ByteRange) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("byte range start must be non-negative, got %d", r.Start)
	}
	if r.End != nil && *r.End < r.Start {
		return fmt.Errorf("byte range end %d precedes start %d", *r.End, r.Start)
	}
	return nil
}

// RangeHeader renders the Range header value for the byte range:
// "bytes=<start>-<end>" when an end is given, "bytes=<start>-" otherwise.
// The zero ByteRange renders the default "bytes=0-".
func (r ByteRange) RangeHeader() string {
	if r.End != nil {
		return fmt.Sprintf("bytes=%d-%d", r.Start, *r.End)
	}
	return fmt.Sprintf("bytes=%d-", r.Start)
}
