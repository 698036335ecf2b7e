package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Offset converts a byte index to the uint32 form used by spans.
// Inputs larger than 4GiB are not supported and panic.
func Offset(n int) uint32 {
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return off
}

// SpanOf returns the span of text that starts at byte index start.
func SpanOf(start int, text string) Span {
	return Span{Start: Offset(start), End: Offset(start + len(text))}
}
