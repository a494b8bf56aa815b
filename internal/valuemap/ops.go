package valuemap

import (
	"strings"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
)

// Segment constructors for the string operations the instrumentation
// layer reports. Offsets are byte offsets into the source value.

// #region slice

// NormalizeSliceBounds maps slice-style begin/end arguments onto
// [0, length]: negative indices count from the end, everything is
// clamped, and an inverted range collapses to empty.
func NormalizeSliceBounds(length, begin, end int) (int, int) {
	if begin < 0 {
		begin += length
	}
	if end < 0 {
		end += length
	}
	begin = clamp(begin, 0, length)
	end = clamp(end, 0, length)
	if end < begin {
		end = begin
	}
	return begin, end
}

// SliceSegment attributes a slice(begin, end) result to its source:
// exactly one segment covering the extracted range.
func SliceSegment(src origin.InputRef, value string, begin, end int) (string, []origin.Segment) {
	start, stop := NormalizeSliceBounds(len(value), begin, end)
	if start == stop {
		return "", nil
	}
	return value[start:stop], []origin.Segment{
		{Input: src, OriginOffset: start, Length: stop - start},
	}
}

// SubstrSegment is SliceSegment for substr(begin, length) arguments.
// A negative begin counts from the end; length saturates at the end of
// the value.
func SubstrSegment(src origin.InputRef, value string, begin, length int) (string, []origin.Segment) {
	if begin < 0 {
		begin += len(value)
	}
	begin = clamp(begin, 0, len(value))
	if length < 0 {
		length = 0
	}
	end := begin + length
	if end > len(value) {
		end = len(value)
	}
	return SliceSegment(src, value, begin, end)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion slice

// #region split

// SplitPart is one fragment of a split result with its attribution:
// a single segment covering a contiguous range of the source, with
// separator lengths skipped between consecutive parts.
type SplitPart struct {
	Fragment string
	Segments []origin.Segment
}

// SplitSegments attributes each split(sep) fragment to its range in
// the source value. Empty fragments carry no segments (there is no
// character to attribute).
func SplitSegments(src origin.InputRef, value, sep string) []SplitPart {
	if sep == "" {
		// Degenerate split: every character is its own fragment.
		parts := make([]SplitPart, 0, len(value))
		for i := 0; i < len(value); i++ {
			parts = append(parts, SplitPart{
				Fragment: value[i : i+1],
				Segments: []origin.Segment{{Input: src, OriginOffset: i, Length: 1}},
			})
		}
		return parts
	}

	var parts []SplitPart
	offset := 0
	for _, frag := range strings.Split(value, sep) {
		part := SplitPart{Fragment: frag}
		if len(frag) > 0 {
			part.Segments = []origin.Segment{{Input: src, OriginOffset: offset, Length: len(frag)}}
		}
		parts = append(parts, part)
		offset += len(frag) + len(sep)
	}
	return parts
}

// #endregion split

// #region replace

// ReplaceSegments attributes a replace-all result: unchanged spans keep
// their attribution to the source, replaced spans are attributed to the
// replacement's own ref (a logged origin or an untracked literal).
func ReplaceSegments(src origin.InputRef, value, old, repl string, replRef origin.InputRef) (string, []origin.Segment) {
	if old == "" || !strings.Contains(value, old) {
		if value == "" {
			return "", nil
		}
		return value, []origin.Segment{{Input: src, OriginOffset: 0, Length: len(value)}}
	}

	b := NewBuilder()
	var out strings.Builder
	offset := 0
	for {
		i := strings.Index(value[offset:], old)
		if i < 0 {
			break
		}
		if i > 0 {
			b.AppendSegment(src, offset, value[offset:offset+i])
			out.WriteString(value[offset : offset+i])
		}
		b.AppendSegment(replRef, 0, repl)
		out.WriteString(repl)
		offset += i + len(old)
	}
	if offset < len(value) {
		b.AppendSegment(src, offset, value[offset:])
		out.WriteString(value[offset:])
	}
	items, _ := b.Serialize(nil)
	return out.String(), items
}

// #endregion replace

// #region concat

// ConcatSegments attributes a concatenation result: one segment per
// non-empty piece, in order, each covering its piece from offset 0.
func ConcatSegments(pieces []string, refs []origin.InputRef) (string, []origin.Segment) {
	b := NewBuilder()
	var out strings.Builder
	for i, p := range pieces {
		b.AppendSegment(refs[i], 0, p)
		out.WriteString(p)
	}
	items, _ := b.Serialize(nil)
	return out.String(), items
}

// #endregion concat
