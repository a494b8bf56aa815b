package valuemap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
)

// #region errors

// ErrOffsetOutOfRange marks a character index outside the mapped value.
var ErrOffsetOutOfRange = errors.New("offset out of range")

// #endregion errors

// #region builder

// Builder accumulates attribution segments while an operation assembles
// its output. AppendSegment must be called in output order, left to
// right; ordering is a precondition of how operations build strings,
// not something the builder re-checks.
type Builder struct {
	segments []origin.Segment
	length   int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// AppendSegment attributes the next len(text) output characters to the
// range starting at sourceOffset in the input's value. Adjacent
// segments from the same input with contiguous source ranges are
// merged.
func (b *Builder) AppendSegment(input origin.InputRef, sourceOffset int, text string) {
	n := len(text)
	if n == 0 {
		return
	}
	if last := len(b.segments) - 1; last >= 0 {
		prev := &b.segments[last]
		if prev.Input == input && prev.OriginOffset+prev.Length == sourceOffset {
			prev.Length += n
			b.length += n
			return
		}
	}
	b.segments = append(b.segments, origin.Segment{
		Input:        input,
		OriginOffset: sourceOffset,
		Length:       n,
	})
	b.length += n
}

// Len returns the total mapped output length so far.
func (b *Builder) Len() int { return b.length }

// Serialize returns the accumulated segments as persisted value items
// plus the input list extended with any tracked refs the segments use
// that the caller had not listed. The pair goes straight into
// origin.New.
func (b *Builder) Serialize(inputs []origin.InputRef) ([]origin.Segment, []origin.InputRef) {
	seen := make(map[string]bool, len(inputs))
	for _, ref := range inputs {
		if !ref.IsLiteral() {
			seen[ref.ID] = true
		}
	}
	// Extend a copy; appending to the caller's slice could clobber
	// its backing array.
	out := make([]origin.InputRef, len(inputs), len(inputs)+len(b.segments))
	copy(out, inputs)
	for _, seg := range b.segments {
		if seg.Input.IsLiteral() || seen[seg.Input.ID] {
			continue
		}
		seen[seg.Input.ID] = true
		out = append(out, seg.Input)
	}
	items := make([]origin.Segment, len(b.segments))
	copy(items, b.segments)
	return items, out
}

// #endregion builder

// #region map

// Map is the read-side view over a serialized segment list. Segments
// partition the value: starts are strictly increasing with no gaps.
type Map struct {
	segments []origin.Segment
	starts   []int // output offset where segments[i] begins
	length   int
}

// New builds a Map from persisted value items.
func New(segments []origin.Segment) (*Map, error) {
	m := &Map{segments: segments, starts: make([]int, len(segments))}
	for i, seg := range segments {
		if seg.Length <= 0 {
			return nil, fmt.Errorf("value map segment %d has length %d", i, seg.Length)
		}
		m.starts[i] = m.length
		m.length += seg.Length
	}
	return m, nil
}

// Len returns the total mapped length.
func (m *Map) Len() int { return m.length }

// ResolveAtOffset returns which input covers the output character at
// charIndex and the corresponding offset inside that input's value.
func (m *Map) ResolveAtOffset(charIndex int) (origin.InputRef, int, error) {
	if charIndex < 0 || charIndex >= m.length {
		return origin.InputRef{}, 0, fmt.Errorf("%w: index %d, mapped length %d",
			ErrOffsetOutOfRange, charIndex, m.length)
	}
	// First segment starting after charIndex, minus one.
	i := sort.Search(len(m.starts), func(i int) bool { return m.starts[i] > charIndex }) - 1
	seg := m.segments[i]
	return seg.Input, seg.OriginOffset + (charIndex - m.starts[i]), nil
}

// #endregion map
