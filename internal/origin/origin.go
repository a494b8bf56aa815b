package origin

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// #region errors

// ErrInvalidOrigin marks a construction rejected before persistence.
var ErrInvalidOrigin = errors.New("invalid origin")

// #endregion errors

// #region options

// Options carries the optional fields of New.
type Options struct {
	ActionDetails   string
	InputOffsets    []int
	ExtraCharsAdded int
	ValueItems      []Segment
	CodeLocation    *CodeLocation
}

// #endregion options

// #region new

// New constructs an Origin. Pure: no I/O, id assigned here, never reused.
// Inputs must already be normalized (see NormalizeInput); New does not
// unwrap tracked values.
func New(action Action, value string, inputs []InputRef, opts Options) (*Origin, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidOrigin, string(action))
	}
	if len(opts.InputOffsets) > len(inputs) {
		return nil, fmt.Errorf("%w: %d input offsets for %d inputs",
			ErrInvalidOrigin, len(opts.InputOffsets), len(inputs))
	}
	if opts.ExtraCharsAdded < 0 {
		return nil, fmt.Errorf("%w: negative extraCharsAdded %d", ErrInvalidOrigin, opts.ExtraCharsAdded)
	}
	for i, seg := range opts.ValueItems {
		if seg.Length <= 0 || seg.OriginOffset < 0 {
			return nil, fmt.Errorf("%w: value item %d has offset %d length %d",
				ErrInvalidOrigin, i, seg.OriginOffset, seg.Length)
		}
	}

	return &Origin{
		ID:              uuid.New().String(),
		Action:          action,
		ActionDetails:   opts.ActionDetails,
		Value:           value,
		Inputs:          inputs,
		InputOffsets:    opts.InputOffsets,
		ExtraCharsAdded: opts.ExtraCharsAdded,
		ValueItems:      opts.ValueItems,
		CodeLocation:    opts.CodeLocation,
	}, nil
}

// #endregion new

// #region tracked

// Tracked pairs a plain string value with the origin that produced it.
// It is the explicit wrapper the instrumentation boundary passes around
// instead of invisible proxies.
type Tracked struct {
	Value  string
	Origin *Origin
}

// NormalizeInput is the single unwrapping step callers run before New.
// A Tracked value becomes a ref to its own origin; a plain string
// becomes an untracked literal. Anything else is rejected.
func NormalizeInput(v any) (InputRef, error) {
	switch t := v.(type) {
	case Tracked:
		if t.Origin == nil {
			return InputRef{}, fmt.Errorf("%w: tracked value without origin", ErrInvalidOrigin)
		}
		return RefTo(t.Origin.ID), nil
	case *Origin:
		if t == nil {
			return InputRef{}, fmt.Errorf("%w: nil origin input", ErrInvalidOrigin)
		}
		return RefTo(t.ID), nil
	case InputRef:
		return t, nil
	case string:
		return LiteralRef(t), nil
	default:
		return InputRef{}, fmt.Errorf("%w: unsupported input type %T", ErrInvalidOrigin, v)
	}
}

// #endregion tracked
