package origin

import (
	"encoding/json"
	"fmt"
)

// #region record

// Record is the persisted/exchanged form of an Origin. Field names are
// the wire contract: the instrumentation layer produces these and the
// log stores them verbatim.
type Record struct {
	Action                string        `json:"action"`
	ActionDetails         string        `json:"actionDetails,omitempty"`
	Value                 string        `json:"value"`
	InputValueRefs        []InputRef    `json:"inputValueRefs"`
	InputCharacterOffsets []int         `json:"inputCharacterOffsets,omitempty"`
	ExtraCharsAdded       int           `json:"extraCharsAdded,omitempty"`
	ValueItems            []Segment     `json:"valueItems,omitempty"`
	CodeLocation          *CodeLocation `json:"codeLocation,omitempty"`
}

// #endregion record

// #region marshal

// MarshalRecord serializes an Origin into its persisted JSON form.
func MarshalRecord(o *Origin) ([]byte, error) {
	rec := Record{
		Action:                string(o.Action),
		ActionDetails:         o.ActionDetails,
		Value:                 o.Value,
		InputValueRefs:        o.Inputs,
		InputCharacterOffsets: o.InputOffsets,
		ExtraCharsAdded:       o.ExtraCharsAdded,
		ValueItems:            o.ValueItems,
		CodeLocation:          o.CodeLocation,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal origin record: %w", err)
	}
	return data, nil
}

// UnmarshalRecord parses a persisted record back into an Origin with
// the given id. Records from other processes are validated the same
// way New validates in-process construction.
func UnmarshalRecord(id string, data []byte) (*Origin, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal origin record %s: %w", id, err)
	}
	action := Action(rec.Action)
	if !action.Valid() {
		return nil, fmt.Errorf("%w: record %s has unknown action %q", ErrInvalidOrigin, id, rec.Action)
	}
	if len(rec.InputCharacterOffsets) > len(rec.InputValueRefs) {
		return nil, fmt.Errorf("%w: record %s has %d input offsets for %d inputs",
			ErrInvalidOrigin, id, len(rec.InputCharacterOffsets), len(rec.InputValueRefs))
	}

	return &Origin{
		ID:              id,
		Action:          action,
		ActionDetails:   rec.ActionDetails,
		Value:           rec.Value,
		Inputs:          rec.InputValueRefs,
		InputOffsets:    rec.InputCharacterOffsets,
		ExtraCharsAdded: rec.ExtraCharsAdded,
		ValueItems:      rec.ValueItems,
		CodeLocation:    rec.CodeLocation,
	}, nil
}

// #endregion marshal
