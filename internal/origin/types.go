package origin

// #region action

// Action names the operation that produced an origin's value.
// The set is closed: the engine matches on these exhaustively and
// rejects anything else at construction time.
type Action string

const (
	ActionStringLiteral   Action = "String Literal"
	ActionSliceCall       Action = "Slice Call"
	ActionSubstrCall      Action = "Substr Call"
	ActionSplitCall       Action = "Split Call"
	ActionReplaceCall     Action = "Replace Call"
	ActionConcat          Action = "Concat"
	ActionJSONParseResult Action = "JSON.parse Result"
	ActionReadProperty    Action = "Read Property"
	ActionReadElement     Action = "Read Element"
	ActionDynamicScript   Action = "Dynamic Script"
	ActionUntrackedInput  Action = "Untracked Input"
)

// Valid reports whether a is one of the supported action kinds.
func (a Action) Valid() bool {
	switch a {
	case ActionStringLiteral, ActionSliceCall, ActionSubstrCall,
		ActionSplitCall, ActionReplaceCall, ActionConcat,
		ActionJSONParseResult, ActionReadProperty, ActionReadElement,
		ActionDynamicScript, ActionUntrackedInput:
		return true
	}
	return false
}

func (a Action) String() string { return string(a) }

// #endregion action

// #region input-ref

// InputRef points at one input that contributed to an origin's value:
// either a previously logged origin (by id) or an inline literal the
// instrumentation layer never tracked.
type InputRef struct {
	ID      string `json:"id,omitempty"`
	Literal string `json:"literal,omitempty"`
}

// IsLiteral reports whether the ref carries an inline untracked literal
// rather than a logged origin id.
func (r InputRef) IsLiteral() bool { return r.ID == "" }

// RefTo builds an InputRef to a logged origin.
func RefTo(id string) InputRef { return InputRef{ID: id} }

// LiteralRef builds an InputRef carrying an untracked literal value.
func LiteralRef(text string) InputRef { return InputRef{Literal: text} }

// #endregion input-ref

// #region code-location

// CodeLocation is the position in instrumented code recorded when the
// operation ran. It refers to transformed code; mapping it back to
// original source is the resolver's job.
type CodeLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// #endregion code-location

// #region segment

// Segment is one entry of a serialized value map: the range
// [OriginOffset, OriginOffset+Length) of the input's value was copied
// into the next Length characters of the output, in output order.
type Segment struct {
	Input        InputRef `json:"input"`
	OriginOffset int      `json:"originOffset"`
	Length       int      `json:"length"`
}

// #endregion segment

// #region origin

// Origin is the immutable record of one value-producing operation and
// its inputs. Once appended to the log it is never modified.
type Origin struct {
	ID              string
	Action          Action
	ActionDetails   string
	Value           string
	Inputs          []InputRef
	InputOffsets    []int // optional per-input starting offset into the input's value
	ExtraCharsAdded int   // fixed-width decoration inserted before the tracked content
	ValueItems      []Segment
	CodeLocation    *CodeLocation
}

// IsRoot reports whether the origin has nothing to walk back to:
// no inputs and no value map. Traversal terminates here.
func (o *Origin) IsRoot() bool {
	return len(o.Inputs) == 0 && len(o.ValueItems) == 0
}

// #endregion origin
