package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/traverse"
)

// #region types

// Outcome is the result of checking one fixture expectation.
type Outcome struct {
	StartID   string
	CharIndex int
	Pass      bool
	Detail    string // empty when Pass
}

// Summary aggregates a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// #endregion types

// #region load

// LoadRecords serializes fixture records and appends them to the log
// as one batch.
func LoadRecords(ctx context.Context, f *Fixture, store *oplog.Store) error {
	entries := make([]oplog.Entry, 0, len(f.Records))
	for _, r := range f.Records {
		data, err := json.Marshal(r.Record)
		if err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}
		entries = append(entries, oplog.Entry{ID: r.ID, Record: data})
	}
	if err := store.Append(ctx, entries); err != nil {
		return fmt.Errorf("load fixture records: %w", err)
	}
	return nil
}

// #endregion load

// #region replay

// Replay loads a fixture into the store and walks every expectation,
// comparing the produced chain step by step.
func Replay(ctx context.Context, f *Fixture, store *oplog.Store, engine *traverse.Engine) ([]Outcome, Summary, error) {
	if err := LoadRecords(ctx, f, store); err != nil {
		return nil, Summary{}, err
	}

	outcomes := make([]Outcome, 0, len(f.Expectations))
	for _, exp := range f.Expectations {
		outcomes = append(outcomes, check(ctx, exp, engine))
	}
	return outcomes, Summarize(outcomes), nil
}

func check(ctx context.Context, exp FixtureExpectation, engine *traverse.Engine) Outcome {
	out := Outcome{StartID: exp.StartID, CharIndex: exp.CharIndex}

	res, err := engine.Traverse(ctx, exp.StartID, exp.CharIndex)
	terminal := terminalOf(res, err)
	if err != nil && terminal == "" {
		out.Detail = fmt.Sprintf("traverse: %v", err)
		return out
	}

	want := exp.Terminal
	if want == "" {
		want = "complete"
	}
	if terminal != want {
		out.Detail = fmt.Sprintf("terminal %s, want %s", terminal, want)
		return out
	}
	if len(res.Steps) != len(exp.Chain) {
		out.Detail = fmt.Sprintf("chain length %d, want %d", len(res.Steps), len(exp.Chain))
		return out
	}
	for i, step := range res.Steps {
		if step.Origin.ID != exp.Chain[i].OriginID || step.CharIndex != exp.Chain[i].CharIndex {
			out.Detail = fmt.Sprintf("step %d is %s@%d, want %s@%d",
				i, step.Origin.ID, step.CharIndex, exp.Chain[i].OriginID, exp.Chain[i].CharIndex)
			return out
		}
	}
	out.Pass = true
	return out
}

func terminalOf(res traverse.Result, err error) string {
	switch {
	case err == nil && res.Complete:
		return "complete"
	case errors.Is(err, traverse.ErrWaitTimeout):
		return "wait_timeout"
	case errors.Is(err, traverse.ErrRecordNotFound):
		return "missing_record"
	default:
		return ""
	}
}

// Summarize computes aggregate stats from outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Pass {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// #endregion replay
