package replay

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/traverse"
)

func testEnv(t *testing.T) (*oplog.Store, *traverse.Engine) {
	t.Helper()
	store, err := oplog.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	engine := traverse.NewEngine(store, nil, traverse.Config{
		PollInterval: 5 * time.Millisecond,
		MaxWait:      50 * time.Millisecond,
	})
	return store, engine
}

// sliceFixture mirrors "hello world".slice(6, 11) followed by reading
// char 2 of the result.
func sliceFixture() *Fixture {
	return &Fixture{
		Description: "slice of a root literal",
		Records: []FixtureRecord{
			{
				ID: "root",
				Record: origin.Record{
					Action:         string(origin.ActionStringLiteral),
					Value:          "hello world",
					InputValueRefs: []origin.InputRef{},
				},
			},
			{
				ID: "sliced",
				Record: origin.Record{
					Action:         string(origin.ActionSliceCall),
					Value:          "world",
					InputValueRefs: []origin.InputRef{origin.RefTo("root")},
					ValueItems: []origin.Segment{
						{Input: origin.RefTo("root"), OriginOffset: 6, Length: 5},
					},
				},
			},
		},
		Expectations: []FixtureExpectation{
			{
				StartID:   "sliced",
				CharIndex: 2,
				Terminal:  "complete",
				Chain: []FixtureStep{
					{OriginID: "sliced", CharIndex: 2},
					{OriginID: "root", CharIndex: 8},
				},
			},
		},
	}
}

func TestReplayPassingFixture(t *testing.T) {
	store, engine := testEnv(t)

	outcomes, summary, err := Replay(context.Background(), sliceFixture(), store, engine)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Total != 1 || summary.Passed != 1 {
		t.Fatalf("expected 1/1 passed, got %+v", summary)
	}
	if !outcomes[0].Pass {
		t.Fatalf("expected pass, got detail %q", outcomes[0].Detail)
	}
}

func TestReplayDetectsWrongChain(t *testing.T) {
	store, engine := testEnv(t)

	f := sliceFixture()
	f.Expectations[0].Chain[1].CharIndex = 7 // actually 8

	outcomes, summary, err := Replay(context.Background(), f, store, engine)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Failed != 1 {
		t.Fatalf("expected 1 failure, got %+v", summary)
	}
	if outcomes[0].Detail == "" {
		t.Fatal("expected a mismatch detail")
	}
}

func TestReplayMissingRecordExpectation(t *testing.T) {
	store, engine := testEnv(t)

	f := sliceFixture()
	f.Records = f.Records[1:] // drop the root record
	f.Expectations = []FixtureExpectation{
		{
			StartID:   "sliced",
			CharIndex: 0,
			Terminal:  "missing_record",
			Chain:     []FixtureStep{{OriginID: "sliced", CharIndex: 0}},
		},
	}

	_, summary, err := Replay(context.Background(), f, store, engine)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if summary.Passed != 1 {
		t.Fatalf("expected the missing-record expectation to pass, got %+v", summary)
	}
}

func TestLoadFixtureFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	data, err := json.Marshal(sliceFixture())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if len(f.Records) != 2 || f.Records[1].ID != "sliced" {
		t.Fatalf("unexpected fixture: %+v", f)
	}
}

func TestLoadFixtureRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	f := sliceFixture()
	f.Records[1].ID = "root"
	data, _ := json.Marshal(f)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}
