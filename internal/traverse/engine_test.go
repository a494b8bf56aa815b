package traverse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
)

// #region fakes

// memLog is an in-memory Log for engine tests. It counts calls so
// tests can check how the engine polls.
type memLog struct {
	mu      sync.Mutex
	records map[string][]byte
	gets    int
	hases   int
}

func newMemLog() *memLog { return &memLog{records: make(map[string][]byte)} }

func (m *memLog) put(t *testing.T, o *origin.Origin) {
	t.Helper()
	data, err := origin.MarshalRecord(o)
	if err != nil {
		t.Fatalf("MarshalRecord: %v", err)
	}
	m.mu.Lock()
	m.records[o.ID] = data
	m.mu.Unlock()
}

func (m *memLog) Get(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	data, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", oplog.ErrNotFound, id)
	}
	return data, nil
}

func (m *memLog) Has(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hases++
	_, ok := m.records[id]
	return ok, nil
}

func (m *memLog) counts() (gets, hases int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets, m.hases
}

// stubResolver resolves every location to the same file or fails.
type stubResolver struct {
	fail bool
}

func (r stubResolver) Resolve(_ context.Context, loc origin.CodeLocation) (SourceLocation, error) {
	if r.fail {
		return SourceLocation{}, ErrUnavailable
	}
	return SourceLocation{File: "src/" + loc.File, Line: loc.Line, Column: loc.Column}, nil
}

func fastConfig() Config {
	return Config{PollInterval: 5 * time.Millisecond, MaxWait: 50 * time.Millisecond}
}

func mustOrigin(t *testing.T, action origin.Action, value string, inputs []origin.InputRef, opts origin.Options) *origin.Origin {
	t.Helper()
	o, err := origin.New(action, value, inputs, opts)
	if err != nil {
		t.Fatalf("origin.New: %v", err)
	}
	return o
}

// #endregion fakes

func TestTraverseSliceToRoot(t *testing.T) {
	log := newMemLog()
	root := mustOrigin(t, origin.ActionStringLiteral, "hello world", nil, origin.Options{
		CodeLocation: &origin.CodeLocation{File: "app.js", Line: 3, Column: 1},
	})
	sliced := mustOrigin(t, origin.ActionSliceCall, "world",
		[]origin.InputRef{origin.RefTo(root.ID)},
		origin.Options{ValueItems: []origin.Segment{
			{Input: origin.RefTo(root.ID), OriginOffset: 6, Length: 5},
		}})
	log.put(t, root)
	log.put(t, sliced)

	e := NewEngine(log, stubResolver{}, fastConfig())
	res, err := e.Traverse(context.Background(), sliced.ID, 2)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if !res.Complete {
		t.Fatal("expected complete traversal")
	}
	if len(res.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(res.Steps))
	}
	if res.Steps[0].Origin.ID != sliced.ID || res.Steps[0].CharIndex != 2 {
		t.Fatalf("step 0 wrong: %s@%d", res.Steps[0].Origin.ID, res.Steps[0].CharIndex)
	}
	// "r" of "world" is offset 8 of the root string.
	if res.Steps[1].Origin.ID != root.ID || res.Steps[1].CharIndex != 8 {
		t.Fatalf("step 1 wrong: %s@%d", res.Steps[1].Origin.ID, res.Steps[1].CharIndex)
	}
	if res.Steps[1].Location == nil || res.Steps[1].Location.File != "src/app.js" {
		t.Fatalf("expected resolved location on root step, got %+v", res.Steps[1].Location)
	}
}

func TestTraverseReplaceLiteral(t *testing.T) {
	log := newMemLog()
	root := mustOrigin(t, origin.ActionStringLiteral, "foo", nil, origin.Options{})
	lit := origin.LiteralRef("0")
	replaced := mustOrigin(t, origin.ActionReplaceCall, "f00",
		[]origin.InputRef{origin.RefTo(root.ID)},
		origin.Options{ValueItems: []origin.Segment{
			{Input: origin.RefTo(root.ID), OriginOffset: 0, Length: 1},
			{Input: lit, OriginOffset: 0, Length: 1},
			{Input: lit, OriginOffset: 0, Length: 1},
		}})
	log.put(t, root)
	log.put(t, replaced)

	e := NewEngine(log, nil, fastConfig())

	// Char 0 ("f") resolves through the unchanged span to the root.
	res, err := e.Traverse(context.Background(), replaced.ID, 0)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if len(res.Steps) != 2 || res.Steps[1].Origin.ID != root.ID || res.Steps[1].CharIndex != 0 {
		t.Fatalf("unexpected chain for unchanged span: %+v", res.Steps)
	}

	// Char 1 (first "0") terminates at the untracked literal.
	res, err = e.Traverse(context.Background(), replaced.ID, 1)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if !res.Complete {
		t.Fatal("expected complete traversal")
	}
	last := res.Steps[len(res.Steps)-1]
	if last.Origin.Action != origin.ActionUntrackedInput || last.Origin.Value != "0" {
		t.Fatalf("expected untracked literal terminal, got %+v", last.Origin)
	}
}

func TestTraverseSingleInputForwarding(t *testing.T) {
	log := newMemLog()
	root := mustOrigin(t, origin.ActionStringLiteral, "abcdef", nil, origin.Options{})
	// Decorated value "[cdef]": one leading extra char, input read from offset 2.
	read := mustOrigin(t, origin.ActionReadProperty, "[cdef]",
		[]origin.InputRef{origin.RefTo(root.ID)},
		origin.Options{
			ActionDetails:   "innerHTML",
			InputOffsets:    []int{2},
			ExtraCharsAdded: 1,
		})
	log.put(t, root)
	log.put(t, read)

	e := NewEngine(log, nil, fastConfig())
	// Char 2 of "[cdef]" is "d": minus decoration 1, plus offset 2 = root@3.
	res, err := e.Traverse(context.Background(), read.ID, 2)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if len(res.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(res.Steps))
	}
	if res.Steps[1].CharIndex != 3 {
		t.Fatalf("expected root@3, got root@%d", res.Steps[1].CharIndex)
	}
	if root.Value[res.Steps[1].CharIndex] != 'd' {
		t.Fatalf("forwarded index points at %q, want 'd'", root.Value[res.Steps[1].CharIndex])
	}
}

func TestTraverseDecorationIndicesTerminate(t *testing.T) {
	log := newMemLog()
	root := mustOrigin(t, origin.ActionStringLiteral, "abcdef", nil, origin.Options{})
	// "[cdef]": one char of decoration on each side, content read
	// from offset 2 of the root.
	read := mustOrigin(t, origin.ActionReadProperty, "[cdef]",
		[]origin.InputRef{origin.RefTo(root.ID)},
		origin.Options{
			InputOffsets:    []int{2},
			ExtraCharsAdded: 1,
		})
	log.put(t, root)
	log.put(t, read)

	e := NewEngine(log, nil, fastConfig())

	// Leading "[": the decorated origin owns the character.
	res, err := e.Traverse(context.Background(), read.ID, 0)
	if err != nil {
		t.Fatalf("Traverse leading: %v", err)
	}
	if !res.Complete {
		t.Fatal("leading decoration should terminate cleanly")
	}
	if len(res.Steps) != 1 || res.Steps[0].Origin.ID != read.ID {
		t.Fatalf("expected the decorated origin as terminal, got %+v", res.Steps)
	}

	// Trailing "]": forwarding would run past the root's end; the
	// walk ends at the decorated origin instead of erroring.
	res, err = e.Traverse(context.Background(), read.ID, 5)
	if err != nil {
		t.Fatalf("Traverse trailing: %v", err)
	}
	if !res.Complete {
		t.Fatal("trailing decoration should terminate cleanly")
	}
	if len(res.Steps) != 1 || res.Steps[0].Origin.ID != read.ID {
		t.Fatalf("expected the decorated origin as terminal, got %+v", res.Steps)
	}
}

func TestTraverseResolverFailureIsNonFatal(t *testing.T) {
	log := newMemLog()
	root := mustOrigin(t, origin.ActionStringLiteral, "x", nil, origin.Options{
		CodeLocation: &origin.CodeLocation{File: "a.js", Line: 1, Column: 1},
	})
	log.put(t, root)

	e := NewEngine(log, stubResolver{fail: true}, fastConfig())
	res, err := e.Traverse(context.Background(), root.ID, 0)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if len(res.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(res.Steps))
	}
	if res.Steps[0].Location != nil {
		t.Fatal("expected unresolved location on resolver failure")
	}
}

func TestTraverseUnknownStartTimesOut(t *testing.T) {
	log := newMemLog()
	e := NewEngine(log, nil, fastConfig())

	start := time.Now()
	res, err := e.Traverse(context.Background(), "never-written", 0)
	if !errors.Is(err, ErrWaitTimeout) {
		t.Fatalf("expected ErrWaitTimeout, got %v", err)
	}
	if len(res.Steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(res.Steps))
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Fatalf("expected the bounded poll to wait, returned after %v", elapsed)
	}

	// Absent records are probed with Has; the record itself is never
	// pulled.
	gets, hases := log.counts()
	if gets != 0 {
		t.Fatalf("expected no Get calls for an absent record, got %d", gets)
	}
	if hases < 2 {
		t.Fatalf("expected repeated Has polls, got %d", hases)
	}
}

func TestTraverseMissingIntermediateIsPartial(t *testing.T) {
	log := newMemLog()
	derived := mustOrigin(t, origin.ActionSliceCall, "x",
		[]origin.InputRef{origin.RefTo("gone")},
		origin.Options{ValueItems: []origin.Segment{
			{Input: origin.RefTo("gone"), OriginOffset: 4, Length: 1},
		}})
	log.put(t, derived)

	e := NewEngine(log, nil, fastConfig())
	res, err := e.Traverse(context.Background(), derived.ID, 0)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	// Partial chain, explicitly not complete.
	if len(res.Steps) != 1 || res.Steps[0].Origin.ID != derived.ID {
		t.Fatalf("expected the resolved prefix, got %+v", res.Steps)
	}
	if res.Complete {
		t.Fatal("interrupted walk must not report complete")
	}
}

func TestTraverseSeesLateRecord(t *testing.T) {
	log := newMemLog()
	root := mustOrigin(t, origin.ActionStringLiteral, "late", nil, origin.Options{})

	go func() {
		time.Sleep(15 * time.Millisecond)
		data, _ := origin.MarshalRecord(root)
		log.mu.Lock()
		log.records[root.ID] = data
		log.mu.Unlock()
	}()

	e := NewEngine(log, nil, Config{PollInterval: 5 * time.Millisecond, MaxWait: 500 * time.Millisecond})
	res, err := e.Traverse(context.Background(), root.ID, 1)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if !res.Complete || len(res.Steps) != 1 {
		t.Fatalf("expected the late record to resolve, got %+v", res)
	}
}

func TestTraverseCancellation(t *testing.T) {
	e := NewEngine(newMemLog(), nil, Config{PollInterval: 5 * time.Millisecond, MaxWait: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := e.Traverse(ctx, "never-written", 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTraverseDeepChainTerminates(t *testing.T) {
	log := newMemLog()
	prev := mustOrigin(t, origin.ActionStringLiteral, "abc", nil, origin.Options{})
	log.put(t, prev)
	const depth = 40
	for i := 0; i < depth; i++ {
		next := mustOrigin(t, origin.ActionSliceCall, "abc",
			[]origin.InputRef{origin.RefTo(prev.ID)},
			origin.Options{ValueItems: []origin.Segment{
				{Input: origin.RefTo(prev.ID), OriginOffset: 0, Length: 3},
			}})
		log.put(t, next)
		prev = next
	}

	e := NewEngine(log, nil, fastConfig())
	res, err := e.Traverse(context.Background(), prev.ID, 1)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if !res.Complete {
		t.Fatal("expected complete traversal")
	}
	if len(res.Steps) != depth+1 {
		t.Fatalf("expected %d steps, got %d", depth+1, len(res.Steps))
	}
}
