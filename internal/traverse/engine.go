package traverse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/valuemap"
)

// maxSteps guards against a corrupted log. A well-formed log is
// acyclic (an origin is created strictly after its inputs), so depth
// is naturally bounded.
const maxSteps = 10000

// #region engine

// Engine walks the operation log backwards from a character of a
// value to the chain of origins that produced it. It holds no mutable
// state; independent traversals share one Engine freely.
type Engine struct {
	log      Log
	resolver Resolver // nil: steps stay unresolved
	cfg      Config
}

// NewEngine wires an engine over a log and an optional resolver.
func NewEngine(log Log, resolver Resolver, cfg Config) *Engine {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = DefaultConfig().MaxWait
	}
	return &Engine{log: log, resolver: resolver, cfg: cfg}
}

// #endregion engine

// #region traverse

// Traverse builds the causal chain for the character at charIndex of
// the value recorded under startID. On error the partial chain built
// so far is still returned; Result.Complete tells the two apart.
func (e *Engine) Traverse(ctx context.Context, startID string, charIndex int) (Result, error) {
	var res Result

	id := startID
	index := charIndex
	viaForward := false
	for len(res.Steps) < maxSteps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		o, err := e.fetch(ctx, id)
		if err != nil {
			if !errors.Is(err, oplog.ErrNotFound) {
				return res, err
			}
			if len(res.Steps) == 0 {
				// Nothing referenced this id; treat as lag, not loss.
				return res, fmt.Errorf("%w: %s", ErrWaitTimeout, id)
			}
			return res, fmt.Errorf("%w: %s referenced by %s",
				ErrRecordNotFound, id, res.Steps[len(res.Steps)-1].Origin.ID)
		}

		if index < 0 || (len(o.Value) > 0 && index >= len(o.Value)) {
			if viaForward {
				// A forwarded index past the input's end means the
				// character came from trailing decoration: the
				// decorated origin already emitted is the terminal.
				res.Complete = true
				return res, nil
			}
			return res, fmt.Errorf("%w: index %d in value of length %d (origin %s)",
				valuemap.ErrOffsetOutOfRange, index, len(o.Value), id)
		}

		res.Steps = append(res.Steps, e.step(ctx, o, index))

		next, nextIndex, ok, forward, err := nextHop(o, index)
		if err != nil {
			return res, err
		}
		if !ok {
			res.Complete = true
			return res, nil
		}
		viaForward = forward
		if next.IsLiteral() {
			// Inline untracked literal: terminal, but still shown.
			res.Steps = append(res.Steps, Step{
				Origin: &origin.Origin{
					Action: origin.ActionUntrackedInput,
					Value:  next.Literal,
				},
				CharIndex: nextIndex,
			})
			res.Complete = true
			return res, nil
		}
		id = next.ID
		index = nextIndex
	}
	return res, fmt.Errorf("traversal exceeded %d steps at %s", maxSteps, id)
}

// #endregion traverse

// #region next-hop

// nextHop picks where the walk goes after o: through the value map
// when one is recorded, through the single input otherwise. forward
// is true for the single-input path, whose index arithmetic can run
// off the input's value.
func nextHop(o *origin.Origin, index int) (ref origin.InputRef, nextIndex int, ok, forward bool, err error) {
	if len(o.ValueItems) > 0 {
		m, err := valuemap.New(o.ValueItems)
		if err != nil {
			return origin.InputRef{}, 0, false, false, fmt.Errorf("value map of %s: %w", o.ID, err)
		}
		ref, off, err := m.ResolveAtOffset(index)
		if err != nil {
			return origin.InputRef{}, 0, false, false, fmt.Errorf("origin %s: %w", o.ID, err)
		}
		return ref, off, true, false, nil
	}

	if len(o.Inputs) == 1 {
		// Fixed-width decoration inserted before the tracked content
		// shifts the index back before the per-input offset applies.
		next := index - o.ExtraCharsAdded
		if next < 0 {
			// Index inside the leading decoration: the decorated
			// origin is the terminal attribution, not its input.
			return origin.InputRef{}, 0, false, false, nil
		}
		if len(o.InputOffsets) > 0 {
			next += o.InputOffsets[0]
		}
		return o.Inputs[0], next, true, true, nil
	}

	// Root, or multi-input without a value map (nothing to attribute
	// a single character to).
	return origin.InputRef{}, 0, false, false, nil
}

// #endregion next-hop

// #region fetch

// fetch gets a record, polling on a fixed interval while it may still
// be in flight, up to a hard wait budget. Existence is probed with
// Has, which is cheaper than pulling the record on every attempt.
func (e *Engine) fetch(ctx context.Context, id string) (*origin.Origin, error) {
	deadline := time.Now().Add(e.cfg.MaxWait)
	for {
		has, err := e.log.Has(ctx, id)
		if err != nil {
			return nil, err
		}
		if has {
			data, err := e.log.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return origin.UnmarshalRecord(id, data)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", oplog.ErrNotFound, id)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.cfg.PollInterval):
		}
	}
}

// #endregion fetch

// #region step

// step emits one chain element, resolving the code location when both
// a location and a resolver are present. Resolution failure is not
// fatal; the step just stays unresolved.
func (e *Engine) step(ctx context.Context, o *origin.Origin, index int) Step {
	s := Step{Origin: o, CharIndex: index}
	if o.CodeLocation == nil || e.resolver == nil {
		return s
	}
	loc, err := e.resolver.Resolve(ctx, *o.CodeLocation)
	if err != nil {
		return s
	}
	s.Location = &loc
	return s
}

// #endregion step
