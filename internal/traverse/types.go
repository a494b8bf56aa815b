package traverse

import (
	"context"
	"errors"
	"time"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
)

// #region errors

var (
	// ErrWaitTimeout means the start record never became visible
	// within the bounded poll window. Distinct from ErrRecordNotFound:
	// nothing referenced the id yet, so it may simply not exist.
	ErrWaitTimeout = errors.New("timed out waiting for record")

	// ErrRecordNotFound means a record referenced by an already
	// resolved origin stayed absent after the retry budget. The walk
	// aborts with the partial step chain.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnavailable is returned by resolvers that cannot map a code
	// location right now. Non-fatal: the step is emitted unresolved.
	ErrUnavailable = errors.New("location resolution unavailable")
)

// #endregion errors

// #region interfaces

// Log is the read side of the operation log the engine walks.
// *oplog.Store satisfies it.
type Log interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Has(ctx context.Context, id string) (bool, error)
}

// Resolver maps a recorded code position to a human-readable source
// location. May block on I/O; failures degrade the step, never the
// walk.
type Resolver interface {
	Resolve(ctx context.Context, loc origin.CodeLocation) (SourceLocation, error)
}

// #endregion interfaces

// #region types

// SourceLocation is a resolved position in original source.
type SourceLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Step is one element of the causal chain, most derived first.
type Step struct {
	Origin    *origin.Origin
	CharIndex int
	Location  *SourceLocation // nil when unresolved or no code location recorded
}

// Result is a traversal outcome. Complete distinguishes "walked all
// the way to a root" from "aborted with a partial chain"; the two are
// never conflated.
type Result struct {
	Steps    []Step
	Complete bool
}

// #endregion types

// #region config

// Config bounds the not-yet-visible poll: the log writer acknowledges
// asynchronously, so a freshly produced id can lag behind its reader.
type Config struct {
	PollInterval time.Duration
	MaxWait      time.Duration
}

// DefaultConfig returns the poll bounds used by the server.
func DefaultConfig() Config {
	return Config{
		PollInterval: 25 * time.Millisecond,
		MaxWait:      time.Second,
	}
}

// #endregion config
