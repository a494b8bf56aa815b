package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/replay"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/traverse"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to origin_log.db (trace mode)")
	id := flag.String("id", "", "origin id to trace")
	char := flag.Int("char", 0, "character index to trace")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	fixtureMode := *fixturePath != ""
	traceMode := *dbPath != "" && *id != ""
	if fixtureMode == traceMode {
		fmt.Fprintln(os.Stderr, "usage: trace --db path/to/origin_log.db --id origin-id [--char N]")
		fmt.Fprintln(os.Stderr, "       trace --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if fixtureMode {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runTraceMode(*dbPath, *id, *char)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region trace-mode

func runTraceMode(dbPath, id string, char int) int {
	store, err := oplog.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 1
	}
	defer store.Close()

	engine := traverse.NewEngine(store, nil, traverse.DefaultConfig())
	res, err := engine.Traverse(context.Background(), id, char)

	for i, step := range res.Steps {
		printStep(i, step)
	}
	switch {
	case err == nil:
		fmt.Println("reached root")
		return 0
	default:
		fmt.Fprintf(os.Stderr, "incomplete: %v\n", err)
		return 1
	}
}

func printStep(i int, step traverse.Step) {
	label := step.Origin.ID
	if label == "" {
		label = "(untracked literal)"
	}
	fmt.Printf("%2d. %-18s %s\n", i, step.Origin.Action, label)
	fmt.Printf("    char %d of %q\n", step.CharIndex, preview(step.Origin.Value, 60))
	if step.Location != nil {
		fmt.Printf("    at %s:%d:%d\n", step.Location.File, step.Location.Line, step.Location.Column)
	}
}

func preview(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// #endregion trace-mode

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 1
	}

	dir, err := os.MkdirTemp("", "trace-fixture-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "temp dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(dir)

	store, err := oplog.NewStore(dir + "/fixture.db")
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 1
	}
	defer store.Close()

	engine := traverse.NewEngine(store, nil, traverse.DefaultConfig())
	outcomes, summary, err := replay.Replay(context.Background(), f, store, engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 1
	}

	if f.Description != "" {
		fmt.Printf("%s\n\n", f.Description)
	}
	for _, o := range outcomes {
		status := "PASS"
		if !o.Pass {
			status = "FAIL"
		}
		fmt.Printf("%s  %s@%d", status, o.StartID, o.CharIndex)
		if o.Detail != "" {
			fmt.Printf("  %s", o.Detail)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d/%d passed\n", summary.Passed, summary.Total)

	if summary.Failed > 0 {
		return 1
	}
	return 0
}

// #endregion fixture-mode
