package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to origin_log.db")
	last := flag.Int("last", 20, "show N most recent records")
	id := flag.String("id", "", "show single record detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/origin_log.db [--last N] [--id record-id] [--json]")
		os.Exit(2)
	}

	store, err := oplog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *id != "" {
		err = runDetailMode(store, *id, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	ID     string `json:"id"`
	Action string `json:"action"`
	Value  string `json:"value"`
	Inputs int    `json:"inputs"`
	Items  int    `json:"value_items"`
}

func runListMode(store *oplog.Store, last int, jsonOut bool) error {
	ctx := context.Background()
	entries, err := store.Recent(ctx, last)
	if err != nil {
		return err
	}
	total, err := store.Count(ctx)
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(entries))
	for _, e := range entries {
		o, err := origin.UnmarshalRecord(e.ID, e.Record)
		if err != nil {
			return err
		}
		rows = append(rows, listRow{
			ID:     o.ID,
			Action: o.Action.String(),
			Value:  preview(o.Value, 40),
			Inputs: len(o.Inputs),
			Items:  len(o.ValueItems),
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%d records total, showing %d\n\n", total, len(rows))
	fmt.Printf("%-38s %-16s %-7s %-6s %s\n", "ID", "ACTION", "INPUTS", "ITEMS", "VALUE")
	for _, r := range rows {
		fmt.Printf("%-38s %-16s %-7d %-6d %s\n", r.ID, r.Action, r.Inputs, r.Items, r.Value)
	}
	return nil
}

func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *oplog.Store, id string, jsonOut bool) error {
	data, err := store.Get(context.Background(), id)
	if err != nil {
		return err
	}
	o, err := origin.UnmarshalRecord(id, data)
	if err != nil {
		return err
	}

	if jsonOut {
		// Dump the stored record untouched.
		var raw json.RawMessage = data
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(raw)
	}

	fmt.Printf("id:       %s\n", o.ID)
	fmt.Printf("action:   %s", o.Action)
	if o.ActionDetails != "" {
		fmt.Printf(" (%s)", o.ActionDetails)
	}
	fmt.Println()
	fmt.Printf("value:    %q\n", o.Value)
	for i, in := range o.Inputs {
		if in.IsLiteral() {
			fmt.Printf("input %d:  literal %q\n", i, in.Literal)
		} else {
			fmt.Printf("input %d:  %s\n", i, in.ID)
		}
	}
	for i, seg := range o.ValueItems {
		src := seg.Input.ID
		if seg.Input.IsLiteral() {
			src = fmt.Sprintf("literal %q", seg.Input.Literal)
		}
		fmt.Printf("item %d:   %s offset=%d length=%d\n", i, src, seg.OriginOffset, seg.Length)
	}
	if o.CodeLocation != nil {
		fmt.Printf("location: %s:%d:%d\n", o.CodeLocation.File, o.CodeLocation.Line, o.CodeLocation.Column)
	}
	return nil
}

// #endregion detail-mode
