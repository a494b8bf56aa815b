package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
	"github.com/google/uuid"
)

const batchSize = 256

// #region main

// import bulk-loads a JSONL dump of origin records into a log db.
// Each line is either {"id": "...", "record": {...}} or a bare record
// object; records without an id get one assigned.
func main() {
	dbPath := flag.String("db", "", "path to origin_log.db")
	inPath := flag.String("in", "", "path to JSONL input (- for stdin)")
	flag.Parse()

	if *dbPath == "" || *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: import --db path/to/origin_log.db --in records.jsonl")
		os.Exit(2)
	}

	in := os.Stdin
	if *inPath != "-" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	store, err := oplog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	n, err := run(store, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("imported %d records\n", n)
}

// #endregion main

// #region import

type line struct {
	ID     string          `json:"id"`
	Record json.RawMessage `json:"record"`
}

func run(store *oplog.Store, in *os.File) (int, error) {
	ctx := context.Background()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	var batch []oplog.Entry
	total := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		entry, err := parseLine(raw)
		if err != nil {
			return total, fmt.Errorf("line %d: %w", lineNo, err)
		}
		batch = append(batch, entry)

		if len(batch) >= batchSize {
			if err := store.Append(ctx, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return total, fmt.Errorf("read input: %w", err)
	}
	if len(batch) > 0 {
		if err := store.Append(ctx, batch); err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, nil
}

func parseLine(raw []byte) (oplog.Entry, error) {
	var l line
	if err := json.Unmarshal(raw, &l); err != nil {
		return oplog.Entry{}, fmt.Errorf("parse: %w", err)
	}
	record := l.Record
	if record == nil {
		// Bare record object on the line.
		record = append(json.RawMessage(nil), raw...)
	}
	id := l.ID
	if id == "" {
		id = uuid.New().String()
	}

	// Validate before writing; a bad dump should fail the import, not
	// poison later traversals.
	if _, err := origin.UnmarshalRecord(id, record); err != nil {
		return oplog.Entry{}, err
	}
	return oplog.Entry{ID: id, Record: record}, nil
}

// #endregion import
