package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	pb "github.com/danielpatrickdp/value-trace/go-engine/gen/provenance"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/traverse"
)

func testServer(t *testing.T) (*Server, *oplog.Writer) {
	t.Helper()
	store, err := oplog.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	writer := oplog.NewWriter(store, oplog.WriterConfig{
		MaxBatch:      64,
		FlushInterval: 5 * time.Millisecond,
	})
	t.Cleanup(func() { writer.Close() })

	engine := traverse.NewEngine(store, nil, traverse.Config{
		PollInterval: 5 * time.Millisecond,
		MaxWait:      200 * time.Millisecond,
	})
	return New(store, writer, engine), writer
}

func mustRecord(t *testing.T, o *origin.Origin) *pb.RecordEntry {
	t.Helper()
	data, err := origin.MarshalRecord(o)
	if err != nil {
		t.Fatalf("MarshalRecord: %v", err)
	}
	return &pb.RecordEntry{Id: o.ID, Record: data}
}

func TestAppendThenTraverse(t *testing.T) {
	s, _ := testServer(t)
	ctx := context.Background()

	root, err := origin.New(origin.ActionStringLiteral, "hello world", nil, origin.Options{})
	if err != nil {
		t.Fatalf("origin.New: %v", err)
	}
	sliced, err := origin.New(origin.ActionSliceCall, "world",
		[]origin.InputRef{origin.RefTo(root.ID)},
		origin.Options{ValueItems: []origin.Segment{
			{Input: origin.RefTo(root.ID), OriginOffset: 6, Length: 5},
		}})
	if err != nil {
		t.Fatalf("origin.New: %v", err)
	}

	ack, err := s.AppendRecords(ctx, &pb.AppendRecordsRequest{
		Records: []*pb.RecordEntry{mustRecord(t, root), mustRecord(t, sliced)},
	})
	if err != nil {
		t.Fatalf("AppendRecords: %v", err)
	}
	if ack.Accepted != 2 {
		t.Fatalf("expected 2 accepted, got %d", ack.Accepted)
	}

	// Traverse waits out the async flush window by itself.
	resp, err := s.Traverse(ctx, &pb.TraverseRequest{StartId: sliced.ID, CharIndex: 2})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if resp.Terminal != "complete" {
		t.Fatalf("expected complete, got %s (%s)", resp.Terminal, resp.Error)
	}
	if len(resp.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(resp.Steps))
	}
	if resp.Steps[1].OriginId != root.ID || resp.Steps[1].CharIndex != 8 {
		t.Fatalf("expected root@8, got %s@%d", resp.Steps[1].OriginId, resp.Steps[1].CharIndex)
	}
}

func TestGetRecordDoesNotWait(t *testing.T) {
	s, writer := testServer(t)
	ctx := context.Background()

	resp, err := s.GetRecord(ctx, &pb.GetRecordRequest{Id: "never-written"})
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if resp.Found {
		t.Fatal("expected found=false for unknown id")
	}

	root, err := origin.New(origin.ActionStringLiteral, "x", nil, origin.Options{})
	if err != nil {
		t.Fatalf("origin.New: %v", err)
	}
	rec := mustRecord(t, root)
	if _, err := s.AppendRecords(ctx, &pb.AppendRecordsRequest{Records: []*pb.RecordEntry{rec}}); err != nil {
		t.Fatalf("AppendRecords: %v", err)
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	resp, err = s.GetRecord(ctx, &pb.GetRecordRequest{Id: root.ID})
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if !resp.Found || string(resp.Record) != string(rec.Record) {
		t.Fatalf("expected the flushed record back, got %+v", resp)
	}

	has, err := s.HasRecord(ctx, &pb.HasRecordRequest{Id: root.ID})
	if err != nil {
		t.Fatalf("HasRecord: %v", err)
	}
	if !has.Has {
		t.Fatal("expected has=true after flush")
	}
}

func TestTraverseUnknownIdReportsTimeout(t *testing.T) {
	s, _ := testServer(t)

	resp, err := s.Traverse(context.Background(), &pb.TraverseRequest{StartId: "never-written"})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if resp.Terminal != "wait_timeout" {
		t.Fatalf("expected wait_timeout, got %s", resp.Terminal)
	}
	if resp.Error == "" {
		t.Fatal("expected an error message alongside the terminal marker")
	}
}

func TestTraverseMissingIntermediateKeepsPartial(t *testing.T) {
	s, writer := testServer(t)
	ctx := context.Background()

	derived, err := origin.New(origin.ActionSliceCall, "x",
		[]origin.InputRef{origin.RefTo("gone")},
		origin.Options{ValueItems: []origin.Segment{
			{Input: origin.RefTo("gone"), OriginOffset: 0, Length: 1},
		}})
	if err != nil {
		t.Fatalf("origin.New: %v", err)
	}
	if _, err := s.AppendRecords(ctx, &pb.AppendRecordsRequest{
		Records: []*pb.RecordEntry{mustRecord(t, derived)},
	}); err != nil {
		t.Fatalf("AppendRecords: %v", err)
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	resp, err := s.Traverse(ctx, &pb.TraverseRequest{StartId: derived.ID, CharIndex: 0})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if resp.Terminal != "missing_record" {
		t.Fatalf("expected missing_record, got %s", resp.Terminal)
	}
	if len(resp.Steps) != 1 || resp.Steps[0].OriginId != derived.ID {
		t.Fatalf("expected the partial chain, got %+v", resp.Steps)
	}
}
