package oplog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndGet(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	batch := []Entry{
		{ID: "a", Record: []byte(`{"action":"String Literal","value":"x","inputValueRefs":[]}`)},
		{ID: "b", Record: []byte(`{"action":"String Literal","value":"y","inputValueRefs":[]}`)},
	}
	if err := s.Append(ctx, batch); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(batch[0].Record) {
		t.Fatalf("expected %s, got %s", batch[0].Record, got)
	}

	// Idempotent reads: same record both times.
	again, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if string(again) != string(got) {
		t.Fatal("expected identical records on repeated Get")
	}
}

func TestGetMissing(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Get(context.Background(), "never-written"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHas(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	ok, err := s.Has(ctx, "a")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if ok {
		t.Fatal("expected false before append")
	}

	if err := s.Append(ctx, []Entry{{ID: "a", Record: []byte(`{}`)}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	ok, err = s.Has(ctx, "a")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if !ok {
		t.Fatal("expected true after append")
	}
}

func TestAppendRejectsDuplicate(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, []Entry{{ID: "a", Record: []byte(`1`)}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	err := s.Append(ctx, []Entry{
		{ID: "b", Record: []byte(`2`)},
		{ID: "a", Record: []byte(`overwrite`)},
	})
	if err == nil {
		t.Fatal("expected duplicate id to fail the batch")
	}

	// The failed batch is all-or-nothing and the original record survives.
	if ok, _ := s.Has(ctx, "b"); ok {
		t.Fatal("failed batch must not be partially visible")
	}
	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "1" {
		t.Fatalf("acknowledged record corrupted: %s", got)
	}
}

func TestConcurrentAppendAndRead(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				id := fmt.Sprintf("w%d-%d", g, i)
				if err := s.Append(ctx, []Entry{{ID: id, Record: []byte(`{}`)}}); err != nil {
					t.Errorf("Append %s: %v", id, err)
					return
				}
				if _, err := s.Get(ctx, id); err != nil {
					t.Errorf("Get %s: %v", id, err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 100 {
		t.Fatalf("expected 100 records, got %d", n)
	}
}

func TestWriterFlushOnInterval(t *testing.T) {
	s := tempStore(t)
	w := NewWriter(s, WriterConfig{MaxBatch: 1000, FlushInterval: 10 * time.Millisecond})
	defer w.Close()

	w.Enqueue(Entry{ID: "a", Record: []byte(`{}`)})

	deadline := time.Now().Add(2 * time.Second)
	for {
		ok, err := s.Has(context.Background(), "a")
		if err != nil {
			t.Fatalf("Has: %v", err)
		}
		if ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("interval flush never made the record visible")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWriterFlushExplicit(t *testing.T) {
	s := tempStore(t)
	w := NewWriter(s, WriterConfig{MaxBatch: 1000, FlushInterval: time.Hour})
	defer w.Close()

	w.EnqueueBatch([]Entry{
		{ID: "a", Record: []byte(`{}`)},
		{ID: "b", Record: []byte(`{}`)},
	})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	for _, id := range []string{"a", "b"} {
		if ok, _ := s.Has(context.Background(), id); !ok {
			t.Fatalf("expected %s visible after Flush", id)
		}
	}
}

func TestWriterCloseDrains(t *testing.T) {
	s := tempStore(t)
	w := NewWriter(s, WriterConfig{MaxBatch: 1000, FlushInterval: time.Hour})

	w.Enqueue(Entry{ID: "a", Record: []byte(`{}`)})
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if ok, _ := s.Has(context.Background(), "a"); !ok {
		t.Fatal("expected Close to drain the buffer")
	}
}

func TestWriterFlushAfterCloseReturns(t *testing.T) {
	s := tempStore(t)
	w := NewWriter(s, WriterConfig{MaxBatch: 1000, FlushInterval: time.Hour})

	w.Enqueue(Entry{ID: "a", Record: []byte(`{}`)})
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Repeated Flush calls after Close must return, not park on the
	// stopped goroutine.
	for i := 0; i < 3; i++ {
		done := make(chan error, 1)
		go func() { done <- w.Flush() }()
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Flush call %d: %v", i, err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Flush call %d hung after Close", i)
		}
	}

	if ok, _ := s.Has(context.Background(), "a"); !ok {
		t.Fatal("expected the buffered record to be durable")
	}
}

func TestWriterReportsBatchErrors(t *testing.T) {
	s := tempStore(t)
	if err := s.Append(context.Background(), []Entry{{ID: "dup", Record: []byte(`1`)}}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	w := NewWriter(s, WriterConfig{MaxBatch: 1000, FlushInterval: time.Hour, OnError: func(error) {}})
	defer w.Close()

	w.Enqueue(Entry{ID: "dup", Record: []byte(`again`)})
	if err := w.Flush(); err == nil {
		t.Fatal("expected flush error for duplicate id")
	}

	// Acknowledged data stays intact after a failed batch.
	got, err := s.Get(context.Background(), "dup")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "1" {
		t.Fatalf("record corrupted by failed batch: %s", got)
	}
}
