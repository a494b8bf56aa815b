package oplog

import (
	"context"
	"log"
	"sync"
	"time"
)

// #region config

// WriterConfig controls the async batching front end.
type WriterConfig struct {
	MaxBatch      int           // flush when this many records are buffered
	FlushInterval time.Duration // flush at least this often
	OnError       func(error)   // called per failed batch; default logs
}

// DefaultWriterConfig returns the defaults used by the server.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		MaxBatch:      256,
		FlushInterval: 50 * time.Millisecond,
	}
}

// #endregion config

// #region writer

// Writer buffers entries and appends them to the store in batches from
// a single goroutine. Enqueue never waits on SQLite, which is what
// makes a recently enqueued id legitimately invisible to readers for a
// short window.
type Writer struct {
	store *Store
	cfg   WriterConfig

	mu      sync.Mutex
	pending []Entry

	flushCh chan chan error
	done    chan struct{}
	once    sync.Once
}

// NewWriter starts the flush goroutine.
func NewWriter(store *Store, cfg WriterConfig) *Writer {
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = DefaultWriterConfig().MaxBatch
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultWriterConfig().FlushInterval
	}
	if cfg.OnError == nil {
		cfg.OnError = func(err error) { log.Printf("oplog writer: %v", err) }
	}
	w := &Writer{
		store:   store,
		cfg:     cfg,
		flushCh: make(chan chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// Enqueue buffers one entry for the next batch.
func (w *Writer) Enqueue(e Entry) {
	w.mu.Lock()
	w.pending = append(w.pending, e)
	full := len(w.pending) >= w.cfg.MaxBatch
	w.mu.Unlock()

	if full {
		select {
		case w.flushCh <- nil:
		default: // a flush is already requested
		}
	}
}

// EnqueueBatch buffers a batch as one unit.
func (w *Writer) EnqueueBatch(entries []Entry) {
	w.mu.Lock()
	w.pending = append(w.pending, entries...)
	full := len(w.pending) >= w.cfg.MaxBatch
	w.mu.Unlock()

	if full {
		select {
		case w.flushCh <- nil:
		default:
		}
	}
}

// Flush forces everything buffered so far to disk and reports the
// flush error, if any. Gives read-after-write to tests and the CLI.
// Safe to call around Close: if the goroutine is gone (or goes away
// before answering), Flush does the work itself instead of waiting on
// a reply that will never come.
func (w *Writer) Flush() error {
	reply := make(chan error, 1)
	select {
	case w.flushCh <- reply:
	case <-w.done:
		return w.flush()
	}
	select {
	case err := <-reply:
		return err
	case <-w.done:
		return w.flush()
	}
}

// Close drains the buffer and stops the goroutine.
func (w *Writer) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.flush()
	})
	return err
}

// #endregion writer

// #region run

func (w *Writer) run() {
	ticker := time.NewTicker(w.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			// Answer a request that slipped in before shutdown.
			select {
			case reply := <-w.flushCh:
				err := w.flush()
				if reply != nil {
					reply <- err
				}
			default:
			}
			return
		case reply := <-w.flushCh:
			err := w.flush()
			if reply != nil {
				reply <- err
			} else if err != nil {
				w.cfg.OnError(err)
			}
		case <-ticker.C:
			if err := w.flush(); err != nil {
				w.cfg.OnError(err)
			}
		}
	}
}

func (w *Writer) flush() error {
	w.mu.Lock()
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	return w.store.Append(context.Background(), batch)
}

// #endregion run
