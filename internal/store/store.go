package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrClosed is returned when a mutation is submitted after Close.
	ErrClosed = errors.New("store is closed")
)

// CorruptError indicates the data file exists but does not parse as a
// document. It is surfaced to the caller, never repaired by discarding
// the file's contents.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt document at %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

type mutationResult struct {
	doc Document
	err error
}

type mutation struct {
	fn    func(*Document) error
	reply chan mutationResult
}

// Store owns the on-disk JSON document. All writes funnel through a
// single goroutine consuming a FIFO queue, so concurrent mutations are
// applied one at a time with each seeing the result of all prior ones.
type Store struct {
	path string

	jobs    chan mutation
	quit    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
}

// Open creates a Store for the document at path and starts its mutation
// worker. The parent directory is created if needed. Open fails fast if
// an existing file does not parse.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		path:    path,
		jobs:    make(chan mutation),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	if _, err := s.Load(); err != nil {
		return nil, err
	}

	go s.run()
	return s, nil
}

// Path returns the location of the data file.
func (s *Store) Path() string { return s.path }

// Load reads the current document from disk. A missing file yields the
// default empty document; a file that exists but does not parse yields
// a *CorruptError.
func (s *Store) Load() (Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		var doc Document
		doc.normalize()
		return doc, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, &CorruptError{Path: s.path, Err: err}
	}
	doc.normalize()
	return doc, nil
}

// Mutate queues fn for execution and blocks until it has run. Each
// queued mutation loads the document fresh from disk, applies fn, and
// persists the result atomically before the next mutation starts. If fn
// returns an error nothing is written and the error is returned.
//
// The context only bounds the wait for a queue slot; once accepted, a
// mutation always runs to completion.
func (s *Store) Mutate(ctx context.Context, fn func(*Document) error) (Document, error) {
	m := mutation{fn: fn, reply: make(chan mutationResult, 1)}

	select {
	case s.jobs <- m:
	case <-s.quit:
		return Document{}, ErrClosed
	case <-ctx.Done():
		return Document{}, ctx.Err()
	}

	res := <-m.reply
	return res.doc, res.err
}

// Close stops the mutation worker. Mutations submitted afterwards fail
// with ErrClosed.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.stopped
}

func (s *Store) run() {
	defer close(s.stopped)
	for {
		select {
		case <-s.quit:
			return
		case m := <-s.jobs:
			doc, err := s.apply(m.fn)
			m.reply <- mutationResult{doc: doc, err: err}
		}
	}
}

func (s *Store) apply(fn func(*Document) error) (Document, error) {
	doc, err := s.Load()
	if err != nil {
		return Document{}, err
	}

	if err := fn(&doc); err != nil {
		return Document{}, err
	}

	if err := s.write(doc); err != nil {
		return Document{}, fmt.Errorf("failed to persist document: %w", err)
	}
	return doc, nil
}

// write replaces the data file via a temp file and rename, so a crash
// mid-write never leaves a truncated document behind.
func (s *Store) write(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".data-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
