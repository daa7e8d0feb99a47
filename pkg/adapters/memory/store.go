// Package memory provides in-memory implementations of the capability
// ports for tests and embedded wiring.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/switchboard/pkg/ports"
)

// Call records one statement that reached the store.
type Call struct {
	Kind  string // "query" or "exec"
	Query string
	Args  []any
}

type queryResult struct {
	rows []ports.Row
	err  error
}

type execResult struct {
	affected int64
	err      error
}

// Store is a scripted ports.Store. Results are consumed in FIFO order;
// unscripted calls succeed with an empty result set (Query) or one
// affected row (Exec). Every call is recorded for later assertion.
// Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	queries []queryResult
	execs   []execResult
	calls   []Call
	closed  bool
}

// NewStore creates an empty scripted store.
func NewStore() *Store {
	return &Store{}
}

// QueueQuery schedules the result of the next unscripted Query call.
func (s *Store) QueueQuery(rows []ports.Row, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, queryResult{rows: rows, err: err})
}

// QueueExec schedules the result of the next unscripted Exec call.
func (s *Store) QueueExec(affected int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.execs = append(s.execs, execResult{affected: affected, err: err})
}

// Query pops the next scripted result, or returns no rows.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]ports.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Kind: "query", Query: query, Args: args})

	if len(s.queries) == 0 {
		return nil, nil
	}
	next := s.queries[0]
	s.queries = s.queries[1:]
	return next.rows, next.err
}

// Exec pops the next scripted result, or reports one affected row.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Kind: "exec", Query: query, Args: args})

	if len(s.execs) == 0 {
		return 1, nil
	}
	next := s.execs[0]
	s.execs = s.execs[1:]
	return next.affected, next.err
}

// Close marks the store closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Calls returns a copy of every recorded statement.
func (s *Store) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

var _ ports.Store = (*Store)(nil)
