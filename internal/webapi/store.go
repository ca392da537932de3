package webapi

import (
	"errors"
	"sync"

	"github.com/rs/xid"

	"github.com/sensmetry/detect/internal/evaluate"
)

// ErrRunNotFound is returned when a run id is not in the store.
var ErrRunNotFound = errors.New("run not found")

// defaultRunLimit caps the in-memory run store. Runs only need to live
// long enough for the browser to fetch the CSV downloads.
const defaultRunLimit = 256

// RunStore keeps evaluation results by run id so the browser can fetch
// CSV downloads after an evaluation. Results are per-run and independent;
// only the read-only rule model is shared between sessions. The store is
// bounded: once full, the oldest run is evicted on insert.
type RunStore struct {
	mu    sync.RWMutex
	runs  map[string]*evaluate.Result
	order []string
	limit int
}

// NewRunStore creates an empty in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs:  make(map[string]*evaluate.Result),
		limit: defaultRunLimit,
	}
}

// Put stores a result and returns its new run id, evicting the oldest
// run when the store is at capacity.
func (s *RunStore) Put(res *evaluate.Result) string {
	id := xid.New().String()
	s.mu.Lock()
	if len(s.order) >= s.limit {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
	s.runs[id] = res
	s.order = append(s.order, id)
	s.mu.Unlock()
	return id
}

// Get returns the result for id, or ErrRunNotFound.
func (s *RunStore) Get(id string) (*evaluate.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return res, nil
}
