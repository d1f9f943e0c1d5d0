// Package runs keeps completed analysis runs in memory so the web surface
// can serve follow-up reads and exports. There is deliberately no persistence
// behind it; a restart forgets every run.
package runs

import (
	"sync"
	"time"

	"github.com/de-tools/org-atlas/pkg/models/domain"
	"github.com/de-tools/org-atlas/pkg/services/roster"
)

// Run is one completed analysis: the snapshot plus the ingestion warnings
// that accompanied it.
type Run struct {
	ID        string
	Snapshot  *domain.AnalysisSnapshot
	Warnings  []roster.Warning
	CreatedAt time.Time
}

type Store struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

func NewStore() *Store {
	return &Store{runs: make(map[string]*Run)}
}

func (s *Store) Add(run *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
}

func (s *Store) Get(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
