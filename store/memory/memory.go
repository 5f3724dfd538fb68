/*
Package memory keeps completed statement runs in an expiring in-memory store.

PURPOSE:
  The HTTP API computes a run once, then serves its statements and exports
  from here. Runs are ephemeral: uploaded figures live only as long as the
  TTL, and a restart forgets everything. Nothing is ever written to disk.

CONCURRENCY:
  Safe for concurrent handlers; the underlying cache does its own locking.

SEE ALSO:
  - api/handlers.go: the only consumer
*/
package memory

import (
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/warp/epf-engine/epf"
)

// =============================================================================
// RUN
// =============================================================================

// Run is one completed statement computation.
type Run struct {
	ID         string
	CreatedAt  time.Time
	SourceName string
	Rate       epf.Rate
	Statements []epf.Statement
}

func (r Run) MemberCount() int { return len(r.Statements) }

// =============================================================================
// RUN STORE
// =============================================================================

// RunStore holds runs until their TTL expires.
type RunStore struct {
	runs *cache.Cache
}

// NewRunStore creates a store whose runs expire after ttl; the janitor
// sweeps expired entries every sweep interval.
func NewRunStore(ttl, sweep time.Duration) *RunStore {
	return &RunStore{runs: cache.New(ttl, sweep)}
}

// Put stores a run under its ID, resetting the TTL if the ID exists.
func (s *RunStore) Put(run Run) {
	s.runs.Set(run.ID, run, cache.DefaultExpiration)
}

// Get returns the run with the given ID, or epf.ErrRunNotFound if it was
// never stored or has expired.
func (s *RunStore) Get(id string) (Run, error) {
	v, found := s.runs.Get(id)
	if !found {
		return Run{}, epf.ErrRunNotFound
	}
	return v.(Run), nil
}

// List returns all live runs, newest first. Ties on creation time break
// by ID so the order is stable.
func (s *RunStore) List() []Run {
	items := s.runs.Items()
	runs := make([]Run, 0, len(items))
	for _, item := range items {
		runs = append(runs, item.Object.(Run))
	}

	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID < runs[j].ID
	})
	return runs
}

// Len counts live runs. Expired entries are excluded even before the
// janitor sweeps them.
func (s *RunStore) Len() int {
	return len(s.runs.Items())
}
