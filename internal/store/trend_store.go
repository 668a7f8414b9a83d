// Package store holds the dashboard's shared trend collection and its fetch status.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pod-dashboard/pkg/api"
	"pod-dashboard/pkg/logger"
)

// FetchLimit is the page size requested by FetchTrends.
const FetchLimit = 50

const (
	msgStatusFailure = "Failed to fetch trends"
	msgUnknown       = "Unknown error"
)

// TrendSource is the slice of the API client the store needs.
type TrendSource interface {
	List(ctx context.Context, opts api.ListOptions, filter *api.TrendFilter) ([]api.Trend, error)
}

// State is a point-in-time copy of the store. An empty Error means no error.
type State struct {
	Trends  []api.Trend
	Loading bool
	Error   string
}

// Observer is called after every state change with the new snapshot.
type Observer func(State)

// TrendStore is the single source of truth for the trend collection.
//
// Overlapping fetches are sequenced: each FetchTrends call takes the next
// sequence number and only the most recently started call may apply its
// result, so a slow stale response never overwrites a newer one.
type TrendStore struct {
	source TrendSource
	log    *logger.Logger

	mu      sync.Mutex
	trends  []api.Trend
	loading bool
	errMsg  string
	seq     uint64

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObsID int
}

func NewTrendStore(source TrendSource) *TrendStore {
	return &TrendStore{
		source:    source,
		trends:    []api.Trend{},
		observers: make(map[int]Observer),
		log:       logger.GetLogger().WithField("component", "trend_store"),
	}
}

// Snapshot returns a copy of the current state.
func (s *TrendStore) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *TrendStore) snapshotLocked() State {
	trends := make([]api.Trend, len(s.trends))
	copy(trends, s.trends)
	return State{Trends: trends, Loading: s.loading, Error: s.errMsg}
}

// SetTrends replaces the collection wholesale. Elements are not validated.
func (s *TrendStore) SetTrends(trends []api.Trend) {
	s.update(func() {
		s.setTrendsLocked(trends)
	})
}

func (s *TrendStore) setTrendsLocked(trends []api.Trend) {
	if trends == nil {
		trends = []api.Trend{}
	}
	s.trends = trends
}

func (s *TrendStore) SetLoading(loading bool) {
	s.update(func() { s.loading = loading })
}

// SetError stores msg as the current error; "" clears it.
func (s *TrendStore) SetError(msg string) {
	s.update(func() { s.errMsg = msg })
}

// Subscribe registers fn for state changes and returns a function removing it.
func (s *TrendStore) Subscribe(fn Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

// FetchTrends loads the first FetchLimit trends from the source. It never
// returns an error: failures are recorded in State.Error and the previous
// collection is kept. Loading is cleared when the call settles unless a newer
// fetch has started in the meantime.
func (s *TrendStore) FetchTrends(ctx context.Context) {
	var id uint64
	s.update(func() {
		s.seq++
		id = s.seq
		s.loading = true
		s.errMsg = ""
	})

	trends, err := s.list(ctx)

	s.mu.Lock()
	if id != s.seq {
		s.mu.Unlock()
		s.log.WithField("fetch_seq", id).Debug("Discarded superseded trend fetch")
		return
	}
	if err != nil {
		s.errMsg = describeError(err)
	} else {
		s.setTrendsLocked(trends)
	}
	s.loading = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)

	log := s.log.WithField("fetch_seq", id)
	if err != nil {
		log.WithError(err).Debug("Trend fetch failed")
		return
	}
	log.WithField("count", len(trends)).Debug("Trend fetch completed")
}

// list calls the source and turns a panic into an error so FetchTrends
// always reaches its settle step.
func (s *TrendStore) list(ctx context.Context) (trends []api.Trend, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("trend source panic: %v", r)
		}
	}()
	return s.source.List(ctx, api.ListOptions{Limit: FetchLimit}, nil)
}

// update applies fn under the lock and notifies observers with the result.
func (s *TrendStore) update(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

func (s *TrendStore) notify(snap State) {
	s.obsMu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

func describeError(err error) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		return msgStatusFailure
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgUnknown
}
