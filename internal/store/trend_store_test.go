package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pod-dashboard/pkg/api"
)

type fakeSource struct {
	mu    sync.Mutex
	calls []api.ListOptions
	fn    func(ctx context.Context, call int) ([]api.Trend, error)
}

func (f *fakeSource) List(ctx context.Context, opts api.ListOptions, filter *api.TrendFilter) ([]api.Trend, error) {
	f.mu.Lock()
	f.calls = append(f.calls, opts)
	call := len(f.calls)
	f.mu.Unlock()
	return f.fn(ctx, call)
}

func trendsWithScores(scores ...float64) []api.Trend {
	out := make([]api.Trend, len(scores))
	for i, s := range scores {
		out[i] = api.Trend{ID: int64(i + 1), Niche: "niche", OverallScore: s}
	}
	return out
}

func TestNewTrendStore_InitialState(t *testing.T) {
	s := NewTrendStore(&fakeSource{})
	snap := s.Snapshot()

	assert.Empty(t, snap.Trends)
	assert.NotNil(t, snap.Trends)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
}

func TestFetchTrends_Success(t *testing.T) {
	src := &fakeSource{fn: func(context.Context, int) ([]api.Trend, error) {
		return trendsWithScores(80, 40, 10), nil
	}}
	s := NewTrendStore(src)
	s.SetError("stale")

	s.FetchTrends(context.Background())

	snap := s.Snapshot()
	assert.Len(t, snap.Trends, 3)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	require.Len(t, src.calls, 1)
	assert.Equal(t, api.ListOptions{Limit: FetchLimit}, src.calls[0])
}

func TestFetchTrends_LoadingDuringCall(t *testing.T) {
	var s *TrendStore
	var during State
	src := &fakeSource{fn: func(context.Context, int) ([]api.Trend, error) {
		during = s.Snapshot()
		return nil, nil
	}}
	s = NewTrendStore(src)
	s.SetError("previous failure")

	s.FetchTrends(context.Background())

	assert.True(t, during.Loading)
	assert.Empty(t, during.Error, "error is cleared before the request is issued")
	assert.False(t, s.Snapshot().Loading)
}

func TestFetchTrends_FailureKeepsPreviousCollection(t *testing.T) {
	cases := map[string]error{
		"status":    &api.StatusError{Method: "GET", Path: "/trends", StatusCode: 500},
		"transport": errors.New("GET /trends: request failed: dial tcp: connection refused"),
		"empty":     errors.New(""),
	}

	for name, fetchErr := range cases {
		t.Run(name, func(t *testing.T) {
			src := &fakeSource{fn: func(context.Context, int) ([]api.Trend, error) {
				return nil, fetchErr
			}}
			s := NewTrendStore(src)
			s.SetTrends(trendsWithScores(55, 65))

			s.FetchTrends(context.Background())

			snap := s.Snapshot()
			assert.Len(t, snap.Trends, 2)
			assert.False(t, snap.Loading)
			assert.NotEmpty(t, snap.Error)
		})
	}
}

func TestFetchTrends_StatusErrorMessage(t *testing.T) {
	src := &fakeSource{fn: func(context.Context, int) ([]api.Trend, error) {
		return nil, &api.StatusError{StatusCode: 500}
	}}
	s := NewTrendStore(src)
	s.FetchTrends(context.Background())

	assert.Equal(t, "Failed to fetch trends", s.Snapshot().Error)
}

func TestFetchTrends_RecoversSourcePanic(t *testing.T) {
	src := &fakeSource{fn: func(context.Context, int) ([]api.Trend, error) {
		panic("backend exploded")
	}}
	s := NewTrendStore(src)

	assert.NotPanics(t, func() { s.FetchTrends(context.Background()) })

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Contains(t, snap.Error, "backend exploded")
}

func TestFetchTrends_StaleResultDiscarded(t *testing.T) {
	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})

	src := &fakeSource{fn: func(_ context.Context, call int) ([]api.Trend, error) {
		if call == 1 {
			close(firstStarted)
			<-releaseFirst
			return trendsWithScores(1), nil
		}
		return trendsWithScores(90, 91, 92), nil
	}}
	s := NewTrendStore(src)

	done := make(chan struct{})
	go func() {
		s.FetchTrends(context.Background())
		close(done)
	}()
	<-firstStarted

	s.FetchTrends(context.Background())
	assert.Len(t, s.Snapshot().Trends, 3)
	assert.False(t, s.Snapshot().Loading)

	close(releaseFirst)
	<-done

	snap := s.Snapshot()
	assert.Len(t, snap.Trends, 3, "the older response must not overwrite the newer one")
	assert.False(t, snap.Loading)
}

func TestFetchTrends_LoadingStaysUntilLatestSettles(t *testing.T) {
	releaseSecond := make(chan struct{})
	secondStarted := make(chan struct{})

	src := &fakeSource{fn: func(_ context.Context, call int) ([]api.Trend, error) {
		if call == 2 {
			close(secondStarted)
			<-releaseSecond
			return trendsWithScores(70), nil
		}
		<-secondStarted
		return nil, errors.New("first failed")
	}}
	s := NewTrendStore(src)

	firstDone := make(chan struct{})
	go func() {
		s.FetchTrends(context.Background())
		close(firstDone)
	}()
	// Wait until the first call is registered before starting the second.
	require.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.calls) == 1
	}, time.Second, time.Millisecond)

	secondDone := make(chan struct{})
	go func() {
		s.FetchTrends(context.Background())
		close(secondDone)
	}()

	<-firstDone
	snap := s.Snapshot()
	assert.True(t, snap.Loading)
	assert.Empty(t, snap.Error, "a superseded failure is not surfaced")

	close(releaseSecond)
	<-secondDone
	snap = s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Trends, 1)
}

func TestSubscribe_ReceivesTransitions(t *testing.T) {
	src := &fakeSource{fn: func(context.Context, int) ([]api.Trend, error) {
		return trendsWithScores(50), nil
	}}
	s := NewTrendStore(src)

	var seen []State
	unsubscribe := s.Subscribe(func(st State) { seen = append(seen, st) })

	s.FetchTrends(context.Background())
	require.Len(t, seen, 2)
	assert.True(t, seen[0].Loading)
	assert.False(t, seen[1].Loading)
	assert.Len(t, seen[1].Trends, 1)

	unsubscribe()
	s.SetLoading(true)
	assert.Len(t, seen, 2)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := NewTrendStore(&fakeSource{})
	s.SetTrends(trendsWithScores(10))

	snap := s.Snapshot()
	snap.Trends[0].Niche = "mutated"

	assert.Equal(t, "niche", s.Snapshot().Trends[0].Niche)
}

func TestSetTrends_NilBecomesEmpty(t *testing.T) {
	s := NewTrendStore(&fakeSource{})
	s.SetTrends(nil)
	assert.NotNil(t, s.Snapshot().Trends)
}
