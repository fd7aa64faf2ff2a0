package analytics

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogu-code/portfolio/internal/logging"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), Visit{HashedIP: "abc", Path: "/"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	recent, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/projects", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "c", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.Record(ctx, v))
	}

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	assert.Equal(t, []PathCount{{Path: "/", Visits: 3}, {Path: "/projects", Visits: 1}}, stats.TopPaths)

	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/", stats.RecentVisitors[0].Path)
	assert.True(t, now.Add(-time.Hour).Equal(stats.RecentVisitors[0].Timestamp))
}

func TestRecordRequiresHash(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.Record(context.Background(), Visit{Path: "/"}))
}

func TestPurge(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Record(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.Record(ctx, Visit{HashedIP: "new", Path: "/", Timestamp: now}))

	n, err := s.Purge(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	recent, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].HashedIP)
}

func TestNilStore(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
	assert.ErrorIs(t, s.Record(context.Background(), Visit{HashedIP: "a"}), ErrNotConfigured)
	_, err := s.Stats(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		method, path string
		dnt          bool
		want         bool
	}{
		{"GET", "/", false, true},
		{"GET", "/projects", false, true},
		{"GET", "/", true, false},
		{"POST", "/contact", false, false},
		{"GET", "/static/site.css", false, false},
		{"GET", "/admin/dashboard", false, false},
		{"GET", "/api/projects", false, false},
		{"GET", "/privacy", false, false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(tt.method, tt.path, nil)
		if tt.dnt {
			r.Header.Set("DNT", "1")
		}
		assert.Equal(t, tt.want, ShouldTrack(r), "%s %s dnt=%v", tt.method, tt.path, tt.dnt)
	}
}

func TestHasher(t *testing.T) {
	h1, err := NewHasher()
	require.NoError(t, err)
	h2, err := NewHasher()
	require.NoError(t, err)

	a := h1.Hash("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h1.Hash("203.0.113.7"))
	assert.NotEqual(t, a, h1.Hash("203.0.113.8"))
	assert.NotEqual(t, a, h2.Hash("203.0.113.7"))
}

type memRecorder struct {
	mu     sync.Mutex
	visits []Visit
	err    error
}

func (m *memRecorder) Record(_ context.Context, v Visit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visits = append(m.visits, v)
	return m.err
}

func TestTracker(t *testing.T) {
	h, err := NewHasher()
	require.NoError(t, err)
	rec := &memRecorder{}
	tr := NewTracker(rec, h, logging.Discard())

	tr.Track("198.51.100.1", "curl/8", "/")
	tr.Track("198.51.100.2", "curl/8", "/projects")
	tr.Wait()

	require.Len(t, rec.visits, 2)
	for _, v := range rec.visits {
		assert.Len(t, v.HashedIP, 16)
		assert.False(t, v.Timestamp.IsZero())
	}
}

func TestTrackerLogsFailures(t *testing.T) {
	h, err := NewHasher()
	require.NoError(t, err)
	rec := &memRecorder{err: errors.New("disk full")}
	tr := NewTracker(rec, h, logging.Discard())

	tr.Track("198.51.100.1", "", "/")
	tr.Wait()
	assert.Len(t, rec.visits, 1)
}

func TestRunRetentionStopsOnCancel(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Record(context.Background(), Visit{HashedIP: "old", Path: "/", Timestamp: time.Now().AddDate(-2, 0, 0)}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunRetention(ctx, s, 365*24*time.Hour, time.Hour, logging.Discard())
		close(done)
	}()

	require.Eventually(t, func() bool {
		recent, err := s.Recent(context.Background(), 10)
		return err == nil && len(recent) == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("retention loop did not stop")
	}
}
