package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// untracked path prefixes: assets, the dashboard itself and machine endpoints
var untracked = []string{"/static/", "/images/", "/admin", "/api/", "/favicon", "/privacy"}

// ShouldTrack reports whether a request counts as a page visit.
// Do Not Track is honoured.
func ShouldTrack(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if r.Header.Get("DNT") == "1" {
		return false
	}
	for _, prefix := range untracked {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}

// Hasher turns client addresses into stable, salted, truncated digests.
type Hasher struct {
	salt string
}

// NewHasher creates a Hasher with a random per-process salt.
func NewHasher() (*Hasher, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return &Hasher{salt: hex.EncodeToString(b)}, nil
}

// Hash returns the digest for ip.
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Recorder is the part of Store the tracker writes to.
type Recorder interface {
	Record(ctx context.Context, v Visit) error
}

// Tracker records visits in the background so page rendering never waits on SQLite.
type Tracker struct {
	rec    Recorder
	hasher *Hasher
	log    *logrus.Entry
	now    func() time.Time

	wg sync.WaitGroup
}

// NewTracker creates a Tracker writing to rec.
func NewTracker(rec Recorder, hasher *Hasher, log *logrus.Entry) *Tracker {
	return &Tracker{rec: rec, hasher: hasher, log: log, now: time.Now}
}

// Track records one visit asynchronously.
func (t *Tracker) Track(ip, userAgent, path string) {
	v := Visit{
		HashedIP:  t.hasher.Hash(ip),
		UserAgent: userAgent,
		Path:      path,
		Timestamp: t.now(),
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := t.rec.Record(ctx, v); err != nil {
			t.log.WithError(err).WithField("path", path).Warn("record visit")
		}
	}()
}

// Wait blocks until every pending visit has been written.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// RunRetention purges visits older than retention once immediately and then
// every interval until ctx is done.
func RunRetention(ctx context.Context, s *Store, retention, interval time.Duration, log *logrus.Entry) {
	purge := func() {
		n, err := s.Purge(ctx, time.Now().Add(-retention))
		if err != nil {
			if ctx.Err() == nil {
				log.WithError(err).Warn("visitor retention cleanup")
			}
			return
		}
		if n > 0 {
			log.WithField("removed", n).Info("privacy cleanup removed old visitor records")
		}
	}

	purge()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}
