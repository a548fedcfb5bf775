package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CleanupInterval is how often old rows are purged while the tracker runs.
const CleanupInterval = 24 * time.Hour

// Paths that are never counted as page views.
var untrackedPrefixes = []string{
	"/static/", "/images/", "/admin", "/favicon", "/privacy", "/health", "/api/",
}

type event struct {
	visit  *Visit
	beacon *Beacon
}

// Tracker queues analytics writes so request handlers never wait on the
// database. When the queue is full new events are dropped.
type Tracker struct {
	store     *Store
	logger    *zap.Logger
	salt      string
	retention time.Duration
	queue     chan event
	dropped   atomic.Int64
	now       func() time.Time
}

// NewTracker creates a tracker with a fresh per-process hashing salt.
func NewTracker(store *Store, logger *zap.Logger, queueSize int, retention time.Duration) (*Tracker, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, fmt.Errorf("tracker salt: %w", err)
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Tracker{
		store:     store,
		logger:    logger,
		salt:      salt,
		retention: retention,
		queue:     make(chan event, queueSize),
		now:       time.Now,
	}, nil
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns a stable, salted, truncated hash of ip.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit queues a page view. It reports false if the event was dropped.
func (t *Tracker) RecordVisit(ip, userAgent, path string) bool {
	return t.enqueue(event{visit: &Visit{
		HashedIP:  t.HashIP(ip),
		UserAgent: userAgent,
		Path:      path,
		Timestamp: t.now(),
	}})
}

// RecordBeacon queues a client measurement. It reports false if dropped.
func (t *Tracker) RecordBeacon(name string, value float64, path string) bool {
	return t.enqueue(event{beacon: &Beacon{
		Name:      name,
		Value:     value,
		Path:      path,
		Timestamp: t.now(),
	}})
}

func (t *Tracker) enqueue(e event) bool {
	select {
	case t.queue <- e:
		return true
	default:
		t.dropped.Add(1)
		return false
	}
}

// Dropped is the number of events discarded because the queue was full.
func (t *Tracker) Dropped() int64 {
	return t.dropped.Load()
}

// Run writes queued events and purges expired rows until ctx is done, then
// flushes whatever is still queued.
func (t *Tracker) Run(ctx context.Context) error {
	t.cleanup(ctx)

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.flush()
			return nil
		case <-ticker.C:
			t.cleanup(ctx)
		case e := <-t.queue:
			t.write(ctx, e)
		}
	}
}

func (t *Tracker) flush() {
	// The parent context is already cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case e := <-t.queue:
			t.write(ctx, e)
		default:
			return
		}
	}
}

func (t *Tracker) write(ctx context.Context, e event) {
	var err error
	switch {
	case e.visit != nil:
		err = t.store.InsertVisit(ctx, *e.visit)
	case e.beacon != nil:
		err = t.store.InsertBeacon(ctx, *e.beacon)
	}
	if err != nil {
		t.logger.Warn("analytics write failed", zap.Error(err))
	}
}

func (t *Tracker) cleanup(ctx context.Context) {
	if t.retention <= 0 {
		return
	}
	n, err := t.store.Cleanup(ctx, t.retention)
	if err != nil {
		t.logger.Warn("analytics cleanup failed", zap.Error(err))
		return
	}
	if n > 0 {
		t.logger.Info("analytics cleanup removed expired rows", zap.Int64("rows", n))
	}
}

// Middleware records GET page views. Static assets, admin and API paths are
// skipped, and so are HTMX fragment requests and any request carrying
// "DNT: 1".
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" && Trackable(c.Request.URL.Path) &&
			c.GetHeader("DNT") != "1" && c.GetHeader("HX-Request") != "true" {
			t.RecordVisit(c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path)
		}
		c.Next()
	}
}

// Trackable reports whether path counts as a page view.
func Trackable(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}
