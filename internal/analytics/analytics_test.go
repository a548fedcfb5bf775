package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/changomango/portfolio/internal/apperr"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Stats(t *testing.T) {
	s := newStore(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/projects", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "c", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, s.InsertVisit(ctx, v))
	}
	require.NoError(t, s.InsertBeacon(ctx, Beacon{Name: "LCP", Value: 1000, Timestamp: now}))
	require.NoError(t, s.InsertBeacon(ctx, Beacon{Name: "LCP", Value: 2000, Timestamp: now}))
	require.NoError(t, s.InsertBeacon(ctx, Beacon{Name: "CLS", Value: 0.1, Timestamp: now}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	assert.Equal(t, []PathStat{{Path: "/", Views: 3}, {Path: "/projects", Views: 1}}, stats.TopPaths)
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/", stats.RecentVisitors[0].Path)
	assert.Equal(t, "a", stats.RecentVisitors[0].HashedIP)
	assert.Equal(t, []BeaconStat{{Name: "CLS", Count: 1, Average: 0.1}, {Name: "LCP", Count: 2, Average: 1500}}, stats.Beacons)
}

func TestStore_Cleanup(t *testing.T) {
	s := newStore(t)
	now := time.Now()
	ctx := context.Background()

	require.NoError(t, s.InsertVisit(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.InsertVisit(ctx, Visit{HashedIP: "new", Path: "/", Timestamp: now}))
	require.NoError(t, s.InsertBeacon(ctx, Beacon{Name: "LCP", Value: 1, Timestamp: now.AddDate(-2, 0, 0)}))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	recent, err := s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].HashedIP)
}

func TestTracker_HashIP(t *testing.T) {
	tr, err := NewTracker(newStore(t), zap.NewNop(), 1, 0)
	require.NoError(t, err)

	h := tr.HashIP("203.0.113.9")
	assert.Len(t, h, 16)
	assert.Equal(t, h, tr.HashIP("203.0.113.9"))
	assert.NotEqual(t, h, tr.HashIP("203.0.113.10"))
	assert.NotContains(t, h, "203")
}

func TestTracker_DropsWhenFull(t *testing.T) {
	tr, err := NewTracker(newStore(t), zap.NewNop(), 1, 0)
	require.NoError(t, err)

	assert.True(t, tr.RecordVisit("1.1.1.1", "ua", "/"))
	assert.False(t, tr.RecordVisit("1.1.1.1", "ua", "/"))
	assert.EqualValues(t, 1, tr.Dropped())
}

func TestTracker_RunWritesAndFlushes(t *testing.T) {
	s := newStore(t)
	tr, err := NewTracker(s, zap.NewNop(), 16, 365*24*time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Run(ctx) }()

	tr.RecordVisit("198.51.100.1", "test-agent", "/projects")
	tr.RecordBeacon("FID", 12, "/projects")

	require.Eventually(t, func() bool {
		stats, err := s.Stats(context.Background())
		return err == nil && stats.TotalVisitors == 1 && len(stats.Beacons) == 1
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestTrackable(t *testing.T) {
	assert.True(t, Trackable("/"))
	assert.True(t, Trackable("/projects"))
	assert.False(t, Trackable("/static/site.css"))
	assert.False(t, Trackable("/admin/dashboard"))
	assert.False(t, Trackable("/api/beacon"))
	assert.False(t, Trackable("/health/live"))
}

func TestMiddleware_RespectsDNT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tr, err := NewTracker(newStore(t), zap.NewNop(), 8, 0)
	require.NoError(t, err)

	r := gin.New()
	r.Use(tr.Middleware())
	r.GET("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Len(t, tr.queue, 0)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/projects", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static/x.css", nil))
	assert.Len(t, tr.queue, 1)
}

func TestMiddleware_SkipsFragments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tr, err := NewTracker(newStore(t), zap.NewNop(), 8, 0)
	require.NoError(t, err)

	r := gin.New()
	r.Use(tr.Middleware())
	r.GET("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/projects/results?q=go", "/projects/more", "/nav/menu?open=false"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("HX-Request", "true")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Len(t, tr.queue, 0)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.Len(t, tr.queue, 1)
}

func newAdminRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := newStore(t)
	tr, err := NewTracker(s, zap.NewNop(), 8, 0)
	require.NoError(t, err)
	a, err := NewAdmin(s, tr, zap.NewNop(), "admin", "s3cret", false)
	require.NoError(t, err)

	r := gin.New()
	// Minimal templates; the real ones live with the web package.
	r.LoadHTMLGlob(filepath.Join("testdata", "*.html"))
	a.Register(r)
	return r, s
}

func login(t *testing.T, r *gin.Engine, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {user}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdmin_RequiresLogin(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdmin_BadCredentials(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := login(t, r, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAdmin_Authenticate(t *testing.T) {
	s := newStore(t)
	tr, err := NewTracker(s, zap.NewNop(), 8, 0)
	require.NoError(t, err)
	a, err := NewAdmin(s, tr, zap.NewNop(), "admin", "s3cret", false)
	require.NoError(t, err)

	assert.NoError(t, a.Authenticate("admin", "s3cret"))
	assert.ErrorIs(t, a.Authenticate("admin", "wrong"), apperr.ErrUnauthorized)
	assert.ErrorIs(t, a.Authenticate("root", "s3cret"), apperr.ErrUnauthorized)
}

func TestAdmin_LoginThenStats(t *testing.T) {
	r, s := newAdminRouter(t)
	require.NoError(t, s.InsertVisit(context.Background(), Visit{HashedIP: "x", Path: "/", Timestamp: time.Now()}))

	w := login(t, r, "admin", "s3cret")
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_visitors":1`)

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "visitors: 1")
}
