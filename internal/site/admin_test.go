package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogu-code/portfolio/internal/analytics"
)

func login(t *testing.T, f *fixture) *http.Cookie {
	t.Helper()
	w := f.do(postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}}))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			assert.True(t, c.HttpOnly)
			return c
		}
	}
	t.Fatal("no admin cookie set")
	return nil
}

func TestAdminDisabledWithoutPassword(t *testing.T) {
	f := newFixture(t, "")
	assert.Equal(t, http.StatusNotFound, f.get("/admin/login").Code)
	assert.Equal(t, http.StatusNotFound, f.get("/admin/dashboard").Code)
}

func TestAdminRequiresLogin(t *testing.T) {
	f := newFixture(t, "s3cret")

	w := f.get("/admin/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	req := httptestGet("/admin/api/stats")
	req.AddCookie(&http.Cookie{Name: adminCookie, Value: "forged"})
	assert.Equal(t, http.StatusFound, f.do(req).Code)
}

func TestAdminBadCredentials(t *testing.T) {
	f := newFixture(t, "s3cret")
	w := f.do(postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Empty(t, w.Result().Cookies())
}

func TestAdminDashboard(t *testing.T) {
	f := newFixture(t, "s3cret")
	ctx := context.Background()
	require.NoError(t, f.store.Record(ctx, analytics.Visit{HashedIP: "abc123", Path: "/", Timestamp: time.Now()}))
	cookie := login(t, f)

	req := httptestGet("/admin/dashboard")
	req.AddCookie(cookie)
	w := f.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc123")
	assert.Contains(t, w.Body.String(), "Chess")

	req = httptestGet("/admin/api/stats")
	req.AddCookie(cookie)
	w = f.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisitors)

	req = httptestGet("/admin/export/stats")
	req.AddCookie(cookie)
	w = f.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "admin-stats.json")
}

func TestAdminPurge(t *testing.T) {
	f := newFixture(t, "s3cret")
	ctx := context.Background()
	require.NoError(t, f.store.Record(ctx, analytics.Visit{HashedIP: "old", Path: "/", Timestamp: time.Now().AddDate(-2, 0, 0)}))
	require.NoError(t, f.store.Record(ctx, analytics.Visit{HashedIP: "new", Path: "/", Timestamp: time.Now()}))
	cookie := login(t, f)

	req := postForm("/admin/privacy/purge", nil)
	req.AddCookie(cookie)
	w := f.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Privacy cleanup complete","removed":1}`, w.Body.String())
}

func TestAdminLogout(t *testing.T) {
	f := newFixture(t, "s3cret")
	cookie := login(t, f)

	req := httptestGet("/admin/logout")
	req.AddCookie(cookie)
	w := f.do(req)
	assert.Equal(t, http.StatusFound, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
}

func httptestGet(path string) *http.Request {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	return req
}
