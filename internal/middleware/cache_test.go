package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/banjos/restaurant-api/internal/config"
)

func TestPackEntryRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Add("X-Multi", "a")
	hdr.Add("X-Multi", "b")
	body := []byte(`[{"name":"Paneer Roll"}]`)

	entry, err := packEntry(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("packEntry: %v", err)
	}
	status, gotHdr, gotBody, ok := unpackEntry(entry)
	if !ok {
		t.Fatal("unpackEntry rejected a valid entry")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Fatalf("Content-Type = %q", gotHdr.Get("Content-Type"))
	}
	if vals := gotHdr.Values("X-Multi"); len(vals) != 2 || vals[0] != "a" || vals[1] != "b" {
		t.Fatalf("X-Multi = %v", vals)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("body = %q, want %q", gotBody, body)
	}
}

func TestPackEntryEmptyBody(t *testing.T) {
	entry, err := packEntry(http.StatusOK, http.Header{}, nil)
	if err != nil {
		t.Fatalf("packEntry: %v", err)
	}
	status, _, body, ok := unpackEntry(entry)
	if !ok || status != http.StatusOK || len(body) != 0 {
		t.Fatalf("got status=%d body=%q ok=%v", status, body, ok)
	}
}

func TestUnpackEntryRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}, []byte("not an entry")} {
		if _, _, _, ok := unpackEntry(bs); ok {
			t.Fatalf("unpackEntry accepted %q", bs)
		}
	}
	// Header length pointing past the end of the entry.
	bad := make([]byte, 12)
	bad[7] = 200
	if _, _, _, ok := unpackEntry(bad); ok {
		t.Fatal("unpackEntry accepted a truncated header")
	}
}

func cacheCtx(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/menu/items")
	return c
}

func TestCacheKeyStrategies(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "banjos:cache", KeyStrategy: "route_query"}

	withQ := cacheKey(cfg, cacheCtx(http.MethodGet, "/menu/items?category_id=7"))
	noQ := cacheKey(cfg, cacheCtx(http.MethodGet, "/menu/items"))
	if withQ == noQ {
		t.Fatal("route_query ignored the query string")
	}

	cfg.KeyStrategy = "route"
	if a, b := cacheKey(cfg, cacheCtx(http.MethodGet, "/menu/items?x=1")), cacheKey(cfg, cacheCtx(http.MethodGet, "/menu/items")); a != b {
		t.Fatal("route strategy should collapse query variants")
	}

	cfg.KeyStrategy = "method_route"
	get := cacheKey(cfg, cacheCtx(http.MethodGet, "/menu/items"))
	head := cacheKey(cfg, cacheCtx(http.MethodHead, "/menu/items"))
	if get == head {
		t.Fatal("method_route strategy should separate methods")
	}
}

// deadRedis returns a client pointed at a port nothing listens on, so every
// command errors immediately and the middleware takes its fall-through path.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCacheSkipsAuthorizedRequests(t *testing.T) {
	cfg := config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "banjos:cache",
		MaxBodyBytes: 1 << 20,
	}
	mw := NewRedisCache(cfg, deadRedis())

	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/me")
	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("X-Cache"); got != "" {
		t.Fatalf("authorized request went through the cache: X-Cache=%q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/menu/items", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetPath("/menu/items")
	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Fatalf("anonymous GET should be a cache MISS, got X-Cache=%q", got)
	}
}

func TestCacheDisabledIsPassthrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/menu/items", nil)
	rec := httptest.NewRecorder()
	if err := mw(okHandler)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Header().Get("X-Cache") != "" {
		t.Fatalf("disabled cache touched the response: code=%d X-Cache=%q", rec.Code, rec.Header().Get("X-Cache"))
	}
}
