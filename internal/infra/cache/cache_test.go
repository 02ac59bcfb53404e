package cache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"pagecast/config"
	"pagecast/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisCache(rdb, time.Minute), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	miss, err := c.Get(ctx, "/seattle-wa/joes-pizza")
	require.NoError(t, err)
	assert.Nil(t, miss)

	resp := &service.CachedResponse{HTML: "<html></html>", ContentType: "text/html", Source: "database"}
	require.NoError(t, c.Set(ctx, "/seattle-wa/joes-pizza", resp, "published-pages"))

	hit, err := c.Get(ctx, "/seattle-wa/joes-pizza")
	require.NoError(t, err)
	assert.Equal(t, resp, hit)

	assert.Equal(t, time.Minute, mr.TTL(responseKeyPrefix+"/seattle-wa/joes-pizza"))
	members, err := mr.SMembers(tagKeyPrefix + "published-pages")
	require.NoError(t, err)
	assert.Equal(t, []string{responseKeyPrefix + "/seattle-wa/joes-pizza"}, members)
}

func TestRedisCache_InvalidateTagDropsEveryTaggedEntry(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/a", &service.CachedResponse{HTML: "a"}, "published-pages"))
	require.NoError(t, c.Set(ctx, "/b", &service.CachedResponse{HTML: "b"}, "published-pages"))
	require.NoError(t, c.Set(ctx, "/c", &service.CachedResponse{HTML: "c"}, "other"))

	require.NoError(t, c.InvalidateTag(ctx, "published-pages"))

	for _, p := range []string{"/a", "/b"} {
		got, err := c.Get(ctx, p)
		require.NoError(t, err)
		assert.Nil(t, got, p)
	}
	got, err := c.Get(ctx, "/c")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.False(t, mr.Exists(tagKeyPrefix+"published-pages"))

	// Invalidating an unknown tag is fine.
	assert.NoError(t, c.InvalidateTag(ctx, "never-used"))
}

func TestRedisCache_SetCapsTTLAtExpiry(t *testing.T) {
	c, mr := newTestRedisCache(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	soon := now.Add(10 * time.Second)
	require.NoError(t, c.Set(ctx, "/soon", &service.CachedResponse{HTML: "soon", ExpiresAt: &soon}, "published-pages"))
	assert.Equal(t, 10*time.Second, mr.TTL(responseKeyPrefix+"/soon"))

	later := now.Add(time.Hour)
	require.NoError(t, c.Set(ctx, "/later", &service.CachedResponse{HTML: "later", ExpiresAt: &later}, "published-pages"))
	assert.Equal(t, time.Minute, mr.TTL(responseKeyPrefix+"/later"))

	past := now.Add(-time.Second)
	require.NoError(t, c.Set(ctx, "/past", &service.CachedResponse{HTML: "past", ExpiresAt: &past}, "published-pages"))
	assert.False(t, mr.Exists(responseKeyPrefix+"/past"))

	mr.FastForward(11 * time.Second)
	got, err := c.Get(ctx, "/soon")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_InvalidateTagClearsLargeSets(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	for i := range 1200 {
		path := "/p/" + strconv.Itoa(i)
		require.NoError(t, c.Set(ctx, path, &service.CachedResponse{HTML: path}, "published-pages"))
	}

	require.NoError(t, c.InvalidateTag(ctx, "published-pages"))

	assert.Empty(t, mr.Keys())
}

func TestRedisCache_CorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestRedisCache(t)
	require.NoError(t, mr.Set(responseKeyPrefix+"/x", "not json"))

	got, err := c.Get(context.Background(), "/x")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(responseKeyPrefix+"/x"))
}

func TestPurgeWebhook_InvalidateTag(t *testing.T) {
	var got purgeRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	hook := NewPurgeWebhook(srv.URL, "secret", time.Second)
	require.NoError(t, hook.InvalidateTag(context.Background(), "published-pages"))

	assert.Equal(t, []string{"published-pages"}, got.Tags)
	assert.Equal(t, "Bearer secret", auth)
}

func TestPurgeWebhook_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	hook := NewPurgeWebhook(srv.URL, "", time.Second)
	assert.Error(t, hook.InvalidateTag(context.Background(), "published-pages"))
}

type recordingInvalidator struct {
	tags []string
	err  error
}

func (r *recordingInvalidator) InvalidateTag(_ context.Context, tag string) error {
	r.tags = append(r.tags, tag)
	return r.err
}

func TestMultiInvalidator_AttemptsEveryLayer(t *testing.T) {
	failing := &recordingInvalidator{err: assert.AnError}
	ok := &recordingInvalidator{}

	err := MultiInvalidator{failing, ok}.InvalidateTag(context.Background(), "published-pages")

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"published-pages"}, ok.tags)
}

func TestNewTagInvalidator(t *testing.T) {
	cfg := &config.Config{Cache: &config.CacheConfig{}}
	assert.Len(t, NewTagInvalidator(cfg, NoopCache{}), 1)

	cfg.Cache.PurgeWebhookURL = "http://edge.example/purge"
	assert.Len(t, NewTagInvalidator(cfg, NoopCache{}), 2)
}
