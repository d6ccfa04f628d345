package airport

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewCache(rdb, ttl), mr
}

func TestCache_MissThenHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	if _, hit, err := cache.Get(ctx, "kathmandu"); err != nil || hit {
		t.Fatalf("expected miss, got hit=%v err=%v", hit, err)
	}

	want := []Record{{IATA: "KTM", Name: "Tribhuvan", City: "Kathmandu", Country: "Nepal", Lat: 27.6966, Lon: 85.3591}}
	if err := cache.Put(ctx, "kathmandu", want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, hit, err := cache.Get(ctx, "kathmandu")
	if err != nil || !hit {
		t.Fatalf("expected hit, got hit=%v err=%v", hit, err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := cache.Put(ctx, "london", []Record{{IATA: "LHR"}}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if ttl := mr.TTL(suggestKey("london")); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, hit, _ := cache.Get(ctx, "london"); hit {
		t.Error("expected entry to expire")
	}
}

func TestCache_CorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	if err := mr.Set(suggestKey("paris"), "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, hit, err := cache.Get(context.Background(), "paris"); err == nil || hit {
		t.Errorf("expected decode error, got hit=%v err=%v", hit, err)
	}
}
