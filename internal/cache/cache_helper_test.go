package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) *CacheHelper {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "course:")
}

type cachedRecord struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestCacheHelper_SetGetRoundTrip(t *testing.T) {
	helper := newTestHelper(t)
	ctx := context.Background()

	want := cachedRecord{ID: 7, Name: "Algorithms"}
	if err := helper.Set(ctx, "id:7", want, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got cachedRecord
	if err := helper.Get(ctx, "id:7", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestCacheHelper_GetMiss(t *testing.T) {
	helper := newTestHelper(t)

	var dest cachedRecord
	if err := helper.Get(context.Background(), "id:404", &dest); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Get() error = %v, want ErrCacheNotFound", err)
	}
}

func TestCacheHelper_Delete(t *testing.T) {
	helper := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "id:1", cachedRecord{ID: 1}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := helper.Delete(ctx, "id:1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	exists, err := helper.Exists(ctx, "id:1")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true after delete")
	}
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	helper := newTestHelper(t)
	ctx := context.Background()

	keys := []string{"list:all", "list:page:1", "id:3"}
	for _, key := range keys {
		if err := helper.Set(ctx, key, cachedRecord{ID: 3}, time.Minute); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	if err := helper.InvalidatePattern(ctx, "list:*"); err != nil {
		t.Fatalf("InvalidatePattern() error = %v", err)
	}

	for _, key := range []string{"list:all", "list:page:1"} {
		if exists, _ := helper.Exists(ctx, key); exists {
			t.Errorf("key %s survived invalidation", key)
		}
	}
	if exists, _ := helper.Exists(ctx, "id:3"); !exists {
		t.Error("unrelated key was invalidated")
	}
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	helper := newTestHelper(t)
	ctx := context.Background()

	t.Run("miss executes fetch", func(t *testing.T) {
		calls := 0
		var got cachedRecord
		err := helper.CacheOrExecute(ctx, "id:10", &got, time.Minute, func() (interface{}, error) {
			calls++
			return cachedRecord{ID: 10, Name: "Databases"}, nil
		})
		if err != nil {
			t.Fatalf("CacheOrExecute() error = %v", err)
		}
		if calls != 1 || got.ID != 10 {
			t.Errorf("CacheOrExecute() calls = %d, got = %+v", calls, got)
		}
	})

	t.Run("hit skips fetch", func(t *testing.T) {
		if err := helper.Set(ctx, "id:11", cachedRecord{ID: 11, Name: "Networks"}, time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		var got cachedRecord
		err := helper.CacheOrExecute(ctx, "id:11", &got, time.Minute, func() (interface{}, error) {
			return nil, errors.New("fetch must not run on cache hit")
		})
		if err != nil {
			t.Fatalf("CacheOrExecute() error = %v", err)
		}
		if got.Name != "Networks" {
			t.Errorf("CacheOrExecute() = %+v, want cached value", got)
		}
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		wantErr := errors.New("db down")
		var got cachedRecord
		err := helper.CacheOrExecute(ctx, "id:12", &got, time.Minute, func() (interface{}, error) {
			return nil, wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("CacheOrExecute() error = %v, want %v", err, wantErr)
		}
	})
}

func TestCacheHelper_NilClientDegradesGracefully(t *testing.T) {
	helper := NewCacheHelper(nil, "")
	ctx := context.Background()

	if err := helper.Set(ctx, "id:1", cachedRecord{}, time.Minute); err != nil {
		t.Errorf("Set() with nil client error = %v, want nil", err)
	}

	var dest cachedRecord
	if err := helper.Get(ctx, "id:1", &dest); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Get() with nil client error = %v, want ErrCacheNotAvailable", err)
	}

	calls := 0
	err := helper.CacheOrExecute(ctx, "id:1", &dest, time.Minute, func() (interface{}, error) {
		calls++
		return cachedRecord{ID: 1}, nil
	})
	if err != nil || calls != 1 {
		t.Errorf("CacheOrExecute() with nil client error = %v, calls = %d", err, calls)
	}
}
