package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
)

var testPolicy = Policy{
	MaxAttempts: 3,
	Window:      time.Minute,
	Block:       5 * time.Minute,
}

// fakeClock lets the tests walk time forward deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter() (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStoreWithClock(clock.now)
	return NewLimiterWithClock(store, clock.now), clock
}

func TestLimiter_AllowsWithinWindow(t *testing.T) {
	limiter, _ := newTestLimiter()
	ctx := context.Background()

	for i := 0; i < testPolicy.MaxAttempts; i++ {
		res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
		if !res.Allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		if res.RetryAfter != 0 {
			t.Fatalf("attempt %d RetryAfter = %d, want 0", i+1, res.RetryAfter)
		}
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	limiter, clock := newTestLimiter()
	ctx := context.Background()

	for i := 0; i < testPolicy.MaxAttempts; i++ {
		limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
	}

	res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
	if res.Allowed {
		t.Fatal("attempt over the limit should be denied")
	}
	if res.RetryAfter != int(testPolicy.Block.Seconds()) {
		t.Fatalf("RetryAfter = %d, want %d", res.RetryAfter, int(testPolicy.Block.Seconds()))
	}

	// still blocked partway through the cooldown even without new attempts
	clock.advance(2 * time.Minute)
	res = limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 0)
	if res.Allowed {
		t.Fatal("should stay blocked during the cooldown")
	}
	if res.RetryAfter != int((3 * time.Minute).Seconds()) {
		t.Fatalf("RetryAfter = %d, want %d", res.RetryAfter, int((3*time.Minute).Seconds()))
	}
}

func TestLimiter_WindowResets(t *testing.T) {
	limiter, clock := newTestLimiter()
	ctx := context.Background()

	for i := 0; i < testPolicy.MaxAttempts; i++ {
		limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
	}

	// a fresh window starts once both expire
	clock.advance(testPolicy.Block + time.Second)
	res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
	if !res.Allowed {
		t.Fatal("attempt after window and block elapsed should be allowed")
	}
}

func TestLimiter_ZeroIncrementProbe(t *testing.T) {
	limiter, _ := newTestLimiter()
	ctx := context.Background()

	// probes consume nothing: any number of them leaves the counter at zero
	for i := 0; i < testPolicy.MaxAttempts*3; i++ {
		res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitLogin, testPolicy, 0)
		if !res.Allowed {
			t.Fatalf("probe %d should be allowed", i+1)
		}
	}

	for i := 0; i < testPolicy.MaxAttempts; i++ {
		res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitLogin, testPolicy, 1)
		if !res.Allowed {
			t.Fatalf("attempt %d should be allowed after probes", i+1)
		}
	}

	// at the limit the probe reports denied but still writes nothing
	res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitLogin, testPolicy, 0)
	if res.Allowed {
		t.Fatal("probe at the limit should be denied")
	}
	if res.RetryAfter <= 0 {
		t.Fatalf("denied probe RetryAfter = %d, want > 0", res.RetryAfter)
	}
}

func TestLimiter_Clear(t *testing.T) {
	limiter, _ := newTestLimiter()
	ctx := context.Background()

	for i := 0; i < testPolicy.MaxAttempts+1; i++ {
		limiter.Check(ctx, "10.0.0.1", constant.RateLimitLogin, testPolicy, 1)
	}
	res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitLogin, testPolicy, 0)
	if res.Allowed {
		t.Fatal("should be blocked before Clear")
	}

	if err := limiter.Clear(ctx, "10.0.0.1", constant.RateLimitLogin); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	res = limiter.Check(ctx, "10.0.0.1", constant.RateLimitLogin, testPolicy, 1)
	if !res.Allowed {
		t.Fatal("attempt after Clear should be allowed")
	}
}

func TestLimiter_IdentifiersAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter()
	ctx := context.Background()

	for i := 0; i < testPolicy.MaxAttempts+1; i++ {
		limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
	}

	res := limiter.Check(ctx, "10.0.0.2", constant.RateLimitCheckout, testPolicy, 1)
	if !res.Allowed {
		t.Fatal("a different identifier must not share the counter")
	}

	// same identifier, different limit type: still independent
	res = limiter.Check(ctx, "10.0.0.1", constant.RateLimitLogin, testPolicy, 1)
	if !res.Allowed {
		t.Fatal("a different limit type must not share the counter")
	}
}

type failingStore struct {
	getErr error
	putErr error
}

func (s *failingStore) Get(context.Context, string, constant.RateLimitType) (*model.RateLimitRecord, error) {
	return nil, s.getErr
}

func (s *failingStore) Put(context.Context, string, constant.RateLimitType, *model.RateLimitRecord, time.Duration) error {
	return s.putErr
}

func (s *failingStore) Delete(context.Context, string, constant.RateLimitType) error {
	return nil
}

func TestLimiter_FailsOpenOnStoreErrors(t *testing.T) {
	ctx := context.Background()

	limiter := NewLimiter(&failingStore{getErr: errors.New("store down")})
	res := limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
	if !res.Allowed {
		t.Fatal("a Get failure must degrade to allowed")
	}

	limiter = NewLimiter(&failingStore{putErr: errors.New("store down")})
	res = limiter.Check(ctx, "10.0.0.1", constant.RateLimitCheckout, testPolicy, 1)
	if !res.Allowed {
		t.Fatal("a Put failure must degrade to allowed")
	}
}

func TestMemoryStore_ExpiresEntries(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStoreWithClock(clock.now)
	ctx := context.Background()

	rec := &model.RateLimitRecord{Count: 2, ResetAt: clock.t.Add(time.Minute)}
	if err := store.Put(ctx, "10.0.0.1", constant.RateLimitCheckout, rec, time.Minute); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "10.0.0.1", constant.RateLimitCheckout)
	if err != nil || got == nil {
		t.Fatalf("Get() = %v, %v, want record", got, err)
	}
	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}

	clock.advance(time.Minute + time.Second)
	got, err = store.Get(ctx, "10.0.0.1", constant.RateLimitCheckout)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Fatal("expired entry should be gone")
	}
}
