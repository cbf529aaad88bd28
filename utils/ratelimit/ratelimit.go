package ratelimit

import (
	"context"
	"math"
	"time"

	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/model"
	"github.com/campuscloset/marketplace/utils/logger"
	"go.uber.org/zap"
)

// Store persists one counter record per (identifier, limit type). Get
// returns nil when no record exists. Implementations may expire records on
// their own once both the window and any block have elapsed.
type Store interface {
	Get(ctx context.Context, identifier string, limitType constant.RateLimitType) (*model.RateLimitRecord, error)
	Put(ctx context.Context, identifier string, limitType constant.RateLimitType, rec *model.RateLimitRecord, ttl time.Duration) error
	Delete(ctx context.Context, identifier string, limitType constant.RateLimitType) error
}

// Policy bounds attempts per window and sets the cooldown applied once the
// bound is exceeded.
type Policy struct {
	MaxAttempts int
	Window      time.Duration
	Block       time.Duration
}

// Result of a limiter check. RetryAfter is in whole seconds, 0 when allowed.
type Result struct {
	Allowed    bool
	RetryAfter int
}

type Limiter struct {
	store Store
	now   func() time.Time
}

func NewLimiter(store Store) *Limiter {
	return &Limiter{store: store, now: time.Now}
}

// NewLimiterWithClock injects the clock for tests.
func NewLimiterWithClock(store Store, now func() time.Time) *Limiter {
	return &Limiter{store: store, now: now}
}

// Check applies the sliding-window counter with block cooldown. A zero
// increment is a read-only probe that consumes nothing. Store failures
// degrade to allowed: blocking all traffic on an infrastructure hiccup is
// worse than letting a few extra attempts through.
func (l *Limiter) Check(ctx context.Context, identifier string, limitType constant.RateLimitType, policy Policy, increment int) Result {
	now := l.now()

	rec, err := l.store.Get(ctx, identifier, limitType)
	if err != nil {
		logger.Warn("[RateLimit] store get failed, failing open",
			zap.String("identifier", identifier), zap.String("type", string(limitType)), zap.Error(err))
		return Result{Allowed: true}
	}

	if rec != nil && rec.BlockedUntil != nil && now.Before(*rec.BlockedUntil) {
		return Result{Allowed: false, RetryAfter: ceilSeconds(rec.BlockedUntil.Sub(now))}
	}

	if rec == nil || !now.Before(rec.ResetAt) {
		rec = &model.RateLimitRecord{ResetAt: now.Add(policy.Window)}
	} else {
		// block elapsed but window still open: keep the counter
		rec.BlockedUntil = nil
	}

	if increment == 0 {
		if rec.Count >= policy.MaxAttempts {
			return Result{Allowed: false, RetryAfter: ceilSeconds(rec.ResetAt.Sub(now))}
		}
		return Result{Allowed: true}
	}

	rec.Count += increment

	allowed := rec.Count <= policy.MaxAttempts
	retryAfter := 0
	ttl := rec.ResetAt.Sub(now)
	if !allowed {
		blockedUntil := now.Add(policy.Block)
		rec.BlockedUntil = &blockedUntil
		retryAfter = ceilSeconds(policy.Block)
		if policy.Block > ttl {
			ttl = policy.Block
		}
	}

	if err := l.store.Put(ctx, identifier, limitType, rec, ttl); err != nil {
		logger.Warn("[RateLimit] store put failed, failing open",
			zap.String("identifier", identifier), zap.String("type", string(limitType)), zap.Error(err))
		return Result{Allowed: true}
	}

	return Result{Allowed: allowed, RetryAfter: retryAfter}
}

// Clear drops the record after a successful sensitive action so stale
// blocks never penalize future legitimate attempts.
func (l *Limiter) Clear(ctx context.Context, identifier string, limitType constant.RateLimitType) error {
	return l.store.Delete(ctx, identifier, limitType)
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
