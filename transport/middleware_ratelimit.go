package transport

import (
	"net"
	"net/http"
	"strings"

	"github.com/campuscloset/marketplace/cmd/config"
	"github.com/campuscloset/marketplace/constant"
	"github.com/campuscloset/marketplace/utils/errors"
	"github.com/campuscloset/marketplace/utils/ratelimit"
	"github.com/gorilla/mux"
)

// CheckoutRateLimitMiddleware applies the generic per-IP limit to the
// checkout endpoint. It runs before authentication: unauthenticated floods
// must burn the limit, not the session validator. Admin and vendor
// endpoints are deliberately unlimited.
func CheckoutRateLimitMiddleware(limiter *ratelimit.Limiter, cfg *config.Config) mux.MiddlewareFunc {
	policy := ratelimit.Policy{
		MaxAttempts: cfg.RateLimit.CheckoutMaxAttempts,
		Window:      cfg.RateLimit.CheckoutWindow,
		Block:       cfg.RateLimit.CheckoutBlock,
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/checkout" {
				next.ServeHTTP(w, r)
				return
			}

			result := limiter.Check(r.Context(), clientIP(r), constant.RateLimitCheckout, policy, 1)
			if !result.Allowed {
				writeError(w, errors.SetRateLimitedError(result.RetryAfter))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
