package constant

// RateLimitType namespaces rate-limit records so the same identifier can
// carry independent counters per guarded action.
type RateLimitType string

const (
	RateLimitCheckout RateLimitType = "checkout"
	RateLimitLogin    RateLimitType = "login"
)
