package model

import "time"

// RateLimitRecord is the persisted counter for one (identifier, limit type)
// pair. BlockedUntil is set once the attempt count passes the policy's
// maximum and outlives the counting window.
type RateLimitRecord struct {
	Count        int        `json:"count"`
	ResetAt      time.Time  `json:"reset_at"`
	BlockedUntil *time.Time `json:"blocked_until,omitempty"`
}
