package wapi

import (
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultRateLimit is the documented per-window quota of the API.
const DefaultRateLimit = 120

// maxResetSeconds caps RateLimit-Reset so the derived epoch cannot overflow.
const maxResetSeconds = 24 * 60 * 60

// Rate limit response headers
const (
	HeaderRateLimitRemaining = "RateLimit-Remaining"
	HeaderRateLimitReset     = "RateLimit-Reset"
	HeaderRateLimitLimit     = "RateLimit-Limit"
)

// RateLimitStatus is a snapshot of the server-reported quota
type RateLimitStatus struct {
	Remaining int
	Limit     int
	// ResetEpoch is the unix time (seconds) at which the quota resets
	ResetEpoch int64
	// SecondsUntilReset is derived when the snapshot is read
	SecondsUntilReset int64
}

// ResetAt returns ResetEpoch as a time.Time
func (s RateLimitStatus) ResetAt() time.Time {
	return time.Unix(s.ResetEpoch, 0)
}

func secondsUntil(resetEpoch int64, now time.Time) int64 {
	return max(0, resetEpoch-now.Unix())
}

// rateLimitTracker holds the last observed quota as a single immutable
// snapshot, so readers never see fields from two different responses.
type rateLimitTracker struct {
	state atomic.Pointer[RateLimitStatus]
	now   func() time.Time
}

func newRateLimitTracker(now func() time.Time) *rateLimitTracker {
	if now == nil {
		now = time.Now
	}
	t := &rateLimitTracker{now: now}
	t.state.Store(&RateLimitStatus{
		Remaining: DefaultRateLimit,
		Limit:     DefaultRateLimit,
	})
	return t
}

// Status returns the current snapshot with SecondsUntilReset filled in.
func (t *rateLimitTracker) Status() RateLimitStatus {
	s := *t.state.Load()
	s.SecondsUntilReset = secondsUntil(s.ResetEpoch, t.now())
	return s
}

// update applies whichever rate limit headers are present and well formed.
// Missing or malformed values leave the previous field untouched.
func (t *rateLimitTracker) update(h http.Header) bool {
	remaining, hasRemaining := headerInt(h, HeaderRateLimitRemaining)
	reset, hasReset := headerInt(h, HeaderRateLimitReset)
	limit, hasLimit := headerInt(h, HeaderRateLimitLimit)
	if !hasRemaining && !hasReset && !hasLimit {
		return false
	}

	now := t.now()
	for {
		old := t.state.Load()
		next := *old
		if hasRemaining {
			next.Remaining = int(remaining)
		}
		if hasReset {
			next.ResetEpoch = now.Unix() + min(max(reset, 0), maxResetSeconds)
		}
		if hasLimit {
			next.Limit = int(limit)
		}
		if t.state.CompareAndSwap(old, &next) {
			return true
		}
	}
}

func headerInt(h http.Header, key string) (int64, bool) {
	raw := strings.TrimSpace(h.Get(key))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
