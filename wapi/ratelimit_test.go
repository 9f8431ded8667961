package wapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRateLimitTrackerDefaults(t *testing.T) {
	tracker := newRateLimitTracker(fixedClock(time.Unix(1_700_000_000, 0)))

	status := tracker.Status()
	assert.Equal(t, DefaultRateLimit, status.Remaining)
	assert.Equal(t, DefaultRateLimit, status.Limit)
	assert.Zero(t, status.ResetEpoch)
	assert.Zero(t, status.SecondsUntilReset)
}

func TestRateLimitTrackerUpdate(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name          string
		headers       map[string]string
		wantRemaining int
		wantLimit     int
		wantReset     int64
		wantUpdated   bool
	}{
		{
			name:          "remaining only",
			headers:       map[string]string{HeaderRateLimitRemaining: "42"},
			wantRemaining: 42,
			wantLimit:     DefaultRateLimit,
			wantUpdated:   true,
		},
		{
			name:          "non numeric remaining is ignored",
			headers:       map[string]string{HeaderRateLimitRemaining: "lots"},
			wantRemaining: DefaultRateLimit,
			wantLimit:     DefaultRateLimit,
		},
		{
			name:          "no headers",
			headers:       map[string]string{},
			wantRemaining: DefaultRateLimit,
			wantLimit:     DefaultRateLimit,
		},
		{
			name: "all headers",
			headers: map[string]string{
				HeaderRateLimitRemaining: "10",
				HeaderRateLimitReset:     "30",
				HeaderRateLimitLimit:     "180",
			},
			wantRemaining: 10,
			wantLimit:     180,
			wantReset:     now.Unix() + 30,
			wantUpdated:   true,
		},
		{
			name: "malformed reset keeps others",
			headers: map[string]string{
				HeaderRateLimitRemaining: "5",
				HeaderRateLimitReset:     "soon",
			},
			wantRemaining: 5,
			wantLimit:     DefaultRateLimit,
			wantUpdated:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := newRateLimitTracker(fixedClock(now))
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}

			assert.Equal(t, tt.wantUpdated, tracker.update(h))

			status := tracker.Status()
			assert.Equal(t, tt.wantRemaining, status.Remaining)
			assert.Equal(t, tt.wantLimit, status.Limit)
			assert.Equal(t, tt.wantReset, status.ResetEpoch)
		})
	}
}

func rateLimitHeader(kv ...string) http.Header {
	h := http.Header{}
	for i := 0; i+1 < len(kv); i += 2 {
		h.Set(kv[i], kv[i+1])
	}
	return h
}

func TestRateLimitTrackerKeepsPreviousValue(t *testing.T) {
	tracker := newRateLimitTracker(fixedClock(time.Unix(1_700_000_000, 0)))

	assert.True(t, tracker.update(rateLimitHeader(HeaderRateLimitRemaining, "42")))
	assert.False(t, tracker.update(rateLimitHeader(HeaderRateLimitRemaining, "abc")))
	assert.False(t, tracker.update(http.Header{}))

	assert.Equal(t, 42, tracker.Status().Remaining)
}

func TestSecondsUntilReset(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	current := now
	tracker := newRateLimitTracker(func() time.Time { return current })

	tracker.update(rateLimitHeader(HeaderRateLimitReset, "60"))
	assert.Equal(t, int64(60), tracker.Status().SecondsUntilReset)

	current = now.Add(45 * time.Second)
	assert.Equal(t, int64(15), tracker.Status().SecondsUntilReset)

	current = now.Add(2 * time.Minute)
	assert.Zero(t, tracker.Status().SecondsUntilReset)
	assert.Equal(t, now.Unix()+60, tracker.Status().ResetAt().Unix())
}

func TestRateLimitResetClamped(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name      string
		reset     string
		wantEpoch int64
	}{
		{name: "negative", reset: "-30", wantEpoch: now.Unix()},
		{name: "huge", reset: "9223372036854775807", wantEpoch: now.Unix() + int64(maxResetSeconds)},
		{name: "in range", reset: "90", wantEpoch: now.Unix() + 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := newRateLimitTracker(fixedClock(now))
			tracker.update(rateLimitHeader(HeaderRateLimitReset, tt.reset))

			status := tracker.Status()
			assert.Equal(t, tt.wantEpoch, status.ResetEpoch)
			assert.GreaterOrEqual(t, status.SecondsUntilReset, int64(0))
		})
	}
}
