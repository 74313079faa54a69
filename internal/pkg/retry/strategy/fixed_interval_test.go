package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedIntervalRetryStrategy_Next(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		strategy      *FixedIntervalRetryStrategy
		wantIntervals []time.Duration
	}{
		{
			name:          "重试三次之后停止",
			strategy:      NewFixedIntervalRetryStrategy(3, 10*time.Millisecond),
			wantIntervals: []time.Duration{10 * time.Millisecond, 10 * time.Millisecond, 10 * time.Millisecond},
		},
		{
			name:          "只重试一次",
			strategy:      NewFixedIntervalRetryStrategy(1, time.Second),
			wantIntervals: []time.Duration{time.Second},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantIntervals, drain(tc.strategy, 100))
		})
	}
}

func TestFixedIntervalRetryStrategy_Infinite(t *testing.T) {
	t.Parallel()
	// maxRetries <= 0 表示一直重试
	s := NewFixedIntervalRetryStrategy(0, time.Millisecond)
	intervals := drain(s, 100)
	assert.Len(t, intervals, 100)
	assert.Equal(t, time.Millisecond, intervals[99])
}

// drain 最多取 limit 次间隔
func drain(s Strategy, limit int) []time.Duration {
	intervals := make([]time.Duration, 0, limit)
	for len(intervals) < limit {
		interval, ok := s.Next()
		if !ok {
			break
		}
		intervals = append(intervals, interval)
	}
	return intervals
}
