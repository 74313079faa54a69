package strategy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errRetryable = errors.New("可以重试")

func TestOnly(t *testing.T) {
	t.Parallel()
	retryable := func(err error) bool {
		return errors.Is(err, errRetryable)
	}
	testCases := []struct {
		name          string
		errs          []error
		wantIntervals []time.Duration
	}{
		{
			name:          "可以重试的错误",
			errs:          []error{errRetryable, errRetryable, errRetryable},
			wantIntervals: []time.Duration{time.Millisecond, time.Millisecond},
		},
		{
			name:          "第一次就不能重试",
			errs:          []error{errors.New("其他错误")},
			wantIntervals: []time.Duration{},
		},
		{
			name:          "中途出现不能重试的错误",
			errs:          []error{errRetryable, errors.New("其他错误"), errRetryable},
			wantIntervals: []time.Duration{time.Millisecond},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var s Strategy = Only(NewFixedIntervalRetryStrategy(2, time.Millisecond), retryable)
			intervals := make([]time.Duration, 0)
			for _, err := range tc.errs {
				s = s.Report(err)
				interval, ok := s.Next()
				if !ok {
					break
				}
				intervals = append(intervals, interval)
			}
			assert.Equal(t, tc.wantIntervals, intervals)
		})
	}
}
