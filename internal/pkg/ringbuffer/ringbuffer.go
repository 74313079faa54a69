package ringbuffer

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidCapacity 当创建环形缓冲区的容量小于等于0时返回
var ErrInvalidCapacity = errors.New("环形缓冲区容量必须大于0")

// TimeDurationRingBuffer 保存最近 capacity 个时长样本，O(1) 求平均
// 样本可以是负数，时钟漂移就是这样
type TimeDurationRingBuffer struct {
	mu     sync.RWMutex
	buffer []time.Duration
	index  int // 下一个写入位置
	count  int // 当前样本数，不超过容量
	sum    time.Duration
}

func NewTimeDurationRingBuffer(capacity int) (*TimeDurationRingBuffer, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &TimeDurationRingBuffer{buffer: make([]time.Duration, capacity)}, nil
}

// Add 追加一个样本，满了之后覆盖最老的
func (r *TimeDurationRingBuffer) Add(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == len(r.buffer) {
		r.sum -= r.buffer[r.index]
	} else {
		r.count++
	}
	r.buffer[r.index] = d
	r.sum += d
	r.index = (r.index + 1) % len(r.buffer)
}

// Avg 没有样本则返回 0
func (r *TimeDurationRingBuffer) Avg() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.count == 0 {
		return 0
	}
	return r.sum / time.Duration(r.count)
}

func (r *TimeDurationRingBuffer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

func (r *TimeDurationRingBuffer) Cap() int {
	return len(r.buffer)
}
