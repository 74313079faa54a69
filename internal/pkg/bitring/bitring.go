package bitring

import "sync"

const (
	bitsPerWord = 64
	bitsMask    = bitsPerWord - 1
	bitsShift   = 6

	// 默认值
	defaultSize        = 128
	defaultConsecutive = 3
)

// BitRing 以位方式记录最近 size 次采样里面异常事件是否发生
// 窗口内事件率超过阈值，或者最近 consecutive 次全部是事件时，认为条件满足
type BitRing struct {
	mu          sync.RWMutex
	words       []uint64
	size        int
	pos         int  // 下一写入位置
	filled      bool // 是否已经写满一轮
	eventCount  int
	threshold   float64
	consecutive int
	// 当前连续事件数，遇到非事件清零
	streak int
}

// NewBitRing 参数不合法时使用默认值，threshold 会被限制在 [0, 1]
func NewBitRing(size int, threshold float64, consecutive int) *BitRing {
	if size <= 0 {
		size = defaultSize
	}
	if consecutive <= 0 {
		consecutive = defaultConsecutive
	}
	consecutive = min(consecutive, size)
	threshold = max(0, min(threshold, 1))
	return &BitRing{
		words:       make([]uint64, (size+bitsMask)>>bitsShift),
		size:        size,
		threshold:   threshold,
		consecutive: consecutive,
	}
}

// Add 记录一次采样，eventHappened 表示这次采样发生了异常
func (br *BitRing) Add(eventHappened bool) {
	br.mu.Lock()
	defer br.mu.Unlock()

	if br.filled && br.bitAt(br.pos) {
		br.eventCount--
	}
	br.setBit(br.pos, eventHappened)
	if eventHappened {
		br.eventCount++
		br.streak++
	} else {
		br.streak = 0
	}

	br.pos++
	if br.pos == br.size {
		br.pos = 0
		br.filled = true
	}
}

// Rate 窗口内的事件率，没有采样时为 0
func (br *BitRing) Rate() float64 {
	br.mu.RLock()
	defer br.mu.RUnlock()
	return br.rate()
}

func (br *BitRing) IsConditionMet() bool {
	br.mu.RLock()
	defer br.mu.RUnlock()
	return br.streak >= br.consecutive || br.rate() > br.threshold
}

func (br *BitRing) rate() float64 {
	n := br.pos
	if br.filled {
		n = br.size
	}
	if n == 0 {
		return 0
	}
	return float64(br.eventCount) / float64(n)
}

func (br *BitRing) bitAt(idx int) bool {
	return (br.words[idx>>bitsShift]>>(idx&bitsMask))&1 == 1
}

func (br *BitRing) setBit(idx int, val bool) {
	if val {
		br.words[idx>>bitsShift] |= 1 << (idx & bitsMask)
	} else {
		br.words[idx>>bitsShift] &^= 1 << (idx & bitsMask)
	}
}
