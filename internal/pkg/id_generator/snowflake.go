package id_generator

import (
	"fmt"
	"go-hailstorm/internal/errs"
	"runtime"
	"sync"
	"time"
)

var _ IDGenerator = (*Generator)(nil)

// Generator 雪花算法ID生成器，42位时间戳 + 10位节点ID + 12位序列号
// 同一个实例上的 Generate 是串行的，返回值严格递增（前提是系统时钟没有回拨）
type Generator struct {
	// 构造之后就不会再变，读的时候不需要加锁
	nodeID int64
	now    func() time.Time

	// mu 保护 prevTimestamp 和 sequence，只有 Generate 会读写它们
	mu            sync.Mutex
	prevTimestamp int64
	sequence      int64
}

type Option func(g *Generator)

// WithClock 替换墙上时钟，测试用
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator 创建生成器
// nodeID 为 AutoNodeID 时根据本机网卡推导，否则必须在 [0, MaxNodeID] 之间
func NewGenerator(nodeID int64, opts ...Option) (*Generator, error) {
	id, err := ResolveNodeID(nodeID)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		nodeID:        id,
		now:           time.Now,
		prevTimestamp: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Generator) NodeID() int64 {
	return g.nodeID
}

// Generate 生成下一个ID
// 时钟回拨时直接返回 errs.ErrClockRegression，不做任何重试，状态保持不变
func (g *Generator) Generate() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.timestamp()
	switch {
	case now < g.prevTimestamp || now < 0:
		return 0, fmt.Errorf("%w: 当前时间戳 %d, 上一次时间戳 %d", errs.ErrClockRegression, now, g.prevTimestamp)
	case now == g.prevTimestamp:
		g.sequence = (g.sequence + 1) & MaxSequence
		if g.sequence == 0 {
			// 这一毫秒的序列号用完了，等到下一毫秒，序列号从 0 开始
			now = g.waitNextMillis()
		}
	default:
		g.sequence = 0
	}

	g.prevTimestamp = now
	return Compose(now, g.nodeID, g.sequence), nil
}

func (g *Generator) Decompose(id uint64) Parts {
	return Decompose(id)
}

// timestamp 当前时间相对 CustomEpoch 的毫秒数
func (g *Generator) timestamp() int64 {
	return g.now().UnixMilli() - CustomEpoch
}

// waitNextMillis 自旋到时钟越过 prevTimestamp 为止
// 最多等一毫秒多一点，不要改成 Sleep，那样只会降低吞吐
func (g *Generator) waitNextMillis() int64 {
	now := g.timestamp()
	for now <= g.prevTimestamp {
		runtime.Gosched()
		now = g.timestamp()
	}
	return now
}
