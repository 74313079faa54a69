package id_generator

import (
	"fmt"
	"github.com/sony/sonyflake"
	"go-hailstorm/internal/errs"
	"time"
)

var _ IDGenerator = (*SonyflakeGenerator)(nil)

// SonyflakeGenerator 用 sonyflake 的位布局生成ID：39位时间（10ms）+ 8位序列号 + 16位机器ID
// 机器ID 沿用节点ID，基准时间和 Generator 一致
type SonyflakeGenerator struct {
	sf        *sonyflake.Sonyflake
	nodeID    int64
	startTime time.Time
}

func NewSonyflakeGenerator(nodeID int64) (*SonyflakeGenerator, error) {
	id, err := ResolveNodeID(nodeID)
	if err != nil {
		return nil, err
	}
	startTime := time.UnixMilli(CustomEpoch).UTC()
	sf, err := sonyflake.New(sonyflake.Settings{
		StartTime: startTime,
		MachineID: func() (uint16, error) {
			return uint16(id), nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: 初始化 sonyflake 失败: %w", errs.ErrInvalidConfiguration, err)
	}
	return &SonyflakeGenerator{sf: sf, nodeID: id, startTime: startTime}, nil
}

// Generate sonyflake 在时钟回拨时自己会等待，只会在时间位用完的时候报错
func (s *SonyflakeGenerator) Generate() (uint64, error) {
	return s.sf.NextID()
}

func (s *SonyflakeGenerator) Decompose(id uint64) Parts {
	elapsed := sonyflake.ElapsedTime(id)
	return Parts{
		Timestamp: int64(elapsed / (10 * time.Millisecond)),
		Time:      s.startTime.Add(elapsed),
		NodeID:    int64(sonyflake.MachineID(id)),
		Sequence:  int64(sonyflake.SequenceNumber(id)),
	}
}

func (s *SonyflakeGenerator) NodeID() int64 {
	return s.nodeID
}
