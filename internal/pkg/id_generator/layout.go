package id_generator

import "time"

const (
	// 位数分配常量
	BitsEpoch = 42 // 时间戳位数
	BitsNode  = 10 // 节点ID位数
	BitsSeq   = 12 // 序列号位数

	// 位移常量
	sequenceShift  = 0
	nodeShift      = BitsSeq
	timestampShift = BitsSeq + BitsNode

	// 掩码常量
	MaxNodeID    = (1 << BitsNode) - 1
	MaxSequence  = (1 << BitsSeq) - 1
	MaxTimestamp = (1 << BitsEpoch) - 1

	// CustomEpoch 基准时间 2018-01-01T00:00:00Z，毫秒
	CustomEpoch int64 = 1514764800000

	// AutoNodeID 表示由本机网卡推导节点ID
	AutoNodeID int64 = -1
)

// Parts ID 拆解之后的各个部分
type Parts struct {
	// Timestamp 相对基准时间的时间单位数，hailstorm 是毫秒
	Timestamp int64
	Time      time.Time
	NodeID    int64
	Sequence  int64
}

// Compose 按照 时间戳|节点ID|序列号 的顺序拼出ID，调用方保证各部分不越界
func Compose(timestamp, nodeID, sequence int64) uint64 {
	return uint64(timestamp)<<timestampShift |
		uint64(nodeID)<<nodeShift |
		uint64(sequence)<<sequenceShift
}

func Decompose(id uint64) Parts {
	ts := int64(id >> timestampShift)
	return Parts{
		Timestamp: ts,
		Time:      time.UnixMilli(ts + CustomEpoch).UTC(),
		NodeID:    int64(id>>nodeShift) & MaxNodeID,
		Sequence:  int64(id>>sequenceShift) & MaxSequence,
	}
}
