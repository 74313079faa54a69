package domain

import (
	"strconv"
	"time"
)

// ID 一个已经生成的ID及其拆解结果
type ID struct {
	Value uint64
	// Timestamp 相对基准时间的时间单位数
	Timestamp int64
	Time      time.Time
	NodeID    int64
	Sequence  int64
}

// String 十进制形式，JSON 里统一用字符串，避免 JS 丢精度
func (i ID) String() string {
	return strconv.FormatUint(i.Value, 10)
}

type GeneratorKind string

const (
	GeneratorKindHailstorm GeneratorKind = "hailstorm"
	GeneratorKindSonyflake GeneratorKind = "sonyflake"
)

func (k GeneratorKind) String() string {
	return string(k)
}

// Node 当前进程里的生成器信息
type Node struct {
	NodeID    int64
	Kind      GeneratorKind
	Epoch     time.Time
	BitsEpoch int
	BitsNode  int
	BitsSeq   int
}
