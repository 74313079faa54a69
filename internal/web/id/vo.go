package id

// ID 统一用十进制字符串，避免前端丢精度
type ID struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"` // 相对基准时间的时间单位数
	Time      string `json:"time"`      // RFC3339 格式的生成时间
	NodeID    int64  `json:"nodeId"`
	Sequence  int64  `json:"sequence"`
}

type BatchGenerateReq struct {
	Count int `json:"count"`
}

type BatchGenerateResp struct {
	IDs []string `json:"ids"`
}

type Node struct {
	NodeID    int64  `json:"nodeId"`
	Kind      string `json:"kind"`
	Epoch     string `json:"epoch"`
	BitsEpoch int    `json:"bitsEpoch"`
	BitsNode  int    `json:"bitsNode"`
	BitsSeq   int    `json:"bitsSeq"`
}
