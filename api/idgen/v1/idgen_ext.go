package idgenv1

import (
	"fmt"
	"google.golang.org/protobuf/types/known/structpb"
	"strconv"
)

// ParseIDList 把 BatchGenerate 返回的十进制字符串列表还原成 uint64
func ParseIDList(list *structpb.ListValue) ([]uint64, error) {
	ids := make([]uint64, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("第 %d 个元素不是字符串", i)
		}
		id, err := strconv.ParseUint(s.StringValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 个元素不是合法的ID: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// NewIDList 把 ID 编码成十进制字符串列表，JSON 网关下不会丢精度
func NewIDList(ids []uint64) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(ids))
	for _, id := range ids {
		values = append(values, structpb.NewStringValue(strconv.FormatUint(id, 10)))
	}
	return &structpb.ListValue{Values: values}
}
