package id_generator

import (
	"bytes"
	"errors"
	"go-hailstorm/internal/errs"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNodeID(t *testing.T) {
	t.Parallel()
	mac := net.HardwareAddr{0x00, 0x1A, 0x2B, 0x3C, 0x4D, 0x5E}
	mac2 := net.HardwareAddr{0x02, 0x42, 0xAC, 0x11, 0x00, 0x02}

	testCases := []struct {
		name       string
		nodeID     int64
		interfaces interfacesFunc
		random     []byte
		want       int64
		wantErr    error
	}{
		{
			name:   "显式节点ID",
			nodeID: 7,
			want:   7,
		},
		{
			name:    "显式节点ID越界",
			nodeID:  1024,
			wantErr: errs.ErrInvalidConfiguration,
		},
		{
			name:    "负数但不是自动推导",
			nodeID:  -5,
			wantErr: errs.ErrInvalidConfiguration,
		},
		{
			name:   "单网卡",
			nodeID: AutoNodeID,
			interfaces: func() ([]net.Interface, error) {
				return []net.Interface{{Name: "eth0", HardwareAddr: mac}}, nil
			},
			// "001A2B3C4D5E" 的哈希是 197484080
			want: 560,
		},
		{
			name:   "多网卡按枚举顺序拼接，跳过没有MAC的网卡",
			nodeID: AutoNodeID,
			interfaces: func() ([]net.Interface, error) {
				return []net.Interface{
					{Name: "lo"},
					{Name: "eth0", HardwareAddr: mac},
					{Name: "docker0", HardwareAddr: mac2},
				}, nil
			},
			want: 756,
		},
		{
			name:   "枚举网卡失败退化为随机数",
			nodeID: AutoNodeID,
			interfaces: func() ([]net.Interface, error) {
				return nil, errors.New("permission denied")
			},
			random: []byte{0xFF, 0xFF},
			want:   MaxNodeID,
		},
		{
			name:   "没有任何MAC地址退化为随机数",
			nodeID: AutoNodeID,
			interfaces: func() ([]net.Interface, error) {
				return []net.Interface{{Name: "lo"}}, nil
			},
			random: []byte{0x04, 0x05},
			want:   0x0405 & MaxNodeID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			id, err := resolveNodeID(tc.nodeID, tc.interfaces, bytes.NewReader(tc.random))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestResolveNodeID_RandomFailed(t *testing.T) {
	t.Parallel()
	interfaces := func() ([]net.Interface, error) {
		return nil, errors.New("no interfaces")
	}
	_, err := resolveNodeID(AutoNodeID, interfaces, bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestStringHash(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int32(0), stringHash(""))
	assert.Equal(t, int32(99162322), stringHash("hello"))
	assert.Equal(t, int32(197484080), stringHash("001A2B3C4D5E"))
}

func TestResolveNodeID_Local(t *testing.T) {
	t.Parallel()
	// 真实环境下推导出来的值也要落在范围内
	for i := 0; i < 10; i++ {
		id, err := ResolveNodeID(AutoNodeID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, id, int64(0))
		assert.LessOrEqual(t, id, int64(MaxNodeID))
	}
}
