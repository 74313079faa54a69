package id_generator

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"go-hailstorm/internal/errs"
	"io"
	"net"
	"strings"
)

type interfacesFunc func() ([]net.Interface, error)

// ResolveNodeID 校验或者推导节点ID，返回值一定落在 [0, MaxNodeID]
func ResolveNodeID(nodeID int64) (int64, error) {
	return resolveNodeID(nodeID, net.Interfaces, rand.Reader)
}

func resolveNodeID(nodeID int64, interfaces interfacesFunc, random io.Reader) (int64, error) {
	if nodeID == AutoNodeID {
		return deriveNodeID(interfaces, random)
	}
	if nodeID < 0 || nodeID > MaxNodeID {
		return 0, fmt.Errorf("%w: 节点ID必须在 %d 到 %d 之间, 当前为 %d",
			errs.ErrInvalidConfiguration, 0, MaxNodeID, nodeID)
	}
	return nodeID, nil
}

// deriveNodeID 把所有网卡的 MAC 地址拼成十六进制串，取哈希的低 BitsNode 位。
// 网卡的枚举顺序由平台决定，多网卡的机器上每次启动不一定得到同一个值，这是可以接受的。
// 拿不到网卡或者没有任何 MAC 地址时退化成随机数，不使用空串哈希得到的 0。
func deriveNodeID(interfaces interfacesFunc, random io.Reader) (int64, error) {
	ifs, err := interfaces()
	if err == nil {
		if acc := hardwareAddrs(ifs); acc != "" {
			return int64(uint32(stringHash(acc)) & MaxNodeID), nil
		}
	}
	return randomNodeID(random)
}

func hardwareAddrs(ifs []net.Interface) string {
	var sb strings.Builder
	for _, itf := range ifs {
		for _, b := range itf.HardwareAddr {
			_, _ = fmt.Fprintf(&sb, "%02X", b)
		}
	}
	return sb.String()
}

// stringHash s[0]*31^(n-1) + ... + s[n-1]，按 int32 溢出回绕
func stringHash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = 31*h + int32(s[i])
	}
	return h
}

func randomNodeID(random io.Reader) (int64, error) {
	var buf [2]byte
	if _, err := io.ReadFull(random, buf[:]); err != nil {
		return 0, fmt.Errorf("读取随机数失败: %w", err)
	}
	return int64(binary.BigEndian.Uint16(buf[:]) & MaxNodeID), nil
}
