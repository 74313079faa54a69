package grpc

import (
	"fmt"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"sync"
)

type entry[T any] struct {
	conn   *grpc.ClientConn
	client T
}

// Clients 按服务名缓存 gRPC 客户端，服务地址通过 etcd 解析
type Clients[T any] struct {
	clientMap sync.Map // 存储 serviceName -> entry[T]
	creator   func(conn grpc.ClientConnInterface) T
	opts      []grpc.DialOption
	mu        sync.Mutex // 保护每个serviceName的创建过程
}

// NewClients opts 里面需要带上 etcd 的 resolver（grpc.WithResolvers）
func NewClients[T any](creator func(conn grpc.ClientConnInterface) T, opts ...grpc.DialOption) *Clients[T] {
	return &Clients[T]{creator: creator, opts: opts}
}

func (c *Clients[T]) Get(serviceName string) (T, error) {
	// 先尝试无锁读取
	if e, ok := c.clientMap.Load(serviceName); ok {
		return e.(entry[T]).client, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// 双检查：获取锁后再次检查
	if e, ok := c.clientMap.Load(serviceName); ok {
		return e.(entry[T]).client, nil
	}

	// 创建新连接和客户端
	conn, err := grpc.NewClient(Target(serviceName), c.opts...)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("创建 %s 的连接失败: %w", serviceName, err)
	}
	client := c.creator(conn)
	c.clientMap.Store(serviceName, entry[T]{conn: conn, client: client})
	return client, nil
}

// Close 关闭所有连接
func (c *Clients[T]) Close() error {
	var err error
	c.clientMap.Range(func(key, value any) bool {
		err = multierr.Append(err, value.(entry[T]).conn.Close())
		c.clientMap.Delete(key)
		return true
	})
	return err
}

// Target 服务在 etcd 里面的解析地址，和 grpcx.Server 注册时使用的前缀一致
func Target(serviceName string) string {
	return "etcd:///service/" + serviceName
}
