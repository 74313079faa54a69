package grpcx

import (
	"context"
	"fmt"
	"go-hailstorm/internal/pkg/logger"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/naming/endpoints"
	"google.golang.org/grpc"
	"net"
	"strconv"
	"time"
)

const defaultTTL int64 = 30

// Server 在 grpc.Server 之上加了 etcd 注册，EtcdAddrs 为空时只监听端口
type Server struct {
	*grpc.Server
	Port int
	// Addr 注册到 etcd 的地址，为空时使用本机第一个非回环 IPv4 地址
	Addr      string
	EtcdAddrs []string
	// EtcdTTL 租约有效期（秒）
	EtcdTTL int64
	Name    string
	L       logger.Logger

	client *clientv3.Client
	em     endpoints.Manager
	key    string
	cancel context.CancelFunc
}

// Serve 启动服务，会阻塞直到服务停止
func (s *Server) Serve() error {
	l, err := net.Listen("tcp", ":"+strconv.Itoa(s.Port))
	if err != nil {
		return err
	}
	return s.ServeListener(l)
}

func (s *Server) ServeListener(l net.Listener) error {
	if len(s.EtcdAddrs) > 0 {
		if err := s.register(); err != nil {
			_ = l.Close()
			return err
		}
	}
	s.L.Info("gRPC 服务启动", logger.String("name", s.Name), logger.String("addr", l.Addr().String()))
	return s.Server.Serve(l)
}

func (s *Server) register() error {
	client, err := clientv3.New(clientv3.Config{
		Endpoints:   s.EtcdAddrs,
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("连接 etcd 失败: %w", err)
	}
	s.client = client

	target := "service/" + s.Name
	em, err := endpoints.NewManager(client, target)
	if err != nil {
		return err
	}
	s.em = em

	addr := s.Addr
	if addr == "" {
		addr = localIPv4()
	}
	addr = net.JoinHostPort(addr, strconv.Itoa(s.Port))
	s.key = target + "/" + addr

	ttl := s.EtcdTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	leaseResp, err := client.Grant(ctx, ttl)
	if err != nil {
		return fmt.Errorf("申请租约失败: %w", err)
	}
	err = em.AddEndpoint(ctx, s.key, endpoints.Endpoint{Addr: addr}, clientv3.WithLease(leaseResp.ID))
	if err != nil {
		return fmt.Errorf("注册服务失败: %w", err)
	}

	kaCtx, kaCancel := context.WithCancel(context.Background())
	s.cancel = kaCancel
	ch, err := client.KeepAlive(kaCtx, leaseResp.ID)
	if err != nil {
		kaCancel()
		return fmt.Errorf("续约失败: %w", err)
	}
	go func() {
		for range ch {
		}
		s.L.Warn("etcd 续约结束", logger.String("key", s.key))
	}()
	s.L.Info("服务已注册到 etcd", logger.String("key", s.key), logger.Int64("ttl", ttl))
	return nil
}

// Close 先从 etcd 摘除自己，再优雅退出
func (s *Server) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	var err error
	if s.em != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = s.em.DeleteEndpoint(ctx, s.key)
		cancel()
	}
	if s.client != nil {
		if cerr := s.client.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	s.Server.GracefulStop()
	return err
}

func localIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	return "127.0.0.1"
}
