// hailstorm-cli 通过 gRPC 调用 ID 服务：生成、批量生成、拆解
package main

import (
	"context"
	"fmt"
	"github.com/spf13/pflag"
	idgenv1 "go-hailstorm/api/idgen/v1"
	"go-hailstorm/internal/api/grpc/interceptor/idempotent"
	"go-hailstorm/internal/api/grpc/interceptor/jwt"
	"go-hailstorm/internal/api/grpc/interceptor/timeout"
	igrpc "go-hailstorm/internal/pkg/grpc"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/naming/resolver"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"os"
	"time"
)

func main() {
	etcdAddrs := pflag.StringSlice("etcd", nil, "etcd 地址，通过服务发现连接")
	service := pflag.String("service", "hailstorm", "注册到 etcd 的服务名")
	addr := pflag.String("addr", "localhost:8090", "没有配置 etcd 时直连的地址")
	count := pflag.Uint32("count", 1, "生成的数量")
	parse := pflag.Uint64("parse", 0, "要拆解的ID，不为 0 时只拆解不生成")
	to := pflag.Duration("timeout", 3*time.Second, "调用超时")
	token := pflag.String("token", "", "服务端开启 jwt 校验时使用的令牌")
	key := pflag.String("idempotency-key", "", "幂等键，同一个键重复请求会被拒绝")
	pflag.Parse()

	client, closeFn, err := newClient(*etcdAddrs, *service, *addr, *token)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), *to)
	defer cancel()
	if *key != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, idempotent.MetadataKey, *key)
	}
	if err = run(ctx, client, *count, *parse); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient(etcdAddrs []string, service, addr, token string) (idgenv1.IDServiceClient, func(), error) {
	interceptors := []grpc.UnaryClientInterceptor{timeout.InjectorInterceptor()}
	if token != "" {
		interceptors = append(interceptors, jwt.TokenInjector(token))
	}
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(interceptors...),
		grpc.WithDefaultServiceConfig(`{"loadBalancingConfig": [{"round_robin":{}}]}`),
	}
	if len(etcdAddrs) == 0 {
		conn, err := grpc.NewClient(addr, opts...)
		if err != nil {
			return nil, nil, err
		}
		return idgenv1.NewIDServiceClient(conn), func() { _ = conn.Close() }, nil
	}

	etcdClient, err := clientv3.New(clientv3.Config{Endpoints: etcdAddrs, DialTimeout: 3 * time.Second})
	if err != nil {
		return nil, nil, err
	}
	r, err := resolver.NewBuilder(etcdClient)
	if err != nil {
		_ = etcdClient.Close()
		return nil, nil, err
	}
	clients := igrpc.NewClients(idgenv1.NewIDServiceClient, append(opts, grpc.WithResolvers(r))...)
	client, err := clients.Get(service)
	if err != nil {
		_ = etcdClient.Close()
		return nil, nil, err
	}
	return client, func() {
		_ = clients.Close()
		_ = etcdClient.Close()
	}, nil
}

func run(ctx context.Context, client idgenv1.IDServiceClient, count uint32, parse uint64) error {
	if parse != 0 {
		res, err := client.Parse(ctx, wrapperspb.UInt64(parse))
		if err != nil {
			return err
		}
		for k, v := range res.AsMap() {
			fmt.Printf("%s: %v\n", k, v)
		}
		return nil
	}
	if count <= 1 {
		res, err := client.Generate(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		fmt.Println(res.GetValue())
		return nil
	}
	res, err := client.BatchGenerate(ctx, wrapperspb.UInt32(count))
	if err != nil {
		return err
	}
	ids, err := idgenv1.ParseIDList(res)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
