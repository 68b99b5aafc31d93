package grpc

import (
	"fmt"
	"net"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server 是承载健康探针的 gRPC 服务壳，供 k8s/运维侧探活。
type Server struct {
	srv    *gogrpc.Server
	health *health.Server
	addr   string
}

func NewServer(addr string) *Server {
	srv := gogrpc.NewServer(
		gogrpc.ChainUnaryInterceptor(UnaryServerTraceInterceptor()),
		gogrpc.ChainStreamInterceptor(StreamServerTraceInterceptor()),
	)

	h := health.NewServer()
	healthpb.RegisterHealthServer(srv, h)

	return &Server{
		srv:    srv,
		health: h,
		addr:   addr,
	}
}

// Start 启动 gRPC 服务（阻塞）。
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", s.addr, err)
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return s.srv.Serve(lis)
}

// SetServing 切换服务健康状态（维护/下线时置 NOT_SERVING）。
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_SERVING
	if !serving {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
