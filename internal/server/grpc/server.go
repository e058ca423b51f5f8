// Package grpc exposes the record store over gRPC: the roster.RecordStore
// service plus the standard health service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	pb "github.com/dmitrijs2005/rosterkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// EmployeeService is the business layer the handlers delegate to.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, fields models.EmployeeFields) (*models.Employee, error)
	Update(ctx context.Context, id string, fields models.EmployeeFields) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}

type GRPCServer struct {
	pb.UnimplementedRecordStoreServer
	address   string
	employees EmployeeService
	logger    logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, es EmployeeService) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		employees: es,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on an existing listener until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterRecordStoreServer(srv, s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(pb.RecordStore_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}
