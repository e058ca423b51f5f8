package client

import (
	"context"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	pb "github.com/dmitrijs2005/rosterkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// StoreClient talks to the record store over gRPC.
type StoreClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.RecordStoreClient
	health      healthpb.HealthClient
}

// NewStoreClient creates a client for endpointURL. The connection is
// established lazily on the first call.
func NewStoreClient(endpointURL string, opts ...grpc.DialOption) (*StoreClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}

	return &StoreClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      pb.NewRecordStoreClient(conn),
		health:      healthpb.NewHealthClient(conn),
	}, nil
}

func (s *StoreClient) Close() error {
	return s.conn.Close()
}

func (s *StoreClient) List(ctx context.Context) ([]models.Employee, error) {
	resp, err := s.client.List(ctx, &pb.ListRequest{})
	if err != nil {
		return nil, mapError("list", err)
	}
	return pb.EmployeesToModels(resp.GetEmployees()), nil
}

func (s *StoreClient) Insert(ctx context.Context, fields models.EmployeeFields) (*models.Employee, error) {
	resp, err := s.client.Insert(ctx, &pb.InsertRequest{Fields: pb.FieldsFromModel(fields)})
	if err != nil {
		return nil, mapError("insert", err)
	}
	e := resp.GetEmployee().ToModel()
	return &e, nil
}

func (s *StoreClient) UpdateByID(ctx context.Context, id string, fields models.EmployeeFields) (*models.Employee, error) {
	resp, err := s.client.UpdateByID(ctx, &pb.UpdateRequest{Id: id, Fields: pb.FieldsFromModel(fields)})
	if err != nil {
		return nil, mapError("update", err)
	}
	e := resp.GetEmployee().ToModel()
	return &e, nil
}

func (s *StoreClient) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.client.DeleteByID(ctx, &pb.DeleteRequest{Id: id}); err != nil {
		return mapError("delete", err)
	}
	return nil
}

// Ping asks the store's health service whether the record store is serving.
func (s *StoreClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.RecordStore_ServiceDesc.ServiceName})
	if err != nil {
		return mapError("ping", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return &StoreError{Op: "ping", Message: "store is " + resp.GetStatus().String(), Err: ErrUnavailable}
	}
	return nil
}

// mapError converts a gRPC failure into a *StoreError whose Err is one of
// the package sentinels where a code has a meaning of its own.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return &StoreError{Op: op, Message: err.Error(), Err: err}
	}

	se := &StoreError{Op: op, Message: st.Message(), Err: err}
	switch st.Code() {
	case codes.NotFound:
		se.Err = common.ErrorNotFound
	case codes.InvalidArgument:
		se.Err = common.ErrorValidation
	case codes.Unavailable, codes.DeadlineExceeded:
		se.Err = ErrUnavailable
	}
	return se
}
