package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	pb "github.com/dmitrijs2005/rosterkeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) List(ctx context.Context, req *pb.ListRequest) (*pb.ListResponse, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListResponse{Employees: pb.EmployeesFromModels(list)}, nil
}

func (s *GRPCServer) Insert(ctx context.Context, req *pb.InsertRequest) (*pb.InsertResponse, error) {
	created, err := s.employees.Create(ctx, req.GetFields().ToModel())
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Employee created", "id", created.ID)
	return &pb.InsertResponse{Employee: pb.EmployeeFromModel(*created)}, nil
}

func (s *GRPCServer) UpdateByID(ctx context.Context, req *pb.UpdateRequest) (*pb.UpdateResponse, error) {
	updated, err := s.employees.Update(ctx, req.GetId(), req.GetFields().ToModel())
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Employee updated", "id", updated.ID)
	return &pb.UpdateResponse{Employee: pb.EmployeeFromModel(*updated)}, nil
}

func (s *GRPCServer) DeleteByID(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {
	if err := s.employees.Delete(ctx, req.GetId()); err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Employee deleted", "id", req.GetId())
	return &pb.DeleteResponse{}, nil
}

// toStatus maps service errors onto gRPC status codes. The message is what
// the operator eventually sees.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "employee not found")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
