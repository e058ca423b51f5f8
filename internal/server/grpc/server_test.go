package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	pb "github.com/dmitrijs2005/rosterkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeEmployees struct {
	listOut []models.Employee
	listErr error

	createErr  error
	lastFields models.EmployeeFields

	updateErr error
	lastID    string

	deleteErr error
}

func (f *fakeEmployees) List(context.Context) ([]models.Employee, error) {
	return f.listOut, f.listErr
}

func (f *fakeEmployees) Create(_ context.Context, fields models.EmployeeFields) (*models.Employee, error) {
	f.lastFields = fields
	if f.createErr != nil {
		return nil, f.createErr
	}
	e := fields.WithID("new-id")
	return &e, nil
}

func (f *fakeEmployees) Update(_ context.Context, id string, fields models.EmployeeFields) (*models.Employee, error) {
	f.lastID, f.lastFields = id, fields
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e := fields.WithID(id)
	return &e, nil
}

func (f *fakeEmployees) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.deleteErr
}

func startBufServer(t *testing.T, es EmployeeService) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	srv := NewGRPCServer("bufnet", logging.Nop{}, es)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return conn
}

func TestRecordStore_OverBufconn(t *testing.T) {
	fe := &fakeEmployees{listOut: []models.Employee{{ID: "1", Name: "Amy", Email: "a@x.com"}}}
	client := pb.NewRecordStoreClient(startBufServer(t, fe))
	ctx := context.Background()

	list, err := client.List(ctx, &pb.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, fe.listOut, pb.EmployeesToModels(list.GetEmployees()))

	fields := models.EmployeeFields{Name: "Cy", Email: "c@x.com", Phone: "555"}
	ins, err := client.Insert(ctx, &pb.InsertRequest{Fields: pb.FieldsFromModel(fields)})
	require.NoError(t, err)
	assert.Equal(t, fields.WithID("new-id"), ins.GetEmployee().ToModel())
	assert.Equal(t, fields, fe.lastFields)

	upd, err := client.UpdateByID(ctx, &pb.UpdateRequest{Id: "1", Fields: pb.FieldsFromModel(fields)})
	require.NoError(t, err)
	assert.Equal(t, "1", upd.GetEmployee().GetId())

	_, err = client.DeleteByID(ctx, &pb.DeleteRequest{Id: "1"})
	require.NoError(t, err)
	assert.Equal(t, "1", fe.lastID)
}

func TestRecordStore_ErrorCodes(t *testing.T) {
	fe := &fakeEmployees{
		listErr:   errBoom("db down"),
		createErr: common.ErrorValidation,
		updateErr: common.ErrorNotFound,
		deleteErr: common.ErrorNotFound,
	}
	client := pb.NewRecordStoreClient(startBufServer(t, fe))
	ctx := context.Background()

	_, err := client.List(ctx, &pb.ListRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "db down", status.Convert(err).Message())

	_, err = client.Insert(ctx, &pb.InsertRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.UpdateByID(ctx, &pb.UpdateRequest{Id: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.DeleteByID(ctx, &pb.DeleteRequest{Id: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "employee not found", status.Convert(err).Message())
}

func TestHealth_Serving(t *testing.T) {
	conn := startBufServer(t, &fakeEmployees{})

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.RecordStore_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeEmployees{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeEmployees{})
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}
