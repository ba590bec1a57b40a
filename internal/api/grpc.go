package api

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/heysubinoy/kvgate/api/proto"
	"github.com/heysubinoy/kvgate/pkg/kv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// KVServer implements the proto.KVServer interface.
// It wraps a kv.Store and exposes it over gRPC.
type KVServer struct {
	proto.UnimplementedKVServer
	Store  kv.Store
	Logger hclog.Logger
}

// NewKVServer creates a new gRPC service with the given store.
func NewKVServer(store kv.Store, logger hclog.Logger) *KVServer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &KVServer{
		Store:  store,
		Logger: logger,
	}
}

// InsertValue stores a key-value pair. The store accepts any strings.
func (s *KVServer) InsertValue(ctx context.Context, req *proto.InsertValueRequest) (*proto.InsertValueResponse, error) {
	logger := requestLogger(ctx, s.Logger)

	if err := s.Store.Insert(req.GetKey(), req.GetValue()); err != nil {
		logger.Error("insert failed", "key", req.GetKey(), "error", err)
		return nil, status.Error(codes.Internal, "failed to insert value")
	}
	logger.Debug("value inserted", "key", req.GetKey())

	return &proto.InsertValueResponse{
		Success: true,
	}, nil
}

// GetValue retrieves a value by key, failing with NotFound for absent keys.
func (s *KVServer) GetValue(ctx context.Context, req *proto.GetValueRequest) (*proto.GetValueResponse, error) {
	logger := requestLogger(ctx, s.Logger)

	value, found := s.Store.Get(req.GetKey())
	if !found {
		msg := kv.NotFoundMessage(req.GetKey())
		logger.Debug(msg)
		return nil, status.Error(codes.NotFound, msg)
	}

	return &proto.GetValueResponse{
		Value: value,
	}, nil
}

// NewGRPCServer builds a grpc.Server serving the KV service and the standard
// health service, with request logging on every unary call.
func NewGRPCServer(store kv.Store, logger hclog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(UnaryRequestLogger(logger)))

	srv := grpc.NewServer(opts...)
	proto.RegisterKVServer(srv, NewKVServer(store, logger))

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(proto.KV_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	return srv
}
