package grpc

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	accountingv1 "github.com/simaogato/ledger-backend/internal/adapter/grpc/accounting/v1"
)

// NewGRPCServer creates a grpc.Server serving AccountingService with the
// accounting codec, recovery and logging interceptors, reflection and the
// standard health service. Health starts NOT_SERVING; the caller flips it
// once startup is complete.
func NewGRPCServer(srv *Server, logger *zap.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts = append([]grpc.ServerOption{
		grpc.ForceServerCodec(accountingv1.Codec{}),
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(logger),
			LoggingInterceptor(logger),
		),
	}, opts...)

	grpcServer := grpc.NewServer(opts...)
	accountingv1.RegisterAccountingServiceServer(grpcServer, srv)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(accountingv1.AccountingService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	return grpcServer, healthServer
}

// SetServing marks every registered service as serving or not serving
func SetServing(h *health.Server, serving bool) {
	if serving {
		h.Resume()
		return
	}
	h.Shutdown()
}
