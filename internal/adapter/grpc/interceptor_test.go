package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name          string
		handlerErr    error
		expectedCode  string
		expectedLevel zapcore.Level
	}{
		{
			name:          "Success",
			handlerErr:    nil,
			expectedCode:  "OK",
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name:          "Rejection",
			handlerErr:    status.Error(codes.Aborted, "transfer leg rejected"),
			expectedCode:  "Aborted",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Store Failure",
			handlerErr:    status.Error(codes.Unknown, "store unavailable"),
			expectedCode:  "Unknown",
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			interceptor := LoggingInterceptor(zap.New(core))

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				if tt.handlerErr != nil {
					return nil, tt.handlerErr
				}
				return "success", nil
			}

			info := &grpc.UnaryServerInfo{
				FullMethod: "/accounting.AccountingService/Transfer",
			}

			_, err := interceptor(context.Background(), "test-request", info, handler)
			assert.Equal(t, tt.handlerErr, err)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, info.FullMethod, fields["method"])
			assert.Equal(t, tt.expectedCode, fields["code"])
			assert.Contains(t, fields, "duration")
		})
	}
}

func TestLoggingInterceptor_LevelDisabled(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	interceptor := LoggingInterceptor(zap.New(core))

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "success", nil
	}

	resp, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/m"}, handler)

	assert.NoError(t, err)
	assert.Equal(t, "success", resp)
	assert.Zero(t, logs.Len())
}

func TestRecoveryInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := RecoveryInterceptor(zap.New(core))

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	}

	resp, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/accounting.AccountingService/GetBalance"}, handler)

	assert.Nil(t, resp)
	st, ok := status.FromError(err)
	require.True(t, ok, "error should be a gRPC status")
	assert.Equal(t, codes.Internal, st.Code())

	panics := logs.FilterMessage("panic in grpc handler").All()
	require.Len(t, panics, 1)
	assert.Equal(t, "boom", panics[0].ContextMap()["panic"])
}

func TestRecoveryInterceptor_PassThrough(t *testing.T) {
	interceptor := RecoveryInterceptor(zap.NewNop())

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "success", nil
	}

	resp, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/m"}, handler)

	assert.NoError(t, err)
	assert.Equal(t, "success", resp)
}
