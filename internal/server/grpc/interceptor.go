package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// loggingInterceptor logs every unary call with its status code. Failed
// calls are logged at warn level.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	args := []any{
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
		"peer", ownerFromPeer(ctx),
		"request_id", requestID(ctx),
	}
	if err != nil {
		s.logger.Warn(ctx, "grpc request", append(args, "error", err)...)
	} else {
		s.logger.Info(ctx, "grpc request", args...)
	}

	return resp, err
}

// requestID returns the caller's x-request-id metadata or a fresh UUID.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(strings.ToLower(common.RequestIDHeaderName)); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}
