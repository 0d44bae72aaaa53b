package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods require a session token.
var protectedMethods = map[string]struct{}{
	pb.AccountService_GetProfile_FullMethodName: {},
	pb.AccountService_Logout_FullMethodName:     {},
}

// loggingInterceptor stores a fresh request id in the context and logs the
// outcome of the call.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	ctx = logging.ContextWithRequestID(ctx, uuid.NewString())

	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "grpc request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start).String(),
	)
	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}

	user, err := s.gate.Admit(ctx, accessToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	return handler(auth.ContextWithUser(ctx, user), req)
}
