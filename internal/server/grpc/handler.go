package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdir/internal/common"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const msgInvalidCredentials = "invalid login or password"

func toPB(u *models.User) *pb.User {
	return &pb.User{Id: u.ID, Login: u.Login}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	if err := common.ValidateCredentials(req.Login, req.Password); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	user, err := s.users.Register(ctx, req.Login, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorLoginAlreadyUsed) {
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.RegisterResponse{User: toPB(user)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	if err := common.ValidateCredentials(req.Login, req.Password); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	token, err := s.users.Login(ctx, req.Login, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorWrongPassword) {
			return nil, status.Error(codes.Unauthenticated, msgInvalidCredentials)
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: token}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	list, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*pb.User, 0, len(list))
	for _, u := range list {
		out = append(out, toPB(u))
	}
	return &pb.ListUsersResponse{Users: out}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	user, err := s.users.GetOneByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetUserResponse{User: toPB(user)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {

	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	return &pb.GetProfileResponse{User: toPB(user)}, nil
}

// Logout has no server-side state to clear; clients drop their token.
func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if _, ok := auth.UserFromContext(ctx); !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
