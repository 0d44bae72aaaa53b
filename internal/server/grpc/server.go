package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/userdir/internal/logging"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"google.golang.org/grpc"
)

type userSvc interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetOneByLogin(ctx context.Context, login string) (*models.User, error)
	Register(ctx context.Context, login, password string) (*models.User, error)
	Login(ctx context.Context, login, password string) (string, error)
}

type gateSvc interface {
	Admit(ctx context.Context, token string) (*models.User, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address string
	users   userSvc
	gate    gateSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, gate gateSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		gate:    gate,
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterAccountServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
