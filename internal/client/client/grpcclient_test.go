package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	lastRegisterReq *pb.RegisterRequest
	lastLoginReq    *pb.LoginRequest
	lastGetUserReq  *pb.GetUserRequest

	registerResp *pb.RegisterResponse
	registerErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	listResp *pb.ListUsersResponse
	listErr  error

	getUserResp *pb.GetUserResponse
	getUserErr  error

	profileResp *pb.GetProfileResponse
	profileErr  error

	logoutErr error

	pingResp *pb.PingResponse
	pingErr  error
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	return f.registerResp, f.registerErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) ListUsers(ctx context.Context, in *pb.ListUsersRequest, opts ...grpc.CallOption) (*pb.ListUsersResponse, error) {
	return f.listResp, f.listErr
}
func (f *fakePB) GetUser(ctx context.Context, in *pb.GetUserRequest, opts ...grpc.CallOption) (*pb.GetUserResponse, error) {
	f.lastGetUserReq = in
	return f.getUserResp, f.getUserErr
}
func (f *fakePB) GetProfile(ctx context.Context, in *pb.GetProfileRequest, opts ...grpc.CallOption) (*pb.GetProfileResponse, error) {
	return f.profileResp, f.profileErr
}
func (f *fakePB) Logout(ctx context.Context, in *pb.LogoutRequest, opts ...grpc.CallOption) (*pb.LogoutResponse, error) {
	return &pb.LogoutResponse{}, f.logoutErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func newWithFake(f *fakePB) *GRPCClient {
	return &GRPCClient{client: f, timeout: time.Second}
}

/*************
 * Tests
 *************/

func TestRegister_OK(t *testing.T) {
	f := &fakePB{registerResp: &pb.RegisterResponse{User: &pb.User{Id: 1, Login: "bob"}}}
	c := newWithFake(f)

	u, err := c.Register(context.Background(), "bob", []byte("hunter22"))
	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, Login: "bob"}, u)
	assert.Equal(t, "bob", f.lastRegisterReq.Login)
	assert.Equal(t, "hunter22", f.lastRegisterReq.Password)
}

func TestRegister_AlreadyExists(t *testing.T) {
	c := newWithFake(&fakePB{registerErr: status.Error(codes.AlreadyExists, "login already used")})
	_, err := c.Register(context.Background(), "bob", []byte("hunter22"))
	require.True(t, errors.Is(err, ErrAlreadyExists), "got %v", err)
}

func TestLogin_StoresToken(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{AccessToken: "tok"}}
	c := newWithFake(f)

	require.False(t, c.LoggedIn())
	require.NoError(t, c.Login(context.Background(), "bob", []byte("hunter22")))
	assert.True(t, c.LoggedIn())
	assert.Equal(t, "tok", c.token())
}

func TestLogin_Unauthenticated(t *testing.T) {
	c := newWithFake(&fakePB{loginErr: status.Error(codes.Unauthenticated, "invalid login or password")})
	err := c.Login(context.Background(), "bob", []byte("nope"))
	require.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, c.LoggedIn())
}

func TestLogout_ClearsTokenEvenOnError(t *testing.T) {
	c := newWithFake(&fakePB{logoutErr: status.Error(codes.Unauthenticated, "unauthorized")})
	c.setToken("tok")

	err := c.Logout(context.Background())
	require.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, c.LoggedIn())
}

func TestUsersAndUser(t *testing.T) {
	f := &fakePB{
		listResp:    &pb.ListUsersResponse{Users: []*pb.User{{Id: 1, Login: "bob"}, {Id: 2, Login: "alice"}}},
		getUserResp: &pb.GetUserResponse{User: &pb.User{Id: 2, Login: "alice"}},
	}
	c := newWithFake(f)

	list, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[1].Login)

	u, err := c.User(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)
	assert.Equal(t, "alice", f.lastGetUserReq.Login)
}

func TestProfile(t *testing.T) {
	c := newWithFake(&fakePB{profileResp: &pb.GetProfileResponse{User: &pb.User{Id: 1, Login: "bob"}}})
	u, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Login)
}

func TestPing(t *testing.T) {
	c := newWithFake(&fakePB{pingResp: &pb.PingResponse{Status: "OK"}})
	require.NoError(t, c.Ping(context.Background()))

	c = newWithFake(&fakePB{pingResp: &pb.PingResponse{Status: "DEGRADED"}})
	require.True(t, errors.Is(c.Ping(context.Background()), ErrUnavailable))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		in   error
		want error
	}{
		{status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{status.Error(codes.PermissionDenied, "x"), ErrUnauthorized},
		{status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{status.Error(codes.DeadlineExceeded, "x"), ErrUnavailable},
		{status.Error(codes.NotFound, "x"), ErrNotFound},
		{status.Error(codes.AlreadyExists, "x"), ErrAlreadyExists},
		{status.Error(codes.InvalidArgument, "x"), ErrInvalidArgument},
	}
	for _, tt := range tests {
		assert.True(t, errors.Is(c.mapError(tt.in), tt.want), "%v", tt.in)
	}

	assert.Nil(t, c.mapError(nil))
	assert.Error(t, c.mapError(status.Error(codes.Internal, "boom")))
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "other", "v")
	ctx = withAccessToken(ctx, "new")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"v"}, md.Get("other"))
}

/*************
 * Interceptor over a real connection
 *************/

type recordingServer struct {
	pb.UnimplementedAccountServiceServer
	tokens chan []string
}

func (r *recordingServer) Login(ctx context.Context, _ *pb.LoginRequest) (*pb.LoginResponse, error) {
	return &pb.LoginResponse{AccessToken: "issued"}, nil
}

func (r *recordingServer) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	r.tokens <- md.Get(common.AccessTokenHeaderName)
	return &pb.GetProfileResponse{User: &pb.User{Id: 1, Login: "bob"}}, nil
}

func TestInterceptor_AttachesTokenAfterLogin(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	rs := &recordingServer{tokens: make(chan []string, 2)}

	srv := grpc.NewServer()
	pb.RegisterAccountServiceServer(srv, rs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c := &GRPCClient{endpointURL: "passthrough:///bufnet", timeout: 2 * time.Second}
	conn, err := grpc.NewClient(c.endpointURL,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	require.NoError(t, err)
	c.conn = conn
	c.client = pb.NewAccountServiceClient(conn)
	t.Cleanup(func() { _ = c.Close() })

	_, err = c.Profile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, <-rs.tokens)

	require.NoError(t, c.Login(context.Background(), "bob", []byte("hunter22")))

	_, err = c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"issued"}, <-rs.tokens)
}
