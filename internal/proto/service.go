package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/dynamicpb"
)

const (
	AccountService_Register_FullMethodName   = "/userdir.v1.AccountService/Register"
	AccountService_Login_FullMethodName      = "/userdir.v1.AccountService/Login"
	AccountService_ListUsers_FullMethodName  = "/userdir.v1.AccountService/ListUsers"
	AccountService_GetUser_FullMethodName    = "/userdir.v1.AccountService/GetUser"
	AccountService_GetProfile_FullMethodName = "/userdir.v1.AccountService/GetProfile"
	AccountService_Logout_FullMethodName     = "/userdir.v1.AccountService/Logout"
	AccountService_Ping_FullMethodName       = "/userdir.v1.AccountService/Ping"
)

// AccountServiceServer is the server API for AccountService.
type AccountServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

// UnimplementedAccountServiceServer can be embedded to keep servers
// compiling when methods are added.
type UnimplementedAccountServiceServer struct{}

func (UnimplementedAccountServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAccountServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAccountServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedAccountServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedAccountServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedAccountServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedAccountServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

// unaryHandler adapts a typed server method to grpc.MethodHandler. The
// request is decoded into a dynamic message and converted before the
// interceptors run; the typed response is converted back after them.
func unaryHandler[Req, Resp any, PReq message[Req], PResp message[Resp]](fullMethod string, call func(AccountServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		wire := dynamicpb.NewMessage(PReq(nil).descriptor())
		if err := dec(wire); err != nil {
			return nil, err
		}
		in := fromWire[Req, PReq](wire)

		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}

		var (
			out any
			err error
		)
		if interceptor == nil {
			out, err = handler(ctx, in)
		} else {
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			out, err = interceptor(ctx, in, info, handler)
		}
		if err != nil {
			return nil, err
		}
		resp, _ := out.(*Resp)
		return toWire[Resp, PResp](resp), nil
	}
}

// AccountService_ServiceDesc describes AccountService for grpc.ServiceRegistrar.
var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(AccountService_Register_FullMethodName, AccountServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(AccountService_Login_FullMethodName, AccountServiceServer.Login)},
		{MethodName: "ListUsers", Handler: unaryHandler(AccountService_ListUsers_FullMethodName, AccountServiceServer.ListUsers)},
		{MethodName: "GetUser", Handler: unaryHandler(AccountService_GetUser_FullMethodName, AccountServiceServer.GetUser)},
		{MethodName: "GetProfile", Handler: unaryHandler(AccountService_GetProfile_FullMethodName, AccountServiceServer.GetProfile)},
		{MethodName: "Logout", Handler: unaryHandler(AccountService_Logout_FullMethodName, AccountServiceServer.Logout)},
		{MethodName: "Ping", Handler: unaryHandler(AccountService_Ping_FullMethodName, AccountServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: FileName,
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

// AccountServiceClient is the client API for AccountService.
type AccountServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type accountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) AccountServiceClient {
	return &accountServiceClient{cc}
}

func invoke[Req, Resp any, PReq message[Req], PResp message[Resp]](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	reply := dynamicpb.NewMessage(PResp(nil).descriptor())
	if err := cc.Invoke(ctx, method, toWire[Req, PReq](in), reply, opts...); err != nil {
		return nil, err
	}
	return fromWire[Resp, PResp](reply), nil
}

func (c *accountServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterRequest, RegisterResponse](ctx, c.cc, AccountService_Register_FullMethodName, in, opts)
}

func (c *accountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginRequest, LoginResponse](ctx, c.cc, AccountService_Login_FullMethodName, in, opts)
}

func (c *accountServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersRequest, ListUsersResponse](ctx, c.cc, AccountService_ListUsers_FullMethodName, in, opts)
}

func (c *accountServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserRequest, GetUserResponse](ctx, c.cc, AccountService_GetUser_FullMethodName, in, opts)
}

func (c *accountServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	return invoke[GetProfileRequest, GetProfileResponse](ctx, c.cc, AccountService_GetProfile_FullMethodName, in, opts)
}

func (c *accountServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutRequest, LogoutResponse](ctx, c.cc, AccountService_Logout_FullMethodName, in, opts)
}

func (c *accountServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingRequest, PingResponse](ctx, c.cc, AccountService_Ping_FullMethodName, in, opts)
}
