package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestInterceptor_UnprotectedAllowsWithoutToken(t *testing.T) {
	g := &fakeGate{err: common.ErrorUnauthorized}
	s := newServer(&fakeUser{}, g)

	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_ListUsers_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_ProtectedRejected(t *testing.T) {
	for _, method := range []string{pb.AccountService_GetProfile_FullMethodName, pb.AccountService_Logout_FullMethodName} {
		g := &fakeGate{err: common.ErrorUnauthorized}
		s := newServer(&fakeUser{}, g)

		md := metadata.New(map[string]string{common.AccessTokenHeaderName: "not-a-valid-jwt"})
		ctx := metadata.NewIncomingContext(context.Background(), md)
		info := &grpc.UnaryServerInfo{FullMethod: method}

		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			t.Fatal("handler should not be called for rejected token")
			return nil, nil
		}

		_, err := s.accessTokenInterceptor(ctx, nil, info, h)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("%s: expected Unauthenticated, got %v", method, status.Code(err))
		}
		if g.got != "not-a-valid-jwt" {
			t.Fatalf("%s: gate received %q", method, g.got)
		}
	}
}

func TestInterceptor_MissingTokenReachesGate(t *testing.T) {
	g := &fakeGate{err: common.ErrorUnauthorized}
	s := newServer(&fakeUser{}, g)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_GetProfile_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "unauthorized" {
		t.Fatalf("expected 'unauthorized', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_AdmittedUserInContext(t *testing.T) {
	want := &models.User{ID: 9, Login: "dave"}
	s := newServer(&fakeUser{}, &fakeGate{user: want})

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: "tok"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_GetProfile_FullMethodName}

	var got *models.User
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = auth.UserFromContext(ctx)
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != 9 {
		t.Fatalf("user not attached: %+v", got)
	}
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeGate{})
	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_Ping_FullMethodName}

	wantErr := status.Error(codes.NotFound, "x")
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", wantErr
	}

	resp, err := s.loggingInterceptor(context.Background(), "req", info, h)
	if resp != "resp" || err != wantErr {
		t.Fatalf("unexpected passthrough: %v %v", resp, err)
	}
}

type recordingLogger struct {
	nopLogger
	ids []string
}

func (r *recordingLogger) Info(ctx context.Context, _ string, _ ...any) {
	id, _ := logging.RequestIDFromContext(ctx)
	r.ids = append(r.ids, id)
}

func TestLoggingInterceptor_RequestIDReachesHandler(t *testing.T) {
	rec := &recordingLogger{}
	s := newServer(&fakeUser{}, &fakeGate{})
	s.logger = rec
	info := &grpc.UnaryServerInfo{FullMethod: pb.AccountService_Ping_FullMethodName}

	var seen []string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		id, ok := logging.RequestIDFromContext(ctx)
		if !ok {
			t.Fatal("handler context has no request id")
		}
		seen = append(seen, id)
		return nil, nil
	}

	for i := 0; i < 2; i++ {
		if _, err := s.loggingInterceptor(context.Background(), nil, info, h); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(rec.ids) != 2 || rec.ids[0] != seen[0] || rec.ids[1] != seen[1] {
		t.Fatalf("logged ids %v do not match handler ids %v", rec.ids, seen)
	}
	if seen[0] == seen[1] {
		t.Fatalf("request ids must differ per call: %v", seen)
	}
}
