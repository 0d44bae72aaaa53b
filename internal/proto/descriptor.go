// Package proto declares the wire contract of the userdir.v1.AccountService
// gRPC service: the protobuf file descriptor, request/response messages, the
// service descriptor and a client.
//
// The descriptor for userdir/v1/account.proto is assembled at init with
// descriptorpb and protodesc. On the wire every message travels as a
// dynamicpb message through grpc's default proto codec; handlers and callers
// work with the plain Go structs in messages.go.
package proto

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	FileName    = "userdir/v1/account.proto"
	PackageName = "userdir.v1"
	ServiceName = PackageName + ".AccountService"
)

// File_userdir_v1_account_proto is the descriptor of userdir/v1/account.proto.
var File_userdir_v1_account_proto = buildFile()

var (
	userDesc               = messageDesc("User")
	registerRequestDesc    = messageDesc("RegisterRequest")
	registerResponseDesc   = messageDesc("RegisterResponse")
	loginRequestDesc       = messageDesc("LoginRequest")
	loginResponseDesc      = messageDesc("LoginResponse")
	listUsersRequestDesc   = messageDesc("ListUsersRequest")
	listUsersResponseDesc  = messageDesc("ListUsersResponse")
	getUserRequestDesc     = messageDesc("GetUserRequest")
	getUserResponseDesc    = messageDesc("GetUserResponse")
	getProfileRequestDesc  = messageDesc("GetProfileRequest")
	getProfileResponseDesc = messageDesc("GetProfileResponse")
	logoutRequestDesc      = messageDesc("LogoutRequest")
	logoutResponseDesc     = messageDesc("LogoutResponse")
	pingRequestDesc        = messageDesc("PingRequest")
	pingResponseDesc       = messageDesc("PingResponse")
)

func str(s string) *string { return &s }
func i32(v int32) *int32   { return &v }

func scalarField(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     str(name),
		JsonName: str(jsonName(name)),
		Number:   i32(num),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
	}
}

func userField(name string, num int32, repeated bool) *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	if repeated {
		label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	}
	return &descriptorpb.FieldDescriptorProto{
		Name:     str(name),
		JsonName: str(jsonName(name)),
		Number:   i32(num),
		Label:    label.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: str("." + PackageName + ".User"),
	}
}

// jsonName converts snake_case to lowerCamelCase the way protoc does.
func jsonName(name string) string {
	out := make([]byte, 0, len(name))
	upper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' {
			upper = true
			continue
		}
		if upper && 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}

func messageProto(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: str(name), Field: fields}
}

func method(name string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       str(name),
		InputType:  str("." + PackageName + "." + name + "Request"),
		OutputType: str("." + PackageName + "." + name + "Response"),
	}
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	const (
		tString = descriptorpb.FieldDescriptorProto_TYPE_STRING
		tInt64  = descriptorpb.FieldDescriptorProto_TYPE_INT64
	)
	return &descriptorpb.FileDescriptorProto{
		Name:    str(FileName),
		Package: str(PackageName),
		Syntax:  str("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: str("github.com/dmitrijs2005/userdir/internal/proto"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			messageProto("User", scalarField("id", 1, tInt64), scalarField("login", 2, tString)),
			messageProto("RegisterRequest", scalarField("login", 1, tString), scalarField("password", 2, tString)),
			messageProto("RegisterResponse", userField("user", 1, false)),
			messageProto("LoginRequest", scalarField("login", 1, tString), scalarField("password", 2, tString)),
			messageProto("LoginResponse", scalarField("access_token", 1, tString)),
			messageProto("ListUsersRequest"),
			messageProto("ListUsersResponse", userField("users", 1, true)),
			messageProto("GetUserRequest", scalarField("login", 1, tString)),
			messageProto("GetUserResponse", userField("user", 1, false)),
			messageProto("GetProfileRequest"),
			messageProto("GetProfileResponse", userField("user", 1, false)),
			messageProto("LogoutRequest"),
			messageProto("LogoutResponse"),
			messageProto("PingRequest"),
			messageProto("PingResponse", scalarField("status", 1, tString)),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: str("AccountService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("Register"),
				method("Login"),
				method("ListUsers"),
				method("GetUser"),
				method("GetProfile"),
				method("Logout"),
				method("Ping"),
			},
		}},
	}
}

func buildFile() protoreflect.FileDescriptor {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("proto: build %s: %v", FileName, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("proto: register %s: %v", FileName, err))
	}
	return fd
}

func messageDesc(name protoreflect.Name) protoreflect.MessageDescriptor {
	md := File_userdir_v1_account_proto.Messages().ByName(name)
	if md == nil {
		panic(fmt.Sprintf("proto: message %s not in %s", name, FileName))
	}
	return md
}
