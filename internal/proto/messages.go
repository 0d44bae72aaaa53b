package proto

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// message is implemented by every pointer-to-message type in this package.
// fillProto copies the struct into m; readProto copies m into the struct.
// Both expect m to be of the type returned by descriptor.
type message[T any] interface {
	*T
	descriptor() protoreflect.MessageDescriptor
	fillProto(m protoreflect.Message)
	readProto(m protoreflect.Message)
}

// toWire converts x to a dynamic protobuf message. A nil x gives an empty
// message of the right type.
func toWire[T any, P message[T]](x P) *dynamicpb.Message {
	m := dynamicpb.NewMessage(P(nil).descriptor())
	if x != nil {
		x.fillProto(m)
	}
	return m
}

// fromWire converts a dynamic protobuf message back to its struct.
func fromWire[T any, P message[T]](m protoreflect.Message) *T {
	out := new(T)
	P(out).readProto(m)
	return out
}

func field(m protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	return m.Descriptor().Fields().ByName(name)
}

func setString(m protoreflect.Message, name protoreflect.Name, v string) {
	m.Set(field(m, name), protoreflect.ValueOfString(v))
}

func getString(m protoreflect.Message, name protoreflect.Name) string {
	return m.Get(field(m, name)).String()
}

func setUser(m protoreflect.Message, name protoreflect.Name, u *User) {
	if u == nil {
		return
	}
	u.fillProto(m.Mutable(field(m, name)).Message())
}

func getUser(m protoreflect.Message, name protoreflect.Name) *User {
	fd := field(m, name)
	if !m.Has(fd) {
		return nil
	}
	return fromWire[User](m.Get(fd).Message())
}

// User is the public projection of an account.
type User struct {
	Id    int64
	Login string
}

func (*User) descriptor() protoreflect.MessageDescriptor { return userDesc }

func (x *User) fillProto(m protoreflect.Message) {
	m.Set(field(m, "id"), protoreflect.ValueOfInt64(x.Id))
	setString(m, "login", x.Login)
}

func (x *User) readProto(m protoreflect.Message) {
	x.Id = m.Get(field(m, "id")).Int()
	x.Login = getString(m, "login")
}

func (x *User) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *User) GetLogin() string {
	if x != nil {
		return x.Login
	}
	return ""
}

type RegisterRequest struct {
	Login    string
	Password string
}

func (*RegisterRequest) descriptor() protoreflect.MessageDescriptor { return registerRequestDesc }

func (x *RegisterRequest) fillProto(m protoreflect.Message) {
	setString(m, "login", x.Login)
	setString(m, "password", x.Password)
}

func (x *RegisterRequest) readProto(m protoreflect.Message) {
	x.Login = getString(m, "login")
	x.Password = getString(m, "password")
}

type RegisterResponse struct {
	User *User
}

func (*RegisterResponse) descriptor() protoreflect.MessageDescriptor { return registerResponseDesc }
func (x *RegisterResponse) fillProto(m protoreflect.Message)         { setUser(m, "user", x.User) }
func (x *RegisterResponse) readProto(m protoreflect.Message)         { x.User = getUser(m, "user") }

func (x *RegisterResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type LoginRequest struct {
	Login    string
	Password string
}

func (*LoginRequest) descriptor() protoreflect.MessageDescriptor { return loginRequestDesc }

func (x *LoginRequest) fillProto(m protoreflect.Message) {
	setString(m, "login", x.Login)
	setString(m, "password", x.Password)
}

func (x *LoginRequest) readProto(m protoreflect.Message) {
	x.Login = getString(m, "login")
	x.Password = getString(m, "password")
}

type LoginResponse struct {
	AccessToken string
}

func (*LoginResponse) descriptor() protoreflect.MessageDescriptor { return loginResponseDesc }
func (x *LoginResponse) fillProto(m protoreflect.Message)         { setString(m, "access_token", x.AccessToken) }
func (x *LoginResponse) readProto(m protoreflect.Message)         { x.AccessToken = getString(m, "access_token") }

func (x *LoginResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

type ListUsersRequest struct{}

func (*ListUsersRequest) descriptor() protoreflect.MessageDescriptor { return listUsersRequestDesc }
func (*ListUsersRequest) fillProto(protoreflect.Message)             {}
func (*ListUsersRequest) readProto(protoreflect.Message)             {}

type ListUsersResponse struct {
	Users []*User
}

func (*ListUsersResponse) descriptor() protoreflect.MessageDescriptor { return listUsersResponseDesc }

func (x *ListUsersResponse) fillProto(m protoreflect.Message) {
	if len(x.Users) == 0 {
		return
	}
	list := m.Mutable(field(m, "users")).List()
	for _, u := range x.Users {
		el := list.NewElement()
		if u != nil {
			u.fillProto(el.Message())
		}
		list.Append(el)
	}
}

func (x *ListUsersResponse) readProto(m protoreflect.Message) {
	list := m.Get(field(m, "users")).List()
	if list.Len() == 0 {
		x.Users = nil
		return
	}
	x.Users = make([]*User, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		x.Users = append(x.Users, fromWire[User](list.Get(i).Message()))
	}
}

func (x *ListUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

type GetUserRequest struct {
	Login string
}

func (*GetUserRequest) descriptor() protoreflect.MessageDescriptor { return getUserRequestDesc }
func (x *GetUserRequest) fillProto(m protoreflect.Message)         { setString(m, "login", x.Login) }
func (x *GetUserRequest) readProto(m protoreflect.Message)         { x.Login = getString(m, "login") }

func (x *GetUserRequest) GetLogin() string {
	if x != nil {
		return x.Login
	}
	return ""
}

type GetUserResponse struct {
	User *User
}

func (*GetUserResponse) descriptor() protoreflect.MessageDescriptor { return getUserResponseDesc }
func (x *GetUserResponse) fillProto(m protoreflect.Message)         { setUser(m, "user", x.User) }
func (x *GetUserResponse) readProto(m protoreflect.Message)         { x.User = getUser(m, "user") }

func (x *GetUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type GetProfileRequest struct{}

func (*GetProfileRequest) descriptor() protoreflect.MessageDescriptor { return getProfileRequestDesc }
func (*GetProfileRequest) fillProto(protoreflect.Message)             {}
func (*GetProfileRequest) readProto(protoreflect.Message)             {}

type GetProfileResponse struct {
	User *User
}

func (*GetProfileResponse) descriptor() protoreflect.MessageDescriptor { return getProfileResponseDesc }
func (x *GetProfileResponse) fillProto(m protoreflect.Message)         { setUser(m, "user", x.User) }
func (x *GetProfileResponse) readProto(m protoreflect.Message)         { x.User = getUser(m, "user") }

func (x *GetProfileResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type LogoutRequest struct{}

func (*LogoutRequest) descriptor() protoreflect.MessageDescriptor { return logoutRequestDesc }
func (*LogoutRequest) fillProto(protoreflect.Message)             {}
func (*LogoutRequest) readProto(protoreflect.Message)             {}

type LogoutResponse struct{}

func (*LogoutResponse) descriptor() protoreflect.MessageDescriptor { return logoutResponseDesc }
func (*LogoutResponse) fillProto(protoreflect.Message)             {}
func (*LogoutResponse) readProto(protoreflect.Message)             {}

type PingRequest struct{}

func (*PingRequest) descriptor() protoreflect.MessageDescriptor { return pingRequestDesc }
func (*PingRequest) fillProto(protoreflect.Message)             {}
func (*PingRequest) readProto(protoreflect.Message)             {}

type PingResponse struct {
	Status string
}

func (*PingResponse) descriptor() protoreflect.MessageDescriptor { return pingResponseDesc }
func (x *PingResponse) fillProto(m protoreflect.Message)         { setString(m, "status", x.Status) }
func (x *PingResponse) readProto(m protoreflect.Message)         { x.Status = getString(m, "status") }

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}
