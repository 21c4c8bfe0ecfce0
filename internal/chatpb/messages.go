package chatpb

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// protoCompactString gives each message a String() without leaning on
// gogo's reflection-based text marshaler, which expects the struct shapes
// protoc itself emits; our hand-rolled wire types aren't worth tripping it
// over just for a debug-log rendering.
func protoCompactString(m interface{}) string {
	// %#v (not %v) deliberately: %v would dispatch back through String()
	// via the fmt.Stringer fast path and recurse forever.
	return fmt.Sprintf("%#v", m)
}

// RegisterRequest is the Auth.Register request. is_client is last, per the
// wire schema invariant that every mutating request ends with it.
type RegisterRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	IsClient bool   `protobuf:"varint,3,opt,name=is_client,json=isClient,proto3" json:"is_client,omitempty"`
}

func (m *RegisterRequest) Reset()         { *m = RegisterRequest{} }
func (m *RegisterRequest) String() string { return protoCompactString(m) }
func (*RegisterRequest) ProtoMessage()    {}

func (m *RegisterRequest) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putString(m.Username)
	w.putString(m.Password)
	w.putBool(m.IsClient)
	return w.buf, nil
}

func (m *RegisterRequest) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	if m.Username, err = r.getString(); err != nil {
		return err
	}
	if m.Password, err = r.getString(); err != nil {
		return err
	}
	if m.IsClient, err = r.getBool(); err != nil {
		return err
	}
	return nil
}

// RegisterResponse, LoginResponse, DeleteAccountResponse, and
// SendMessageResponse all share the (success, message) shape named in the
// wire schema; each gets its own type so the generated-style service
// signatures stay strongly typed per RPC.
type statusResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *statusResponse) marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putBool(m.Success)
	w.putString(m.Message)
	return w.buf, nil
}

func (m *statusResponse) unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	if m.Success, err = r.getBool(); err != nil {
		return err
	}
	if m.Message, err = r.getString(); err != nil {
		return err
	}
	return nil
}

type RegisterResponse struct{ statusResponse }

func (m *RegisterResponse) Reset()                    { *m = RegisterResponse{} }
func (m *RegisterResponse) String() string             { return protoCompactString(m) }
func (*RegisterResponse) ProtoMessage()                {}
func (m *RegisterResponse) Marshal() ([]byte, error)   { return m.statusResponse.marshal() }
func (m *RegisterResponse) Unmarshal(data []byte) error { return m.statusResponse.unmarshal(data) }

type LoginRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	IsClient bool   `protobuf:"varint,3,opt,name=is_client,json=isClient,proto3" json:"is_client,omitempty"`
}

func (m *LoginRequest) Reset()         { *m = LoginRequest{} }
func (m *LoginRequest) String() string { return protoCompactString(m) }
func (*LoginRequest) ProtoMessage()    {}

func (m *LoginRequest) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putString(m.Username)
	w.putString(m.Password)
	w.putBool(m.IsClient)
	return w.buf, nil
}

func (m *LoginRequest) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	if m.Username, err = r.getString(); err != nil {
		return err
	}
	if m.Password, err = r.getString(); err != nil {
		return err
	}
	if m.IsClient, err = r.getBool(); err != nil {
		return err
	}
	return nil
}

type LoginResponse struct{ statusResponse }

func (m *LoginResponse) Reset()                     { *m = LoginResponse{} }
func (m *LoginResponse) String() string              { return protoCompactString(m) }
func (*LoginResponse) ProtoMessage()                 {}
func (m *LoginResponse) Marshal() ([]byte, error)    { return m.statusResponse.marshal() }
func (m *LoginResponse) Unmarshal(data []byte) error { return m.statusResponse.unmarshal(data) }

type DeleteAccountRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	IsClient bool   `protobuf:"varint,3,opt,name=is_client,json=isClient,proto3" json:"is_client,omitempty"`
}

func (m *DeleteAccountRequest) Reset()         { *m = DeleteAccountRequest{} }
func (m *DeleteAccountRequest) String() string { return protoCompactString(m) }
func (*DeleteAccountRequest) ProtoMessage()    {}

func (m *DeleteAccountRequest) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putString(m.Username)
	w.putString(m.Password)
	w.putBool(m.IsClient)
	return w.buf, nil
}

func (m *DeleteAccountRequest) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	if m.Username, err = r.getString(); err != nil {
		return err
	}
	if m.Password, err = r.getString(); err != nil {
		return err
	}
	if m.IsClient, err = r.getBool(); err != nil {
		return err
	}
	return nil
}

type DeleteAccountResponse struct{ statusResponse }

func (m *DeleteAccountResponse) Reset()         { *m = DeleteAccountResponse{} }
func (m *DeleteAccountResponse) String() string { return protoCompactString(m) }
func (*DeleteAccountResponse) ProtoMessage()    {}
func (m *DeleteAccountResponse) Marshal() ([]byte, error) {
	return m.statusResponse.marshal()
}
func (m *DeleteAccountResponse) Unmarshal(data []byte) error {
	return m.statusResponse.unmarshal(data)
}

type SendMessageRequest struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Receiver string `protobuf:"bytes,2,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Body     string `protobuf:"bytes,3,opt,name=body,proto3" json:"body,omitempty"`
	IsClient bool   `protobuf:"varint,4,opt,name=is_client,json=isClient,proto3" json:"is_client,omitempty"`
}

func (m *SendMessageRequest) Reset()         { *m = SendMessageRequest{} }
func (m *SendMessageRequest) String() string { return protoCompactString(m) }
func (*SendMessageRequest) ProtoMessage()    {}

func (m *SendMessageRequest) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putString(m.Sender)
	w.putString(m.Receiver)
	w.putString(m.Body)
	w.putBool(m.IsClient)
	return w.buf, nil
}

func (m *SendMessageRequest) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	if m.Sender, err = r.getString(); err != nil {
		return err
	}
	if m.Receiver, err = r.getString(); err != nil {
		return err
	}
	if m.Body, err = r.getString(); err != nil {
		return err
	}
	if m.IsClient, err = r.getBool(); err != nil {
		return err
	}
	return nil
}

type SendMessageResponse struct{ statusResponse }

func (m *SendMessageResponse) Reset()         { *m = SendMessageResponse{} }
func (m *SendMessageResponse) String() string { return protoCompactString(m) }
func (*SendMessageResponse) ProtoMessage()    {}
func (m *SendMessageResponse) Marshal() ([]byte, error) {
	return m.statusResponse.marshal()
}
func (m *SendMessageResponse) Unmarshal(data []byte) error {
	return m.statusResponse.unmarshal(data)
}

// Empty is GetUsers' request. Despite the name (kept from the original
// no-argument RPC), it carries one optional field: ExcludeSelf, if
// non-empty, asks the server to omit that username from the response —
// the interactive shell's "other users" listing drives this.
type Empty struct {
	ExcludeSelf string `protobuf:"bytes,1,opt,name=exclude_self,json=excludeSelf,proto3" json:"exclude_self,omitempty"`
}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return protoCompactString(m) }
func (*Empty) ProtoMessage()    {}

func (m *Empty) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putString(m.ExcludeSelf)
	return w.buf, nil
}

func (m *Empty) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	m.ExcludeSelf, err = r.getString()
	return err
}

// User carries a single username; used for ReceiveMessage's request.
type User struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *User) Reset()         { *m = User{} }
func (m *User) String() string { return protoCompactString(m) }
func (*User) ProtoMessage()    {}

func (m *User) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putString(m.Username)
	return w.buf, nil
}

func (m *User) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	m.Username, err = r.getString()
	return err
}

// AllUsers is GetUsers' response: the list form named in the wire schema.
type AllUsers struct {
	Users []string `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
}

func (m *AllUsers) Reset()         { *m = AllUsers{} }
func (m *AllUsers) String() string { return protoCompactString(m) }
func (*AllUsers) ProtoMessage()    {}

func (m *AllUsers) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putStringSlice(m.Users)
	return w.buf, nil
}

func (m *AllUsers) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	m.Users, err = r.getStringSlice()
	return err
}

// AllChats is ReceiveMessage's response: the rendered "From {sender}: {body}"
// strings, in mailbox order.
type AllChats struct {
	Chats []string `protobuf:"bytes,1,rep,name=chats,proto3" json:"chats,omitempty"`
}

func (m *AllChats) Reset()         { *m = AllChats{} }
func (m *AllChats) String() string { return protoCompactString(m) }
func (*AllChats) ProtoMessage()    {}

func (m *AllChats) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putStringSlice(m.Chats)
	return w.buf, nil
}

func (m *AllChats) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	var err error
	m.Chats, err = r.getStringSlice()
	return err
}

func init() {
	proto.RegisterType((*RegisterRequest)(nil), "chat262.RegisterRequest")
	proto.RegisterType((*RegisterResponse)(nil), "chat262.RegisterResponse")
	proto.RegisterType((*LoginRequest)(nil), "chat262.LoginRequest")
	proto.RegisterType((*LoginResponse)(nil), "chat262.LoginResponse")
	proto.RegisterType((*DeleteAccountRequest)(nil), "chat262.DeleteAccountRequest")
	proto.RegisterType((*DeleteAccountResponse)(nil), "chat262.DeleteAccountResponse")
	proto.RegisterType((*SendMessageRequest)(nil), "chat262.SendMessageRequest")
	proto.RegisterType((*SendMessageResponse)(nil), "chat262.SendMessageResponse")
	proto.RegisterType((*Empty)(nil), "chat262.Empty")
	proto.RegisterType((*User)(nil), "chat262.User")
	proto.RegisterType((*AllUsers)(nil), "chat262.AllUsers")
	proto.RegisterType((*AllChats)(nil), "chat262.AllChats")
}
