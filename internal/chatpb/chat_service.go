package chatpb

import (
	"context"

	"google.golang.org/grpc"
)

// ChatServiceClient is the client API for ChatService.
type ChatServiceClient interface {
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	GetUsers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AllUsers, error)
	ReceiveMessage(ctx context.Context, in *User, opts ...grpc.CallOption) (*AllChats, error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewChatServiceClient builds a ChatServiceClient over an established
// *grpc.ClientConn.
func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc}
}

func (c *chatServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	out := new(SendMessageResponse)
	if err := c.cc.Invoke(ctx, "/chat262.ChatService/SendMessage", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) GetUsers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AllUsers, error) {
	out := new(AllUsers)
	if err := c.cc.Invoke(ctx, "/chat262.ChatService/GetUsers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) ReceiveMessage(ctx context.Context, in *User, opts ...grpc.CallOption) (*AllChats, error) {
	out := new(AllChats)
	if err := c.cc.Invoke(ctx, "/chat262.ChatService/ReceiveMessage", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ChatServiceServer is the server API for ChatService.
type ChatServiceServer interface {
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	GetUsers(context.Context, *Empty) (*AllUsers, error)
	ReceiveMessage(context.Context, *User) (*AllChats, error)
}

func _ChatService_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/chat262.ChatService/SendMessage"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_GetUsers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).GetUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/chat262.ChatService/GetUsers"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatServiceServer).GetUsers(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_ReceiveMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(User)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).ReceiveMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/chat262.ChatService/ReceiveMessage"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatServiceServer).ReceiveMessage(ctx, req.(*User))
	}
	return interceptor(ctx, in, info, handler)
}

var _ChatService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "chat262.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SendMessage", Handler: _ChatService_SendMessage_Handler},
		{MethodName: "GetUsers", Handler: _ChatService_GetUsers_Handler},
		{MethodName: "ReceiveMessage", Handler: _ChatService_ReceiveMessage_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chat262.proto",
}

// RegisterChatServiceServer wires a ChatServiceServer implementation into a
// *grpc.Server.
func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&_ChatService_serviceDesc, srv)
}
