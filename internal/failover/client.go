package failover

import (
	"context"

	"google.golang.org/grpc"

	"github.com/chat262/cluster/internal/chatpb"
)

// Dialer satisfies chatpb.AuthServiceClient and chatpb.ChatServiceClient,
// so call sites (the interactive shell, tests) use it exactly like a
// direct single-replica stub and get transparent failover for free.
var (
	_ chatpb.AuthServiceClient = (*Dialer)(nil)
	_ chatpb.ChatServiceClient = (*Dialer)(nil)
)

func (d *Dialer) Register(ctx context.Context, in *chatpb.RegisterRequest, _ ...grpc.CallOption) (*chatpb.RegisterResponse, error) {
	out := new(chatpb.RegisterResponse)
	err := d.Call(ctx, "Register", func(ctx context.Context, auth chatpb.AuthServiceClient, _ chatpb.ChatServiceClient) error {
		resp, err := auth.Register(ctx, in)
		if err != nil {
			return err
		}
		*out = *resp
		return nil
	})
	return out, err
}

func (d *Dialer) Login(ctx context.Context, in *chatpb.LoginRequest, _ ...grpc.CallOption) (*chatpb.LoginResponse, error) {
	out := new(chatpb.LoginResponse)
	err := d.Call(ctx, "Login", func(ctx context.Context, auth chatpb.AuthServiceClient, _ chatpb.ChatServiceClient) error {
		resp, err := auth.Login(ctx, in)
		if err != nil {
			return err
		}
		*out = *resp
		return nil
	})
	return out, err
}

func (d *Dialer) DeleteAccount(ctx context.Context, in *chatpb.DeleteAccountRequest, _ ...grpc.CallOption) (*chatpb.DeleteAccountResponse, error) {
	out := new(chatpb.DeleteAccountResponse)
	err := d.Call(ctx, "DeleteAccount", func(ctx context.Context, auth chatpb.AuthServiceClient, _ chatpb.ChatServiceClient) error {
		resp, err := auth.DeleteAccount(ctx, in)
		if err != nil {
			return err
		}
		*out = *resp
		return nil
	})
	return out, err
}

func (d *Dialer) SendMessage(ctx context.Context, in *chatpb.SendMessageRequest, _ ...grpc.CallOption) (*chatpb.SendMessageResponse, error) {
	out := new(chatpb.SendMessageResponse)
	err := d.Call(ctx, "SendMessage", func(ctx context.Context, _ chatpb.AuthServiceClient, chat chatpb.ChatServiceClient) error {
		resp, err := chat.SendMessage(ctx, in)
		if err != nil {
			return err
		}
		*out = *resp
		return nil
	})
	return out, err
}

func (d *Dialer) GetUsers(ctx context.Context, in *chatpb.Empty, _ ...grpc.CallOption) (*chatpb.AllUsers, error) {
	out := new(chatpb.AllUsers)
	err := d.Call(ctx, "GetUsers", func(ctx context.Context, _ chatpb.AuthServiceClient, chat chatpb.ChatServiceClient) error {
		resp, err := chat.GetUsers(ctx, in)
		if err != nil {
			return err
		}
		*out = *resp
		return nil
	})
	return out, err
}

func (d *Dialer) ReceiveMessage(ctx context.Context, in *chatpb.User, _ ...grpc.CallOption) (*chatpb.AllChats, error) {
	out := new(chatpb.AllChats)
	err := d.Call(ctx, "ReceiveMessage", func(ctx context.Context, _ chatpb.AuthServiceClient, chat chatpb.ChatServiceClient) error {
		resp, err := chat.ReceiveMessage(ctx, in)
		if err != nil {
			return err
		}
		*out = *resp
		return nil
	})
	return out, err
}
