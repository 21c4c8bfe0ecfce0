package replica

import (
	"google.golang.org/grpc"

	"github.com/chat262/cluster/internal/chatpb"
)

// follower is this replica's view of one higher-id replica: a pair of
// generated-style gRPC stubs and a liveness bit. alive starts true the
// moment the *grpc.ClientConn is constructed — dialing is non-blocking, so
// "stub constructed" and "believed alive" are the same event until the
// first forward proves otherwise.
type follower struct {
	id    int
	conn  *grpc.ClientConn
	auth  chatpb.AuthServiceClient
	chat  chatpb.ChatServiceClient
	alive bool
}

func dialFollower(id int, addr string) (*follower, error) {
	cc, err := grpc.Dial(addr,
		grpc.WithInsecure(),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(chatpb.CodecName)),
	)
	if err != nil {
		return nil, err
	}
	return &follower{
		id:    id,
		conn:  cc,
		auth:  chatpb.NewAuthServiceClient(cc),
		chat:  chatpb.NewChatServiceClient(cc),
		alive: true,
	}, nil
}

func (f *follower) close() error {
	if f.conn == nil {
		return nil
	}
	return f.conn.Close()
}
