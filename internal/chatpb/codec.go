package chatpb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype this package's messages are sent
// under. Dial with grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName))
// so every call on the connection picks it up.
const CodecName = "chatwire"

type marshaler interface {
	Marshal() ([]byte, error)
}

type unmarshaler interface {
	Unmarshal([]byte) error
}

// wireCodec dispatches straight to each message's own Marshal/Unmarshal
// methods instead of going through google.golang.org/protobuf's reflection
// machinery, which expects messages built by protoc. Registered once via
// init() below, it lets the wire schema ride on the real grpc.Server /
// grpc.ClientConn transport without requiring a protoc step in this repo.
type wireCodec struct{}

func (wireCodec) Name() string { return CodecName }

func (wireCodec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(marshaler)
	if !ok {
		return nil, fmt.Errorf("chatpb: %T does not implement Marshal", v)
	}
	return m.Marshal()
}

func (wireCodec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(unmarshaler)
	if !ok {
		return fmt.Errorf("chatpb: %T does not implement Unmarshal", v)
	}
	return m.Unmarshal(data)
}

func init() {
	encoding.RegisterCodec(wireCodec{})
}
