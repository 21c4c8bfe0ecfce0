package chatpb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRequestRoundTrip(t *testing.T) {
	in := &RegisterRequest{Username: "user1", Password: "pass1", IsClient: true}
	data, err := in.Marshal()
	require.NoError(t, err)

	out := &RegisterRequest{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, in, out)
}

func TestStatusResponseRoundTrip(t *testing.T) {
	in := &LoginResponse{}
	in.Success, in.Message = false, "\nERROR: Invalid password. Please try again."
	data, err := in.Marshal()
	require.NoError(t, err)

	out := &LoginResponse{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, in.Success, out.Success)
	require.Equal(t, in.Message, out.Message)
}

func TestSendMessageRequestRoundTrip(t *testing.T) {
	in := &SendMessageRequest{Sender: "user1", Receiver: "user2", Body: "hello", IsClient: false}
	data, err := in.Marshal()
	require.NoError(t, err)

	out := &SendMessageRequest{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, in, out)
}

func TestEmptyRoundTrip(t *testing.T) {
	in := &Empty{}
	data, err := in.Marshal()
	require.NoError(t, err)
	out := &Empty{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, "", out.ExcludeSelf)
}

func TestEmptyExcludeSelfRoundTrip(t *testing.T) {
	in := &Empty{ExcludeSelf: "user1"}
	data, err := in.Marshal()
	require.NoError(t, err)
	out := &Empty{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, "user1", out.ExcludeSelf)
}

func TestUserRoundTrip(t *testing.T) {
	in := &User{Username: "user1"}
	data, err := in.Marshal()
	require.NoError(t, err)
	out := &User{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, in, out)
}

func TestAllUsersRoundTrip(t *testing.T) {
	in := &AllUsers{Users: []string{"user1", "user2", "user3"}}
	data, err := in.Marshal()
	require.NoError(t, err)
	out := &AllUsers{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, in, out)
}

func TestAllChatsRoundTripEmpty(t *testing.T) {
	in := &AllChats{}
	data, err := in.Marshal()
	require.NoError(t, err)
	out := &AllChats{}
	require.NoError(t, out.Unmarshal(data))
	require.Equal(t, 0, len(out.Chats))
}

func TestStringDoesNotPanicOrRecurse(t *testing.T) {
	in := &RegisterRequest{Username: "user1", Password: "pass1", IsClient: true}
	require.NotPanics(t, func() { _ = in.String() })
}
