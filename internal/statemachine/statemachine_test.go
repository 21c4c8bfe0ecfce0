package statemachine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	s := NewReplicaState()

	s, resp := Register(s, "user1", "pass1")
	require.True(t, resp.Success)
	require.Equal(t, MsgRegisterSuccess, resp.Message)
	require.Equal(t, "pass1", s.Accounts["user1"])

	_, resp = Register(s, "user1", "different")
	require.False(t, resp.Success)
	require.Equal(t, MsgUsernameTaken, resp.Message)
}

func TestLogin(t *testing.T) {
	s := NewReplicaState()
	s, _ = Register(s, "user1", "pass1")

	require.Equal(t, Response{Success: true, Message: MsgLoginSuccess}, Login(s, "user1", "pass1"))
	require.Equal(t, Response{Success: false, Message: MsgInvalidPassword}, Login(s, "user1", "wrong"))
	require.Equal(t, Response{Success: false, Message: MsgNoSuchUser}, Login(s, "nobody", "x"))
}

func TestDeleteAccountLeavesMailbox(t *testing.T) {
	s := NewReplicaState()
	s, _ = Register(s, "user1", "pass1")
	s, _ = Register(s, "user2", "pass2")
	s, resp := SendMessage(s, "user1", "user2", "hi", "rec-1")
	require.True(t, resp.Success)

	s, resp = DeleteAccount(s, "user1", "pass1")
	require.True(t, resp.Success)
	require.Equal(t, MsgDeleteSuccess, resp.Message)
	_, exists := s.Accounts["user1"]
	require.False(t, exists)

	// mailbox addressed from the now-deleted user survives
	require.Equal(t, []string{"From user1: hi"}, ReceiveMessage(s, "user2"))

	_, resp = DeleteAccount(s, "user1", "pass1")
	require.False(t, resp.Success)
	require.Equal(t, MsgNoSuchUser, resp.Message)
}

func TestSendMessageUnknownParty(t *testing.T) {
	s := NewReplicaState()
	s, _ = Register(s, "user1", "pass1")

	_, resp := SendMessage(s, "user1", "baduser", "Oops", "rec-1")
	require.False(t, resp.Success)
	require.Equal(t, MsgUnknownParty, resp.Message)

	_, resp = SendMessage(s, "baduser", "user1", "Oops", "rec-2")
	require.False(t, resp.Success)
	require.Equal(t, MsgUnknownParty, resp.Message)
}

func TestSendMessageSuccessAndOrder(t *testing.T) {
	s := NewReplicaState()
	s, _ = Register(s, "user1", "pass1")
	s, _ = Register(s, "user2", "pass2")

	s, resp := SendMessage(s, "user1", "user2", "first", "rec-1")
	require.True(t, resp.Success)
	require.Equal(t, MsgSendSuccess, resp.Message)
	s, resp = SendMessage(s, "user1", "user2", "second", "rec-2")
	require.True(t, resp.Success)

	require.Equal(t, []string{"From user1: first", "From user1: second"}, ReceiveMessage(s, "user2"))
}

func TestReceiveMessageDoesNotConsume(t *testing.T) {
	s := NewReplicaState()
	s, _ = Register(s, "user1", "pass1")
	s, _ = Register(s, "user2", "pass2")
	s, _ = SendMessage(s, "user1", "user2", "hi", "rec-1")

	first := ReceiveMessage(s, "user2")
	second := ReceiveMessage(s, "user2")
	require.Equal(t, first, second)
}

func TestGetUsersExcludeSelf(t *testing.T) {
	s := NewReplicaState()
	s, _ = Register(s, "user1", "pass1")
	s, _ = Register(s, "user2", "pass2")

	all := GetUsers(s, "")
	require.ElementsMatch(t, []string{"user1", "user2"}, all)

	others := GetUsers(s, "user1")
	require.ElementsMatch(t, []string{"user2"}, others)
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewReplicaState()
	s, _ = Register(s, "user1", "pass1")
	clone := s.Clone()
	clone.Accounts["user2"] = "pass2"

	_, exists := s.Accounts["user2"]
	require.False(t, exists)
}
