package failover

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chat262/cluster/internal/chatpb"
)

func TestDialerStartsAtReplicaZero(t *testing.T) {
	d := NewDialer([3]string{"127.0.0.11", "127.0.0.12", "127.0.0.13"})
	defer d.Close()
	require.Equal(t, 0, d.CurrentLeader())
}

func TestDialerAbortsAfterAllReplicasFail(t *testing.T) {
	// None of these addresses have a listener, so every attempt fails fast
	// and the Dialer should walk curr_leader past 2 and abort.
	d := NewDialer([3]string{"127.0.0.21", "127.0.0.22", "127.0.0.23"})
	defer d.Close()

	_, err := d.Login(context.Background(), &chatpb.LoginRequest{
		Username: "user1", Password: "pass1", IsClient: true,
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAllReplicasFailed))
}
