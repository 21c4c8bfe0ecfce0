package replica

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chat262/cluster/internal/chatpb"
	"github.com/chat262/cluster/internal/failover"
	"github.com/chat262/cluster/internal/store"
)

// testIPs are three distinct loopback addresses so three replicas can each
// bind the real, fixed port (50051) simultaneously on one test host,
// exactly like three hosts in production — only the addresses are local.
var testIPs = [3]string{"127.0.0.1", "127.0.0.2", "127.0.0.3"}

type testCluster struct {
	t       *testing.T
	servers [3]*Server
	cancel  [3]context.CancelFunc
}

func startCluster(t *testing.T) *testCluster {
	t.Helper()
	tc := &testCluster{t: t}
	for id := 0; id < 3; id++ {
		identity, err := NewIdentity(id, testIPs, filepath.Join(t.TempDir(), "replica.bolt"))
		require.NoError(t, err)
		db, err := store.OpenBoltStore(identity.DBPath)
		require.NoError(t, err)
		srv, err := NewServer(identity, db)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		tc.servers[id] = srv
		tc.cancel[id] = cancel
		go srv.Serve(ctx)
	}
	// Give the listeners a moment to bind before any client dials them.
	time.Sleep(100 * time.Millisecond)
	return tc
}

// kill hard-stops one replica's gRPC server without a graceful drain,
// simulating a fail-stop crash (spec.md §1's fault model) rather than a
// clean shutdown.
func (tc *testCluster) kill(id int) {
	tc.cancel[id]()
	tc.servers[id].Close()
}

func (tc *testCluster) stopAll() {
	for id := 0; id < 3; id++ {
		tc.cancel[id]()
		tc.servers[id].Close()
	}
}

func TestClusterLoginAcrossFailureOrders(t *testing.T) {
	orders := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, order := range orders {
		a, b, c := order[0], order[1], order[2]
		t.Run(fmt.Sprintf("kill_%d_%d_%d", a, b, c), func(t *testing.T) {
			tc := startCluster(t)
			defer tc.stopAll()

			dialer := failover.NewDialer(testIPs)
			defer dialer.Close()
			ctx := context.Background()

			regResp, err := dialer.Register(ctx, &chatpb.RegisterRequest{Username: "user1", Password: "pass1", IsClient: true})
			require.NoError(t, err)
			require.True(t, regResp.Success)

			_, err = dialer.Register(ctx, &chatpb.RegisterRequest{Username: "user2", Password: "pass2", IsClient: true})
			require.NoError(t, err)

			// After the first kill the client lands on the lower of the two
			// survivors' ids.
			firstLeader := b
			if c < b {
				firstLeader = c
			}

			tc.kill(a)
			loginResp, err := dialer.Login(ctx, &chatpb.LoginRequest{Username: "user1", Password: "pass1", IsClient: true})
			require.NoError(t, err)
			require.True(t, loginResp.Success)
			require.Equal(t, firstLeader, dialer.CurrentLeader())

			tc.kill(b)
			loginResp, err = dialer.Login(ctx, &chatpb.LoginRequest{Username: "user1", Password: "pass1", IsClient: true})
			require.NoError(t, err)
			require.True(t, loginResp.Success)
			require.Equal(t, c, dialer.CurrentLeader())

			tc.kill(c)
			_, err = dialer.Login(ctx, &chatpb.LoginRequest{Username: "user1", Password: "pass1", IsClient: true})
			require.ErrorIs(t, err, failover.ErrAllReplicasFailed)
		})
	}
}

func TestClusterMessageReplicationAcrossLeaderHop(t *testing.T) {
	tc := startCluster(t)
	defer tc.stopAll()

	dialer := failover.NewDialer(testIPs)
	defer dialer.Close()
	ctx := context.Background()

	_, err := dialer.Register(ctx, &chatpb.RegisterRequest{Username: "user1", Password: "pass1", IsClient: true})
	require.NoError(t, err)
	_, err = dialer.Register(ctx, &chatpb.RegisterRequest{Username: "user2", Password: "pass2", IsClient: true})
	require.NoError(t, err)

	sendResp, err := dialer.SendMessage(ctx, &chatpb.SendMessageRequest{
		Sender: "user1", Receiver: "user2", Body: "Hello from user1 to user2 first time", IsClient: true,
	})
	require.NoError(t, err)
	require.True(t, sendResp.Success)

	tc.kill(0)

	recvResp, err := dialer.ReceiveMessage(ctx, &chatpb.User{Username: "user2"})
	require.NoError(t, err)
	require.Equal(t, []string{"From user1: Hello from user1 to user2 first time"}, recvResp.Chats)

	sendResp, err = dialer.SendMessage(ctx, &chatpb.SendMessageRequest{
		Sender: "user1", Receiver: "user2", Body: "Hello from user1 to user2 second time", IsClient: true,
	})
	require.NoError(t, err)
	require.True(t, sendResp.Success)

	tc.kill(dialer.CurrentLeader())

	recvResp, err = dialer.ReceiveMessage(ctx, &chatpb.User{Username: "user2"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"From user1: Hello from user1 to user2 first time",
		"From user1: Hello from user1 to user2 second time",
	}, recvResp.Chats)
}

func TestClusterDeleteAccountReplicated(t *testing.T) {
	tc := startCluster(t)
	defer tc.stopAll()

	dialer := failover.NewDialer(testIPs)
	defer dialer.Close()
	ctx := context.Background()

	for _, u := range []string{"user1", "user2", "user3"} {
		_, err := dialer.Register(ctx, &chatpb.RegisterRequest{Username: u, Password: u + "-pass", IsClient: true})
		require.NoError(t, err)
	}

	delResp, err := dialer.DeleteAccount(ctx, &chatpb.DeleteAccountRequest{Username: "user1", Password: "user1-pass", IsClient: true})
	require.NoError(t, err)
	require.True(t, delResp.Success)

	tc.kill(dialer.CurrentLeader())

	usersResp, err := dialer.GetUsers(ctx, &chatpb.Empty{})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"user2", "user3"}, usersResp.Users)
}

func TestClusterSendToUnknownUser(t *testing.T) {
	tc := startCluster(t)
	defer tc.stopAll()

	dialer := failover.NewDialer(testIPs)
	defer dialer.Close()
	ctx := context.Background()

	_, err := dialer.Register(ctx, &chatpb.RegisterRequest{Username: "user1", Password: "pass1", IsClient: true})
	require.NoError(t, err)

	resp, err := dialer.SendMessage(ctx, &chatpb.SendMessageRequest{
		Sender: "user1", Receiver: "baduser", Body: "Oops", IsClient: true,
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
}
