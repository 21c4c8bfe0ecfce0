// Package failover implements the client-side half of spec.md §4.4: a
// Dialer that looks like an ordinary chatpb.AuthServiceClient /
// chatpb.ChatServiceClient to callers, but transparently advances through
// the static replica list on transport failure instead of ever returning
// one to the caller — until every replica has been tried.
package failover

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/chat262/cluster/internal/chatpb"
	"github.com/chat262/cluster/internal/logging"
)

// ErrAllReplicasFailed is returned (wrapped, via errors.Is) once curr_leader
// has advanced past the last replica id. spec.md §4.4 calls for the client
// process to abort with an "all servers failed" diagnostic when this
// happens; that decision belongs to the caller (the interactive shell),
// not this library, so Call only signals it.
var ErrAllReplicasFailed = errors.New("failover: all replicas failed")

// rpcDeadline is the per-attempt timeout spec.md §4.4 fixes; a client that
// gets no reply within it treats the current leader as dead and advances.
const rpcDeadline = time.Second

// Dialer holds the static replica address list and the current belief
// about which one is the leader (the LeaderView named in spec.md §3):
// curr_leader only ever increases, and once it exceeds the last replica
// id every call aborts rather than wrapping back to 0 — a crashed replica
// is never re-admitted (spec.md §1 Non-goals).
//
// mu is the single "chat-stub lock" spec.md §4.4/§5 describes: it
// serializes stub replacement against concurrent callers (a shell's send
// loop and receive loop sharing one Dialer) so a failover mid-call can't
// race a second call into using a half-replaced stub.
type Dialer struct {
	ips [3]string
	log interface {
		Warn(msg string, args ...interface{})
	}

	mu         sync.Mutex
	currLeader int
	conn       *grpc.ClientConn
	auth       chatpb.AuthServiceClient
	chat       chatpb.ChatServiceClient
}

// NewDialer builds a Dialer pointed at replica 0, the client's fixed
// starting point per spec.md §4.4.
func NewDialer(ips [3]string) *Dialer {
	return &Dialer{
		ips: ips,
		log: logging.Named("failover"),
	}
}

// CurrentLeader reports the replica id this Dialer currently believes is
// the leader; used by tests.
func (d *Dialer) CurrentLeader() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currLeader
}

// Close releases the current connection, if any.
func (d *Dialer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closeConnLocked()
}

func (d *Dialer) closeConnLocked() error {
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn, d.auth, d.chat = nil, nil, nil
	return err
}

// ensureConnLocked dials the current leader if there is no live connection
// yet. Dialing is non-blocking (grpc.Dial returns immediately); a dead
// replica is only discovered on the first RPC attempt against it.
func (d *Dialer) ensureConnLocked() error {
	if d.conn != nil {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", d.ips[d.currLeader], 50051)
	cc, err := grpc.Dial(addr,
		grpc.WithInsecure(),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(chatpb.CodecName)),
	)
	if err != nil {
		return err
	}
	d.conn = cc
	d.auth = chatpb.NewAuthServiceClient(cc)
	d.chat = chatpb.NewChatServiceClient(cc)
	return nil
}

// advanceLocked moves curr_leader forward by one and drops the current
// connection so the next attempt redials the new leader.
func (d *Dialer) advanceLocked() {
	d.closeConnLocked()
	d.currLeader++
}

// attemptFunc performs one RPC against the currently dialed stubs.
type attemptFunc func(ctx context.Context, auth chatpb.AuthServiceClient, chat chatpb.ChatServiceClient) error

// Call is the send primitive of spec.md §4.4: try the current leader with
// a 1s deadline; on any transport error or timeout, advance curr_leader
// and retry the identical request; abort once every replica has failed.
func (d *Dialer) Call(ctx context.Context, rpcName string, attempt attemptFunc) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for {
		if d.currLeader > 2 {
			return fmt.Errorf("%s: %w", rpcName, ErrAllReplicasFailed)
		}
		if err := d.ensureConnLocked(); err != nil {
			d.log.Warn("dial failed, advancing leader", "rpc", rpcName, "leader", d.currLeader, "err", err)
			d.advanceLocked()
			continue
		}
		callCtx, cancel := context.WithTimeout(ctx, rpcDeadline)
		err := attempt(callCtx, d.auth, d.chat)
		cancel()
		if err == nil {
			return nil
		}
		d.log.Warn("rpc failed, advancing leader", "rpc", rpcName, "leader", d.currLeader, "err", err)
		d.advanceLocked()
	}
}
