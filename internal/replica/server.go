// Package replica implements the replica server named in spec.md §4.3: a
// gRPC endpoint that is, at any moment, either the leader or a follower,
// determined entirely by which replica a client's request happens to
// reach — there is no election and no quorum, only static id priority and
// client-driven failover (spec.md §1, §9: explicitly not Paxos/Raft).
package replica

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/nats-io/nuid"
	"google.golang.org/grpc"

	"github.com/chat262/cluster/internal/chatpb"
	"github.com/chat262/cluster/internal/logging"
	"github.com/chat262/cluster/internal/statemachine"
	"github.com/chat262/cluster/internal/store"
)

// workerPoolSize bounds concurrent handler execution, modeling the "~10
// worker" resource budget of spec.md §5 explicitly rather than leaving it
// implicit in grpc-go's goroutine-per-stream scheduling.
const workerPoolSize = 10

// Server is one replica: identity, durable store, in-memory state, role,
// and the follower table, all guarded by one mutex exactly as spec.md §4.3
// and §5 describe. It implements both chatpb.AuthServiceServer and
// chatpb.ChatServiceServer.
type Server struct {
	identity Identity
	db       store.Store
	log      hclog.Logger

	mu        sync.Mutex
	state     statemachine.ReplicaState
	amLeader  bool
	followers map[int]*follower

	sem chan struct{}

	grpcServer *grpc.Server
}

// NewServer loads durable state and dials every higher-id replica's
// follower stub (non-blocking — a crashed or not-yet-started follower is
// simply marked alive until the first forward proves otherwise).
func NewServer(identity Identity, db store.Store) (*Server, error) {
	state, err := db.Load()
	if err != nil {
		return nil, fmt.Errorf("replica: load durable state: %w", err)
	}
	s := &Server{
		identity: identity,
		db:       db,
		log:      logging.Named(fmt.Sprintf("replica.%d", identity.ID)),
		state:    state,
		// spec.md §4.3: am_leader initialized to (id == 0) — replica 0 is
		// the leader from the start, since a client's LeaderView also
		// begins at 0. Any other replica promotes itself only once a
		// client actually reaches it with is_client=true.
		amLeader:  identity.ID == 0,
		followers: make(map[int]*follower),
		sem:       make(chan struct{}, workerPoolSize),
	}
	for _, fid := range identity.FollowerIDs() {
		f, err := dialFollower(fid, identity.AddrOf(fid))
		if err != nil {
			return nil, fmt.Errorf("replica: dial follower %d: %w", fid, err)
		}
		s.followers[fid] = f
	}
	return s, nil
}

// Serve blocks, accepting connections on the replica's own static address
// until ctx is canceled or the listener fails.
func (s *Server) Serve(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.identity.Addr())
	if err != nil {
		return fmt.Errorf("replica: listen %s: %w", s.identity.Addr(), err)
	}
	s.grpcServer = grpc.NewServer()
	chatpb.RegisterAuthServiceServer(s.grpcServer, s)
	chatpb.RegisterChatServiceServer(s.grpcServer, s)

	errCh := make(chan error, 1)
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	s.log.Info("replica listening", "addr", s.identity.Addr())

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the gRPC server (if running), closes follower connections,
// and closes the durable store.
func (s *Server) Close() error {
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	for _, f := range s.followers {
		f.close()
	}
	return s.db.Close()
}

// acquire/release model the bounded worker pool of spec.md §5.
func (s *Server) acquire() { s.sem <- struct{}{} }
func (s *Server) release() { <-s.sem }

// forwardFunc sends the same request a leader just accepted on to one
// follower, with is_client cleared; it never returns the follower's
// response body, only whether the forward succeeded.
type forwardFunc func(ctx context.Context, f *follower) error

// applyFunc runs the pure state-machine transition for one mutating RPC.
type applyFunc func(state statemachine.ReplicaState) (statemachine.ReplicaState, statemachine.Response)

// mutate is the one handler algorithm spec.md §4.3 describes, shared by
// Register, DeleteAccount, and SendMessage: promote to leader on a direct
// client request, forward to every live follower in ascending id order
// with a 1s deadline, apply locally, persist on success, and reply. A
// durable-store write failure is fatal to this replica (spec.md §7).
func (s *Server) mutate(ctx context.Context, isClient bool, forward forwardFunc, apply applyFunc) statemachine.Response {
	s.acquire()
	defer s.release()

	s.mu.Lock()
	defer s.mu.Unlock()

	if isClient && !s.amLeader {
		s.amLeader = true
		s.log.Info("promoted to leader")
	}

	if s.amLeader {
		for _, fid := range s.identity.FollowerIDs() {
			f := s.followers[fid]
			if f == nil || !f.alive {
				continue
			}
			fctx, cancel := context.WithTimeout(ctx, time.Second)
			err := forward(fctx, f)
			cancel()
			if err != nil {
				f.alive = false
				s.log.Warn("follower forward failed, marking dead", "follower", fid, "err", err)
			}
		}
	}

	next, resp := apply(s.state)
	if resp.Success {
		if err := s.db.Store(next); err != nil {
			logging.Fatalf("replica %d: durable store write failed: %v", s.identity.ID, err)
		}
		s.state = next
	}
	return resp
}

// read runs a read-only handler under the same mutex, for a consistent
// snapshot, without forwarding or persisting.
func (s *Server) read(fn func(statemachine.ReplicaState) interface{}) interface{} {
	s.acquire()
	defer s.release()

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// --- AuthServiceServer ---

func (s *Server) Register(ctx context.Context, in *chatpb.RegisterRequest) (*chatpb.RegisterResponse, error) {
	resp := s.mutate(ctx, in.IsClient,
		func(ctx context.Context, f *follower) error {
			_, err := f.auth.Register(ctx, &chatpb.RegisterRequest{
				Username: in.Username,
				Password: in.Password,
				IsClient: false,
			})
			return err
		},
		func(state statemachine.ReplicaState) (statemachine.ReplicaState, statemachine.Response) {
			return statemachine.Register(state, in.Username, in.Password)
		},
	)
	return toRegisterResponse(resp), nil
}

func (s *Server) Login(ctx context.Context, in *chatpb.LoginRequest) (*chatpb.LoginResponse, error) {
	resp := s.read(func(state statemachine.ReplicaState) interface{} {
		return statemachine.Login(state, in.Username, in.Password)
	}).(statemachine.Response)
	return toLoginResponse(resp), nil
}

func (s *Server) DeleteAccount(ctx context.Context, in *chatpb.DeleteAccountRequest) (*chatpb.DeleteAccountResponse, error) {
	resp := s.mutate(ctx, in.IsClient,
		func(ctx context.Context, f *follower) error {
			_, err := f.auth.DeleteAccount(ctx, &chatpb.DeleteAccountRequest{
				Username: in.Username,
				Password: in.Password,
				IsClient: false,
			})
			return err
		},
		func(state statemachine.ReplicaState) (statemachine.ReplicaState, statemachine.Response) {
			return statemachine.DeleteAccount(state, in.Username, in.Password)
		},
	)
	return toDeleteAccountResponse(resp), nil
}

// --- ChatServiceServer ---

func (s *Server) SendMessage(ctx context.Context, in *chatpb.SendMessageRequest) (*chatpb.SendMessageResponse, error) {
	recordID := nuid.Next()
	resp := s.mutate(ctx, in.IsClient,
		func(ctx context.Context, f *follower) error {
			_, err := f.chat.SendMessage(ctx, &chatpb.SendMessageRequest{
				Sender:   in.Sender,
				Receiver: in.Receiver,
				Body:     in.Body,
				IsClient: false,
			})
			return err
		},
		func(state statemachine.ReplicaState) (statemachine.ReplicaState, statemachine.Response) {
			return statemachine.SendMessage(state, in.Sender, in.Receiver, in.Body, recordID)
		},
	)
	return toSendMessageResponse(resp), nil
}

func (s *Server) GetUsers(ctx context.Context, in *chatpb.Empty) (*chatpb.AllUsers, error) {
	users := s.read(func(state statemachine.ReplicaState) interface{} {
		return statemachine.GetUsers(state, in.ExcludeSelf)
	}).([]string)
	return &chatpb.AllUsers{Users: users}, nil
}

func (s *Server) ReceiveMessage(ctx context.Context, in *chatpb.User) (*chatpb.AllChats, error) {
	chats := s.read(func(state statemachine.ReplicaState) interface{} {
		return statemachine.ReceiveMessage(state, in.Username)
	}).([]string)
	return &chatpb.AllChats{Chats: chats}, nil
}

func toRegisterResponse(r statemachine.Response) *chatpb.RegisterResponse {
	out := &chatpb.RegisterResponse{}
	out.Success, out.Message = r.Success, r.Message
	return out
}

func toLoginResponse(r statemachine.Response) *chatpb.LoginResponse {
	out := &chatpb.LoginResponse{}
	out.Success, out.Message = r.Success, r.Message
	return out
}

func toDeleteAccountResponse(r statemachine.Response) *chatpb.DeleteAccountResponse {
	out := &chatpb.DeleteAccountResponse{}
	out.Success, out.Message = r.Success, r.Message
	return out
}

func toSendMessageResponse(r statemachine.Response) *chatpb.SendMessageResponse {
	out := &chatpb.SendMessageResponse{}
	out.Success, out.Message = r.Success, r.Message
	return out
}
