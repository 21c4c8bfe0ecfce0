// Command chatclient is a thin interactive shell over the failover
// client library: `chatclient <ip0> <ip1> <ip2>`. It is not part of the
// replicated core (spec.md §1) — a line-oriented REPL to give the CLI
// surface named in spec.md §6 something runnable.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chat262/cluster/internal/chatpb"
	"github.com/chat262/cluster/internal/failover"
)

// reportErr prints a transport error; per spec.md §4.4/§7, exhausting every
// replica aborts the client process with a diagnostic rather than just
// logging and continuing.
func reportErr(err error) {
	if errors.Is(err, failover.ErrAllReplicasFailed) {
		fmt.Fprintln(os.Stderr, "all servers failed:", err)
		os.Exit(1)
	}
	fmt.Println("error:", err)
}

const receivePollInterval = 2 * time.Second

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <ip0> <ip1> <ip2>\n", os.Args[0])
		os.Exit(2)
	}
	dialer := failover.NewDialer([3]string{os.Args[1], os.Args[2], os.Args[3]})
	defer dialer.Close()

	sh := &shell{dialer: dialer, seen: make(map[string]int)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sh.receiveLoop(ctx)

	fmt.Println("chat262 client. Commands: register, login, delete, users, send, receive, quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "register":
			sh.register()
		case "login":
			sh.login()
		case "delete":
			sh.delete()
		case "users":
			sh.users()
		case "send":
			sh.send()
		case "receive":
			sh.receive()
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

// shell holds the one logged-in-user session the CLI supports at a time.
// mu is a second, shell-local lock — distinct from the Dialer's internal
// chat-stub lock — guarding only loggedInUser and the seen-message
// watermark against the background receive loop.
type shell struct {
	dialer *failover.Dialer

	mu           sync.Mutex
	loggedInUser string
	seen         map[string]int // username -> rendered-chat count already printed
}

func (s *shell) prompt(label string) string {
	fmt.Print(label + ": ")
	r := bufio.NewReader(os.Stdin)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func (s *shell) register() {
	username := s.prompt("username")
	password := s.prompt("password")
	resp, err := s.dialer.Register(context.Background(), &chatpb.RegisterRequest{
		Username: username, Password: password, IsClient: true,
	})
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Println(resp.Message)
}

func (s *shell) login() {
	username := s.prompt("username")
	password := s.prompt("password")
	resp, err := s.dialer.Login(context.Background(), &chatpb.LoginRequest{
		Username: username, Password: password, IsClient: true,
	})
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Println(resp.Message)
	if resp.Success {
		s.mu.Lock()
		s.loggedInUser = username
		s.mu.Unlock()
	}
}

func (s *shell) delete() {
	username := s.prompt("username")
	password := s.prompt("password")
	resp, err := s.dialer.DeleteAccount(context.Background(), &chatpb.DeleteAccountRequest{
		Username: username, Password: password, IsClient: true,
	})
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Println(resp.Message)
	s.mu.Lock()
	if resp.Success && s.loggedInUser == username {
		s.loggedInUser = ""
	}
	s.mu.Unlock()
}

func (s *shell) users() {
	s.mu.Lock()
	self := s.loggedInUser
	s.mu.Unlock()
	resp, err := s.dialer.GetUsers(context.Background(), &chatpb.Empty{ExcludeSelf: self})
	if err != nil {
		reportErr(err)
		return
	}
	for _, u := range resp.Users {
		fmt.Println(u)
	}
}

func (s *shell) send() {
	s.mu.Lock()
	sender := s.loggedInUser
	s.mu.Unlock()
	if sender == "" {
		fmt.Println("not logged in")
		return
	}
	receiver := s.prompt("to")
	body := s.prompt("message")
	resp, err := s.dialer.SendMessage(context.Background(), &chatpb.SendMessageRequest{
		Sender: sender, Receiver: receiver, Body: body, IsClient: true,
	})
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Println(resp.Message)
}

func (s *shell) receive() {
	s.mu.Lock()
	username := s.loggedInUser
	s.mu.Unlock()
	if username == "" {
		fmt.Println("not logged in")
		return
	}
	chats, err := s.fetchAndPrintNew(username)
	if err != nil {
		reportErr(err)
		return
	}
	if chats == 0 {
		fmt.Println("(no new messages)")
	}
}

// receiveLoop is the background poller spec.md §4.4/§5 describes sharing
// the chat-stub lock with the foreground send path (the lock lives inside
// *failover.Dialer and is taken by every RPC it issues).
func (s *shell) receiveLoop(ctx context.Context) {
	ticker := time.NewTicker(receivePollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			username := s.loggedInUser
			s.mu.Unlock()
			if username == "" {
				continue
			}
			s.fetchAndPrintNew(username)
		}
	}
}

// fetchAndPrintNew calls ReceiveMessage (non-popping: always returns the
// whole mailbox) and prints only the entries not already shown for this
// username, returning how many new ones were printed.
func (s *shell) fetchAndPrintNew(username string) (int, error) {
	resp, err := s.dialer.ReceiveMessage(context.Background(), &chatpb.User{Username: username})
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	already := s.seen[username]
	s.mu.Unlock()

	printed := 0
	for i := already; i < len(resp.Chats); i++ {
		fmt.Println(resp.Chats[i])
		printed++
	}
	s.mu.Lock()
	s.seen[username] = len(resp.Chats)
	s.mu.Unlock()
	return printed, nil
}
