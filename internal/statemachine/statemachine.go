// Package statemachine implements the pure, replicated state of the chat262
// cluster: accounts and per-recipient mailboxes, and the command handlers
// that mutate or read them. Every handler here is a pure function over
// ReplicaState — no I/O, no locking, no RPC — so it can be driven
// identically by the leader, by a follower applying a forwarded request,
// and by unit tests.
package statemachine

// Account is a registered username/password pair. Passwords are stored
// verbatim, reproducing the original contract faithfully; see the
// DESIGN.md entry for the plaintext-password open question.
type Account struct {
	Username string
	Password string
}

// MessageRecord is one undelivered message sitting in a recipient's
// mailbox. ID is an opaque NUID that each replica generates for itself
// when it handles the SendMessage; it is not forwarded, so the leader and
// its followers hold different IDs for the same message. It is persisted
// but never logged, and it never appears in the rendered message string.
type MessageRecord struct {
	ID     string
	Sender string
	Body   string
}

// ReplicaState is the durable tuple (accounts, mailboxes). Mutating
// commands return a new ReplicaState rather than edit in place, so callers
// that need copy-on-write semantics (snapshotting before a durable write,
// e.g.) get it for free; the replica server in practice reuses the maps
// returned here directly under its own mutex.
type ReplicaState struct {
	Accounts  map[string]string                // username -> password
	Mailboxes map[string][]MessageRecord        // recipient -> ordered records
}

// NewReplicaState returns a fresh, empty state — what Load returns when no
// durable file exists yet.
func NewReplicaState() ReplicaState {
	return ReplicaState{
		Accounts:  make(map[string]string),
		Mailboxes: make(map[string][]MessageRecord),
	}
}

// Clone makes a deep-enough copy of a ReplicaState. The mutating commands
// below write only into a Clone, so the state they are given is never
// modified in place.
func (s ReplicaState) Clone() ReplicaState {
	accounts := make(map[string]string, len(s.Accounts))
	for k, v := range s.Accounts {
		accounts[k] = v
	}
	mailboxes := make(map[string][]MessageRecord, len(s.Mailboxes))
	for k, v := range s.Mailboxes {
		cp := make([]MessageRecord, len(v))
		copy(cp, v)
		mailboxes[k] = cp
	}
	return ReplicaState{Accounts: accounts, Mailboxes: mailboxes}
}

// Response is the (success, message) pair every mutating command returns,
// and the user-visible strings are part of the external contract — they
// must match the client verbatim.
type Response struct {
	Success bool
	Message string
}

// User-visible strings, verbatim per the wire schema.
const (
	MsgRegisterSuccess    = "\nRegistration successful."
	MsgUsernameTaken      = "\nThe username you requested is already taken."
	MsgLoginSuccess       = "\nLogin successful."
	MsgNoSuchUser         = "\nERROR: Username does not exist in the database. Please try again."
	MsgInvalidPassword    = "\nERROR: Invalid password. Please try again."
	MsgDeleteSuccess      = "\nAccount successfully deleted."
	MsgSendSuccess        = "Message successfully added."
	MsgUnknownParty       = "\nERROR: either sender or receiver are not in username database. Please try again!\n"
)

// Register creates a new account. Mutating; replicated.
func Register(s ReplicaState, username, password string) (ReplicaState, Response) {
	if _, exists := s.Accounts[username]; exists {
		return s, Response{Success: false, Message: MsgUsernameTaken}
	}
	next := s.Clone()
	next.Accounts[username] = password
	return next, Response{Success: true, Message: MsgRegisterSuccess}
}

// Login checks credentials. Read-only despite being auth-like: no
// server-side session state is created.
func Login(s ReplicaState, username, password string) Response {
	stored, exists := s.Accounts[username]
	switch {
	case !exists:
		return Response{Success: false, Message: MsgNoSuchUser}
	case stored != password:
		return Response{Success: false, Message: MsgInvalidPassword}
	default:
		return Response{Success: true, Message: MsgLoginSuccess}
	}
}

// DeleteAccount removes an account. Mutating; replicated. Any mailbox
// addressed to the deleted user is left in place — deletion does not
// retroactively invalidate stored mailbox entries.
func DeleteAccount(s ReplicaState, username, password string) (ReplicaState, Response) {
	stored, exists := s.Accounts[username]
	switch {
	case !exists:
		return s, Response{Success: false, Message: MsgNoSuchUser}
	case stored != password:
		return s, Response{Success: false, Message: MsgInvalidPassword}
	}
	next := s.Clone()
	delete(next.Accounts, username)
	return next, Response{Success: true, Message: MsgDeleteSuccess}
}

// SendMessage appends a MessageRecord to the receiver's mailbox. Mutating;
// replicated. Not idempotent — a retried send after a leader failover may
// append twice; this is an accepted limitation (see DESIGN.md).
func SendMessage(s ReplicaState, sender, receiver, body, recordID string) (ReplicaState, Response) {
	if _, ok := s.Accounts[sender]; !ok {
		return s, Response{Success: false, Message: MsgUnknownParty}
	}
	if _, ok := s.Accounts[receiver]; !ok {
		return s, Response{Success: false, Message: MsgUnknownParty}
	}
	next := s.Clone()
	next.Mailboxes[receiver] = append(next.Mailboxes[receiver], MessageRecord{
		ID:     recordID,
		Sender: sender,
		Body:   body,
	})
	return next, Response{Success: true, Message: MsgSendSuccess}
}

// GetUsers returns every registered username. Read-only; never fails.
// excludeSelf, if non-empty, omits that one username from the result —
// driven by the GetUsers request's ExcludeSelf field, the interactive
// shell's "other users" presentation filter; it does not change what's
// stored or what a request with the field left empty observes.
func GetUsers(s ReplicaState, excludeSelf string) []string {
	users := make([]string, 0, len(s.Accounts))
	for u := range s.Accounts {
		if u == excludeSelf {
			continue
		}
		users = append(users, u)
	}
	return users
}

// ReceiveMessage renders a user's entire current mailbox. Read-only; never
// fails; does not consume — the non-popping semantics spec.md fixes.
func ReceiveMessage(s ReplicaState, username string) []string {
	records := s.Mailboxes[username]
	rendered := make([]string, 0, len(records))
	for _, r := range records {
		rendered = append(rendered, "From "+r.Sender+": "+r.Body)
	}
	return rendered
}
