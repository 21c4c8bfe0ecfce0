// Package store implements the durable-store contract: load a
// statemachine.ReplicaState from a path (or synthesize a fresh one) and
// atomically replace it after every mutation. Two backends share the
// contract — store.BoltStore (default) and store.SQLStore (opt-in) — both
// round-tripping through the same chatpb.ReplicaStateBlob encoding, so
// swapping backends never changes observable behavior.
package store

import (
	"github.com/chat262/cluster/internal/chatpb"
	"github.com/chat262/cluster/internal/statemachine"
)

// Store is the durable-store contract named in the design: Load returns
// the stored state or a fresh empty one; Store atomically replaces the
// persisted contents. A failed Store call is fatal to the owning replica
// (the caller, not this package, decides how to act on the error).
type Store interface {
	Load() (statemachine.ReplicaState, error)
	Store(statemachine.ReplicaState) error
	Close() error
}

func encode(s statemachine.ReplicaState) ([]byte, error) {
	blob := &chatpb.ReplicaStateBlob{}
	for username, password := range s.Accounts {
		blob.Accounts = append(blob.Accounts, &chatpb.AccountPB{
			Username: username,
			Password: password,
		})
	}
	for recipient, records := range s.Mailboxes {
		mb := &chatpb.MailboxPB{Recipient: recipient}
		for _, r := range records {
			mb.Records = append(mb.Records, &chatpb.MessageRecordPB{
				Id:     r.ID,
				Sender: r.Sender,
				Body:   r.Body,
			})
		}
		blob.Mailboxes = append(blob.Mailboxes, mb)
	}
	return blob.Marshal()
}

func decode(data []byte) (statemachine.ReplicaState, error) {
	state := statemachine.NewReplicaState()
	if len(data) == 0 {
		return state, nil
	}
	blob := &chatpb.ReplicaStateBlob{}
	if err := blob.Unmarshal(data); err != nil {
		return statemachine.ReplicaState{}, err
	}
	for _, a := range blob.Accounts {
		state.Accounts[a.Username] = a.Password
	}
	for _, mb := range blob.Mailboxes {
		records := make([]statemachine.MessageRecord, 0, len(mb.Records))
		for _, r := range mb.Records {
			records = append(records, statemachine.MessageRecord{
				ID:     r.Id,
				Sender: r.Sender,
				Body:   r.Body,
			})
		}
		state.Mailboxes[mb.Recipient] = records
	}
	return state, nil
}
