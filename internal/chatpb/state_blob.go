package chatpb

import "github.com/gogo/protobuf/proto"

// MessageRecordPB is the durable-store encoding of a single mailbox entry.
// Id is the NUID the storing replica generated for the record; it differs
// between replicas and is never part of the rendered
// "From {sender}: {body}" string.
type MessageRecordPB struct {
	Id     string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Sender string `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	Body   string `protobuf:"bytes,3,opt,name=body,proto3" json:"body,omitempty"`
}

func (m *MessageRecordPB) marshalInto(w *wireBuf) {
	w.putString(m.Id)
	w.putString(m.Sender)
	w.putString(m.Body)
}

func (m *MessageRecordPB) unmarshalFrom(r *wireReader) error {
	var err error
	if m.Id, err = r.getString(); err != nil {
		return err
	}
	if m.Sender, err = r.getString(); err != nil {
		return err
	}
	if m.Body, err = r.getString(); err != nil {
		return err
	}
	return nil
}

// MailboxPB is the durable-store encoding of one recipient's ordered
// mailbox.
type MailboxPB struct {
	Recipient string             `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Records   []*MessageRecordPB `protobuf:"bytes,2,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *MailboxPB) marshalInto(w *wireBuf) {
	w.putString(m.Recipient)
	w.putUvarint(uint64(len(m.Records)))
	for _, rec := range m.Records {
		rec.marshalInto(w)
	}
}

func (m *MailboxPB) unmarshalFrom(r *wireReader) error {
	var err error
	if m.Recipient, err = r.getString(); err != nil {
		return err
	}
	n, err := r.getUvarint()
	if err != nil {
		return err
	}
	m.Records = make([]*MessageRecordPB, 0, n)
	for i := uint64(0); i < n; i++ {
		rec := &MessageRecordPB{}
		if err := rec.unmarshalFrom(r); err != nil {
			return err
		}
		m.Records = append(m.Records, rec)
	}
	return nil
}

// AccountPB is the durable-store encoding of one account.
type AccountPB struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *AccountPB) marshalInto(w *wireBuf) {
	w.putString(m.Username)
	w.putString(m.Password)
}

func (m *AccountPB) unmarshalFrom(r *wireReader) error {
	var err error
	if m.Username, err = r.getString(); err != nil {
		return err
	}
	if m.Password, err = r.getString(); err != nil {
		return err
	}
	return nil
}

// ReplicaStateBlob is the whole-state durable-store encoding: the
// serialization format named in the durable-store contract, required only
// to round-trip against itself across a process restart. It is the single
// value every store.Store backend persists.
type ReplicaStateBlob struct {
	Accounts  []*AccountPB `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	Mailboxes []*MailboxPB `protobuf:"bytes,2,rep,name=mailboxes,proto3" json:"mailboxes,omitempty"`
}

func (m *ReplicaStateBlob) Reset()         { *m = ReplicaStateBlob{} }
func (m *ReplicaStateBlob) String() string { return protoCompactString(m) }
func (*ReplicaStateBlob) ProtoMessage()    {}

func (m *ReplicaStateBlob) Marshal() ([]byte, error) {
	w := &wireBuf{}
	w.putUvarint(uint64(len(m.Accounts)))
	for _, a := range m.Accounts {
		a.marshalInto(w)
	}
	w.putUvarint(uint64(len(m.Mailboxes)))
	for _, mb := range m.Mailboxes {
		mb.marshalInto(w)
	}
	return w.buf, nil
}

func (m *ReplicaStateBlob) Unmarshal(data []byte) error {
	r := &wireReader{buf: data}
	n, err := r.getUvarint()
	if err != nil {
		return err
	}
	m.Accounts = make([]*AccountPB, 0, n)
	for i := uint64(0); i < n; i++ {
		a := &AccountPB{}
		if err := a.unmarshalFrom(r); err != nil {
			return err
		}
		m.Accounts = append(m.Accounts, a)
	}
	n, err = r.getUvarint()
	if err != nil {
		return err
	}
	m.Mailboxes = make([]*MailboxPB, 0, n)
	for i := uint64(0); i < n; i++ {
		mb := &MailboxPB{}
		if err := mb.unmarshalFrom(r); err != nil {
			return err
		}
		m.Mailboxes = append(m.Mailboxes, mb)
	}
	return nil
}

func init() {
	proto.RegisterType((*ReplicaStateBlob)(nil), "chat262.ReplicaStateBlob")
}
