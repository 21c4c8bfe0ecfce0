package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chat262/cluster/internal/statemachine"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replica.bolt")

	db, err := OpenBoltStore(path)
	require.NoError(t, err)

	empty, err := db.Load()
	require.NoError(t, err)
	require.Empty(t, empty.Accounts)
	require.Empty(t, empty.Mailboxes)

	state := statemachine.NewReplicaState()
	state, _ = statemachine.Register(state, "user1", "pass1")
	state, _ = statemachine.Register(state, "user2", "pass2")
	state, _ = statemachine.SendMessage(state, "user1", "user2", "hello", "rec-1")

	require.NoError(t, db.Store(state))
	require.NoError(t, db.Close())

	reopened, err := OpenBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load()
	require.NoError(t, err)
	require.Equal(t, state.Accounts, loaded.Accounts)
	require.Equal(t, state.Mailboxes, loaded.Mailboxes)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	state := statemachine.NewReplicaState()
	state, _ = statemachine.Register(state, "user1", "pass1")
	state, _ = statemachine.SendMessage(state, "user1", "user1", "note to self", "rec-1")

	data, err := encode(state)
	require.NoError(t, err)

	decoded, err := decode(data)
	require.NoError(t, err)
	require.Equal(t, state.Accounts, decoded.Accounts)
	require.Equal(t, state.Mailboxes, decoded.Mailboxes)
}

func TestDecodeEmptyIsFreshState(t *testing.T) {
	state, err := decode(nil)
	require.NoError(t, err)
	require.NotNil(t, state.Accounts)
	require.NotNil(t, state.Mailboxes)
}

func TestParseDSN(t *testing.T) {
	driver, ds, err := parseDSN("postgres://user:pw@localhost/chat262")
	require.NoError(t, err)
	require.Equal(t, "postgres", driver)
	require.Equal(t, "postgres://user:pw@localhost/chat262", ds)

	driver, ds, err = parseDSN("mysql://user:pw@tcp(localhost:3306)/chat262")
	require.NoError(t, err)
	require.Equal(t, "mysql", driver)
	require.Equal(t, "user:pw@tcp(localhost:3306)/chat262", ds)

	_, _, err = parseDSN("sqlite://foo.db")
	require.Error(t, err)
}
