package bandwidthSystem_test

import (
	"testing"

	bandwidthSystem "helios-node/modules/bandwidth-system"
	"helios-node/modules/db/chain/accounts"
	"helios-node/modules/db/chain/properties"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionEnv(t *testing.T) *testEnv {
	env := newTestEnv(properties.PropertiesRecord{
		TotalNetLimit:  43_200_000_000,
		TotalNetWeight: 1000,
		FreeNetLimit:   5000,
		PublicNetLimit: 1_000_000,
	}, 1000)
	env.accounts.Accounts["addr:alice"] = &accounts.AccountRecord{Address: "addr:alice"}
	env.accounts.Accounts["addr:bob"] = &accounts.AccountRecord{Address: "addr:bob"}
	return env
}

func TestSessionBuffersUntilDone(t *testing.T) {
	env := newSessionEnv(t)
	tx := mustTransfer(t, "addr:alice", "addr:bob")
	bytes := tx.SerializedSize()

	session := env.bs.NewSession()
	require.NoError(t, session.Consume(tx))

	// nothing reached the backing stores yet
	assert.EqualValues(t, 0, env.accounts.Puts)
	assert.EqualValues(t, 0, env.props.Sets)
	assert.EqualValues(t, 0, env.accounts.Accounts["addr:alice"].FreeNetUsage)

	require.NoError(t, session.Done())

	assert.EqualValues(t, bytes, env.accounts.Accounts["addr:alice"].FreeNetUsage)
	assert.EqualValues(t, bytes, env.props.Record.PublicNetUsage)
	assert.EqualValues(t, 1000, env.props.Record.PublicNetTime)
}

func TestSessionRevertDiscardsWrites(t *testing.T) {
	env := newSessionEnv(t)
	tx := mustTransfer(t, "addr:alice", "addr:bob")

	session := env.bs.NewSession()
	require.NoError(t, session.Consume(tx))
	session.Revert()
	require.NoError(t, session.Done())

	assert.EqualValues(t, 0, env.accounts.Puts)
	assert.EqualValues(t, 0, env.props.Sets)
	assert.EqualValues(t, 0, env.accounts.Accounts["addr:alice"].FreeNetUsage)
}

func TestSessionRollsBackFailedTransaction(t *testing.T) {
	// a transaction that fails after an earlier one in the same session has
	// committed; the session lets the caller drop the writes of both
	env := newSessionEnv(t)

	txA := mustTransfer(t, "addr:alice", "addr:bob")
	bytesA := txA.SerializedSize()

	session := env.bs.NewSession()
	require.NoError(t, session.Consume(txA))

	// exhaust the free bucket inside the session, then fail
	env.props.Record.FreeNetLimit = bytesA // second consume cannot fit
	err := session.Consume(txA)
	assert.ErrorIs(t, err, bandwidthSystem.ErrBandwidthInsufficient)

	session.Revert()
	require.NoError(t, session.Done())
	assert.EqualValues(t, 0, env.accounts.Accounts["addr:alice"].FreeNetUsage)
}

func TestSessionReadsItsOwnWrites(t *testing.T) {
	env := newSessionEnv(t)
	tx := mustTransfer(t, "addr:alice", "addr:bob")
	bytes := tx.SerializedSize()
	env.props.Record.FreeNetLimit = 2*bytes + bytes/2

	session := env.bs.NewSession()
	require.NoError(t, session.Consume(tx))
	require.NoError(t, session.Consume(tx))

	require.NoError(t, session.Done())
	assert.EqualValues(t, 2*bytes, env.accounts.Accounts["addr:alice"].FreeNetUsage)
}
