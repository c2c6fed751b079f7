package transactions_test

import (
	"testing"

	"helios-node/modules/transactions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializationIsDeterministic(t *testing.T) {
	crafter := transactions.NewCrafter()

	a, err := crafter.Transfer("addr:alice", "addr:bob", 100)
	require.NoError(t, err)
	b, err := crafter.Transfer("addr:alice", "addr:bob", 100)
	require.NoError(t, err)

	assert.Equal(t, a.SerializedBytes(), b.SerializedBytes())
	assert.Greater(t, a.SerializedSize(), int64(0))

	idA, err := a.Id()
	require.NoError(t, err)
	idB, err := b.Id()
	require.NoError(t, err)
	assert.Equal(t, idA, idB)
}

func TestSerializedSizeCoversWholeShell(t *testing.T) {
	crafter := transactions.NewCrafter()

	one, err := crafter.Transfer("addr:alice", "addr:bob", 100)
	require.NoError(t, err)

	payload, err := transactions.EncodePayload(transactions.TransferPayload{
		OwnerAddress: "addr:alice",
		ToAddress:    "addr:bob",
		Amount:       100,
	})
	require.NoError(t, err)
	contract := transactions.TransactionContract{
		Type:    transactions.TransferContract,
		Payload: payload,
	}
	two, err := crafter.Multi(contract, contract)
	require.NoError(t, err)

	assert.Greater(t, two.SerializedSize(), one.SerializedSize())
}

func TestOwnerExtraction(t *testing.T) {
	crafter := transactions.NewCrafter()

	tx, err := crafter.Transfer("addr:alice", "addr:bob", 100)
	require.NoError(t, err)
	owner, err := tx.Contracts()[0].Owner()
	require.NoError(t, err)
	assert.Equal(t, "addr:alice", owner)

	atx, err := crafter.TransferAsset("addr:carol", "addr:bob", "gamma", 5)
	require.NoError(t, err)
	owner, err = atx.Contracts()[0].Owner()
	require.NoError(t, err)
	assert.Equal(t, "addr:carol", owner)
}

func TestPayloadRoundTrip(t *testing.T) {
	payload, err := transactions.EncodePayload(transactions.TransferAssetPayload{
		OwnerAddress: "addr:alice",
		ToAddress:    "addr:bob",
		AssetName:    "gamma",
		Amount:       42,
	})
	require.NoError(t, err)

	contract := transactions.TransactionContract{
		Type:    transactions.TransferAssetContract,
		Payload: payload,
	}

	decoded, err := contract.TransferAssetPayload()
	require.NoError(t, err)
	assert.Equal(t, "gamma", decoded.AssetName)
	assert.EqualValues(t, 42, decoded.Amount)
}

func TestPayloadValidationRejectsMissingOwner(t *testing.T) {
	payload, err := transactions.EncodePayload(transactions.TransferPayload{
		ToAddress: "addr:bob",
		Amount:    1,
	})
	require.NoError(t, err)

	contract := transactions.TransactionContract{
		Type:    transactions.TransferContract,
		Payload: payload,
	}

	_, err = contract.TransferPayload()
	assert.Error(t, err)
	_, err = contract.Owner()
	assert.Error(t, err)
}
