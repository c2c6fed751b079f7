package transactions

import (
	"fmt"

	"helios-node/modules/common"
	"helios-node/modules/common/params"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
)

// Transaction wraps a decoded shell together with its canonical DAG-CBOR
// bytes. The byte form is what the bandwidth system charges for, so it is
// computed once and cached.
type Transaction struct {
	Shell TransactionShell

	serialized []byte
}

func FromShell(shell TransactionShell) (*Transaction, error) {
	serialized, err := common.EncodeDagCbor(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction: %w", err)
	}

	if len(serialized) > params.MAX_TX_SIZE {
		return nil, fmt.Errorf("transaction size too big %d > %d", len(serialized), params.MAX_TX_SIZE)
	}

	return &Transaction{
		Shell:      shell,
		serialized: serialized,
	}, nil
}

func (tx *Transaction) SerializedBytes() []byte {
	return tx.serialized
}

func (tx *Transaction) SerializedSize() int64 {
	return int64(len(tx.serialized))
}

func (tx *Transaction) Id() (cid.Cid, error) {
	return common.HashBytes(tx.serialized, multicodec.DagCbor)
}

func (tx *Transaction) Contracts() []TransactionContract {
	return tx.Shell.Contracts
}
