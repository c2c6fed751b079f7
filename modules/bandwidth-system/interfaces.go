package bandwidthSystem

import (
	"errors"

	"helios-node/modules/db/chain/accounts"
	"helios-node/modules/transactions"
)

var (
	// Sender address has no account record. The transaction is rejected.
	ErrAccountMissing = errors.New("account not exists")
	// No charging tier admits the current contract.
	ErrBandwidthInsufficient = errors.New("bandwidth is not enough")
	// An asset transfer references an unknown asset issue.
	ErrAssetMissing = errors.New("asset not exists")
)

// BandwidthSession buffers every store write of a transaction so the block
// processor can apply or discard it atomically. The processor itself commits
// per tier step; wrap a whole transaction in a session when rollback matters.
type BandwidthSession interface {
	Consume(tx *transactions.Transaction) error
	UpdateUsage(account *accounts.AccountRecord)
	Revert()
	Done() error
}
