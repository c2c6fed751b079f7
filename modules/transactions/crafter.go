package transactions

import "helios-node/modules/common/params"

// TransactionCrafter builds unsigned transaction shells. Signing and
// broadcast live outside the admission layer.
type TransactionCrafter struct {
	NetId string
}

func NewCrafter() TransactionCrafter {
	return TransactionCrafter{NetId: params.NETWORK_ID}
}

func (tc TransactionCrafter) shell(contracts ...TransactionContract) TransactionShell {
	return TransactionShell{
		Type:    "helios-tx",
		Version: "0.1",
		Headers: TransactionHeader{
			NetId: tc.NetId,
		},
		Contracts: contracts,
	}
}

func (tc TransactionCrafter) Transfer(owner string, to string, amount int64) (*Transaction, error) {
	payload, err := EncodePayload(TransferPayload{
		OwnerAddress: owner,
		ToAddress:    to,
		Amount:       amount,
	})
	if err != nil {
		return nil, err
	}

	return FromShell(tc.shell(TransactionContract{
		Type:    TransferContract,
		Payload: payload,
	}))
}

func (tc TransactionCrafter) TransferAsset(owner string, to string, assetName string, amount int64) (*Transaction, error) {
	payload, err := EncodePayload(TransferAssetPayload{
		OwnerAddress: owner,
		ToAddress:    to,
		AssetName:    assetName,
		Amount:       amount,
	})
	if err != nil {
		return nil, err
	}

	return FromShell(tc.shell(TransactionContract{
		Type:    TransferAssetContract,
		Payload: payload,
	}))
}

func (tc TransactionCrafter) FreezeBalance(owner string, amount int64, durationDays int64) (*Transaction, error) {
	payload, err := EncodePayload(FreezeBalancePayload{
		OwnerAddress:   owner,
		FrozenBalance:  amount,
		FrozenDuration: durationDays,
	})
	if err != nil {
		return nil, err
	}

	return FromShell(tc.shell(TransactionContract{
		Type:    FreezeBalanceContract,
		Payload: payload,
	}))
}

// Multi builds one transaction carrying several contracts, executed in order.
func (tc TransactionCrafter) Multi(contracts ...TransactionContract) (*Transaction, error) {
	return FromShell(tc.shell(contracts...))
}
