package transactions

type ContractType string

const (
	TransferContract      ContractType = "transfer"
	TransferAssetContract ContractType = "transfer_asset"
	FreezeBalanceContract ContractType = "freeze_balance"
)

type TransactionShell struct {
	Type    string            `json:"__t"`
	Version string            `json:"__v"`
	Headers TransactionHeader `json:"headers"`
	// Contracts execute in list order
	Contracts []TransactionContract `json:"contracts"`
}

type TransactionHeader struct {
	Nonce      uint64 `json:"nonce"`
	Expiration int64  `json:"expiration"`
	NetId      string `json:"net_id"`
}

type TransactionContract struct {
	Type ContractType `json:"type"`
	// DAG-CBOR encoded typed parameter payload
	Payload []byte `json:"payload"`
}

type TransferPayload struct {
	OwnerAddress string `json:"owner_address" validate:"required"`
	ToAddress    string `json:"to_address" validate:"required"`
	Amount       int64  `json:"amount" validate:"gte=0"`
}

type TransferAssetPayload struct {
	OwnerAddress string `json:"owner_address" validate:"required"`
	ToAddress    string `json:"to_address" validate:"required"`
	AssetName    string `json:"asset_name" validate:"required"`
	Amount       int64  `json:"amount" validate:"gte=0"`
}

type FreezeBalancePayload struct {
	OwnerAddress   string `json:"owner_address" validate:"required"`
	FrozenBalance  int64  `json:"frozen_balance" validate:"gt=0"`
	FrozenDuration int64  `json:"frozen_duration" validate:"gt=0"`
}

// Every contract payload carries the owner under the same field name.
type ownerPayload struct {
	OwnerAddress string `json:"owner_address" validate:"required"`
}
