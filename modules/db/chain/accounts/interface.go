package accounts

import a "helios-node/modules/aggregate"

type Accounts interface {
	a.Plugin
	// GetAccount returns (nil, nil) when no record exists for the address.
	GetAccount(address string) (*AccountRecord, error)
	PutAccount(record *AccountRecord) error
}
