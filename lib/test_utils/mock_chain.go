package test_utils

import (
	"helios-node/modules/aggregate"
	"helios-node/modules/db/chain/accounts"
	"helios-node/modules/db/chain/assets"
	"helios-node/modules/db/chain/properties"
	"helios-node/modules/witness"
)

type MockAccountsDb struct {
	aggregate.Plugin
	Accounts map[string]*accounts.AccountRecord
	Puts     int
}

var _ accounts.Accounts = &MockAccountsDb{}

func NewMockAccountsDb() *MockAccountsDb {
	return &MockAccountsDb{Accounts: make(map[string]*accounts.AccountRecord)}
}

func (m *MockAccountsDb) GetAccount(address string) (*accounts.AccountRecord, error) {
	record, ok := m.Accounts[address]
	if !ok {
		return nil, nil
	}
	return record.Copy(), nil
}

func (m *MockAccountsDb) PutAccount(record *accounts.AccountRecord) error {
	m.Accounts[record.Address] = record.Copy()
	m.Puts++
	return nil
}

type MockAssetsDb struct {
	aggregate.Plugin
	Assets map[string]*assets.AssetRecord
	Puts   int
}

var _ assets.Assets = &MockAssetsDb{}

func NewMockAssetsDb() *MockAssetsDb {
	return &MockAssetsDb{Assets: make(map[string]*assets.AssetRecord)}
}

func (m *MockAssetsDb) GetAsset(name string) (*assets.AssetRecord, error) {
	record, ok := m.Assets[name]
	if !ok {
		return nil, nil
	}
	return record.Copy(), nil
}

func (m *MockAssetsDb) PutAsset(record *assets.AssetRecord) error {
	m.Assets[record.Name] = record.Copy()
	m.Puts++
	return nil
}

type MockPropertiesDb struct {
	aggregate.Plugin
	Record properties.PropertiesRecord
	Sets   int
}

var _ properties.Properties = &MockPropertiesDb{}

func NewMockPropertiesDb(record properties.PropertiesRecord) *MockPropertiesDb {
	return &MockPropertiesDb{Record: record}
}

func (m *MockPropertiesDb) GetTotalNetLimit() int64 {
	return m.Record.TotalNetLimit
}

func (m *MockPropertiesDb) GetTotalNetWeight() int64 {
	return m.Record.TotalNetWeight
}

func (m *MockPropertiesDb) GetFreeNetLimit() int64 {
	return m.Record.FreeNetLimit
}

func (m *MockPropertiesDb) GetPublicNetLimit() int64 {
	return m.Record.PublicNetLimit
}

func (m *MockPropertiesDb) GetPublicNetUsage() int64 {
	return m.Record.PublicNetUsage
}

func (m *MockPropertiesDb) SetPublicNetUsage(usage int64) error {
	m.Record.PublicNetUsage = usage
	m.Sets++
	return nil
}

func (m *MockPropertiesDb) GetPublicNetTime() int64 {
	return m.Record.PublicNetTime
}

func (m *MockPropertiesDb) SetPublicNetTime(slot int64) error {
	m.Record.PublicNetTime = slot
	m.Sets++
	return nil
}

func (m *MockPropertiesDb) GetHeadBlockTime() int64 {
	return m.Record.HeadBlockTime
}

func (m *MockPropertiesDb) SetHeadBlockTime(ms int64) error {
	m.Record.HeadBlockTime = ms
	m.Sets++
	return nil
}

func (m *MockPropertiesDb) GetGenesisTime() int64 {
	return m.Record.GenesisTime
}

func (m *MockPropertiesDb) Seed(record properties.PropertiesRecord) error {
	m.Record = record
	return nil
}

type MockWitness struct {
	aggregate.Plugin
	Slot      int64
	BlockTime int64
}

var _ witness.Controller = &MockWitness{}

func (m *MockWitness) HeadSlot() int64 {
	return m.Slot
}

func (m *MockWitness) HeadBlockTime() int64 {
	return m.BlockTime
}
