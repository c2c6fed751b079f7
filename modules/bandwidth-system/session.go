package bandwidthSystem

import (
	"errors"

	a "helios-node/modules/aggregate"
	"helios-node/modules/db/chain/accounts"
	"helios-node/modules/db/chain/assets"
	"helios-node/modules/db/chain/properties"
	"helios-node/modules/transactions"
)

// NewSession returns a bandwidth session over buffered copies of the three
// stores. Nothing reaches the backing stores until Done; Revert throws the
// buffer away. This is the rollback seam for the block processor, since the
// processor itself commits tier steps as it goes.
func (bs *BandwidthSystem) NewSession() BandwidthSession {
	sa := newSessionAccounts(bs.Accounts)
	ss := newSessionAssets(bs.Assets)
	sp := newSessionProperties(bs.Props)
	return &bandwidthSession{
		inner:    New(sa, ss, sp, bs.Witness, bs.log),
		accounts: sa,
		assets:   ss,
		props:    sp,
	}
}

type bandwidthSession struct {
	inner    *BandwidthSystem
	accounts *sessionAccounts
	assets   *sessionAssets
	props    *sessionProperties
}

var _ BandwidthSession = &bandwidthSession{}

func (s *bandwidthSession) Consume(tx *transactions.Transaction) error {
	return s.inner.ConsumeBandwidth(tx)
}

func (s *bandwidthSession) UpdateUsage(account *accounts.AccountRecord) {
	s.inner.UpdateUsage(account)
}

func (s *bandwidthSession) Revert() {
	s.accounts.reset()
	s.assets.reset()
	s.props.reset()
}

// Done flushes buffered writes in first-write order: accounts, then asset
// issues, then dynamic properties.
func (s *bandwidthSession) Done() error {
	if err := s.accounts.flush(); err != nil {
		return err
	}
	if err := s.assets.flush(); err != nil {
		return err
	}
	return s.props.flush()
}

type sessionAccounts struct {
	a.Plugin
	backing accounts.Accounts

	writes map[string]*accounts.AccountRecord
	order  []string
}

var _ accounts.Accounts = &sessionAccounts{}

func newSessionAccounts(backing accounts.Accounts) *sessionAccounts {
	return &sessionAccounts{
		backing: backing,
		writes:  make(map[string]*accounts.AccountRecord),
	}
}

func (s *sessionAccounts) GetAccount(address string) (*accounts.AccountRecord, error) {
	if record, ok := s.writes[address]; ok {
		return record.Copy(), nil
	}
	record, err := s.backing.GetAccount(address)
	if err != nil || record == nil {
		return nil, err
	}
	return record.Copy(), nil
}

func (s *sessionAccounts) PutAccount(record *accounts.AccountRecord) error {
	if _, seen := s.writes[record.Address]; !seen {
		s.order = append(s.order, record.Address)
	}
	s.writes[record.Address] = record.Copy()
	return nil
}

func (s *sessionAccounts) flush() error {
	for _, address := range s.order {
		if err := s.backing.PutAccount(s.writes[address]); err != nil {
			return err
		}
	}
	return nil
}

func (s *sessionAccounts) reset() {
	s.writes = make(map[string]*accounts.AccountRecord)
	s.order = nil
}

type sessionAssets struct {
	a.Plugin
	backing assets.Assets

	writes map[string]*assets.AssetRecord
	order  []string
}

var _ assets.Assets = &sessionAssets{}

func newSessionAssets(backing assets.Assets) *sessionAssets {
	return &sessionAssets{
		backing: backing,
		writes:  make(map[string]*assets.AssetRecord),
	}
}

func (s *sessionAssets) GetAsset(name string) (*assets.AssetRecord, error) {
	if record, ok := s.writes[name]; ok {
		return record.Copy(), nil
	}
	record, err := s.backing.GetAsset(name)
	if err != nil || record == nil {
		return nil, err
	}
	return record.Copy(), nil
}

func (s *sessionAssets) PutAsset(record *assets.AssetRecord) error {
	if _, seen := s.writes[record.Name]; !seen {
		s.order = append(s.order, record.Name)
	}
	s.writes[record.Name] = record.Copy()
	return nil
}

func (s *sessionAssets) flush() error {
	for _, name := range s.order {
		if err := s.backing.PutAsset(s.writes[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s *sessionAssets) reset() {
	s.writes = make(map[string]*assets.AssetRecord)
	s.order = nil
}

type sessionProperties struct {
	a.Plugin
	backing properties.Properties

	publicNetUsage *int64
	publicNetTime  *int64
	headBlockTime  *int64
}

var _ properties.Properties = &sessionProperties{}

func newSessionProperties(backing properties.Properties) *sessionProperties {
	return &sessionProperties{backing: backing}
}

func (s *sessionProperties) GetTotalNetLimit() int64 {
	return s.backing.GetTotalNetLimit()
}

func (s *sessionProperties) GetTotalNetWeight() int64 {
	return s.backing.GetTotalNetWeight()
}

func (s *sessionProperties) GetFreeNetLimit() int64 {
	return s.backing.GetFreeNetLimit()
}

func (s *sessionProperties) GetPublicNetLimit() int64 {
	return s.backing.GetPublicNetLimit()
}

func (s *sessionProperties) GetPublicNetUsage() int64 {
	if s.publicNetUsage != nil {
		return *s.publicNetUsage
	}
	return s.backing.GetPublicNetUsage()
}

func (s *sessionProperties) SetPublicNetUsage(usage int64) error {
	s.publicNetUsage = &usage
	return nil
}

func (s *sessionProperties) GetPublicNetTime() int64 {
	if s.publicNetTime != nil {
		return *s.publicNetTime
	}
	return s.backing.GetPublicNetTime()
}

func (s *sessionProperties) SetPublicNetTime(slot int64) error {
	s.publicNetTime = &slot
	return nil
}

func (s *sessionProperties) GetHeadBlockTime() int64 {
	if s.headBlockTime != nil {
		return *s.headBlockTime
	}
	return s.backing.GetHeadBlockTime()
}

func (s *sessionProperties) SetHeadBlockTime(ms int64) error {
	s.headBlockTime = &ms
	return nil
}

func (s *sessionProperties) GetGenesisTime() int64 {
	return s.backing.GetGenesisTime()
}

func (s *sessionProperties) Seed(record properties.PropertiesRecord) error {
	return errors.New("cannot seed properties inside a bandwidth session")
}

func (s *sessionProperties) flush() error {
	if s.publicNetUsage != nil {
		if err := s.backing.SetPublicNetUsage(*s.publicNetUsage); err != nil {
			return err
		}
	}
	if s.publicNetTime != nil {
		if err := s.backing.SetPublicNetTime(*s.publicNetTime); err != nil {
			return err
		}
	}
	if s.headBlockTime != nil {
		if err := s.backing.SetHeadBlockTime(*s.headBlockTime); err != nil {
			return err
		}
	}
	return nil
}

func (s *sessionProperties) reset() {
	s.publicNetUsage = nil
	s.publicNetTime = nil
	s.headBlockTime = nil
}
