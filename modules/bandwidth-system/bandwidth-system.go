package bandwidthSystem

import (
	"fmt"

	"helios-node/lib/logger"
	"helios-node/lib/utils"
	"helios-node/modules/common/params"
	"helios-node/modules/db/chain/accounts"
	"helios-node/modules/db/chain/assets"
	"helios-node/modules/db/chain/properties"
	"helios-node/modules/transactions"
	"helios-node/modules/witness"

	"github.com/chebyrash/promise"
)

// BandwidthSystem decides whether a transaction may proceed and debits the
// buckets that pay for it. Every validator replays this logic; its store
// writes are consensus state.
type BandwidthSystem struct {
	Accounts accounts.Accounts
	Assets   assets.Assets
	Props    properties.Properties
	Witness  witness.Controller

	log logger.Logger
}

func New(accountsDb accounts.Accounts, assetsDb assets.Assets, props properties.Properties, wc witness.Controller, log logger.Logger) *BandwidthSystem {
	return &BandwidthSystem{
		Accounts: accountsDb,
		Assets:   assetsDb,
		Props:    props,
		Witness:  wc,
		log:      log,
	}
}

// ConsumeBandwidth charges every contract of the transaction in list order.
// Charging tiers per contract: new-account surcharge, then asset-issuer net,
// then the sender's staked net, then the free net. The first admitting tier
// wins. On error, writes of earlier contracts remain committed; callers
// needing whole-transaction atomicity run this through a session.
func (bs *BandwidthSystem) ConsumeBandwidth(tx *transactions.Transaction) error {
	for _, contract := range tx.Contracts() {
		// The full transaction's serialized size is charged to every
		// contract, not each contract's own size.
		bytes := tx.SerializedSize()

		address, err := contract.Owner()
		if err != nil {
			panic(fmt.Errorf("bandwidth: malformed contract payload: %w", err))
		}

		account, err := bs.Accounts.GetAccount(address)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountMissing
		}

		now := bs.Witness.HeadSlot()

		createsAccount, err := bs.contractCreatesNewAccount(contract)
		if err != nil {
			return err
		}
		if createsAccount {
			if err := bs.consumeForCreateNewAccount(account, now); err != nil {
				return err
			}
		}

		if contract.Type == transactions.TransferAssetContract {
			ok, err := bs.useAssetAccountNet(contract, account, now, bytes)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
		}

		ok, err := bs.useAccountNet(account, bytes, now)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		ok, err = bs.useFreeNet(account, bytes, now)
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		return ErrBandwidthInsufficient
	}
	return nil
}

// contractCreatesNewAccount reports whether the contract transfers value to a
// recipient with no account record yet. Only plain and asset transfers can.
func (bs *BandwidthSystem) contractCreatesNewAccount(contract transactions.TransactionContract) (bool, error) {
	var toAddress string
	switch contract.Type {
	case transactions.TransferContract:
		payload, err := contract.TransferPayload()
		if err != nil {
			panic(fmt.Errorf("bandwidth: malformed transfer payload: %w", err))
		}
		toAddress = payload.ToAddress
	case transactions.TransferAssetContract:
		payload, err := contract.TransferAssetPayload()
		if err != nil {
			panic(fmt.Errorf("bandwidth: malformed asset transfer payload: %w", err))
		}
		toAddress = payload.ToAddress
	default:
		return false, nil
	}

	toAccount, err := bs.Accounts.GetAccount(toAddress)
	if err != nil {
		return false, err
	}
	return toAccount == nil, nil
}

// consumeForCreateNewAccount charges the surcharge against the sender's
// staked bucket. The charge must land; there is no fallback tier for it.
func (bs *BandwidthSystem) consumeForCreateNewAccount(account *accounts.AccountRecord, now int64) error {
	cost := params.CREATE_ACCOUNT_COST

	netUsage := account.NetUsage
	latestConsumeTime := account.LatestConsumeTime
	netLimit := CalculateGlobalNetLimit(account.FrozenBalance, bs.Props.GetTotalNetLimit(), bs.Props.GetTotalNetWeight())

	newNetUsage := increase(netUsage, 0, latestConsumeTime, now)

	if cost > (netLimit - newNetUsage) {
		return fmt.Errorf("%w to create new account", ErrBandwidthInsufficient)
	}

	latestConsumeTime = now
	newNetUsage = increase(newNetUsage, cost, latestConsumeTime, now)
	account.LatestConsumeTime = latestConsumeTime
	account.NetUsage = newNetUsage

	return bs.Accounts.PutAccount(account)
}

// useAssetAccountNet charges an asset transfer against the asset's public
// pool, the sender's per-asset free bucket and the issuer's staked bucket.
// All three must have headroom; the three decays are computed and checked
// before any of the three writes happen.
func (bs *BandwidthSystem) useAssetAccountNet(contract transactions.TransactionContract, account *accounts.AccountRecord, now int64, bytes int64) (bool, error) {
	payload, err := contract.TransferAssetPayload()
	if err != nil {
		panic(fmt.Errorf("bandwidth: malformed asset transfer payload: %w", err))
	}
	assetName := payload.AssetName

	assetIssue, err := bs.Assets.GetAsset(assetName)
	if err != nil {
		return false, err
	}
	if assetIssue == nil {
		return false, ErrAssetMissing
	}

	// Self transfers of an own-issued asset bypass issuer accounting.
	if assetIssue.OwnerAddress == account.Address {
		return bs.useAccountNet(account, bytes, now)
	}

	publicFreeAssetNetLimit := assetIssue.PublicFreeAssetNetLimit
	publicFreeAssetNetUsage := assetIssue.PublicFreeAssetNetUsage
	publicLatestFreeNetTime := assetIssue.PublicLatestFreeNetTime

	newPublicFreeAssetNetUsage := increase(publicFreeAssetNetUsage, 0, publicLatestFreeNetTime, now)

	if bytes > (publicFreeAssetNetLimit - newPublicFreeAssetNetUsage) {
		bs.log.Debug("the " + assetName + " public free bandwidth is not enough")
		return false, nil
	}

	freeAssetNetLimit := assetIssue.FreeAssetNetLimit

	freeAssetNetUsage := account.GetFreeAssetNetUsage(assetName)
	latestAssetOpTime := account.GetLatestAssetOpTime(assetName)

	newFreeAssetNetUsage := increase(freeAssetNetUsage, 0, latestAssetOpTime, now)

	if bytes > (freeAssetNetLimit - newFreeAssetNetUsage) {
		bs.log.Debug("the " + assetName + " free bandwidth is not enough")
		return false, nil
	}

	issuerAccount, err := bs.Accounts.GetAccount(assetIssue.OwnerAddress)
	if err != nil {
		return false, err
	}
	if issuerAccount == nil {
		panic("bandwidth: asset issuer account missing from store")
	}

	issuerNetUsage := issuerAccount.NetUsage
	latestConsumeTime := issuerAccount.LatestConsumeTime
	issuerNetLimit := CalculateGlobalNetLimit(issuerAccount.FrozenBalance, bs.Props.GetTotalNetLimit(), bs.Props.GetTotalNetWeight())

	newIssuerNetUsage := increase(issuerNetUsage, 0, latestConsumeTime, now)

	if bytes > (issuerNetLimit - newIssuerNetUsage) {
		bs.log.Debug("the " + assetName + " issuer bandwidth is not enough")
		return false, nil
	}

	// All three predicates hold; recompute with the charge and commit all
	// three entries. Nothing fallible may run between here and the writes.
	latestConsumeTime = now
	latestAssetOpTime = now
	publicLatestFreeNetTime = now
	latestOperationTime := bs.Witness.HeadBlockTime()
	newIssuerNetUsage = increase(newIssuerNetUsage, bytes, latestConsumeTime, now)
	newFreeAssetNetUsage = increase(newFreeAssetNetUsage, bytes, latestAssetOpTime, now)
	newPublicFreeAssetNetUsage = increase(newPublicFreeAssetNetUsage, bytes, publicLatestFreeNetTime, now)

	issuerAccount.NetUsage = newIssuerNetUsage
	issuerAccount.LatestConsumeTime = latestConsumeTime

	account.LatestOperationTime = latestOperationTime
	account.PutLatestAssetOpTime(assetName, latestAssetOpTime)
	account.PutFreeAssetNetUsage(assetName, newFreeAssetNetUsage)

	assetIssue.PublicFreeAssetNetUsage = newPublicFreeAssetNetUsage
	assetIssue.PublicLatestFreeNetTime = publicLatestFreeNetTime

	if err := bs.Accounts.PutAccount(account); err != nil {
		return false, err
	}
	if err := bs.Accounts.PutAccount(issuerAccount); err != nil {
		return false, err
	}
	if err := bs.Assets.PutAsset(assetIssue); err != nil {
		return false, err
	}

	return true, nil
}

// useAccountNet charges against the sender's staked bucket.
func (bs *BandwidthSystem) useAccountNet(account *accounts.AccountRecord, bytes int64, now int64) (bool, error) {
	netUsage := account.NetUsage
	latestConsumeTime := account.LatestConsumeTime
	netLimit := CalculateGlobalNetLimit(account.FrozenBalance, bs.Props.GetTotalNetLimit(), bs.Props.GetTotalNetWeight())

	newNetUsage := increase(netUsage, 0, latestConsumeTime, now)

	if bytes > (netLimit - newNetUsage) {
		bs.log.Debug("net usage is running out, now use free net usage")
		return false, nil
	}

	latestConsumeTime = now
	latestOperationTime := bs.Witness.HeadBlockTime()
	newNetUsage = increase(newNetUsage, bytes, latestConsumeTime, now)
	account.NetUsage = newNetUsage
	account.LatestOperationTime = latestOperationTime
	account.LatestConsumeTime = latestConsumeTime

	if err := bs.Accounts.PutAccount(account); err != nil {
		return false, err
	}
	return true, nil
}

// useFreeNet charges against the sender's free bucket and the system-wide
// public pool; both must have headroom.
func (bs *BandwidthSystem) useFreeNet(account *accounts.AccountRecord, bytes int64, now int64) (bool, error) {
	freeNetLimit := bs.Props.GetFreeNetLimit()
	freeNetUsage := account.FreeNetUsage
	latestConsumeFreeTime := account.LatestConsumeFreeTime
	newFreeNetUsage := increase(freeNetUsage, 0, latestConsumeFreeTime, now)

	if bytes > (freeNetLimit - newFreeNetUsage) {
		bs.log.Debug("free net usage is running out")
		return false, nil
	}

	publicNetLimit := bs.Props.GetPublicNetLimit()
	publicNetUsage := bs.Props.GetPublicNetUsage()
	publicNetTime := bs.Props.GetPublicNetTime()

	newPublicNetUsage := increase(publicNetUsage, 0, publicNetTime, now)

	if bytes > (publicNetLimit - newPublicNetUsage) {
		bs.log.Debug("free public net usage is running out")
		return false, nil
	}

	latestConsumeFreeTime = now
	latestOperationTime := bs.Witness.HeadBlockTime()
	publicNetTime = now
	newFreeNetUsage = increase(newFreeNetUsage, bytes, latestConsumeFreeTime, now)
	newPublicNetUsage = increase(newPublicNetUsage, bytes, publicNetTime, now)
	account.FreeNetUsage = newFreeNetUsage
	account.LatestConsumeFreeTime = latestConsumeFreeTime
	account.LatestOperationTime = latestOperationTime

	if err := bs.Props.SetPublicNetUsage(newPublicNetUsage); err != nil {
		return false, err
	}
	if err := bs.Props.SetPublicNetTime(publicNetTime); err != nil {
		return false, err
	}
	if err := bs.Accounts.PutAccount(account); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateUsage decays every usage bucket of the account to the head slot,
// in memory only. Time fields are left alone and nothing is persisted.
func (bs *BandwidthSystem) UpdateUsage(account *accounts.AccountRecord) {
	now := bs.Witness.HeadSlot()
	bs.UpdateUsageAt(account, now)
}

func (bs *BandwidthSystem) UpdateUsageAt(account *accounts.AccountRecord, now int64) {
	account.NetUsage = increase(account.NetUsage, 0, account.LatestConsumeTime, now)
	account.FreeNetUsage = increase(account.FreeNetUsage, 0, account.LatestConsumeFreeTime, now)

	for assetName, usage := range account.FreeAssetNetUsage {
		account.PutFreeAssetNetUsage(assetName,
			increase(usage, 0, account.GetLatestAssetOpTime(assetName), now))
	}
}

func (bs *BandwidthSystem) Init() error {
	return nil
}

func (bs *BandwidthSystem) Start() *promise.Promise[any] {
	return utils.PromiseResolve[any](nil)
}

func (bs *BandwidthSystem) Stop() error {
	return nil
}
