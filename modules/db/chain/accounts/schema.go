package accounts

// AccountRecord keys off the account address. Usage fields come in
// (usage, last slot) pairs; the bandwidth system is the only writer.
type AccountRecord struct {
	Address string `bson:"address" json:"address"`

	Balance       int64 `bson:"balance" json:"balance"`
	FrozenBalance int64 `bson:"frozen_balance" json:"frozen_balance"`

	NetUsage          int64 `bson:"net_usage" json:"net_usage"`
	LatestConsumeTime int64 `bson:"latest_consume_time" json:"latest_consume_time"`

	FreeNetUsage          int64 `bson:"free_net_usage" json:"free_net_usage"`
	LatestConsumeFreeTime int64 `bson:"latest_consume_free_time" json:"latest_consume_free_time"`

	// Per-asset free buckets, keyed by asset name
	FreeAssetNetUsage   map[string]int64 `bson:"free_asset_net_usage" json:"free_asset_net_usage"`
	LatestAssetOpTime   map[string]int64 `bson:"latest_asset_op_time" json:"latest_asset_op_time"`
	LatestOperationTime int64            `bson:"latest_operation_time" json:"latest_operation_time"`
}

func (a *AccountRecord) GetFreeAssetNetUsage(assetName string) int64 {
	return a.FreeAssetNetUsage[assetName]
}

func (a *AccountRecord) PutFreeAssetNetUsage(assetName string, usage int64) {
	if a.FreeAssetNetUsage == nil {
		a.FreeAssetNetUsage = make(map[string]int64)
	}
	a.FreeAssetNetUsage[assetName] = usage
}

func (a *AccountRecord) GetLatestAssetOpTime(assetName string) int64 {
	return a.LatestAssetOpTime[assetName]
}

func (a *AccountRecord) PutLatestAssetOpTime(assetName string, slot int64) {
	if a.LatestAssetOpTime == nil {
		a.LatestAssetOpTime = make(map[string]int64)
	}
	a.LatestAssetOpTime[assetName] = slot
}

// Copy returns a deep copy, detached from the maps of the receiver.
func (a *AccountRecord) Copy() *AccountRecord {
	cpy := *a
	cpy.FreeAssetNetUsage = make(map[string]int64, len(a.FreeAssetNetUsage))
	for k, v := range a.FreeAssetNetUsage {
		cpy.FreeAssetNetUsage[k] = v
	}
	cpy.LatestAssetOpTime = make(map[string]int64, len(a.LatestAssetOpTime))
	for k, v := range a.LatestAssetOpTime {
		cpy.LatestAssetOpTime[k] = v
	}
	return &cpy
}
