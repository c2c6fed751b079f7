package assets

// AssetRecord keys off the asset name. The public pool fields are shared by
// every holder of the asset; the per-holder cap lives in FreeAssetNetLimit.
type AssetRecord struct {
	Name         string `bson:"name" json:"name"`
	OwnerAddress string `bson:"owner_address" json:"owner_address"`

	// Per-holder cap on the asset's free bucket
	FreeAssetNetLimit int64 `bson:"free_asset_net_limit" json:"free_asset_net_limit"`

	PublicFreeAssetNetLimit int64 `bson:"public_free_asset_net_limit" json:"public_free_asset_net_limit"`
	PublicFreeAssetNetUsage int64 `bson:"public_free_asset_net_usage" json:"public_free_asset_net_usage"`
	PublicLatestFreeNetTime int64 `bson:"public_latest_free_net_time" json:"public_latest_free_net_time"`
}

func (a *AssetRecord) Copy() *AssetRecord {
	cpy := *a
	return &cpy
}
