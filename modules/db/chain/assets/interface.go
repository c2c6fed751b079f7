package assets

import a "helios-node/modules/aggregate"

type Assets interface {
	a.Plugin
	// GetAsset returns (nil, nil) when no issue exists under the name.
	GetAsset(name string) (*AssetRecord, error)
	PutAsset(record *AssetRecord) error
}
