package properties

import a "helios-node/modules/aggregate"

// Properties is the chain's dynamic-properties singleton. Getters fall back
// to the zero value when the singleton has not been seeded.
type Properties interface {
	a.Plugin
	GetTotalNetLimit() int64
	GetTotalNetWeight() int64
	GetFreeNetLimit() int64
	GetPublicNetLimit() int64
	GetPublicNetUsage() int64
	SetPublicNetUsage(usage int64) error
	GetPublicNetTime() int64
	SetPublicNetTime(slot int64) error
	GetHeadBlockTime() int64
	SetHeadBlockTime(ms int64) error
	GetGenesisTime() int64
	Seed(record PropertiesRecord) error
}
