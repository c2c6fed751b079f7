package properties

// Single document keyed by a fixed key.
const propertiesKey = "chain"

type PropertiesRecord struct {
	Key string `bson:"key" json:"key"`

	TotalNetLimit  int64 `bson:"total_net_limit" json:"total_net_limit"`
	TotalNetWeight int64 `bson:"total_net_weight" json:"total_net_weight"`

	// Per-account free allowance
	FreeNetLimit int64 `bson:"free_net_limit" json:"free_net_limit"`

	// System-wide free pool
	PublicNetLimit int64 `bson:"public_net_limit" json:"public_net_limit"`
	PublicNetUsage int64 `bson:"public_net_usage" json:"public_net_usage"`
	PublicNetTime  int64 `bson:"public_net_time" json:"public_net_time"`

	// Wall clock of the current head block and of genesis, in ms
	HeadBlockTime int64 `bson:"head_block_time" json:"head_block_time"`
	GenesisTime   int64 `bson:"genesis_time" json:"genesis_time"`
}
