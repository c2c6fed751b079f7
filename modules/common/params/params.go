package params

// Chain-wide constants. These are fixed at genesis; changing any of them on a
// live network is a consensus break.

// Fixed point scale used by the bandwidth meter
const PRECISION int64 = 1_000_000

// Nominal slot duration
const BLOCK_INTERVAL_MS int64 = 3_000

// Bandwidth window width, 24 hours
const WINDOW_SIZE_MS int64 = 24 * 60 * 60 * 1_000

// Window width in slots
const WINDOW_SIZE int64 = WINDOW_SIZE_MS / BLOCK_INTERVAL_MS

// Converts frozen stake to net weight
const STAKE_DIVISOR int64 = 1_000_000

// Synthetic byte surcharge paid by the sender when a transfer materializes a
// new recipient account. Zero until governance enables account rent.
var CREATE_ACCOUNT_COST int64 = 0

var NETWORK_ID = "helios-mainnet"

// Upper bound on a serialized transaction; transactions.FromShell rejects larger ones
var MAX_TX_SIZE = 16384
