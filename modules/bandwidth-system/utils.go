package bandwidthSystem

import (
	"math/big"

	"helios-node/modules/common/params"
)

// CalculateGlobalNetLimit converts frozen stake into the account's share of
// the system-wide net limit. Division is applied left to right; reordering
// changes the truncation and therefore the consensus result.
func CalculateGlobalNetLimit(frozenBalance int64, totalNetLimit int64, totalNetWeight int64) int64 {
	if totalNetWeight == 0 {
		panic("bandwidth: total net weight is zero")
	}

	netWeight := frozenBalance / params.STAKE_DIVISOR

	out := new(big.Int).Mul(big.NewInt(netWeight), big.NewInt(totalNetLimit))
	out.Quo(out, big.NewInt(totalNetWeight))
	return out.Int64()
}
