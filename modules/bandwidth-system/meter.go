package bandwidthSystem

import (
	"math/big"

	"helios-node/modules/common/params"
)

// The meter spreads recorded usage over a window of WINDOW_SIZE slots and
// decays it linearly as slots pass. All arithmetic runs over big.Int so the
// usage*PRECISION products cannot wrap at extreme chain parameters.
//
// Incoming charge is converted with ceiling division and the result converted
// back with floor division. The asymmetry overstates charge and understates
// residual, keeping the meter conservative.

var one = big.NewInt(1)

func divideCeil(numerator, denominator *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, one)
	}
	return q
}

// divideHalfEven divides rounding half to even. Reproduces the reference
// chain's decay rounding exactly; any other rounding here forks consensus.
func divideHalfEven(numerator, denominator *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	r.Lsh(r, 1)
	switch r.Cmp(denominator) {
	case 1:
		q.Add(q, one)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, one)
		}
	}
	return q
}

func toAverage(usage int64) *big.Int {
	scaled := new(big.Int).Mul(big.NewInt(usage), big.NewInt(params.PRECISION))
	return divideCeil(scaled, big.NewInt(params.WINDOW_SIZE))
}

func fromAverage(avg *big.Int) int64 {
	out := new(big.Int).Mul(avg, big.NewInt(params.WINDOW_SIZE))
	out.Quo(out, big.NewInt(params.PRECISION))
	return out.Int64()
}

// increase decays lastUsage from lastTime to now and adds usage on top.
// Both times are slots. now must never lag lastTime; the block processor
// hands out monotone slots, so a violation is a bug, not bad user input.
func increase(lastUsage int64, usage int64, lastTime int64, now int64) int64 {
	averageLastUsage := toAverage(lastUsage)
	averageUsage := toAverage(usage)

	if lastTime != now {
		if now < lastTime {
			panic("bandwidth meter: slot clock moved backwards")
		}
		if lastTime+params.WINDOW_SIZE > now {
			delta := now - lastTime
			averageLastUsage = divideHalfEven(
				new(big.Int).Mul(averageLastUsage, big.NewInt(params.WINDOW_SIZE-delta)),
				big.NewInt(params.WINDOW_SIZE),
			)
		} else {
			averageLastUsage.SetInt64(0)
		}
	}

	averageLastUsage.Add(averageLastUsage, averageUsage)
	return fromAverage(averageLastUsage)
}
