package bigscalar

import (
	"crypto/rand"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// prec is the working precision, in bits, used for the Gaussian CDF table.
// float64 loses relative precision once the modulus spans more than ~50
// bits; this backend is specifically for moduli where that matters, so the
// table is built at a fixed extended precision instead.
const prec = 128

// gaussianTailClamp mirrors ring/sampling's +/-6*stdev tail bound.
const gaussianTailClamp = 6

// cdt is a cumulative distribution table over the integers [-bound, bound]
// for a discrete Gaussian of the given standard deviation. SampleGaussian
// builds a fresh table on every call; tables are not cached across draws.
type cdt struct {
	bound int64
	// cumulative[i] holds the cumulative probability mass of all outcomes
	// up to and including value (i - bound), as the running sum of the
	// unnormalized weights multiplied by 2^prec and represented as a big.Int
	// so sampling is an exact integer comparison.
	cumulative []*big.Int
	total      *big.Int
}

// newCDT builds the cumulative distribution table for a discrete Gaussian
// over Z with the given standard deviation, using bigfloat's extended
// precision Exp to compute exp(-x^2/(2*stdev^2)) for each candidate value:
// this is the building block spec.md's "cumulative-distribution-table
// sampler" alternative names directly.
func newCDT(stdev float64) *cdt {
	bound := int64(gaussianTailClamp*stdev) + 1
	twoSigmaSq := new(big.Float).SetPrec(prec).SetFloat64(2 * stdev * stdev)

	weights := make([]*big.Float, 0, 2*bound+1)
	for x := -bound; x <= bound; x++ {
		xf := new(big.Float).SetPrec(prec).SetInt64(x)
		xsq := new(big.Float).SetPrec(prec).Mul(xf, xf)
		exponent := new(big.Float).SetPrec(prec).Quo(xsq, twoSigmaSq)
		exponent.Neg(exponent)
		weights = append(weights, bigfloat.Exp(exponent))
	}

	scale := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), prec)

	cumulative := make([]*big.Int, len(weights))
	sum := new(big.Float).SetPrec(prec)
	for i, w := range weights {
		sum.Add(sum, w)
		scaled := new(big.Float).SetPrec(prec).Mul(sum, scale)
		v, _ := scaled.Int(nil)
		cumulative[i] = v
	}

	return &cdt{bound: bound, cumulative: cumulative, total: cumulative[len(cumulative)-1]}
}

// sample draws one value according to the table by generating a uniform
// integer in [0, total) and locating the first cumulative bucket it falls
// under (linear scan; tables are small, a handful of std-devs wide).
func (t *cdt) sample() int64 {
	r, err := rand.Int(rand.Reader, t.total)
	if err != nil {
		panic(err)
	}
	for i, c := range t.cumulative {
		if r.Cmp(c) < 0 {
			return int64(i) - t.bound
		}
	}
	return t.bound
}

// SampleGaussian draws a single discrete Gaussian value centered at 0 with
// standard deviation stdev, reduced into [0, q), storing negative draws -v
// as q-v exactly as ring/sampling's float64 Box-Muller sampler does.
func SampleGaussian(stdev float64, q *big.Int) *big.Int {
	t := newCDT(stdev)
	v := t.sample()
	if v >= 0 {
		return big.NewInt(v)
	}
	return new(big.Int).Add(q, big.NewInt(v))
}
