package sampling

import (
	"encoding/binary"
	"math"

	"github.com/cupcakefv/cupcake/ring"
)

// gaussianTailClamp bounds a discrete Gaussian draw to +/-6 stdev so it
// always fits safely as a reduced scalar, per spec's tail-clamping
// requirement.
const gaussianTailClamp = 6.0

// SampleGaussianPoly returns a freshly allocated polynomial in coefficient
// form whose coefficients are drawn from a discrete Gaussian over Z with
// standard deviation stdev, centered at 0, using a Box-Muller transform
// over two uniform draws per pair of coefficients, rounded to the nearest
// integer. A pair in which either value exceeds ceil(6*stdev) in magnitude
// is discarded and redrawn, so no output lies beyond that bound. Negative
// draws -v are stored as Q-v.
func SampleGaussianPoly(ctx *ring.Context, stdev float64) *ring.Poly {
	prng, err := NewPRNG()
	if err != nil {
		panic(err)
	}
	return SampleGaussianPolyPRNG(ctx, stdev, prng)
}

// SampleGaussianPolyPRNG is the PRNG-driven variant of SampleGaussianPoly,
// letting callers reproduce noise sampling for testing with a seeded PRNG.
func SampleGaussianPolyPRNG(ctx *ring.Context, stdev float64, prng PRNG) *ring.Poly {
	n := ctx.N
	q := ctx.Q
	bound := int64(math.Ceil(gaussianTailClamp * stdev))

	coeffs := make([]uint64, n)
	var buf [16]byte

	for i := 0; i < n; i += 2 {
		var z0, z1 float64
		for {
			if _, err := prng.Read(buf[:]); err != nil {
				panic(err)
			}
			u1 := uniformUnit(buf[0:8])
			u2 := uniformUnit(buf[8:16])
			r := math.Sqrt(-2 * math.Log(u1))
			z0 = r * math.Cos(2*math.Pi*u2) * stdev
			z1 = r * math.Sin(2*math.Pi*u2) * stdev
			if math.Abs(z0) <= float64(bound) && math.Abs(z1) <= float64(bound) {
				break
			}
		}

		coeffs[i] = encodeSigned(int64(math.Round(z0)), q)
		if i+1 < n {
			coeffs[i+1] = encodeSigned(int64(math.Round(z1)), q)
		}
	}

	return ctx.NewPolyFromCoeffs(coeffs, ring.FormCoefficient)
}

// uniformUnit interprets 8 bytes as a uniform float64 in (0, 1].
func uniformUnit(b []byte) float64 {
	v := binary.BigEndian.Uint64(b) >> 11 // 53 significant bits
	return float64(v+1) / float64(uint64(1)<<53)
}

// encodeSigned maps a signed integer v with |v| < q into [0, q), storing
// negative values as q-|v|.
func encodeSigned(v int64, q uint64) uint64 {
	if v >= 0 {
		return uint64(v) % q
	}
	return q - (uint64(-v) % q)
}
