package sampling

import (
	"github.com/cupcakefv/cupcake/ring"
)

// SampleTernaryPoly returns a freshly allocated polynomial in coefficient
// form whose coefficients are i.i.d. in {-1, 0, 1} with probabilities
// (1/4, 1/2, 1/4): drawn as two independent random bits b1, b2 per
// coefficient and set to b1-b2 (-1 stored as Q-1), following the p=0.5
// branch of lattigo's ternary sampler.
func SampleTernaryPoly(ctx *ring.Context) *ring.Poly {
	prng, err := NewPRNG()
	if err != nil {
		panic(err)
	}
	return SampleTernaryPolyPRNG(ctx, prng)
}

// SampleTernaryPolyPRNG is the PRNG-driven variant of SampleTernaryPoly,
// letting callers reproduce encryption for testing with a seeded PRNG.
func SampleTernaryPolyPRNG(ctx *ring.Context, prng PRNG) *ring.Poly {
	n := ctx.N
	q := ctx.Q

	coeffBits := make([]byte, (n+7)/8)
	signBits := make([]byte, (n+7)/8)
	if _, err := prng.Read(coeffBits); err != nil {
		panic(err)
	}
	if _, err := prng.Read(signBits); err != nil {
		panic(err)
	}

	coeffs := make([]uint64, n)
	for i := 0; i < n; i++ {
		b1 := (coeffBits[i/8] >> uint(i%8)) & 1
		b2 := (signBits[i/8] >> uint(i%8)) & 1
		switch {
		case b1 == 0 && b2 == 0:
			coeffs[i] = 0
		case b1 == 1 && b2 == 0:
			coeffs[i] = 1
		case b1 == 0 && b2 == 1:
			coeffs[i] = q - 1
		default: // b1 == 1 && b2 == 1 also maps to 0, keeping P(0)=1/2
			coeffs[i] = 0
		}
	}

	return ctx.NewPolyFromCoeffs(coeffs, ring.FormCoefficient)
}
