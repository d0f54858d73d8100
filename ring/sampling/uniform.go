package sampling

import (
	"encoding/binary"
	"math/bits"

	"github.com/klauspost/cpuid/v2"
	"github.com/cupcakefv/cupcake/ring"
)

// bufferCoefficients sizes a sampler's per-refill coefficient batch to the
// host's cache line, so each PRNG.Read call fills one cache line's worth of
// 8-byte words. This is a performance tuning knob, not a correctness
// concern: any positive batch size produces the same distribution.
func bufferCoefficients() int {
	n := cpuid.CPU.CacheLine
	if n <= 0 {
		n = 64
	}
	words := n / 8
	if words < 8 {
		words = 8
	}
	return words
}

// SampleUniformPoly returns a freshly allocated polynomial in coefficient
// form whose coefficients are i.i.d. uniform in [0, Q) via rejection
// sampling on a word mask (never modular reduction of random words, which
// would bias the output).
func SampleUniformPoly(ctx *ring.Context, prng PRNG) *ring.Poly {
	n := ctx.N
	q := ctx.Q
	mask := uint64(1)<<uint(bits.Len64(q-1)) - 1

	coeffs := make([]uint64, n)
	batch := bufferCoefficients()
	buf := make([]byte, batch*8)

	ptr := len(buf)
	for i := 0; i < n; i++ {
		for {
			if ptr == len(buf) {
				if _, err := prng.Read(buf); err != nil {
					panic(err)
				}
				ptr = 0
			}
			v := binary.BigEndian.Uint64(buf[ptr:ptr+8]) & mask
			ptr += 8
			if v < q {
				coeffs[i] = v
				break
			}
		}
	}

	return ctx.NewPolyFromCoeffs(coeffs, ring.FormCoefficient)
}
