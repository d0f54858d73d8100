// Package ring implements modular scalar arithmetic and polynomial ring
// operations over R_q = Z_q[X]/(X^n+1), including Barrett-reduced modular
// arithmetic, the negacyclic number-theoretic transform, and NTT-enabled
// versus schoolbook polynomial multiplication.
package ring

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math/big"
	"math/bits"
)

// BRedParams computes the Barrett reduction parameters for modulus q:
// floor(2^128/q) split into its high and low 64-bit words.
func BRedParams(q uint64) [2]uint64 {
	r := new(big.Int).Lsh(big.NewInt(1), 128)
	r.Quo(r, new(big.Int).SetUint64(q))

	hi := new(big.Int).Rsh(r, 64).Uint64()
	lo := r.Uint64()

	return [2]uint64{hi, lo}
}

// BRedAdd reduces x modulo q using a single Barrett step, where x may be up
// to twice the size of q. The result lies in [0, q).
func BRedAdd(x, q uint64, u [2]uint64) uint64 {
	s0, _ := bits.Mul64(x, u[0])
	r := x - s0*q
	if r >= q {
		r -= q
	}
	return r
}

// BRed computes x*y mod q via Barrett reduction. The result lies in [0, q).
func BRed(x, y, q uint64, u [2]uint64) uint64 {
	var lhi, mhi, mlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	lhi, _ = bits.Mul64(alo, u[1])

	mhi, mlo = bits.Mul64(alo, u[0])
	s0, carry = bits.Add64(mlo, lhi, 0)
	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, u[1])
	_, carry = bits.Add64(mlo, s0, 0)
	lhi = mhi + carry

	s0 = ahi*u[0] + s1 + lhi

	r := alo - s0*q
	if r >= q {
		r -= q
	}
	return r
}

// CRed returns a mod q, assuming 0 <= a < 2*q.
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// AddMod returns (a+b) mod q. a and b must already be reduced modulo q.
func AddMod(a, b, q uint64) uint64 {
	return CRed(a+b, q)
}

// SubMod returns (a-b) mod q. a and b must already be reduced modulo q.
func SubMod(a, b, q uint64) uint64 {
	return CRed(a+q-b, q)
}

// MulMod returns (a*b) mod q via Barrett reduction.
func MulMod(a, b, q uint64, u [2]uint64) uint64 {
	return BRed(a, b, q, u)
}

// PowMod returns a^e mod q by right-to-left square-and-multiply.
func PowMod(a, e, q uint64) uint64 {
	u := BRedParams(q)
	result := uint64(1) % q
	base := a % q
	for e > 0 {
		if e&1 == 1 {
			result = BRed(result, base, q, u)
		}
		base = BRed(base, base, q, u)
		e >>= 1
	}
	return result
}

// InvMod returns the modular inverse of a modulo the prime q, computed as
// a^(q-2) mod q. Calling InvMod(0, q) is a programmer error: the result is
// unspecified (the implementation returns 0) and must not be relied upon.
func InvMod(a, q uint64) uint64 {
	if a == 0 {
		return 0
	}
	return PowMod(a, q-2, q)
}

// SampleBelow draws a value uniform in [0, bound) from crypto/rand using
// rejection sampling on the next-power-of-two mask: modular reduction of a
// random word would bias the output and is never used.
func SampleBelow(bound uint64) uint64 {
	return SampleBelowFromRNG(bound, rand.Reader)
}

// SampleBelowFromRNG draws a value uniform in [0, bound) from the supplied
// reader, via rejection sampling. The caller-supplied reader makes the draw
// reproducible in tests.
func SampleBelowFromRNG(bound uint64, rng io.Reader) uint64 {
	if bound == 0 {
		return 0
	}
	mask := uint64(1)<<uint(bits.Len64(bound-1)) - 1
	var buf [8]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			panic(err)
		}
		v := binary.BigEndian.Uint64(buf[:]) & mask
		if v < bound {
			return v
		}
	}
}

// FromU32Raw converts a uint32 into a scalar without reduction.
func FromU32Raw(a uint32) uint64 {
	return uint64(a)
}

// FromU64Raw converts a uint64 into a scalar without reduction.
func FromU64Raw(a uint64) uint64 {
	return a
}

// ToU64 converts a scalar back to a uint64. Loss-free when q < 2^64.
func ToU64(a uint64) uint64 {
	return a
}
