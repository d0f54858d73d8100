// Package bigscalar implements the same scalar arithmetic contract as
// package ring (modular add/sub/mul/pow/inv, rejection-sampled draws below a
// bound), but over arbitrary-precision integers rather than a single machine
// word. It exists to show that the scheme's scalar layer is an interface, not
// a concrete width: nothing in package fv depends on this backend, and it is
// exercised only by its own tests.
package bigscalar

import (
	"crypto/rand"
	"io"
	"math/big"
)

// AddMod returns (a+b) mod q.
func AddMod(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, q)
}

// SubMod returns (a-b) mod q.
func SubMod(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, q)
}

// MulMod returns (a*b) mod q.
func MulMod(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, q)
}

// PowMod returns a^e mod q.
func PowMod(a, e, q *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, q)
}

// InvMod returns the modular inverse of a modulo q. Calling InvMod(0, q) is a
// programmer error: ModInverse returns nil for a non-invertible input, which
// this function turns into a panic rather than propagating a nil *big.Int.
func InvMod(a, q *big.Int) *big.Int {
	r := new(big.Int).ModInverse(a, q)
	if r == nil {
		panic("bigscalar: a has no inverse mod q")
	}
	return r
}

// Double returns 2*a.
func Double(a *big.Int) *big.Int {
	return new(big.Int).Lsh(a, 1)
}

// One returns the big.Int value 1.
func One() *big.Int { return big.NewInt(1) }

// Zero returns the big.Int value 0.
func Zero() *big.Int { return big.NewInt(0) }

// SampleBelow draws a value uniform in [0, bound) from crypto/rand.
func SampleBelow(bound *big.Int) *big.Int {
	return SampleBelowFromRNG(bound, rand.Reader)
}

// SampleBelowFromRNG draws a value uniform in [0, bound) from the supplied
// reader via rejection sampling, the big-integer analog of
// ring.SampleBelowFromRNG. The caller-supplied reader makes the draw
// reproducible in tests.
func SampleBelowFromRNG(bound *big.Int, rng io.Reader) *big.Int {
	v, err := rand.Int(rng, bound)
	if err != nil {
		panic(err)
	}
	return v
}

// FromU32Raw converts a uint32 into a scalar without reduction.
func FromU32Raw(a uint32) *big.Int {
	return new(big.Int).SetUint64(uint64(a))
}

// FromU64Raw converts a uint64 into a scalar without reduction.
func FromU64Raw(a uint64) *big.Int {
	return new(big.Int).SetUint64(a)
}

// ToU64 converts a scalar back to a uint64. Panics if a does not fit.
func ToU64(a *big.Int) uint64 {
	if !a.IsUint64() {
		panic("bigscalar: value does not fit in a uint64")
	}
	return a.Uint64()
}
