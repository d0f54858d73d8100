package ring

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

// Context is the immutable, shared description of the ring R_q =
// Z_q[X]/(X^n+1): its degree, modulus, Barrett reduction parameters and,
// when the modulus admits it, its negacyclic NTT tables. A Context is
// created once and referenced read-only by every Poly derived from it, the
// way lattigo's Ring is shared across all polynomials of a scheme.
type Context struct {
	N int
	Q uint64

	bred [2]uint64

	AllowsNTT bool
	psiPow    []uint64 // bit-reversed powers of the 2N-th root of unity
	psiInvPow []uint64 // bit-reversed powers of its inverse
	nInv      uint64   // N^-1 mod Q

	// MulFunc is chosen once at construction: MultiplyNTT when AllowsNTT,
	// Multiply (schoolbook) otherwise. The FV layer calls it without ever
	// inspecting which representation is in play (spec's dispatch contract).
	MulFunc func(c *Context, a, b *Poly) *Poly

	cpuFeatures string
}

// NewContext builds a ring context of degree n (a power of two) modulo q.
// NTT support is enabled automatically when q is prime and q ≡ 1 (mod 2n);
// otherwise Multiply falls back to schoolbook convolution and q need only be
// a positive modulus — primality is a requirement of the NTT's primitive
// root, not of modular arithmetic itself.
func NewContext(n int, q uint64) (*Context, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: N=%d is not a power of two", n)
	}
	if q == 0 {
		return nil, fmt.Errorf("ring: Q=%d is not a positive modulus", q)
	}

	c := &Context{
		N:           n,
		Q:           q,
		bred:        BRedParams(q),
		cpuFeatures: cpuid.CPU.BrandName,
	}

	if (q-1)%uint64(2*n) == 0 && new(big.Int).SetUint64(q).ProbablyPrime(20) {
		if err := c.genNTTParams(); err != nil {
			return nil, err
		}
		c.AllowsNTT = true
		c.MulFunc = (*Context).MultiplyNTT
	} else {
		c.MulFunc = (*Context).Multiply
	}

	return c, nil
}

// BredParams returns the context's precomputed Barrett reduction parameters,
// for callers (such as package fv) that need to fold a single scalar multiply
// into a larger operation without going through a full Poly.
func (c *Context) BredParams() [2]uint64 {
	return c.bred
}

// Describe returns a short human-readable summary of the context, in the
// spirit of lattigo exposing AllowsNTT/GetBredParams getters for
// introspection.
func (c *Context) Describe() string {
	mode := "schoolbook"
	if c.AllowsNTT {
		mode = "ntt"
	}
	return fmt.Sprintf("ring(N=%d, Q=%d, bits=%d, mul=%s, cpu=%s)", c.N, c.Q, bits.Len64(c.Q), mode, c.cpuFeatures)
}

// genNTTParams locates a primitive 2N-th root of unity modulo Q and
// precomputes its bit-reversed power table, following ring_context.go's
// genNTTParams: find a generator of Z_Q^*, raise it to (Q-1)/2N to obtain a
// primitive 2N-th root, then build the table in bit-reversed order so the
// in-place Cooley-Tukey/Gentleman-Sande butterflies can index it directly.
func (c *Context) genNTTParams() error {
	n := uint64(c.N)
	q := c.Q

	g, err := primitiveRoot(q)
	if err != nil {
		return err
	}

	power := (q - 1) / (2 * n)
	psi := PowMod(g, power, q)
	psiInv := InvMod(psi, q)

	c.psiPow = make([]uint64, n)
	c.psiInvPow = make([]uint64, n)
	c.psiPow[0] = 1
	c.psiInvPow[0] = 1

	bitLen := bits.Len64(n) - 1
	for j := uint64(1); j < n; j++ {
		prev := bitReverse(j-1, bitLen)
		next := bitReverse(j, bitLen)
		c.psiPow[next] = MulMod(c.psiPow[prev], psi, q, c.bred)
		c.psiInvPow[next] = MulMod(c.psiInvPow[prev], psiInv, q, c.bred)
	}

	c.nInv = InvMod(n%q, q)

	return nil
}

// primitiveRoot returns a generator of the multiplicative group Z_q^*, for
// prime q, by trial-testing small candidates against the prime factors of
// q-1 (the standard generator test: g generates Z_q^* iff g^((q-1)/p) != 1
// mod q for every prime factor p of q-1).
func primitiveRoot(q uint64) (uint64, error) {
	factors := primeFactors(q - 1)
	for g := uint64(2); g < q; g++ {
		isGenerator := true
		for _, p := range factors {
			if PowMod(g, (q-1)/p, q) == 1 {
				isGenerator = false
				break
			}
		}
		if isGenerator {
			return g, nil
		}
	}
	return 0, fmt.Errorf("ring: no generator found for Q=%d", q)
}

// primeFactors returns the distinct prime factors of n via trial division.
func primeFactors(n uint64) []uint64 {
	var factors []uint64
	for p := uint64(2); p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// bitReverse reverses the low bitLen bits of x.
func bitReverse(x uint64, bitLen int) uint64 {
	var r uint64
	for i := 0; i < bitLen; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// FindNTTPrime searches for the smallest prime q of the given bit length
// with q ≡ 1 (mod 2n), so that a ring of degree n modulo q admits the NTT.
// This is not named by the scheme's external interface but is the usual way
// an NTT-friendly modulus is produced ahead of constructing a Context,
// mirroring lattigo's own NTT-friendly prime generator (ring/primes.go).
func FindNTTPrime(n, bitLen int) (uint64, error) {
	if bitLen <= 0 || bitLen > 62 {
		return 0, fmt.Errorf("ring: invalid bit length %d", bitLen)
	}
	step := uint64(2 * n)
	low := uint64(1) << uint(bitLen-1)
	cand := low / step * step
	for {
		q := cand + 1
		if q >= uint64(1)<<uint(bitLen) {
			return 0, fmt.Errorf("ring: no %d-bit NTT-friendly prime found for N=%d", bitLen, n)
		}
		if q >= low && new(big.Int).SetUint64(q).ProbablyPrime(20) {
			return q, nil
		}
		cand += step
	}
}
