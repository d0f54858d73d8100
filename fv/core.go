package fv

import (
	"github.com/cupcakefv/cupcake/ring"
	"github.com/cupcakefv/cupcake/ring/sampling"
)

// encryptZeroSK computes the secret-key encryption of the zero plaintext
// under sk: a <- uniform, e <- Gaussian(sigma), b <- a*s + e. This is the
// shared core of both key generation (the public key is an encryption of
// zero under the freshly-sampled secret key) and EncryptSK (which starts
// from this and then injects the scaled plaintext).
func encryptZeroSK(p *Parameters, prng sampling.PRNG, sk *SecretKey) *Ciphertext {
	a := p.canonicalize(sampling.SampleUniformPoly(p.ctx, prng))
	e := p.canonicalize(sampling.SampleGaussianPolyPRNG(p.ctx, p.Sigma, prng))

	b := p.multiply(a, sk.Poly)
	b.AddInplace(e)

	return &Ciphertext{C0: a, C1: b}
}

// encryptZeroPK computes the public-key encryption of the zero plaintext
// under pk: u <- ternary, e1, e2 <- Gaussian(sigma), c0 <- a*u + e1,
// c1 <- b*u + e2. This is the shared core of Encrypt and Rerandomize's
// masking step.
func encryptZeroPK(p *Parameters, prng sampling.PRNG, pk *PublicKey) *Ciphertext {
	u := p.canonicalize(sampling.SampleTernaryPolyPRNG(p.ctx, prng))
	e1 := p.canonicalize(sampling.SampleGaussianPolyPRNG(p.ctx, p.Sigma, prng))
	e2 := p.canonicalize(sampling.SampleGaussianPolyPRNG(p.ctx, p.Sigma, prng))

	c0 := p.multiply(pk.C0, u)
	c0.AddInplace(e1)

	c1 := p.multiply(pk.C1, u)
	c1.AddInplace(e2)

	return &Ciphertext{C0: c0, C1: c1}
}

// addScaledPlaintextInplace adds Delta*pt[i] into poly's i-th coefficient,
// for each i. Per the resolved open question on plaintext injection (see
// SPEC_FULL.md), this always operates in coefficient form: if poly is in NTT
// form it is inverse-transformed first and forward-transformed again
// afterward, so the addition always targets the actual plaintext
// coefficients rather than scrambled NTT-domain values.
func addScaledPlaintextInplace(p *Parameters, poly *ring.Poly, pt []byte) {
	wasNTT := poly.Form == ring.FormNTT
	if wasNTT {
		poly.Inverse()
	}

	q := p.ctx.Q
	bred := p.ctx.BredParams()
	for i, b := range pt {
		scaled := ring.MulMod(uint64(b), p.Delta, q, bred)
		poly.Coeffs[i] = ring.AddMod(poly.Coeffs[i], scaled, q)
	}

	if wasNTT {
		poly.Forward()
	}
}
