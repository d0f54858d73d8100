// Package fv implements the additive-only Fan-Vercauteren homomorphic
// encryption scheme over the ring produced by package ring: key generation,
// public- and secret-key encryption of fixed-length byte vectors, decryption,
// homomorphic addition of two ciphertexts or of a plaintext into a
// ciphertext, and ciphertext re-randomization via noise flooding.
package fv

import (
	"fmt"
	"math"

	"github.com/cupcakefv/cupcake/ring"
)

// DefaultN and DefaultQ are the library's only supported production
// parameter set: a 2048-degree ring modulo a 54-bit NTT-friendly prime
// (q ≡ 1 mod 4096).
const (
	DefaultN = 2048
	DefaultQ = 18014398492704769

	plaintextModulus = 256
	defaultSigma     = 3.2
)

// Parameters bundles a ring context with the scalars FV layers on top of it:
// the plaintext modulus t, the scaling factor Delta = floor(Q/t), and the
// standard deviations of the encryption and flooding noise distributions.
// Parameters are fixed at construction and never mutated afterward, matching
// the "no parameter negotiation" non-goal.
type Parameters struct {
	ctx *ring.Context

	T          uint64
	Delta      uint64
	QDivTwo    uint64
	Sigma      float64
	SigmaFlood float64
}

// NewParameters builds a parameter set for a ring of degree n modulo q, with
// the scheme's fixed plaintext modulus t=256, encryption noise sigma=3.2 and
// flooding noise sigma_flood=1 (Default raises sigma_flood to 2^40). q need
// only be prime when NTT support is desired; otherwise
// any positive modulus is accepted and multiplication falls back to
// schoolbook. Returns an error under the same conditions as ring.NewContext
// (n not a power of two, q zero).
func NewParameters(n int, q uint64) (*Parameters, error) {
	ctx, err := ring.NewContext(n, q)
	if err != nil {
		return nil, fmt.Errorf("fv: %w", err)
	}
	return &Parameters{
		ctx:        ctx,
		T:          plaintextModulus,
		Delta:      q / plaintextModulus,
		QDivTwo:    q / 2,
		Sigma:      defaultSigma,
		SigmaFlood: 1,
	}, nil
}

// Default returns the scheme's single supported production parameter set:
// n=2048, q=18014398492704769, sigma=3.2, sigma_flood=2^40, t=256,
// Delta=floor(q/256).
func Default() *Parameters {
	p, err := NewParameters(DefaultN, DefaultQ)
	if err != nil {
		// DefaultN/DefaultQ are a fixed, known-good NTT-friendly pair;
		// failure here would mean the constants themselves are wrong.
		panic(fmt.Sprintf("fv: default parameters are invalid: %v", err))
	}
	p.SigmaFlood = math.Pow(2, 40)
	return p
}

// N returns the ring degree (and therefore the required plaintext length).
func (p *Parameters) N() int { return p.ctx.N }

// Context returns the underlying ring context, shared read-only across every
// polynomial this package allocates for the scheme.
func (p *Parameters) Context() *ring.Context { return p.ctx }

// canonicalize forward-transforms poly into the scheme's canonical
// representation (NTT form when the context allows it) if it is not already
// in that form. Samplers always return coefficient-form polynomials (per
// their contract); every polynomial this package keeps around — keys,
// ciphertext components — is canonicalized immediately after sampling so
// that ctx.MulFunc and AddInplace never see a representation mismatch.
func (p *Parameters) canonicalize(poly *ring.Poly) *ring.Poly {
	if p.ctx.AllowsNTT && poly.Form == ring.FormCoefficient {
		poly.Forward()
	}
	return poly
}

// multiply dispatches to the context's chosen multiplier (NTT pointwise or
// schoolbook), assuming both operands are already canonicalized.
func (p *Parameters) multiply(a, b *ring.Poly) *ring.Poly {
	return p.ctx.MulFunc(p.ctx, a, b)
}
