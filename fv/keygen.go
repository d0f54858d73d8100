package fv

import (
	"fmt"

	"github.com/cupcakefv/cupcake/ring/sampling"
)

// KeyGenerator produces secret and public key pairs for a fixed set of
// parameters. Each generator owns its own PRNG: the production constructor
// seeds an unpredictable chacha20 stream, while the PRNG-variant constructor
// accepts a caller-supplied (typically seeded) PRNG for reproducible tests.
type KeyGenerator struct {
	params *Parameters
	prng   sampling.PRNG
}

// NewKeyGenerator returns a key generator drawing from a fresh, production
// strength PRNG.
func NewKeyGenerator(params *Parameters) (*KeyGenerator, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("fv: %w", err)
	}
	return &KeyGenerator{params: params, prng: prng}, nil
}

// NewKeyGeneratorPRNG returns a key generator drawing from the supplied
// PRNG, letting callers reproduce key generation deterministically in tests.
func NewKeyGeneratorPRNG(params *Parameters, prng sampling.PRNG) *KeyGenerator {
	return &KeyGenerator{params: params, prng: prng}
}

// GenerateKeyPair draws a fresh ternary secret key and derives the matching
// public key as the secret-key encryption of the zero plaintext, per the
// scheme's key generation procedure: both keys end up in the scheme's
// canonical representation (NTT form when the ring allows it).
func (kg *KeyGenerator) GenerateKeyPair() (*PublicKey, *SecretKey, error) {
	sk := kg.GenerateSecretKey()
	ct := encryptZeroSK(kg.params, kg.prng, sk)
	return &PublicKey{C0: ct.C0, C1: ct.C1}, sk, nil
}

// GenerateSecretKey draws a fresh ternary secret key polynomial, canonicalized
// into the scheme's representation.
func (kg *KeyGenerator) GenerateSecretKey() *SecretKey {
	s := sampling.SampleTernaryPolyPRNG(kg.params.ctx, kg.prng)
	return &SecretKey{Poly: kg.params.canonicalize(s)}
}
