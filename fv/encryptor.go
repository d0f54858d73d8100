package fv

import (
	"fmt"

	"github.com/cupcakefv/cupcake/ring/sampling"
)

// Encryptor produces ciphertexts under either a public or a secret key.
// Like KeyGenerator, it owns a PRNG: a production instance draws from a
// fresh chacha20 stream, while the PRNG-variant constructor takes a seeded
// PRNG so that encryption can be reproduced for testing.
type Encryptor struct {
	params *Parameters
	prng   sampling.PRNG
}

// NewEncryptor returns an encryptor drawing from a fresh, production
// strength PRNG.
func NewEncryptor(params *Parameters) (*Encryptor, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("fv: %w", err)
	}
	return &Encryptor{params: params, prng: prng}, nil
}

// NewEncryptorPRNG returns an encryptor drawing from the supplied PRNG.
func NewEncryptorPRNG(params *Parameters, prng sampling.PRNG) *Encryptor {
	return &Encryptor{params: params, prng: prng}
}

func (e *Encryptor) checkLength(pt []byte) error {
	if len(pt) != e.params.N() {
		return fmt.Errorf("fv: plaintext has length %d, want %d", len(pt), e.params.N())
	}
	return nil
}

// EncryptNew encrypts pt under the public key pk. pt must have exactly
// N()  bytes, each in [0, 256).
func (e *Encryptor) EncryptNew(pt []byte, pk *PublicKey) (*Ciphertext, error) {
	if err := e.checkLength(pt); err != nil {
		return nil, err
	}
	ct := encryptZeroPK(e.params, e.prng, pk)
	addScaledPlaintextInplace(e.params, ct.C1, pt)
	return ct, nil
}

// EncryptZeroNew encrypts the zero plaintext under the public key pk. This is
// the building block Rerandomize uses to mask a ciphertext, exposed directly
// since it is a separately useful operation in its own right.
func (e *Encryptor) EncryptZeroNew(pk *PublicKey) *Ciphertext {
	return encryptZeroPK(e.params, e.prng, pk)
}

// EncryptSKNew encrypts pt under the secret key sk. pt must have exactly
// N() bytes, each in [0, 256).
func (e *Encryptor) EncryptSKNew(pt []byte, sk *SecretKey) (*Ciphertext, error) {
	if err := e.checkLength(pt); err != nil {
		return nil, err
	}
	ct := encryptZeroSK(e.params, e.prng, sk)
	addScaledPlaintextInplace(e.params, ct.C1, pt)
	return ct, nil
}
