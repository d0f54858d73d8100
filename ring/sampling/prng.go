// Package sampling provides the seedable pseudo-random source shared by the
// ring package's uniform, ternary and Gaussian samplers, and the two
// concrete PRNGs built on it: a chacha20-backed CSPRNG for production use
// and a blake3-backed keyed XOF for deterministic, reproducible tests.
package sampling

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
)

// PRNG is the randomness source every sampler draws from. Implementations
// must be safe for a single goroutine at a time; callers needing
// concurrency use one PRNG per goroutine.
type PRNG interface {
	io.Reader
}

// NewPRNG returns a cryptographically strong, non-reproducible PRNG seeded
// from crypto/rand, suitable for production key generation and encryption.
func NewPRNG() (PRNG, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("sampling: seeding chacha20 PRNG: %w", err)
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("sampling: seeding chacha20 PRNG: %w", err)
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &chachaPRNG{cipher: c}, nil
}

// chachaPRNG turns a chacha20 keystream into an io.Reader by encrypting an
// all-zero buffer: the output is the raw keystream.
type chachaPRNG struct {
	cipher *chacha20.Cipher
}

func (p *chachaPRNG) Read(out []byte) (int, error) {
	for i := range out {
		out[i] = 0
	}
	p.cipher.XORKeyStream(out, out)
	return len(out), nil
}

// NewKeyedPRNG returns a deterministic PRNG derived from key via the blake3
// extendable-output function. Two PRNGs constructed from the same key
// produce byte-identical streams, which is how encryption and sampling are
// made reproducible in tests (spec's PRNG-variant samplers).
func NewKeyedPRNG(key []byte) (PRNG, error) {
	h := blake3.New()
	if _, err := h.Write(key); err != nil {
		return nil, err
	}
	return h.Digest(), nil
}
