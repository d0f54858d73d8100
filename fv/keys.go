package fv

import "github.com/cupcakefv/cupcake/ring"

// SecretKey is a single polynomial with ternary coefficients, stored in the
// scheme's canonical representation (NTT form when the context allows it).
// Created once by KeyGenerator and never mutated thereafter.
type SecretKey struct {
	Poly *ring.Poly
}

// PublicKey is the ciphertext pair (a, b) with b = a*s + e for secret key s
// and small noise e, created once per key pair and immutable afterward.
type PublicKey struct {
	C0, C1 *ring.Poly
}

// Ciphertext is an ordered pair (c0, c1) of polynomials sharing a ring
// context, both in the scheme's canonical representation.
type Ciphertext struct {
	C0, C1 *ring.Poly
}

// CopyNew returns a deep copy of ct.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{C0: ct.C0.CopyNew(), C1: ct.C1.CopyNew()}
}
