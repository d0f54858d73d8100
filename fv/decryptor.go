package fv

import "github.com/cupcakefv/cupcake/ring"

// Decryptor recovers plaintexts from ciphertexts under a secret key.
// Decryption needs no randomness and therefore carries no PRNG.
type Decryptor struct {
	params *Parameters
}

// NewDecryptor returns a decryptor for the given parameters.
func NewDecryptor(params *Parameters) *Decryptor {
	return &Decryptor{params: params}
}

// DecryptNew recovers the plaintext byte vector encrypted in ct under sk:
// phase = c1 - c0*s, then each coefficient x is rounded to the nearest
// multiple of Delta and descaled: m[i] = floor((256*x + floor(q/2)) / q) mod
// 256. The q/2 rounding term converts truncation toward zero into rounding
// to nearest, tolerating noise up to +/-q/(2t).
func (d *Decryptor) DecryptNew(ct *Ciphertext, sk *SecretKey) []byte {
	p := d.params
	q := p.ctx.Q

	temp := p.multiply(ct.C0, sk.Poly)
	phase := ct.C1.CopyNew()
	phase.SubInplace(temp)

	if phase.Form == ring.FormNTT {
		phase.Inverse()
	}

	// 256*x fits comfortably in a uint64 since x < q < 2^54, so the whole
	// numerator (at most ~2^62) needs no extended-precision arithmetic.
	out := make([]byte, p.N())
	for i, x := range phase.Coeffs {
		numerator := x*p.T + p.QDivTwo
		out[i] = byte((numerator / q) % p.T)
	}
	return out
}
