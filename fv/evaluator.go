package fv

import (
	"fmt"

	"github.com/cupcakefv/cupcake/ring/sampling"
)

// Evaluator performs the scheme's homomorphic operations: ciphertext
// addition, plaintext injection and re-randomization. Rerandomize needs
// fresh randomness, so an Evaluator owns a PRNG exactly like Encryptor does.
type Evaluator struct {
	params *Parameters
	prng   sampling.PRNG
}

// NewEvaluator returns an evaluator drawing from a fresh, production
// strength PRNG.
func NewEvaluator(params *Parameters) (*Evaluator, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("fv: %w", err)
	}
	return &Evaluator{params: params, prng: prng}, nil
}

// NewEvaluatorPRNG returns an evaluator drawing from the supplied PRNG.
func NewEvaluatorPRNG(params *Parameters, prng sampling.PRNG) *Evaluator {
	return &Evaluator{params: params, prng: prng}
}

// AddInplace sets ct1 := ct1 + ct2, component-wise. Both ciphertexts must
// share the same ring context and representation; a mismatch panics inside
// Poly.AddInplace (a programmer error, not a runtime condition this layer
// recovers from).
func (ev *Evaluator) AddInplace(ct1, ct2 *Ciphertext) {
	ct1.C0.AddInplace(ct2.C0)
	ct1.C1.AddInplace(ct2.C1)
}

// AddPlaintextInplace injects pt into ct by adding Delta*pt[i] to ct.C1[i]
// for each i. pt must have exactly N() bytes.
func (ev *Evaluator) AddPlaintextInplace(ct *Ciphertext, pt []byte) error {
	if len(pt) != ev.params.N() {
		return fmt.Errorf("fv: plaintext has length %d, want %d", len(pt), ev.params.N())
	}
	addScaledPlaintextInplace(ev.params, ct.C1, pt)
	return nil
}

// Rerandomize masks ct with a fresh public-key encryption of zero and then
// floods ct.C1 with very-large-variance Gaussian noise: the encryption of
// zero provides cryptographic masking, and the flooding noise statistically
// drowns any structural leakage from the original ciphertext's noise, at the
// cost of noise budget (tolerable since the scheme is additive-only).
func (ev *Evaluator) Rerandomize(ct *Ciphertext, pk *PublicKey) {
	mask := encryptZeroPK(ev.params, ev.prng, pk)
	ev.AddInplace(ct, mask)

	flood := ev.params.canonicalize(sampling.SampleGaussianPolyPRNG(ev.params.ctx, ev.params.SigmaFlood, ev.prng))
	ct.C1.AddInplace(flood)
}
