package ring

// Forward transforms p in place from coefficient form to NTT form (point
// values on the 2N-th roots of unity, in bit-reversed order), using an
// iterative Cooley-Tukey decimation-in-time negacyclic NTT: the i-th
// butterfly at stage s is twisted by a precomputed bit-reversed power of
// psi, so no separate psi-premultiplication pass is needed.
//
// Calling Forward on a polynomial already in NTT form is a contract
// violation (spec's representation invariant) and panics.
func (p *Poly) Forward() {
	if !p.ctx.AllowsNTT {
		panic("ring: context does not support NTT")
	}
	if p.Form != FormCoefficient {
		panic("ring: Forward requires coefficient form")
	}

	n := uint64(p.ctx.N)
	q := p.ctx.Q
	bred := p.ctx.bred
	psi := p.ctx.psiPow
	coeffs := p.Coeffs

	t := n
	for m := uint64(1); m < n; m <<= 1 {
		t >>= 1
		for i := uint64(0); i < m; i++ {
			j1 := 2 * i * t
			j2 := j1 + t - 1
			f := psi[m+i]
			for j := j1; j <= j2; j++ {
				u, v := coeffs[j], coeffs[j+t]
				vp := BRed(v, f, q, bred)
				coeffs[j] = CRed(u+vp, q)
				coeffs[j+t] = CRed(u+q-vp, q)
			}
		}
	}

	p.Form = FormNTT
}

// Inverse transforms p in place from NTT form back to coefficient form,
// using an iterative Gentleman-Sande decimation-in-frequency negacyclic
// inverse NTT followed by an N^-1 scaling pass. inverse(forward(p)) is the
// identity on every coefficient.
func (p *Poly) Inverse() {
	if p.Form != FormNTT {
		panic("ring: Inverse requires NTT form")
	}

	n := uint64(p.ctx.N)
	q := p.ctx.Q
	bred := p.ctx.bred
	psiInv := p.ctx.psiInvPow
	coeffs := p.Coeffs

	t := uint64(1)
	for m := n >> 1; m >= 1; m >>= 1 {
		j1 := uint64(0)
		for i := uint64(0); i < m; i++ {
			j2 := j1 + t - 1
			f := psiInv[m+i]
			for j := j1; j <= j2; j++ {
				u, v := coeffs[j], coeffs[j+t]
				coeffs[j] = CRed(u+v, q)
				coeffs[j+t] = BRed(CRed(u+q-v, q), f, q, bred)
			}
			j1 += t << 1
		}
		t <<= 1
	}

	p.Form = FormCoefficient
	p.mulScalarInplace(p.ctx.nInv)
}
