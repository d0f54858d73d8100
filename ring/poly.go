package ring

import "golang.org/x/exp/slices"

// Form tags which representation a Poly's coefficients are stored in.
// Operations are only valid within their declared representation: addition
// and subtraction work in either form, schoolbook Multiply requires
// FormCoefficient, and MultiplyNTT requires FormNTT.
type Form int

const (
	// FormCoefficient is the standard dense coefficient representation.
	FormCoefficient Form = iota
	// FormNTT is the point-value representation on the 2N-th roots of
	// unity, stored in bit-reversed order.
	FormNTT
)

// Poly is a length-N coefficient vector over the ring described by a shared
// Context, interpreted as sum(Coeffs[i]*X^i) mod (X^N+1).
type Poly struct {
	Coeffs []uint64
	Form   Form
	ctx    *Context
}

// NewPoly allocates the zero polynomial in coefficient form.
func (c *Context) NewPoly() *Poly {
	return &Poly{Coeffs: make([]uint64, c.N), Form: FormCoefficient, ctx: c}
}

// NewPolyFromCoeffs wraps an existing coefficient slice (not copied) as a
// polynomial in the given form. The slice must have length N.
func (c *Context) NewPolyFromCoeffs(coeffs []uint64, form Form) *Poly {
	return &Poly{Coeffs: coeffs, Form: form, ctx: c}
}

// Context returns the ring context this polynomial belongs to.
func (p *Poly) Context() *Context { return p.ctx }

// CopyNew returns a deep copy of p.
func (p *Poly) CopyNew() *Poly {
	return &Poly{Coeffs: slices.Clone(p.Coeffs), Form: p.Form, ctx: p.ctx}
}

func mustMatch(a, b *Poly) {
	if a.ctx != b.ctx {
		panic("ring: polynomials do not share a ring context")
	}
	if a.Form != b.Form {
		panic("ring: polynomials are in different representations")
	}
}

// AddInplace sets a := a+b (coefficient-wise, mod Q). a and b must share a
// context and representation.
func (a *Poly) AddInplace(b *Poly) {
	mustMatch(a, b)
	q := a.ctx.Q
	for i := range a.Coeffs {
		a.Coeffs[i] = AddMod(a.Coeffs[i], b.Coeffs[i], q)
	}
}

// SubInplace sets a := a-b (coefficient-wise, mod Q). a and b must share a
// context and representation.
func (a *Poly) SubInplace(b *Poly) {
	mustMatch(a, b)
	q := a.ctx.Q
	for i := range a.Coeffs {
		a.Coeffs[i] = SubMod(a.Coeffs[i], b.Coeffs[i], q)
	}
}

// Add returns a new polynomial equal to a+b.
func (a *Poly) Add(b *Poly) *Poly {
	r := a.CopyNew()
	r.AddInplace(b)
	return r
}

// Sub returns a new polynomial equal to a-b.
func (a *Poly) Sub(b *Poly) *Poly {
	r := a.CopyNew()
	r.SubInplace(b)
	return r
}

// mulScalarInplace multiplies every coefficient of p by the scalar s mod Q.
// Used internally for the N^-1 scaling step of the inverse NTT.
func (p *Poly) mulScalarInplace(s uint64) {
	q := p.ctx.Q
	bred := p.ctx.bred
	for i, x := range p.Coeffs {
		p.Coeffs[i] = MulMod(x, s, q, bred)
	}
}

// Multiply computes the negacyclic convolution of a and b in coefficient
// form: for i, j in [0,N), a[i]*b[j] is accumulated into index (i+j) mod N
// with sign (-1)^floor((i+j)/N). Cost O(N^2); used when the ring does not
// admit the NTT, or for cross-checking MultiplyNTT in tests.
func (c *Context) Multiply(a, b *Poly) *Poly {
	if a.Form != FormCoefficient || b.Form != FormCoefficient {
		panic("ring: schoolbook Multiply requires coefficient form")
	}
	mustMatch(a, b)

	q := a.ctx.Q
	bred := a.ctx.bred
	n := c.N
	out := make([]uint64, n)

	for i := 0; i < n; i++ {
		if a.Coeffs[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if b.Coeffs[j] == 0 {
				continue
			}
			prod := MulMod(a.Coeffs[i], b.Coeffs[j], q, bred)
			k := i + j
			if k < n {
				out[k] = AddMod(out[k], prod, q)
			} else {
				out[k-n] = SubMod(out[k-n], prod, q)
			}
		}
	}

	return &Poly{Coeffs: out, Form: FormCoefficient, ctx: c}
}

// MultiplyNTT computes the element-wise product of a and b, both of which
// must already be in NTT form: c[i] = a[i]*b[i] mod Q. Cost O(N). The
// caller is responsible for any forward/inverse transform.
func (c *Context) MultiplyNTT(a, b *Poly) *Poly {
	if a.Form != FormNTT || b.Form != FormNTT {
		panic("ring: MultiplyNTT requires NTT form")
	}
	mustMatch(a, b)

	q := a.ctx.Q
	bred := a.ctx.bred
	out := make([]uint64, c.N)
	for i := range out {
		out[i] = MulMod(a.Coeffs[i], b.Coeffs[i], q, bred)
	}
	return &Poly{Coeffs: out, Form: FormNTT, ctx: c}
}
