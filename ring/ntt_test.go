package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNTTRoundTrip(t *testing.T) {
	for _, n := range []int{4, 8, 16, 64} {
		q, err := FindNTTPrime(n, 20)
		require.NoError(t, err)

		ctx, err := NewContext(n, q)
		require.NoError(t, err)
		require.True(t, ctx.AllowsNTT)

		rng := rand.New(rand.NewSource(int64(n)))
		p := ctx.NewPoly()
		for i := range p.Coeffs {
			p.Coeffs[i] = uint64(rng.Int63n(int64(q)))
		}
		original := p.CopyNew()

		p.Forward()
		require.Equal(t, FormNTT, p.Form)
		p.Inverse()
		require.Equal(t, FormCoefficient, p.Form)

		require.Equal(t, original.Coeffs, p.Coeffs)
	}
}

func TestSchoolbookMatchesNTTMultiplication(t *testing.T) {
	n := 16
	q, err := FindNTTPrime(n, 20)
	require.NoError(t, err)

	ctx, err := NewContext(n, q)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	a := ctx.NewPoly()
	b := ctx.NewPoly()
	for i := 0; i < n; i++ {
		a.Coeffs[i] = uint64(rng.Int63n(int64(q)))
		b.Coeffs[i] = uint64(rng.Int63n(int64(q)))
	}

	schoolbook := ctx.Multiply(a, b)

	aNTT, bNTT := a.CopyNew(), b.CopyNew()
	aNTT.Forward()
	bNTT.Forward()
	viaNTT := ctx.MultiplyNTT(aNTT, bNTT)
	viaNTT.Inverse()

	require.Equal(t, schoolbook.Coeffs, viaNTT.Coeffs)
}

func TestForwardOnNTTFormPanics(t *testing.T) {
	n := 8
	q, err := FindNTTPrime(n, 16)
	require.NoError(t, err)
	ctx, err := NewContext(n, q)
	require.NoError(t, err)

	p := ctx.NewPoly()
	p.Forward()
	require.Panics(t, func() { p.Forward() })
}

func TestMismatchedRepresentationPanics(t *testing.T) {
	n := 8
	q, err := FindNTTPrime(n, 16)
	require.NoError(t, err)
	ctx, err := NewContext(n, q)
	require.NoError(t, err)

	a := ctx.NewPoly()
	b := ctx.NewPoly()
	b.Forward()
	require.Panics(t, func() { a.AddInplace(b) })
}
