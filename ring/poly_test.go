package ring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestAddSubAreInverses(t *testing.T) {
	q, err := FindNTTPrime(8, 16)
	require.NoError(t, err)
	ctx, err := NewContext(8, q)
	require.NoError(t, err)

	a := ctx.NewPoly()
	b := ctx.NewPoly()
	for i := 0; i < 8; i++ {
		a.Coeffs[i] = uint64(i)
		b.Coeffs[i] = uint64(2 * i)
	}

	sum := a.Add(b)
	back := sum.Sub(b)

	if diff := cmp.Diff(a.Coeffs, back.Coeffs, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Sub(Add(a,b),b) != a (-want +got):\n%s", diff)
	}
}

func TestCopyNewIsIndependent(t *testing.T) {
	q, err := FindNTTPrime(8, 16)
	require.NoError(t, err)
	ctx, err := NewContext(8, q)
	require.NoError(t, err)

	a := ctx.NewPoly()
	a.Coeffs[0] = 7

	clone := a.CopyNew()
	clone.Coeffs[0] = 9

	require.Equal(t, uint64(7), a.Coeffs[0])

	if diff := cmp.Diff(a.Coeffs, clone.Coeffs); diff == "" {
		t.Fatal("expected CopyNew to produce an independent backing array")
	}
}
