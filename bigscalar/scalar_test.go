package bigscalar

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testModulus() *big.Int {
	// Same 54-bit NTT-friendly prime fv.Default() uses, exercised here purely
	// as an arbitrary-precision modulus with no NTT involved.
	q, _ := new(big.Int).SetString("18014398492704769", 10)
	return q
}

func TestAddSubMulModAgreeWithModuloReference(t *testing.T) {
	q := testModulus()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 10000; i++ {
		a := big.NewInt(rng.Int63n(1 << 40))
		b := big.NewInt(rng.Int63n(1 << 40))

		wantAdd := new(big.Int).Mod(new(big.Int).Add(a, b), q)
		require.Equal(t, 0, wantAdd.Cmp(AddMod(a, b, q)))

		wantSub := new(big.Int).Mod(new(big.Int).Sub(a, b), q)
		require.Equal(t, 0, wantSub.Cmp(SubMod(a, b, q)))

		wantMul := new(big.Int).Mod(new(big.Int).Mul(a, b), q)
		require.Equal(t, 0, wantMul.Cmp(MulMod(a, b, q)))
	}
}

func TestInvModIsMultiplicativeInverse(t *testing.T) {
	q := testModulus()
	rng := rand.New(rand.NewSource(8))

	for i := 0; i < 1000; i++ {
		a := big.NewInt(rng.Int63n(1<<40) + 1)
		inv := InvMod(a, q)
		require.Equal(t, 0, big.NewInt(1).Cmp(MulMod(a, inv, q)))
	}
}

func TestSampleBelowStaysInBounds(t *testing.T) {
	bound := big.NewInt(251)
	for i := 0; i < 1000; i++ {
		v := SampleBelow(bound)
		require.Equal(t, -1, v.Cmp(bound))
		require.GreaterOrEqual(t, v.Sign(), 0)
	}
}
