package ring

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const testQ uint64 = 18014398492704769

func TestAddSubMulModAgreeWithBigInt(t *testing.T) {
	q := new(big.Int).SetUint64(testQ)
	u := BRedParams(testQ)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100000; i++ {
		a := uint64(rng.Int63n(int64(testQ)))
		b := uint64(rng.Int63n(int64(testQ)))

		ba, bb := new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)

		wantAdd := new(big.Int).Mod(new(big.Int).Add(ba, bb), q).Uint64()
		require.Equal(t, wantAdd, AddMod(a, b, testQ))

		wantSub := new(big.Int).Mod(new(big.Int).Sub(ba, bb), q).Uint64()
		require.Equal(t, wantSub, SubMod(a, b, testQ))

		wantMul := new(big.Int).Mod(new(big.Int).Mul(ba, bb), q).Uint64()
		require.Equal(t, wantMul, MulMod(a, b, testQ, u))
	}
}

func TestPowModMatchesBigInt(t *testing.T) {
	q := new(big.Int).SetUint64(testQ)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		a := uint64(rng.Int63n(int64(testQ)))
		e := uint64(rng.Int63n(1 << 20))

		want := new(big.Int).Exp(new(big.Int).SetUint64(a), new(big.Int).SetUint64(e), q).Uint64()
		require.Equal(t, want, PowMod(a, e, testQ))
	}
}

func TestInvModIsMultiplicativeInverse(t *testing.T) {
	u := BRedParams(testQ)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		a := uint64(rng.Int63n(int64(testQ)-1)) + 1
		inv := InvMod(a, testQ)
		require.Equal(t, uint64(1), MulMod(a, inv, testQ, u))
	}
}

func TestSampleBelowFromRNGStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	bound := uint64(251)
	for i := 0; i < 10000; i++ {
		v := SampleBelowFromRNG(bound, byteReaderFromRand(rng))
		require.Less(t, v, bound)
	}
}

// byteReaderFromRand adapts math/rand.Rand to io.Reader for deterministic
// tests of SampleBelowFromRNG without pulling in crypto/rand.
type randReader struct{ r *rand.Rand }

func (rr randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.Intn(256))
	}
	return len(p), nil
}

func byteReaderFromRand(r *rand.Rand) randReader {
	return randReader{r: r}
}
