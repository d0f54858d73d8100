package sampling

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/cupcakefv/cupcake/ring"
)

func testContext(t *testing.T) *ring.Context {
	t.Helper()
	q, err := ring.FindNTTPrime(2048, 40)
	require.NoError(t, err)
	ctx, err := ring.NewContext(2048, q)
	require.NoError(t, err)
	return ctx
}

func keyedPRNG(t *testing.T, seed byte) PRNG {
	t.Helper()
	prng, err := NewKeyedPRNG([]byte{seed, 1, 2, 3})
	require.NoError(t, err)
	return prng
}

func TestSampleUniformPolyStaysInRange(t *testing.T) {
	ctx := testContext(t)
	prng := keyedPRNG(t, 0)
	p := SampleUniformPoly(ctx, prng)
	for _, c := range p.Coeffs {
		require.Less(t, c, ctx.Q)
	}
}

func TestSampleTernaryPolyDistribution(t *testing.T) {
	ctx := testContext(t)
	prng := keyedPRNG(t, 1)

	var zeros, ones, negOnes int
	const rounds = 500
	for r := 0; r < rounds; r++ {
		p := SampleTernaryPolyPRNG(ctx, prng)
		for _, c := range p.Coeffs {
			switch c {
			case 0:
				zeros++
			case 1:
				ones++
			case ctx.Q - 1:
				negOnes++
			default:
				t.Fatalf("ternary sample out of {-1,0,1}: %d", c)
			}
		}
	}

	total := float64(rounds * ctx.N)
	freqZero := float64(zeros) / total
	freqOne := float64(ones) / total
	freqNegOne := float64(negOnes) / total

	// Binomial std error for n draws at p is sqrt(p(1-p)/n); well under 1%
	// here given n of about a million, so a generous 3% tolerance
	// catches a broken distribution without being flaky.
	require.InDelta(t, 0.5, freqZero, 0.03)
	require.InDelta(t, 0.25, freqOne, 0.03)
	require.InDelta(t, 0.25, freqNegOne, 0.03)
}

func TestSampleGaussianPolyEmpiricalStdDev(t *testing.T) {
	ctx := testContext(t)
	prng := keyedPRNG(t, 2)
	const stdev = 3.2

	var samples []float64
	for r := 0; r < 50; r++ {
		p := SampleGaussianPolyPRNG(ctx, stdev, prng)
		for _, c := range p.Coeffs {
			v := int64(c)
			if c > ctx.Q/2 {
				v = int64(c) - int64(ctx.Q)
			}
			samples = append(samples, float64(v))
		}
	}

	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 0.5)

	sd, err := stats.StandardDeviation(samples)
	require.NoError(t, err)
	require.InDelta(t, stdev, sd, 0.5)

	for _, v := range samples {
		require.LessOrEqual(t, math.Abs(v), 6*stdev+1)
	}
}

func TestKeyedPRNGIsDeterministic(t *testing.T) {
	ctx := testContext(t)
	p1 := SampleUniformPoly(ctx, keyedPRNG(t, 9))
	p2 := SampleUniformPoly(ctx, keyedPRNG(t, 9))
	require.Equal(t, p1.Coeffs, p2.Coeffs)
}
