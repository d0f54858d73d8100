package bigscalar

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleGaussianStaysWithinTailClamp(t *testing.T) {
	q := testModulus()
	stdev := 3.2
	bound := int64(gaussianTailClamp*stdev) + 1

	for i := 0; i < 2000; i++ {
		v := SampleGaussian(stdev, q)
		require.Equal(t, -1, v.Cmp(q))
		require.GreaterOrEqual(t, v.Sign(), 0)

		signed := new(big.Int).Set(v)
		half := new(big.Int).Rsh(q, 1)
		if v.Cmp(half) > 0 {
			signed.Sub(v, q)
		}
		require.LessOrEqual(t, signed.Int64(), bound)
		require.GreaterOrEqual(t, signed.Int64(), -bound)
	}
}
