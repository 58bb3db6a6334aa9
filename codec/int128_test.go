package codec

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint128_Parse(t *testing.T) {
	u, err := ParseUint128("340282366920938463463374607431768211455")
	require.NoError(t, err)
	require.Equal(t, Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}, u)
	require.Equal(t, "340282366920938463463374607431768211455", u.String())

	u, err = ParseUint128("18446744073709551616")
	require.NoError(t, err)
	require.Equal(t, Uint128{Hi: 1}, u)
	require.False(t, u.IsUint64())

	_, err = ParseUint128("340282366920938463463374607431768211456")
	require.Error(t, err)
	_, err = ParseUint128("-1")
	require.Error(t, err)
	_, err = ParseUint128("twelve")
	require.Error(t, err)
}

func TestInt128_Parse(t *testing.T) {
	i, err := ParseInt128("-1")
	require.NoError(t, err)
	require.Equal(t, Int128From64(-1), i)
	require.True(t, i.Negative())
	v, ok := i.Int64()
	require.True(t, ok)
	require.EqualValues(t, -1, v)

	i, err = ParseInt128("-170141183460469231731687303715884105728")
	require.NoError(t, err)
	require.Equal(t, Int128{Hi: 1 << 63}, i)
	_, ok = i.Int64()
	require.False(t, ok)
	require.Equal(t, "-170141183460469231731687303715884105728", i.String())

	i, err = ParseInt128("170141183460469231731687303715884105727")
	require.NoError(t, err)
	require.Equal(t, Int128{Hi: math.MaxUint64 >> 1, Lo: math.MaxUint64}, i)

	_, err = ParseInt128("170141183460469231731687303715884105728")
	require.Error(t, err)
}

func TestInt128_Big(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		i := Int128From64(v)
		require.Equal(t, 0, i.Big().Cmp(big.NewInt(v)))
		back, err := Int128FromBig(big.NewInt(v))
		require.NoError(t, err)
		require.Equal(t, i, back)
	}
}
