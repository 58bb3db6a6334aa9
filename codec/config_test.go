package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	var zero Config
	require.Equal(t, zero, NewConfig())

	cfg := NewConfig()
	require.Equal(t, LittleEndian, cfg.Endianness())
	require.Equal(t, FixedInt, cfg.IntEncoding())
	_, bounded := cfg.Limit()
	require.False(t, bounded)
	require.Equal(t, RejectTrailing, cfg.TrailingBytes())
	require.Equal(t, 0, cfg.DepthLimit())
	require.Equal(t, "endian=little ints=fixed limit=none trailing=reject depth=none", cfg.String())
}

func TestConfig_BuildersCopy(t *testing.T) {
	base := NewConfig()
	derived := base.
		WithBigEndian().
		WithVarInts().
		WithLimit(128).
		AllowTrailingBytes().
		WithDepthLimit(4)

	require.Equal(t, NewConfig(), base)
	require.Equal(t, BigEndian, derived.Endianness())
	require.Equal(t, VarInt, derived.IntEncoding())
	limit, bounded := derived.Limit()
	require.True(t, bounded)
	require.EqualValues(t, 128, limit)
	require.Equal(t, AllowTrailing, derived.TrailingBytes())
	require.Equal(t, 4, derived.DepthLimit())
	require.Equal(t, "endian=big ints=variable limit=128 trailing=allow depth=4", derived.String())

	reset := derived.
		WithLittleEndian().
		WithFixedInts().
		WithNoLimit().
		RejectTrailingBytes().
		WithDepthLimit(0)
	require.Equal(t, NewConfig(), reset)
	require.Equal(t, BigEndian, derived.Endianness())
}

func TestConfig_ZeroLimit(t *testing.T) {
	cfg := NewConfig().WithLimit(0)
	limit, bounded := cfg.Limit()
	require.True(t, bounded)
	require.EqualValues(t, 0, limit)

	_, err := Encode(uint8(1), cfg)
	require.Error(t, err)
}

func TestParseOptions(t *testing.T) {
	e, err := ParseEndianness("BIG")
	require.NoError(t, err)
	require.Equal(t, BigEndian, e)
	e, err = ParseEndianness("")
	require.NoError(t, err)
	require.Equal(t, LittleEndian, e)
	_, err = ParseEndianness("middle")
	require.Error(t, err)

	i, err := ParseIntEncoding("variable")
	require.NoError(t, err)
	require.Equal(t, VarInt, i)
	i, err = ParseIntEncoding("fixed")
	require.NoError(t, err)
	require.Equal(t, FixedInt, i)
	_, err = ParseIntEncoding("leb128")
	require.Error(t, err)

	tb, err := ParseTrailingBytes("allow")
	require.NoError(t, err)
	require.Equal(t, AllowTrailing, tb)
	_, err = ParseTrailingBytes("ignore")
	require.Error(t, err)

	cfg := NewConfig().WithEndianness(BigEndian).WithIntEncoding(VarInt)
	require.Equal(t, NewConfig().WithBigEndian().WithVarInts(), cfg)
}
