package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement form.
type Int128 struct {
	Hi uint64
	Lo uint64
}

var (
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	twoTo128   = new(big.Int).Lsh(big.NewInt(1), 128)
)

func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func (u Uint128) IsUint64() bool {
	return u.Hi == 0
}

func (u Uint128) Big() *big.Int {
	hi := new(big.Int).SetUint64(u.Hi)
	return hi.Lsh(hi, 64).Or(hi, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 || b.Cmp(maxUint128) > 0 {
		return Uint128{}, errors.Errorf("%s overflows u128", b)
	}
	var buf [16]byte
	b.FillBytes(buf[:])
	return Uint128{
		Hi: binary.BigEndian.Uint64(buf[:8]),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	}, nil
}

func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, errors.Errorf("invalid u128: %s", s)
	}
	return Uint128FromBig(b)
}

func Int128From64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = ^uint64(0)
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

func (i Int128) Negative() bool {
	return i.Hi>>63 == 1
}

// Int64 returns the value as an int64 and whether it fits without loss.
func (i Int128) Int64() (int64, bool) {
	v := int64(i.Lo)
	return v, Int128From64(v) == i
}

func (i Int128) Big() *big.Int {
	b := Uint128(i).Big()
	if i.Negative() {
		b.Sub(b, twoTo128)
	}
	return b
}

func (i Int128) String() string {
	return i.Big().String()
}

func Int128FromBig(b *big.Int) (Int128, error) {
	if b.Cmp(minInt128) < 0 || b.Cmp(maxInt128) > 0 {
		return Int128{}, errors.Errorf("%s overflows i128", b)
	}
	v := new(big.Int).Set(b)
	if v.Sign() < 0 {
		v.Add(v, twoTo128)
	}
	u, err := Uint128FromBig(v)
	if err != nil {
		return Int128{}, err
	}
	return Int128(u), nil
}

func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, errors.Errorf("invalid i128: %s", s)
	}
	return Int128FromBig(b)
}

func putUint128(b []byte, order binary.ByteOrder, v Uint128) {
	if order == binary.BigEndian {
		order.PutUint64(b[:8], v.Hi)
		order.PutUint64(b[8:16], v.Lo)
		return
	}
	order.PutUint64(b[:8], v.Lo)
	order.PutUint64(b[8:16], v.Hi)
}

func getUint128(b []byte, order binary.ByteOrder) Uint128 {
	if order == binary.BigEndian {
		return Uint128{Hi: order.Uint64(b[:8]), Lo: order.Uint64(b[8:16])}
	}
	return Uint128{Lo: order.Uint64(b[:8]), Hi: order.Uint64(b[8:16])}
}
