package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type cafeEncodeDecoder struct {
	data []byte
}

func (c *cafeEncodeDecoder) Decode(r Reader) error {
	hi, err := r.ReadUint8()
	if err != nil {
		return err
	}
	lo, err := r.ReadUint8()
	if err != nil {
		return err
	}
	if hi != 0xca || lo != 0xfe {
		return Errorf("invalid cafe decode")
	}
	c.data = []byte{hi, lo}
	return nil
}

func (c *cafeEncodeDecoder) Encode(w Writer) error {
	return EncodeFields(w, uint8(0xca), uint8(0xfe))
}

type fieldsFixture struct {
	f0  cafeEncodeDecoder
	f1  uint8
	f2  uint16
	f3  uint32
	f4  uint64
	f5  []byte
	f6  string
	f7  [32]byte
	f8  [2]uint8
	f9  []uint8
	f10 []string
	f11 time.Time
	f12 [2]string
	f13 []*cafeEncodeDecoder
}

const fieldsFixtureHex = "cafe" +
	"01" +
	"0200" +
	"03000000" +
	"0400000000000000" +
	"0200000000000000ff00" +
	"070000000000000074657374696e67" +
	"1100000000000000000000000000000000000000000000000000000000000000" +
	"0102" +
	"02000000000000000304" +
	"0200000000000000" + "070000000000000074657374696e67" + "070000000000000074657374696e67" +
	"0100000000000000" + "00000000" +
	"070000000000000074657374696e67" + "070000000000000074657374696e67" +
	"0200000000000000" + "01cafe" + "01cafe"

func newFieldsFixture() *fieldsFixture {
	cafe := cafeEncodeDecoder{data: []byte{0xca, 0xfe}}
	exp := &fieldsFixture{
		f0: cafe,
		f1: 1,
		f2: 2,
		f3: 3,
		f4: 4,
		f5: []byte{0xff, 0x00},
		f6: "testing",
		f7: [32]byte{},
		f8: [2]uint8{
			1,
			2,
		},
		f9: []uint8{
			3,
			4,
		},
		f10: []string{
			"testing",
			"testing",
		},
		f11: time.Unix(1, 0),
		f12: [2]string{
			"testing",
			"testing",
		},
		f13: []*cafeEncodeDecoder{
			&cafe,
			&cafe,
		},
	}
	exp.f7[0] = 0x11
	return exp
}

func TestDecodeFields(t *testing.T) {
	exp := newFieldsFixture()

	var actual fieldsFixture
	inputBytes, err := hex.DecodeString(fieldsFixtureHex)
	require.NoError(t, err)
	r := NewSliceReader(inputBytes, NewConfig())
	require.NoError(t, DecodeFields(
		r,
		&actual.f0,
		&actual.f1,
		&actual.f2,
		&actual.f3,
		&actual.f4,
		&actual.f5,
		&actual.f6,
		&actual.f7,
		&actual.f8,
		&actual.f9,
		&actual.f10,
		&actual.f11,
		&actual.f12,
		&actual.f13,
	))
	require.NoError(t, r.Finish())
	require.EqualValues(t, exp.f0.data, actual.f0.data)
	require.EqualValues(t, exp.f1, actual.f1)
	require.EqualValues(t, exp.f2, actual.f2)
	require.EqualValues(t, exp.f3, actual.f3)
	require.EqualValues(t, exp.f4, actual.f4)
	require.EqualValues(t, exp.f5, actual.f5)
	require.EqualValues(t, exp.f6, actual.f6)
	require.EqualValues(t, exp.f7, actual.f7)
	require.EqualValues(t, exp.f8, actual.f8)
	require.EqualValues(t, exp.f9, actual.f9)
	require.EqualValues(t, exp.f10, actual.f10)
	require.True(t, exp.f11.Equal(actual.f11))
	require.EqualValues(t, exp.f12, actual.f12)
	require.Equal(t, exp.f13, actual.f13)
}

func TestEncodeFields(t *testing.T) {
	exp := newFieldsFixture()

	b, err := Encode(writeFunc(func(w Writer) error {
		return EncodeFields(
			w,
			&exp.f0,
			exp.f1,
			exp.f2,
			exp.f3,
			exp.f4,
			exp.f5,
			exp.f6,
			exp.f7,
			exp.f8,
			exp.f9,
			exp.f10,
			exp.f11,
			exp.f12,
			exp.f13,
		)
	}), NewConfig())
	require.NoError(t, err)
	require.Equal(t, fieldsFixtureHex, hex.EncodeToString(b))
}

// writeFunc adapts a function to Encoder.
type writeFunc func(w Writer) error

func (f writeFunc) Encode(w Writer) error {
	return f(w)
}

func TestEncodeField_MapOrder(t *testing.T) {
	m := map[string]uint16{
		"c": 3,
		"a": 1,
		"b": 2,
	}
	exp := "0300000000000000" +
		"0100000000000000" + "61" + "0100" +
		"0100000000000000" + "62" + "0200" +
		"0100000000000000" + "63" + "0300"
	for i := 0; i < 10; i++ {
		b, err := Encode(m, NewConfig())
		require.NoError(t, err)
		require.Equal(t, exp, hex.EncodeToString(b))
	}

	var out map[string]uint16
	raw, err := hex.DecodeString(exp)
	require.NoError(t, err)
	require.NoError(t, Decode(raw, &out, NewConfig()))
	require.Equal(t, m, out)
}

func TestEncodeField_StructTags(t *testing.T) {
	type tagged struct {
		A      uint8
		hidden uint8
		B      uint8 `wire:"-"`
		C      *uint8
		D      *uint8
	}
	c := uint8(9)
	b, err := Encode(&tagged{A: 1, hidden: 2, B: 3, C: &c}, NewConfig())
	require.NoError(t, err)
	require.Equal(t, "01"+"0109"+"00", hex.EncodeToString(b))

	var out tagged
	require.NoError(t, Decode(b, &out, NewConfig()))
	require.EqualValues(t, 1, out.A)
	require.EqualValues(t, 0, out.B)
	require.NotNil(t, out.C)
	require.EqualValues(t, 9, *out.C)
	require.Nil(t, out.D)
}

func TestEncodeField_Time(t *testing.T) {
	ts := time.Unix(-2, 999999999)
	b, err := Encode(ts, NewConfig().WithVarInts())
	require.NoError(t, err)
	// zigzag(-2) = 3 followed by 999999999 as a u32 varint
	require.Equal(t, "03"+"fc"+"ffc99a3b", hex.EncodeToString(b))

	var out time.Time
	require.NoError(t, Decode(b, &out, NewConfig().WithVarInts()))
	require.True(t, ts.Equal(out))

	bad, err := hex.DecodeString("0000000000000000" + "00ca9a3b")
	require.NoError(t, err)
	err = Decode(bad, &out, NewConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid nanosecond offset")
}

func TestDecode_Errors(t *testing.T) {
	var boolVal bool
	err := Decode([]byte{0x02}, &boolVal, NewConfig())
	require.True(t, errors.Is(err, ErrInvalidBool))
	require.Contains(t, err.Error(), "invalid boolean value")

	err = Decode([]byte{}, uint64(0), NewConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "can only decode into pointer types")

	var nilPtr *struct{ A uint8 }
	err = Decode([]byte{0x00}, nilPtr, NewConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot decode into nil pointer")

	_, err = Encode(make(chan int), NewConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot be encoded")

	_, err = Encode(nil, NewConfig())
	require.Error(t, err)
}

func TestEncodeField_PointerToHook(t *testing.T) {
	cafe := &cafeEncodeDecoder{}
	b, err := Encode(&cafe, NewConfig())
	require.NoError(t, err)
	require.Equal(t, "01cafe", hex.EncodeToString(b))

	var out *cafeEncodeDecoder
	require.NoError(t, Decode(b, &out, NewConfig()))
	require.Equal(t, []byte{0xca, 0xfe}, out.data)

	var missing *cafeEncodeDecoder
	b, err = Encode(&missing, NewConfig())
	require.NoError(t, err)
	require.Equal(t, "00", hex.EncodeToString(b))

	out = &cafeEncodeDecoder{}
	require.NoError(t, Decode(b, &out, NewConfig()))
	require.Nil(t, out)
}

func TestField_NilPointers(t *testing.T) {
	var nilHook *cafeEncodeDecoder
	_, err := Encode(nilHook, NewConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot encode nil pointer")

	err = EncodeFields(NewWriter(new(bytes.Buffer), NewConfig()), uint8(1), nilHook)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot encode nil pointer")

	err = Decode([]byte{0xca, 0xfe}, nilHook, NewConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot decode into nil pointer")

	var nilU64 *uint64
	err = Decode(make([]byte, 8), nilU64, NewConfig())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot decode into nil pointer")
}
