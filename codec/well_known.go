package codec

import (
	"reflect"
	"time"

	"github.com/pkg/errors"
)

// Char is a Unicode scalar value. A plain rune is an int32 as far as
// reflection can tell, so struct fields that hold characters use Char.
type Char rune

type encoderFunc func(w Writer, v reflect.Value) error
type decoderFunc func(r Reader, v reflect.Value) error

var (
	wellKnownEncoders = make(map[reflect.Type]encoderFunc)
	wellKnownDecoders = make(map[reflect.Type]decoderFunc)
)

// EncodeTime writes t as signed unix seconds followed by a u32 nanosecond
// offset. Since time.Time is a well-known type, you likely do not need to
// call this directly; pass the value to EncodeField instead.
func EncodeTime(w Writer, t time.Time) error {
	if err := w.WriteInt64(t.Unix()); err != nil {
		return err
	}
	return w.WriteUint32(uint32(t.Nanosecond()))
}

// DecodeTime reads a time written by EncodeTime.
func DecodeTime(r Reader) (time.Time, error) {
	sec, err := r.ReadInt64()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to decode timestamp")
	}
	nsec, err := r.ReadUint32()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to decode timestamp")
	}
	if nsec >= uint32(time.Second) {
		return time.Time{}, errors.Errorf("invalid nanosecond offset %d", nsec)
	}
	return time.Unix(sec, int64(nsec)), nil
}

func init() {
	timeType := reflect.TypeOf(time.Time{})
	wellKnownEncoders[timeType] = func(w Writer, v reflect.Value) error {
		return EncodeTime(w, v.Interface().(time.Time))
	}
	wellKnownDecoders[timeType] = func(r Reader, v reflect.Value) error {
		t, err := DecodeTime(r)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(t))
		return nil
	}

	charType := reflect.TypeOf(Char(0))
	wellKnownEncoders[charType] = func(w Writer, v reflect.Value) error {
		return w.WriteChar(rune(v.Int()))
	}
	wellKnownDecoders[charType] = func(r Reader, v reflect.Value) error {
		c, err := r.ReadChar()
		if err != nil {
			return err
		}
		v.SetInt(int64(c))
		return nil
	}

	u128Type := reflect.TypeOf(Uint128{})
	wellKnownEncoders[u128Type] = func(w Writer, v reflect.Value) error {
		return w.WriteUint128(v.Interface().(Uint128))
	}
	wellKnownDecoders[u128Type] = func(r Reader, v reflect.Value) error {
		u, err := r.ReadUint128()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(u))
		return nil
	}

	i128Type := reflect.TypeOf(Int128{})
	wellKnownEncoders[i128Type] = func(w Writer, v reflect.Value) error {
		return w.WriteInt128(v.Interface().(Int128))
	}
	wellKnownDecoders[i128Type] = func(r Reader, v reflect.Value) error {
		i, err := r.ReadInt128()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(i))
		return nil
	}
}
