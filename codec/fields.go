package codec

import (
	"bytes"
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

var (
	encoderType = reflect.TypeOf((*Encoder)(nil)).Elem()
	decoderType = reflect.TypeOf((*Decoder)(nil)).Elem()
)

// EncodeFields encodes each item in turn, as a record with no prefix.
func EncodeFields(w Writer, items ...interface{}) error {
	for _, item := range items {
		if err := EncodeField(w, item); err != nil {
			return err
		}
	}

	return nil
}

// EncodeField encodes a single item. Encoder implementations are called
// directly; primitives, well-known types, arrays, slices, maps, structs and
// pointers are handled by reflection. A pointer passed here is dereferenced,
// while pointers nested inside other values encode as optional values.
func EncodeField(w Writer, item interface{}) error {
	if v := reflect.ValueOf(item); v.Kind() == reflect.Ptr && v.IsNil() {
		return errors.New("cannot encode nil pointer")
	}
	var err error
	switch it := item.(type) {
	case Encoder:
		err = it.Encode(w)
	case bool:
		err = w.WriteBool(it)
	case uint8:
		err = w.WriteUint8(it)
	case uint16:
		err = w.WriteUint16(it)
	case uint32:
		err = w.WriteUint32(it)
	case uint64:
		err = w.WriteUint64(it)
	case uint:
		err = w.WriteUint64(uint64(it))
	case int8:
		err = w.WriteInt8(it)
	case int16:
		err = w.WriteInt16(it)
	case int32:
		err = w.WriteInt32(it)
	case int64:
		err = w.WriteInt64(it)
	case int:
		err = w.WriteInt64(int64(it))
	case float32:
		err = w.WriteFloat32(it)
	case float64:
		err = w.WriteFloat64(it)
	case string:
		err = w.WriteString(it)
	case []byte:
		err = w.WriteBytes(it)
	case Uint128:
		err = w.WriteUint128(it)
	case Int128:
		err = w.WriteInt128(it)
	case Char:
		err = w.WriteChar(rune(it))
	default:
		err = encodeReflect(w, item)
	}

	return err
}

func encodeReflect(w Writer, item interface{}) error {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		return errors.New("cannot encode nil value")
	}
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.New("cannot encode nil pointer")
		}
		v = v.Elem()
	}
	return encodeElem(w, v)
}

// encodeValue encodes a value nested inside another one, where pointers
// mean optional values.
func encodeValue(w Writer, v reflect.Value) error {
	if v.Kind() != reflect.Ptr {
		return encodeElem(w, v)
	}
	if v.IsNil() {
		return w.WriteOptionTag(false)
	}
	if err := w.WriteOptionTag(true); err != nil {
		return err
	}
	return encodeElem(w, v.Elem())
}

func encodeElem(w Writer, v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		return encodeValue(w, v)
	}
	t := v.Type()
	if t.Implements(encoderType) {
		return v.Interface().(Encoder).Encode(w)
	}
	if reflect.PtrTo(t).Implements(encoderType) {
		if !v.CanAddr() {
			tmp := reflect.New(t).Elem()
			tmp.Set(v)
			v = tmp
		}
		return v.Addr().Interface().(Encoder).Encode(w)
	}
	if enc := wellKnownEncoders[t]; enc != nil {
		return enc(w, v)
	}

	switch v.Kind() {
	case reflect.Bool:
		return w.WriteBool(v.Bool())
	case reflect.Uint8:
		return w.WriteUint8(uint8(v.Uint()))
	case reflect.Uint16:
		return w.WriteUint16(uint16(v.Uint()))
	case reflect.Uint32:
		return w.WriteUint32(uint32(v.Uint()))
	case reflect.Uint64, reflect.Uint:
		return w.WriteUint64(v.Uint())
	case reflect.Int8:
		return w.WriteInt8(int8(v.Int()))
	case reflect.Int16:
		return w.WriteInt16(int16(v.Int()))
	case reflect.Int32:
		return w.WriteInt32(int32(v.Int()))
	case reflect.Int64, reflect.Int:
		return w.WriteInt64(v.Int())
	case reflect.Float32:
		return w.WriteFloat32(float32(v.Float()))
	case reflect.Float64:
		return w.WriteFloat64(v.Float())
	case reflect.String:
		return w.WriteString(v.String())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := encodeValue(w, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return w.WriteBytes(v.Bytes())
		}
		return WriteSeq(w, v.Len(), func(i int) error {
			return encodeValue(w, v.Index(i))
		})
	case reflect.Map:
		return encodeMap(w, v)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !wireField(t.Field(i)) {
				continue
			}
			if err := encodeValue(w, v.Field(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Errorf("type %s cannot be encoded", t.String())
	}
}

type mapEntry struct {
	raw []byte
	key reflect.Value
}

// encodeMap writes entries ordered by the encoded bytes of their keys so
// that equal maps always produce equal output.
func encodeMap(w Writer, v reflect.Value) error {
	keyCfg := w.Config().WithNoLimit()
	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		enc := newEncoder(keyCfg, &bufferSink{})
		if err := encodeValue(enc, iter.Key()); err != nil {
			return err
		}
		entries = append(entries, mapEntry{
			raw: enc.sink.(*bufferSink).buf,
			key: iter.Key(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].raw, entries[j].raw) < 0
	})

	return WriteMap(w, len(entries), func(i int) error {
		if err := encodeValue(w, entries[i].key); err != nil {
			return err
		}
		return encodeValue(w, v.MapIndex(entries[i].key))
	})
}

func wireField(f reflect.StructField) bool {
	return f.PkgPath == "" && f.Tag.Get("wire") != "-"
}

// DecodeFields decodes each item in turn. Items must be pointers.
func DecodeFields(r Reader, items ...interface{}) error {
	for _, item := range items {
		if err := DecodeField(r, item); err != nil {
			return err
		}
	}

	return nil
}

// DecodeField decodes into item, which must be a pointer or a Decoder.
func DecodeField(r Reader, item interface{}) error {
	if v := reflect.ValueOf(item); v.Kind() == reflect.Ptr && v.IsNil() {
		return errors.New("cannot decode into nil pointer")
	}
	var err error
	switch it := item.(type) {
	case Decoder:
		err = it.Decode(r)
	case *bool:
		var v bool
		if v, err = r.ReadBool(); err == nil {
			*it = v
		}
	case *uint8:
		var v uint8
		if v, err = r.ReadUint8(); err == nil {
			*it = v
		}
	case *uint16:
		var v uint16
		if v, err = r.ReadUint16(); err == nil {
			*it = v
		}
	case *uint32:
		var v uint32
		if v, err = r.ReadUint32(); err == nil {
			*it = v
		}
	case *uint64:
		var v uint64
		if v, err = r.ReadUint64(); err == nil {
			*it = v
		}
	case *int8:
		var v int8
		if v, err = r.ReadInt8(); err == nil {
			*it = v
		}
	case *int16:
		var v int16
		if v, err = r.ReadInt16(); err == nil {
			*it = v
		}
	case *int32:
		var v int32
		if v, err = r.ReadInt32(); err == nil {
			*it = v
		}
	case *int64:
		var v int64
		if v, err = r.ReadInt64(); err == nil {
			*it = v
		}
	case *float32:
		var v float32
		if v, err = r.ReadFloat32(); err == nil {
			*it = v
		}
	case *float64:
		var v float64
		if v, err = r.ReadFloat64(); err == nil {
			*it = v
		}
	case *string:
		var v string
		if v, err = r.ReadString(); err == nil {
			*it = v
		}
	case *[]byte:
		var v []byte
		if v, err = r.ReadBytes(); err == nil {
			*it = v
		}
	default:
		err = decodeReflect(r, item)
	}

	return err
}

func decodeReflect(r Reader, item interface{}) error {
	v := reflect.ValueOf(item)
	if !v.IsValid() || v.Kind() != reflect.Ptr {
		return errors.New("can only decode into pointer types")
	}
	if v.IsNil() {
		return errors.New("cannot decode into nil pointer")
	}
	return decodeElem(r, v.Elem())
}

// decodeValue decodes into a settable value nested inside another one,
// reading pointers as optional values.
func decodeValue(r Reader, v reflect.Value) error {
	if v.Kind() != reflect.Ptr {
		return decodeElem(r, v)
	}
	present, err := r.ReadOptionTag()
	if err != nil {
		return err
	}
	if !present {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	if err := r.Enter(); err != nil {
		return err
	}
	defer r.Leave()
	elem := reflect.New(v.Type().Elem())
	if err := decodeElem(r, elem.Elem()); err != nil {
		return err
	}
	v.Set(elem)
	return nil
}

func decodeElem(r Reader, v reflect.Value) error {
	t := v.Type()
	if reflect.PtrTo(t).Implements(decoderType) {
		return v.Addr().Interface().(Decoder).Decode(r)
	}
	if dec := wellKnownDecoders[t]; dec != nil {
		return dec(r, v)
	}

	switch v.Kind() {
	case reflect.Bool:
		b, err := r.ReadBool()
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Uint8:
		u, err := r.ReadUint8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(u))
	case reflect.Uint16:
		u, err := r.ReadUint16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(u))
	case reflect.Uint32:
		u, err := r.ReadUint32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(u))
	case reflect.Uint64, reflect.Uint:
		u, err := r.ReadUint64()
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return errors.Errorf("%d overflows %s", u, t)
		}
		v.SetUint(u)
	case reflect.Int8:
		i, err := r.ReadInt8()
		if err != nil {
			return err
		}
		v.SetInt(int64(i))
	case reflect.Int16:
		i, err := r.ReadInt16()
		if err != nil {
			return err
		}
		v.SetInt(int64(i))
	case reflect.Int32:
		i, err := r.ReadInt32()
		if err != nil {
			return err
		}
		v.SetInt(int64(i))
	case reflect.Int64, reflect.Int:
		i, err := r.ReadInt64()
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return errors.Errorf("%d overflows %s", i, t)
		}
		v.SetInt(i)
	case reflect.Float32:
		f, err := r.ReadFloat32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
	case reflect.Float64:
		f, err := r.ReadFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.String:
		s, err := r.ReadString()
		if err != nil {
			return err
		}
		v.SetString(s)
	case reflect.Array:
		return decodeArray(r, v)
	case reflect.Slice:
		return decodeSlice(r, v)
	case reflect.Map:
		return decodeMap(r, v)
	case reflect.Struct:
		return decodeStruct(r, v)
	case reflect.Ptr:
		return decodeValue(r, v)
	default:
		return errors.Errorf("type %s cannot be decoded", t.String())
	}

	return nil
}

func decodeArray(r Reader, v reflect.Value) error {
	if err := r.Enter(); err != nil {
		return err
	}
	defer r.Leave()
	for i := 0; i < v.Len(); i++ {
		if err := decodeValue(r, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeSlice(r Reader, v reflect.Value) error {
	t := v.Type()
	if t.Elem().Kind() == reflect.Uint8 {
		b, err := r.ReadBytes()
		if err != nil {
			return err
		}
		v.SetBytes(b)
		return nil
	}

	width := wireWidth(t.Elem())
	n, err := r.ReadSeqLenOf(width)
	if err != nil {
		return err
	}
	if width == 0 && t.Elem().Size() == 0 {
		v.Set(reflect.MakeSlice(t, n, n))
		return nil
	}
	out := reflect.MakeSlice(t, 0, PreallocCap(n))
	err = readElems(r, n, func(i int) error {
		elem := reflect.New(t.Elem()).Elem()
		if err := decodeValue(r, elem); err != nil {
			return err
		}
		out = reflect.Append(out, elem)
		return nil
	})
	if err != nil {
		return err
	}
	v.Set(out)
	return nil
}

func decodeMap(r Reader, v reflect.Value) error {
	t := v.Type()
	width := wireWidth(t.Key()) + wireWidth(t.Elem())
	n, err := r.ReadMapLenOf(width)
	if err != nil {
		return err
	}
	if width == 0 && t.Key().Size() == 0 && t.Elem().Size() == 0 {
		// every entry shares the single zero key
		out := reflect.MakeMapWithSize(t, 1)
		if n > 0 {
			out.SetMapIndex(reflect.Zero(t.Key()), reflect.Zero(t.Elem()))
		}
		v.Set(out)
		return nil
	}
	out := reflect.MakeMapWithSize(t, PreallocCap(n))
	err = readElems(r, n, func(i int) error {
		key := reflect.New(t.Key()).Elem()
		if err := decodeValue(r, key); err != nil {
			return err
		}
		val := reflect.New(t.Elem()).Elem()
		if err := decodeValue(r, val); err != nil {
			return err
		}
		out.SetMapIndex(key, val)
		return nil
	})
	if err != nil {
		return err
	}
	v.Set(out)
	return nil
}

// wireWidth returns the fewest bytes a value of type t can encode to, as
// either 0 or 1. Types with hooks are assumed to write at least one byte.
func wireWidth(t reflect.Type) uint64 {
	if t.Implements(encoderType) || reflect.PtrTo(t).Implements(decoderType) {
		return 1
	}
	if wellKnownDecoders[t] != nil {
		return 1
	}
	switch t.Kind() {
	case reflect.Array:
		if t.Len() == 0 {
			return 0
		}
		return wireWidth(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if wireField(t.Field(i)) && wireWidth(t.Field(i).Type) > 0 {
				return 1
			}
		}
		return 0
	default:
		return 1
	}
}

func decodeStruct(r Reader, v reflect.Value) error {
	if err := r.Enter(); err != nil {
		return err
	}
	defer r.Leave()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if !wireField(t.Field(i)) {
			continue
		}
		if err := decodeValue(r, v.Field(i)); err != nil {
			return err
		}
	}
	return nil
}
