package cli

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"wirecodec/codec"

	"github.com/pkg/errors"
)

// Field is one primitive value of a flat record, written on the command
// line as type:value, for example u32:70000 or string:hello.
type Field struct {
	Type  string
	Value interface{}
}

func (f Field) String() string {
	return f.Type + ":" + FormatValue(f.Value)
}

// Record is a sequence of fields encoded back to back with no prefix.
type Record []Field

func (rec Record) Encode(w codec.Writer) error {
	for _, f := range rec {
		if err := codec.EncodeField(w, f.Value); err != nil {
			return err
		}
	}
	return nil
}

type fieldType struct {
	parse func(s string) (interface{}, error)
	zero  func() interface{}
}

func parseUint(bits int, conv func(uint64) interface{}) func(string) (interface{}, error) {
	return func(s string) (interface{}, error) {
		v, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return nil, err
		}
		return conv(v), nil
	}
}

func parseInt(bits int, conv func(int64) interface{}) func(string) (interface{}, error) {
	return func(s string) (interface{}, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return nil, err
		}
		return conv(v), nil
	}
}

var fieldTypes = map[string]fieldType{
	"bool": {
		parse: func(s string) (interface{}, error) { return strconv.ParseBool(s) },
		zero:  func() interface{} { return new(bool) },
	},
	"u8": {
		parse: parseUint(8, func(v uint64) interface{} { return uint8(v) }),
		zero:  func() interface{} { return new(uint8) },
	},
	"u16": {
		parse: parseUint(16, func(v uint64) interface{} { return uint16(v) }),
		zero:  func() interface{} { return new(uint16) },
	},
	"u32": {
		parse: parseUint(32, func(v uint64) interface{} { return uint32(v) }),
		zero:  func() interface{} { return new(uint32) },
	},
	"u64": {
		parse: parseUint(64, func(v uint64) interface{} { return v }),
		zero:  func() interface{} { return new(uint64) },
	},
	"u128": {
		parse: func(s string) (interface{}, error) { return codec.ParseUint128(s) },
		zero:  func() interface{} { return new(codec.Uint128) },
	},
	"i8": {
		parse: parseInt(8, func(v int64) interface{} { return int8(v) }),
		zero:  func() interface{} { return new(int8) },
	},
	"i16": {
		parse: parseInt(16, func(v int64) interface{} { return int16(v) }),
		zero:  func() interface{} { return new(int16) },
	},
	"i32": {
		parse: parseInt(32, func(v int64) interface{} { return int32(v) }),
		zero:  func() interface{} { return new(int32) },
	},
	"i64": {
		parse: parseInt(64, func(v int64) interface{} { return v }),
		zero:  func() interface{} { return new(int64) },
	},
	"i128": {
		parse: func(s string) (interface{}, error) { return codec.ParseInt128(s) },
		zero:  func() interface{} { return new(codec.Int128) },
	},
	"f32": {
		parse: func(s string) (interface{}, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		},
		zero: func() interface{} { return new(float32) },
	},
	"f64": {
		parse: func(s string) (interface{}, error) { return strconv.ParseFloat(s, 64) },
		zero:  func() interface{} { return new(float64) },
	},
	"char": {
		parse: func(s string) (interface{}, error) {
			if utf8.RuneCountInString(s) != 1 {
				return nil, errors.New("char must be a single character")
			}
			r, size := utf8.DecodeRuneInString(s)
			if r == utf8.RuneError && size == 1 {
				return nil, errors.New("char must be valid utf-8")
			}
			return codec.Char(r), nil
		},
		zero: func() interface{} { return new(codec.Char) },
	},
	"string": {
		parse: func(s string) (interface{}, error) { return s, nil },
		zero:  func() interface{} { return new(string) },
	},
	"bytes": {
		parse: func(s string) (interface{}, error) { return hex.DecodeString(s) },
		zero:  func() interface{} { return new([]byte) },
	},
}

// FieldTypes lists the type names ParseField accepts.
func FieldTypes() []string {
	var names []string
	for name := range fieldTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupType(name string) (fieldType, error) {
	ft, ok := fieldTypes[strings.ToLower(name)]
	if !ok {
		return fieldType{}, errors.Errorf("unknown field type %q, expected one of %s", name, strings.Join(FieldTypes(), ", "))
	}
	return ft, nil
}

func ParseField(arg string) (Field, error) {
	parts := strings.SplitN(arg, ":", 2)
	if len(parts) != 2 {
		return Field{}, errors.Errorf("field %q must be written as type:value", arg)
	}
	ft, err := lookupType(parts[0])
	if err != nil {
		return Field{}, err
	}
	v, err := ft.parse(parts[1])
	if err != nil {
		return Field{}, errors.Wrapf(err, "invalid %s value %q", parts[0], parts[1])
	}
	return Field{
		Type:  strings.ToLower(parts[0]),
		Value: v,
	}, nil
}

func ParseRecord(args []string) (Record, error) {
	rec := make(Record, 0, len(args))
	for _, arg := range args {
		f, err := ParseField(arg)
		if err != nil {
			return nil, err
		}
		rec = append(rec, f)
	}
	return rec, nil
}

// DecodeRecord reads one field of each named type, in order.
func DecodeRecord(r codec.Reader, types []string) (Record, error) {
	rec := make(Record, 0, len(types))
	for i, name := range types {
		ft, err := lookupType(name)
		if err != nil {
			return nil, err
		}
		ptr := ft.zero()
		if err := codec.DecodeField(r, ptr); err != nil {
			return nil, errors.Wrapf(err, "error decoding field %d (%s)", i, name)
		}
		rec = append(rec, Field{
			Type:  strings.ToLower(name),
			Value: reflect.ValueOf(ptr).Elem().Interface(),
		})
	}
	return rec, nil
}

func FormatValue(v interface{}) string {
	switch it := v.(type) {
	case []byte:
		return hex.EncodeToString(it)
	case codec.Char:
		return string(rune(it))
	default:
		return fmt.Sprint(it)
	}
}
