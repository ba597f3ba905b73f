package util

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/jbuncle/cli-beans/types"
)

var pathType = reflect.TypeOf(types.Path(""))

// ConvertString converts value to typ using the built-in conversion table:
//
//	bool                          strconv.ParseBool
//	int, int8, int16, int32, int64  strconv.ParseInt (base 10, sized to the kind)
//	uint, uint8 ... uint64        strconv.ParseUint (base 10, sized to the kind)
//	float32, float64              strconv.ParseFloat
//	types.Path                    the string as-is, no existence check
//	string                        the string as-is
//
// Named types of these kinds are returned as the named type. Any other type is not
// recognized and the string is returned unchanged.
func ConvertString(value string, typ reflect.Type) (any, error) {
	if typ == nil {
		return value, nil
	}

	if typ == pathType {
		return types.Path(value), nil
	}

	switch typ.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrParseBool, err)
		}
		return reflect.ValueOf(b).Convert(typ).Interface(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, typ.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrParseInt, err)
		}
		v := reflect.New(typ).Elem()
		v.SetInt(n)
		return v.Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, typ.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrParseUint, err)
		}
		v := reflect.New(typ).Elem()
		v.SetUint(n)
		return v.Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, typ.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrParseFloat, err)
		}
		v := reflect.New(typ).Elem()
		v.SetFloat(f)
		return v.Interface(), nil
	case reflect.String:
		return reflect.ValueOf(value).Convert(typ).Interface(), nil
	}

	return value, nil
}
