package util

import (
	"reflect"
)

// UnwrapType recursively unwraps pointer types and returns the underlying type
func UnwrapType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// TypeOf returns the reflect.Type of T, including interface types
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// PointerTo returns a pointer to a copy of value when value is assignable to elem.
// ok is false when value has another type.
func PointerTo(elem reflect.Type, value any) (ptr any, ok bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || !rv.Type().AssignableTo(elem) {
		return nil, false
	}

	p := reflect.New(elem)
	p.Elem().Set(rv)

	return p.Interface(), true
}
