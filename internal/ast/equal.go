package ast

import (
	"reflect"

	"graft/internal/source"
	"graft/internal/token"
)

var (
	spanType  = reflect.TypeOf(source.Span{})
	tokenType = reflect.TypeOf(token.Token{})
)

// Equal reports structural equality of two nodes. Source spans are ignored,
// and tokens carried inside nodes (separators, macro and attribute bodies)
// compare by kind and text only, so a tree parsed from a rendering of
// another tree compares equal to it.
func Equal(a, b Node) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case spanType:
		return true
	case tokenType:
		ta := a.Interface().(token.Token)
		tb := b.Interface().(token.Token)
		return ta.Kind == tb.Kind && ta.Text == tb.Text
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	default:
		return a.Interface() == b.Interface()
	}
}
