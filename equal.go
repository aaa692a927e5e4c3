package truth

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

var cmpOptions = []gocmp.Option{
	gocmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
	protocmp.Transform(),
}

// valuesEqual reports whether actual and expected are equal for the
// purposes of IsEqualTo.
func valuesEqual(actual, expected any) bool {
	if actual == nil || expected == nil {
		return isNil(actual) && isNil(expected)
	}
	av, ev := reflect.ValueOf(actual), reflect.ValueOf(expected)
	if isNumber(av) && isNumber(ev) {
		return numbersEqual(av, ev)
	}
	if av.Kind() == reflect.Func && ev.Kind() == reflect.Func {
		return av.Type() == ev.Type() && av.Pointer() == ev.Pointer()
	}
	if am, ok := actual.(proto.Message); ok {
		em, ok := expected.(proto.Message)
		return ok && proto.Equal(am, em)
	}
	return deepEqual(actual, expected)
}

func deepEqual(actual, expected any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(actual, expected)
		}
	}()
	return gocmp.Equal(actual, expected, cmpOptions...)
}

// structuralDiff returns a go-cmp diff of two values of the same type that
// hold structs, or "" when a diff would not help. Plain lists and maps are
// already readable from their expected and actual facts.
func structuralDiff(expected, actual any) (d string) {
	if expected == nil || actual == nil {
		return ""
	}
	et, at := reflect.TypeOf(expected), reflect.TypeOf(actual)
	if et != at {
		return ""
	}
	if !holdsStructs(at) {
		return ""
	}
	defer func() {
		if recover() != nil {
			d = ""
		}
	}()
	return strings.TrimRight(gocmp.Diff(expected, actual, cmpOptions...), "\n")
}

// holdsStructs looks through a few levels of pointers and containers.
func holdsStructs(t reflect.Type) bool {
	for depth := 0; depth < 8; depth++ {
		switch t.Kind() {
		case reflect.Struct:
			return true
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		case reflect.Map:
			if t.Key().Kind() == reflect.Struct {
				return true
			}
			t = t.Elem()
		default:
			return false
		}
	}
	return false
}

func isNumber(v reflect.Value) bool {
	return isInteger(v) || isFloat(v)
}

func isInteger(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// numbersEqual compares numbers by value regardless of their types.
// Integers are compared exactly; once a float is involved both sides are
// compared as float64, with NaN equal to itself.
func numbersEqual(a, b reflect.Value) bool {
	if isInteger(a) && isInteger(b) {
		return compareIntegers(a, b) == 0
	}
	x, y := toFloat(a), toFloat(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	return x == y
}

func compareIntegers(a, b reflect.Value) int {
	switch {
	case isSigned(a) && isSigned(b):
		return cmp.Compare(a.Int(), b.Int())
	case !isSigned(a) && !isSigned(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(a):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	default:
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isFloat(v):
		return v.Float()
	case isSigned(v):
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

// compareNatural orders two values of the same ordered kind. It panics for
// values that have no natural order.
func compareNatural(a, b any) int {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInteger(av) && isInteger(bv):
		return compareIntegers(av, bv)
	case isNumber(av) && isNumber(bv):
		return cmp.Compare(toFloat(av), toFloat(bv))
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return cmp.Compare(av.String(), bv.String())
	}
	panic(fmt.Sprintf("truth: cannot order %T and %T", a, b))
}

// isNil reports whether v is nil or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func sameInstance(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	}
	if av.Comparable() {
		return av.Equal(bv)
	}
	return false
}

// elementsOf returns the elements of a slice or array. ok is false for any
// other value.
func elementsOf(v any) (elems []any, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	elems = make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

func mustElements(v any) []any {
	elems, ok := elementsOf(v)
	if !ok {
		panic(fmt.Sprintf("truth: want a slice or array, got %T", v))
	}
	return elems
}

func indexOf(elems []any, v any) int {
	for i, e := range elems {
		if valuesEqual(e, v) {
			return i
		}
	}
	return -1
}
