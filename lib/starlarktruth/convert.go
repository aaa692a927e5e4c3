package starlarktruth

import (
	"reflect"

	"go.starlark.net/starlark"

	"github.com/gotruth/truth/internal/platform"
)

// Assertions run on Go values. Strings, bools and floats keep their Starlark
// types so that failures print them the way Starlark does; containers
// become the types below.

type noneValue struct{}

func (noneValue) String() string { return "None" }

var none = noneValue{}

// tuple is a converted Starlark tuple. It never equals a converted list.
type tuple []any

func (t tuple) String() string {
	s := platform.Format([]any(t))
	s = s[1 : len(s)-1]
	if len(t) == 1 {
		s += ","
	}
	return "(" + s + ")"
}

type set []any

func (s set) String() string { return "set(" + platform.Format([]any(s)) + ")" }

// reprKey stands in for a dict key with no comparable Go form.
type reprKey string

func (k reprKey) String() string { return string(k) }

// toGo converts a Starlark value for use with the assertion library.
func toGo(v starlark.Value) any {
	switch v := v.(type) {
	case nil, starlark.NoneType:
		return none
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i
		}
		return v.BigInt()
	case starlark.Tuple:
		return tuple(toGoSlice(v))
	case *starlark.List:
		return toGoSlice(v)
	case *starlark.Set:
		return set(toGoSlice(v))
	case *starlark.Dict:
		m := make(map[any]any, v.Len())
		for _, item := range v.Items() {
			m[toGoKey(item[0])] = toGo(item[1])
		}
		return m
	}
	return v
}

func toGoKey(k starlark.Value) any {
	key := toGo(k)
	if !reflect.TypeOf(key).Comparable() {
		return reprKey(k.String())
	}
	return key
}

func toGoSlice(it starlark.Iterable) []any {
	elems := []any{}
	iter := it.Iterate()
	defer iter.Done()
	var x starlark.Value
	for iter.Next(&x) {
		elems = append(elems, toGo(x))
	}
	return elems
}

// elements returns the members of a container, converted. Dicts yield
// their keys. Strings yield their characters only when chars is set.
func elements(v starlark.Value, chars bool) (any, bool) {
	switch v := v.(type) {
	case starlark.String:
		if !chars {
			return nil, false
		}
		elems := []any{}
		for _, c := range v.GoString() {
			elems = append(elems, starlark.String(c))
		}
		return elems, true
	case *starlark.Dict:
		keys := []any{}
		for _, k := range v.Keys() {
			keys = append(keys, toGo(k))
		}
		return keys, true
	case starlark.Tuple, *starlark.List, *starlark.Set:
		return toGo(v), true
	case starlark.Iterable:
		return toGoSlice(v), true
	}
	return nil, false
}

// pairs flattens alternating keys and values.
func pairs(args []starlark.Value) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if i%2 == 0 {
			out[i] = toGoKey(a)
		} else {
			out[i] = toGo(a)
		}
	}
	return out
}
