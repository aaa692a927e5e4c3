package platform

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// spew prints pointer addresses in its %+v form regardless of
// DisablePointerAddresses.
var pointerAddresses = regexp.MustCompile(`\(0x[0-9a-f]+(?:->0x[0-9a-f]+)*\)`)

func spewString(v any) string {
	return pointerAddresses.ReplaceAllString(spewConfig.Sprintf("%+v", v), "")
}

// Format renders v for use in a failure message.
//
// Strings are rendered verbatim at the top level and quoted inside
// collections. Floats use the shortest representation that round-trips.
func Format(v any) string {
	return format(v, false)
}

// FormatFloat renders f with the shortest representation that round-trips
// through a float of the given bit size.
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

func format(v any, nested bool) (s string) {
	if v == nil {
		return "nil"
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<%T: formatting panicked: %v>", v, r)
		}
	}()

	switch x := v.(type) {
	case string:
		if nested {
			return strconv.Quote(x)
		}
		return x
	case float64:
		return FormatFloat(x, 64)
	case float32:
		return FormatFloat(float64(x), 32)
	case proto.Message:
		if isNilPointer(x) {
			return "nil"
		}
		text := prototext.MarshalOptions{Multiline: false}.Format(x)
		return fmt.Sprintf("%s{%s}", x.ProtoReflect().Descriptor().FullName(), strings.TrimSpace(text))
	case error:
		if isNilPointer(x) {
			return "nil"
		}
		return x.Error()
	case fmt.Stringer:
		if isNilPointer(x) {
			return "nil"
		}
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(format(rv.Index(i).Interface(), true))
		}
		b.WriteByte(']')
		return b.String()
	case reflect.Map:
		if rv.IsNil() {
			return "{}"
		}
		entries := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries,
				format(iter.Key().Interface(), true)+": "+format(iter.Value().Interface(), true))
		}
		sort.Strings(entries)
		return "{" + strings.Join(entries, ", ") + "}"
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return "nil"
		}
		return fmt.Sprintf("%T", v)
	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}
		return "&" + format(rv.Elem().Interface(), nested)
	case reflect.Struct, reflect.Interface:
		return spewString(v)
	case reflect.Float32, reflect.Float64:
		return FormatFloat(rv.Float(), rv.Type().Bits())
	}
	return fmt.Sprint(v)
}

// TypeName returns the name of v's dynamic type, "nil" for a nil interface.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
