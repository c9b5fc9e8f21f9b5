// Package equalutil implements the value-equality relation used when
// attribute values of two features are compared.
//
// Values decoded from different stores rarely share Go types: a lane count
// may arrive as int from one source and float64 from another, and a street
// name may be composed or decomposed Unicode. Key maps each value to a
// canonical form so that such values compare equal and hash to the same map
// key.
package equalutil

import (
	"math"
	"reflect"

	"github.com/erraggy/dirattrs/geometry"
	"github.com/twpayne/go-geom"
	"golang.org/x/text/unicode/norm"
)

// Key returns the canonical form of v: NFC-normalized strings, int64 for
// integral numbers and float64 for the rest. Other values are returned as is.
func Key(v any) any {
	switch x := v.(type) {
	case string:
		return norm.NFC.String(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return canonicalUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return canonicalUint(x)
	case float32:
		return canonicalFloat(float64(x))
	case float64:
		return canonicalFloat(x)
	default:
		return v
	}
}

// Equal reports whether a and b are the same attribute value. Lines are
// compared exactly with geometry.Equal.
func Equal(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if la, ok := a.(*geom.LineString); ok {
		lb, ok := b.(*geom.LineString)
		return ok && geometry.Equal(la, lb)
	}
	return reflect.DeepEqual(Key(a), Key(b))
}

// Hashable reports whether v can be used as a map key without panicking.
// Interface fields are checked by their dynamic values.
func Hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// IsNil reports whether v is nil, including typed nils of reference kinds.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func canonicalUint(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}

func canonicalFloat(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}
