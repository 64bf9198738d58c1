package jsondom

import (
	"math"
	"strconv"

	"github.com/jsondom/jsondom/arena"
)

// Scalar is the set of native types the accessor engine dispatches on. The
// constraint lists exact types because dispatch happens by a type switch on
// the output pointer.
type Scalar interface {
	bool | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string
}

// As converts the node to T, never failing. Numeric targets coerce from any
// numeric kind by truncation without range checks, from Bool as 0/1, and
// from String by a strict decimal parse degrading to zero. The string
// target renders scalars in their natural textual form. An unsatisfiable
// conversion yields T's zero value.
func As[T Scalar](v ValueRef) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = asBool(v)
	case *int:
		*p = int(asSigned(v, strconv.IntSize))
	case *int8:
		*p = int8(asSigned(v, 8))
	case *int16:
		*p = int16(asSigned(v, 16))
	case *int32:
		*p = int32(asSigned(v, 32))
	case *int64:
		*p = asSigned(v, 64)
	case *uint:
		*p = uint(asUnsigned(v, strconv.IntSize))
	case *uint8:
		*p = uint8(asUnsigned(v, 8))
	case *uint16:
		*p = uint16(asUnsigned(v, 16))
	case *uint32:
		*p = uint32(asUnsigned(v, 32))
	case *uint64:
		*p = asUnsigned(v, 64)
	case *float32:
		*p = float32(asFloat(v, 32))
	case *float64:
		*p = asFloat(v, 64)
	case *string:
		*p = AsString(v)
	}
	return out
}

// Get strictly converts the node to T. Integer targets succeed when the
// node holds the matching signed or unsigned family and the stored value is
// representable in T's range. Floating-point targets accept any numeric
// kind; bool and string targets accept only their own kind. A mismatch
// reports false, never a panic.
func Get[T Scalar](v ValueRef) (T, bool) {
	var out T
	var ok bool
	switch p := any(&out).(type) {
	case *bool:
		if v.IsBool() {
			*p, ok = v.a.Bool(v.id), true
		}
	case *string:
		if v.IsString() {
			*p, ok = v.a.Str(v.id), true
		}
	case *float32:
		var f float64
		if f, ok = getFloat(v); ok {
			*p = float32(f)
		}
	case *float64:
		*p, ok = getFloat(v)
	case *int:
		var i int64
		if i, ok = getSigned(v, math.MinInt, math.MaxInt); ok {
			*p = int(i)
		}
	case *int8:
		var i int64
		if i, ok = getSigned(v, math.MinInt8, math.MaxInt8); ok {
			*p = int8(i)
		}
	case *int16:
		var i int64
		if i, ok = getSigned(v, math.MinInt16, math.MaxInt16); ok {
			*p = int16(i)
		}
	case *int32:
		var i int64
		if i, ok = getSigned(v, math.MinInt32, math.MaxInt32); ok {
			*p = int32(i)
		}
	case *int64:
		var i int64
		if i, ok = getSigned(v, math.MinInt64, math.MaxInt64); ok {
			*p = i
		}
	case *uint:
		var u uint64
		if u, ok = getUnsigned(v, math.MaxUint); ok {
			*p = uint(u)
		}
	case *uint8:
		var u uint64
		if u, ok = getUnsigned(v, math.MaxUint8); ok {
			*p = uint8(u)
		}
	case *uint16:
		var u uint64
		if u, ok = getUnsigned(v, math.MaxUint16); ok {
			*p = uint16(u)
		}
	case *uint32:
		var u uint64
		if u, ok = getUnsigned(v, math.MaxUint32); ok {
			*p = uint32(u)
		}
	case *uint64:
		var u uint64
		if u, ok = getUnsigned(v, math.MaxUint64); ok {
			*p = u
		}
	}
	return out, ok
}

// GetOr is Get with a fallback for the failing case.
func GetOr[T Scalar](v ValueRef, def T) T {
	x, ok := Get[T](v)
	if !ok {
		return def
	}
	return x
}

// AsString renders the node as text: strings verbatim, numbers in decimal
// form, booleans as "true"/"false", everything else as "".
func AsString(v ValueRef) string {
	switch v.Kind() {
	case arena.Bool:
		return strconv.FormatBool(v.a.Bool(v.id))
	case arena.Int:
		return strconv.FormatInt(v.a.Int(v.id), 10)
	case arena.Uint:
		return strconv.FormatUint(v.a.Uint(v.id), 10)
	case arena.Float:
		return strconv.FormatFloat(v.a.Float(v.id), 'g', -1, 64)
	case arena.String:
		return v.a.Str(v.id)
	}
	return ""
}

// AsChar reads the first byte of a String node, or truncates a numeric
// value to one byte. Every other kind yields a space. It is a named method
// rather than an As instantiation because byte aliases uint8.
func (v ValueRef) AsChar() byte {
	switch v.Kind() {
	case arena.Int:
		return byte(v.a.Int(v.id))
	case arena.Uint:
		return byte(v.a.Uint(v.id))
	case arena.Float:
		return byte(int64(v.a.Float(v.id)))
	case arena.String:
		if b := v.a.StrBytes(v.id); len(b) > 0 {
			return b[0]
		}
	}
	return ' '
}

// GetChar succeeds only for a String node of exactly one byte.
func (v ValueRef) GetChar() (byte, bool) {
	if v.IsString() && v.a.StrLen(v.id) == 1 {
		return v.a.StrBytes(v.id)[0], true
	}
	return 0, false
}

func asBool(v ValueRef) bool {
	switch v.Kind() {
	case arena.Bool:
		return v.a.Bool(v.id)
	case arena.Int:
		return v.a.Int(v.id) != 0
	case arena.Uint:
		return v.a.Uint(v.id) != 0
	case arena.Float:
		return v.a.Float(v.id) != 0
	case arena.String:
		b, err := strconv.ParseBool(v.a.Str(v.id))
		return err == nil && b
	}
	return false
}

// asSigned truncates any numeric payload to a signed integer; a String
// payload takes the strict parse for the target width, degrading to zero.
func asSigned(v ValueRef, bits int) int64 {
	switch v.Kind() {
	case arena.Bool:
		if v.a.Bool(v.id) {
			return 1
		}
		return 0
	case arena.Int:
		return v.a.Int(v.id)
	case arena.Uint:
		return int64(v.a.Uint(v.id))
	case arena.Float:
		return int64(v.a.Float(v.id))
	case arena.String:
		i, err := strconv.ParseInt(v.a.Str(v.id), 10, bits)
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}

func asUnsigned(v ValueRef, bits int) uint64 {
	switch v.Kind() {
	case arena.Bool:
		if v.a.Bool(v.id) {
			return 1
		}
		return 0
	case arena.Int:
		return uint64(v.a.Int(v.id))
	case arena.Uint:
		return v.a.Uint(v.id)
	case arena.Float:
		return uint64(int64(v.a.Float(v.id)))
	case arena.String:
		u, err := strconv.ParseUint(v.a.Str(v.id), 10, bits)
		if err != nil {
			return 0
		}
		return u
	}
	return 0
}

func asFloat(v ValueRef, bits int) float64 {
	switch v.Kind() {
	case arena.Bool:
		if v.a.Bool(v.id) {
			return 1
		}
		return 0
	case arena.Int:
		return float64(v.a.Int(v.id))
	case arena.Uint:
		return float64(v.a.Uint(v.id))
	case arena.Float:
		return v.a.Float(v.id)
	case arena.String:
		f, err := strconv.ParseFloat(v.a.Str(v.id), bits)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func getSigned(v ValueRef, min, max int64) (int64, bool) {
	switch v.Kind() {
	case arena.Int:
		i := v.a.Int(v.id)
		return i, i >= min && i <= max
	case arena.Uint:
		u := v.a.Uint(v.id)
		return int64(u), u <= uint64(max)
	}
	return 0, false
}

func getUnsigned(v ValueRef, max uint64) (uint64, bool) {
	switch v.Kind() {
	case arena.Uint:
		u := v.a.Uint(v.id)
		return u, u <= max
	case arena.Int:
		i := v.a.Int(v.id)
		return uint64(i), i >= 0 && uint64(i) <= max
	}
	return 0, false
}

func getFloat(v ValueRef) (float64, bool) {
	switch v.Kind() {
	case arena.Int:
		return float64(v.a.Int(v.id)), true
	case arena.Uint:
		return float64(v.a.Uint(v.id)), true
	case arena.Float:
		return v.a.Float(v.id), true
	}
	return 0, false
}
