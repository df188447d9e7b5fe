package canonical

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"xdao.co/dhash/hashable"
)

// FromGo converts a native Go value into the supported union.
//
// Supported inputs:
//   - nil                        -> Null
//   - bool                       -> Bool
//   - signed and unsigned ints   -> Int (uint64 above MaxInt64 is rejected)
//   - float32, float64           -> Float
//   - string                     -> Text
//   - []byte (and byte slices)   -> Bytes
//   - slices and arrays          -> Sequence
//   - map[string]T               -> Mapping
//   - map[T]struct{}             -> Set (the Go set idiom)
//   - json.Number                -> Int when integral, Float otherwise
//   - hashable.Hashable          -> Digest (the nested object's full-mode hash)
//   - Value                      -> itself
//
// Everything else fails with an Unsupported error: FromGo never truncates,
// skips or approximates structure away. Cyclic values are rejected — the
// union is finite by construction.
//
// Plain structs are deliberately unsupported: a struct decides which fields
// are semantic (and which, like timestamps, are not) by implementing
// hashable.Hashable itself.
func FromGo(v any) (Value, error) {
	c := converter{seen: make(map[uintptr]struct{})}
	return c.fromAny(v)
}

type converter struct {
	// seen tracks pointers, maps and slices on the current descent path to
	// reject cycles.
	seen map[uintptr]struct{}
}

func (c *converter) fromAny(v any) (Value, error) {
	if v == nil {
		return Null(), nil
	}

	switch t := v.(type) {
	case Value:
		return t, nil
	case hashable.Hashable:
		d, err := t.ConsistentHash(false)
		if err != nil {
			return Value{}, wrapError(KindNested, "DHASH-NEST-001", "nested ConsistentHash failed", err)
		}
		return Digest(d), nil
	case bool:
		return Bool(t), nil
	case string:
		return Text(t), nil
	case []byte:
		return Bytes(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, wrapError(KindUnsupported, "DHASH-UNSUP-005", fmt.Sprintf("unparseable number %q", t.String()), err)
		}
		return Float(f), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return c.fromUint64(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return c.fromUint64(t)
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	}

	return c.fromReflect(reflect.ValueOf(v))
}

func (c *converter) fromUint64(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, newError(KindUnsupported, "DHASH-UNSUP-004", fmt.Sprintf("uint64 %d exceeds the integer range", u))
	}
	return Int(int64(u)), nil
}

func (c *converter) fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.fromUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return Text(rv.String()), nil

	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		release, err := c.enter(rv.Pointer())
		if err != nil {
			return Value{}, err
		}
		defer release()
		return c.fromAny(rv.Elem().Interface())

	case reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return c.fromAny(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(rv.Bytes()), nil
		}
		release, err := c.enter(rv.Pointer())
		if err != nil {
			return Value{}, err
		}
		defer release()
		return c.sequence(rv)

	case reflect.Array:
		return c.sequence(rv)

	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		release, err := c.enter(rv.Pointer())
		if err != nil {
			return Value{}, err
		}
		defer release()

		elem := rv.Type().Elem()
		if elem.Kind() == reflect.Struct && elem.NumField() == 0 {
			// map[T]struct{} is a set of its keys.
			elems := make([]Value, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				ev, err := c.fromAny(iter.Key().Interface())
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, ev)
			}
			return Set(elems...), nil
		}

		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, newError(KindUnsupported, "DHASH-UNSUP-003",
				fmt.Sprintf("mapping keys must be text, got %s", rv.Type().Key()))
		}
		entries := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ev, err := c.fromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Pair(iter.Key().String(), ev))
		}
		// Iteration order is irrelevant: Encode sorts by encoded key.
		return Mapping(entries...), nil

	default:
		return Value{}, newError(KindUnsupported, "DHASH-UNSUP-001",
			fmt.Sprintf("unsupported type %s (implement hashable.Hashable to include it)", rv.Type()))
	}
}

func (c *converter) sequence(rv reflect.Value) (Value, error) {
	elems := make([]Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ev, err := c.fromAny(rv.Index(i).Interface())
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, ev)
	}
	return Sequence(elems...), nil
}

// enter records a container identity on the descent path and returns a
// release func for unwinding. A repeat visit means the value references
// itself.
func (c *converter) enter(p uintptr) (func(), error) {
	if _, ok := c.seen[p]; ok {
		return nil, newError(KindUnsupported, "DHASH-UNSUP-002", "cyclic value cannot be canonicalized")
	}
	c.seen[p] = struct{}{}
	return func() { delete(c.seen, p) }, nil
}
