package canonical

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
)

func encodeGo(t *testing.T, v any) []byte {
	t.Helper()
	val, err := FromGo(v)
	if err != nil {
		t.Fatalf("FromGo(%#v): %v", v, err)
	}
	b, err := Encode(val)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return b
}

func TestFromGo_Primitives(t *testing.T) {
	cases := []struct {
		in   any
		want Value
	}{
		{nil, Null()},
		{true, Bool(true)},
		{int(5), Int(5)},
		{int8(-3), Int(-3)},
		{uint16(9), Int(9)},
		{uint64(10), Int(10)},
		{float32(2), Float(2)},
		{float64(2.5), Float(2.5)},
		{"hi", Text("hi")},
		{json.Number("7"), Int(7)},
		{json.Number("7.5"), Float(7.5)},
	}
	for _, tc := range cases {
		got, err := FromGo(tc.in)
		if err != nil {
			t.Errorf("FromGo(%#v): %v", tc.in, err)
			continue
		}
		gb, _ := Encode(got)
		wb, _ := Encode(tc.want)
		if !bytes.Equal(gb, wb) {
			t.Errorf("FromGo(%#v): got %x want %x", tc.in, gb, wb)
		}
	}
}

func TestFromGo_BytesAndSequences(t *testing.T) {
	raw := encodeGo(t, []byte{1, 2})
	if !bytes.Equal(raw, mustEncode(t, Bytes([]byte{1, 2}))) {
		t.Fatalf("[]byte must convert to Bytes")
	}

	seq := encodeGo(t, []int{1, 2})
	if !bytes.Equal(seq, mustEncode(t, Sequence(Int(1), Int(2)))) {
		t.Fatalf("[]int must convert to Sequence")
	}

	arr := encodeGo(t, [2]string{"a", "b"})
	if !bytes.Equal(arr, mustEncode(t, Sequence(Text("a"), Text("b")))) {
		t.Fatalf("array must convert to Sequence")
	}
}

func TestFromGo_MapsAreOrderIndependent(t *testing.T) {
	// Two maps built in different orders must encode identically; Go's own
	// map iteration order is random, which this conversion must neutralize.
	a := map[string]any{}
	a["one"] = 1
	a["two"] = []any{1, 2}
	a["three"] = nil

	b := map[string]any{}
	b["three"] = nil
	b["two"] = []any{1, 2}
	b["one"] = 1

	if !bytes.Equal(encodeGo(t, a), encodeGo(t, b)) {
		t.Fatalf("semantically equal maps encode differently")
	}
}

func TestFromGo_StructSetIdiom(t *testing.T) {
	a := map[string]struct{}{"x": {}, "y": {}, "z": {}}
	b := map[string]struct{}{"z": {}, "y": {}, "x": {}}
	if !bytes.Equal(encodeGo(t, a), encodeGo(t, b)) {
		t.Fatalf("map[T]struct{} must convert to an order-independent Set")
	}

	set := encodeGo(t, map[int]struct{}{2: {}, 1: {}})
	if !bytes.Equal(set, mustEncode(t, Set(Int(1), Int(2)))) {
		t.Fatalf("set conversion mismatch")
	}
}

func TestFromGo_PointersDereference(t *testing.T) {
	n := 4
	if !bytes.Equal(encodeGo(t, &n), encodeGo(t, 4)) {
		t.Fatalf("pointer must hash as its referent")
	}

	var nilPtr *int
	if !bytes.Equal(encodeGo(t, nilPtr), mustEncode(t, Null())) {
		t.Fatalf("nil pointer must hash as Null")
	}
}

func TestFromGo_UnsupportedTypes(t *testing.T) {
	type plain struct{ A int }

	cases := []struct {
		in   any
		rule string
	}{
		{plain{A: 1}, "DHASH-UNSUP-001"},
		{make(chan int), "DHASH-UNSUP-001"},
		{map[int]string{1: "a"}, "DHASH-UNSUP-003"},
		{uint64(math.MaxUint64), "DHASH-UNSUP-004"},
	}
	for _, tc := range cases {
		_, err := FromGo(tc.in)
		if err == nil {
			t.Errorf("FromGo(%#v): expected failure", tc.in)
			continue
		}
		if !IsKind(err, KindUnsupported) {
			t.Errorf("FromGo(%#v): expected KindUnsupported, got %v", tc.in, err)
		}
		if RuleID(err) != tc.rule {
			t.Errorf("FromGo(%#v): rule %q, want %q", tc.in, RuleID(err), tc.rule)
		}
	}
}

func TestFromGo_CyclesRejected(t *testing.T) {
	m := map[string]any{}
	m["self"] = m

	_, err := FromGo(m)
	if err == nil {
		t.Fatalf("cyclic map must be rejected")
	}
	if RuleID(err) != "DHASH-UNSUP-002" {
		t.Fatalf("unexpected rule id %q", RuleID(err))
	}

	s := []any{nil}
	s[0] = s
	if _, err := FromGo(s); RuleID(err) != "DHASH-UNSUP-002" {
		t.Fatalf("cyclic slice must be rejected, got %v", err)
	}
}

func TestFromGo_SharedValuesAreNotCycles(t *testing.T) {
	// The same map appearing twice as a sibling is a DAG, not a cycle.
	shared := map[string]any{"k": 1}
	v := []any{shared, shared}
	if _, err := FromGo(v); err != nil {
		t.Fatalf("shared (acyclic) value rejected: %v", err)
	}
}

func TestFromGo_ValuePassthrough(t *testing.T) {
	v := Mapping(Pair("a", Int(1)))
	got, err := FromGo(v)
	if err != nil {
		t.Fatalf("FromGo(Value): %v", err)
	}
	gb, _ := Encode(got)
	wb, _ := Encode(v)
	if !bytes.Equal(gb, wb) {
		t.Fatalf("Value must pass through unchanged")
	}
}
