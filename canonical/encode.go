package canonical

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"
	"unicode/utf8"
)

// Encode produces the canonical byte encoding of v.
//
// The encoding is prefix-free and self-delimiting: every value is a tag byte
// followed by a fixed-width or length-prefixed payload, so adjacent encodings
// can never be misread across their boundary and an element's bytes can never
// be mistaken for a separator.
//
// Unordered containers are made order-independent by sorting the encoded
// bytes of their members (not the original values): sets sort element
// encodings, mappings sort pairs by the encoded key.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v Value) error {
	switch v.tag {
	case TagNull:
		buf.WriteByte(byte(TagNull))
		return nil

	case TagBool:
		buf.WriteByte(byte(TagBool))
		if v.boolVal {
			buf.WriteByte(0x01)
		} else {
			buf.WriteByte(0x00)
		}
		return nil

	case TagInt:
		buf.WriteByte(byte(TagInt))
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(v.intVal))
		buf.Write(b[:])
		return nil

	case TagFloat:
		f := v.fltVal
		if math.IsNaN(f) {
			return newError(KindCanonical, "DHASH-CANON-022", "NaN has no canonical encoding (NaN is not equal to itself)")
		}
		if f == 0 {
			// Negative zero equals positive zero; both encode as +0.0.
			f = 0
		}
		buf.WriteByte(byte(TagFloat))
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
		buf.Write(b[:])
		return nil

	case TagText:
		if !utf8.ValidString(v.strVal) {
			return newError(KindCanonical, "DHASH-CANON-021", "text must be valid UTF-8")
		}
		buf.WriteByte(byte(TagText))
		writeUvarint(buf, uint64(len(v.strVal)))
		buf.WriteString(v.strVal)
		return nil

	case TagBytes:
		buf.WriteByte(byte(TagBytes))
		writeUvarint(buf, uint64(len(v.bytVal)))
		buf.Write(v.bytVal)
		return nil

	case TagDigest:
		if v.strVal == "" {
			return newError(KindCanonical, "DHASH-CANON-023", "empty nested digest")
		}
		buf.WriteByte(byte(TagDigest))
		writeUvarint(buf, uint64(len(v.strVal)))
		buf.WriteString(v.strVal)
		return nil

	case TagSequence:
		buf.WriteByte(byte(TagSequence))
		writeUvarint(buf, uint64(len(v.elems)))
		for _, e := range v.elems {
			if err := encode(buf, e); err != nil {
				return err
			}
		}
		return nil

	case TagSet:
		encoded := make([][]byte, 0, len(v.elems))
		for _, e := range v.elems {
			b, err := Encode(e)
			if err != nil {
				return err
			}
			encoded = append(encoded, b)
		}
		sort.Slice(encoded, func(i, j int) bool {
			return bytes.Compare(encoded[i], encoded[j]) < 0
		})
		// Set semantics: equal elements have equal encodings and collapse.
		dedup := encoded[:0]
		for i, b := range encoded {
			if i > 0 && bytes.Equal(b, encoded[i-1]) {
				continue
			}
			dedup = append(dedup, b)
		}
		buf.WriteByte(byte(TagSet))
		writeUvarint(buf, uint64(len(dedup)))
		for _, b := range dedup {
			buf.Write(b)
		}
		return nil

	case TagMapping:
		type encodedPair struct {
			key []byte
			val []byte
		}
		pairs := make([]encodedPair, 0, len(v.entries))
		for _, ent := range v.entries {
			k, err := Encode(Text(ent.Key))
			if err != nil {
				return err
			}
			val, err := Encode(ent.Value)
			if err != nil {
				return err
			}
			pairs = append(pairs, encodedPair{key: k, val: val})
		}
		sort.Slice(pairs, func(i, j int) bool {
			return bytes.Compare(pairs[i].key, pairs[j].key) < 0
		})
		for i := 1; i < len(pairs); i++ {
			if bytes.Equal(pairs[i].key, pairs[i-1].key) {
				return newError(KindCanonical, "DHASH-CANON-031", "duplicate mapping key")
			}
		}
		buf.WriteByte(byte(TagMapping))
		writeUvarint(buf, uint64(len(pairs)))
		for _, p := range pairs {
			buf.Write(p.key)
			buf.Write(p.val)
		}
		return nil

	default:
		return newError(KindInternal, "DHASH-INT-001", "unknown value tag")
	}
}

func writeUvarint(buf *bytes.Buffer, n uint64) {
	var b [binary.MaxVarintLen64]byte
	buf.Write(b[:binary.PutUvarint(b[:], n)])
}
