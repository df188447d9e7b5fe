// Package canonical converts supported values into a deterministic canonical
// byte encoding.
//
// Canonicalization is the mandatory choke point for consistent hashing: two
// semantically equal values always encode to identical bytes regardless of
// construction order, insertion order or incidental object identity. Digests
// (package digest) are computed over these bytes and over nothing else.
package canonical

// Tag identifies the kind of a Value and doubles as the encoding's leading
// byte. Tags are domain separators: equal payloads under different tags can
// never encode identically.
//
// Tag values are part of the canonical encoding and must never be renumbered.
type Tag byte

const (
	TagNull     Tag = 0x00
	TagBool     Tag = 0x01
	TagInt      Tag = 0x02
	TagFloat    Tag = 0x03
	TagText     Tag = 0x04
	TagBytes    Tag = 0x05
	TagSequence Tag = 0x06
	TagSet      Tag = 0x07
	TagMapping  Tag = 0x08

	// TagDigest carries the consistent-hash digest of a nested Hashable.
	// It is distinct from TagText so a crafted text value can never encode
	// identically to a nested object's digest.
	TagDigest Tag = 0x09
)

// Value is one node of the supported union: a primitive, a container, or a
// nested hashable's digest. Values are constructed transiently per hash
// request and are immutable once built.
type Value struct {
	tag     Tag
	boolVal bool
	intVal  int64
	fltVal  float64
	strVal  string // Text and Digest payloads
	bytVal  []byte
	elems   []Value // Sequence and Set payloads
	entries []Entry // Mapping payload
}

// Entry is one mapping pair. Keys are text; the union restricts mappings to
// text keys.
type Entry struct {
	Key   string
	Value Value
}

// Pair builds a mapping Entry.
func Pair(key string, value Value) Entry { return Entry{Key: key, Value: value} }

// Tag returns the value's kind tag.
func (v Value) Tag() Tag { return v.tag }

// Null returns the null value.
func Null() Value { return Value{tag: TagNull} }

func Bool(b bool) Value { return Value{tag: TagBool, boolVal: b} }

func Int(i int64) Value { return Value{tag: TagInt, intVal: i} }

// Float builds a floating-point value. Normalization (negative zero, NaN
// rejection) happens at encode time so construction never fails.
func Float(f float64) Value { return Value{tag: TagFloat, fltVal: f} }

// Text builds a text value. The string must be valid UTF-8; Encode rejects
// anything else.
func Text(s string) Value { return Value{tag: TagText, strVal: s} }

// Bytes builds a byte-string value. The slice is not copied; callers must
// not mutate it for the lifetime of the Value.
func Bytes(b []byte) Value { return Value{tag: TagBytes, bytVal: b} }

// Sequence builds an ordered sequence. Element order is significant.
func Sequence(elems ...Value) Value { return Value{tag: TagSequence, elems: elems} }

// Set builds an unordered collection with set semantics: element order is
// irrelevant and duplicate elements collapse to one.
func Set(elems ...Value) Value { return Value{tag: TagSet, elems: elems} }

// Mapping builds a text-keyed mapping. Entry order is irrelevant; duplicate
// keys are rejected at encode time.
func Mapping(entries ...Entry) Value { return Value{tag: TagMapping, entries: entries} }

// Digest builds the value spliced into a parent encoding for a nested
// Hashable: the nested object's full-mode digest text. Only the digest, not
// the nested object's internals, participates in the parent's encoding.
func Digest(digest string) Value { return Value{tag: TagDigest, strVal: digest} }
