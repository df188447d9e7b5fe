package canonical

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FromJSON converts a single JSON document into the supported union.
//
// Numbers are decoded with json.Number so the Integer/Float distinction
// survives: 1 and 1.0 never canonicalize identically. Object key order is
// irrelevant by construction (Encode sorts mapping pairs).
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Value{}, wrapError(KindUnsupported, "DHASH-DOC-001", "invalid JSON document", err)
	}
	// Exactly one document; trailing content would be silently dropped
	// otherwise, and silent dropping is forbidden.
	if err := checkEOF(dec); err != nil {
		return Value{}, err
	}
	return FromGo(v)
}

func checkEOF(dec *json.Decoder) error {
	var trailing any
	err := dec.Decode(&trailing)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return wrapError(KindUnsupported, "DHASH-DOC-002", "trailing content after JSON document", err)
	}
	return newError(KindUnsupported, "DHASH-DOC-002", "trailing content after JSON document")
}

// FromYAML converts a YAML document into the supported union.
//
// YAML mappings with non-text keys surface as Unsupported errors through
// FromGo, matching the union's text-keyed mapping rule.
func FromYAML(data []byte) (Value, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, wrapError(KindUnsupported, "DHASH-DOC-003", "invalid YAML document", err)
	}
	return FromGo(v)
}
