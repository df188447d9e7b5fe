package canonical_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xdao.co/dhash/canonical"
	"xdao.co/dhash/cidutil"
	"xdao.co/dhash/digest"
)

var vectorNames = []string{
	"null",
	"bool_true",
	"int_negative",
	"float_pi",
	"text_unicode",
	"empty_mapping",
	"empty_sequence",
	"nested",
}

func readVector(t *testing.T, root, name, ext string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, name+ext))
	if err != nil {
		t.Fatalf("read %s%s: %v", name, ext, err)
	}
	return strings.TrimSpace(string(b))
}

func TestConformanceVectors_CanonicalBytes(t *testing.T) {
	root := filepath.Join("..", "testdata", "conformance", "dhash", "v1")

	for _, name := range vectorNames {
		doc := readVector(t, root, name, ".json")
		wantHex := readVector(t, root, name, ".canonical.hex")

		v, err := canonical.FromJSON([]byte(doc))
		if err != nil {
			t.Fatalf("%s: FromJSON: %v", name, err)
		}
		enc, err := canonical.Encode(v)
		if err != nil {
			t.Fatalf("%s: Encode: %v", name, err)
		}
		if got := hex.EncodeToString(enc); got != wantHex {
			t.Fatalf("%s: canonical bytes mismatch:\n got %s\nwant %s", name, got, wantHex)
		}
	}
}

func TestConformanceVectors_Digests(t *testing.T) {
	root := filepath.Join("..", "testdata", "conformance", "dhash", "v1")

	for _, name := range vectorNames {
		encHex := readVector(t, root, name, ".canonical.hex")
		enc, err := hex.DecodeString(encHex)
		if err != nil {
			t.Fatalf("%s: bad canonical.hex vector: %v", name, err)
		}

		if got, want := digest.Sum(enc), readVector(t, root, name, ".digest"); got != want {
			t.Fatalf("%s: full digest mismatch: got %s want %s", name, got, want)
		}
		if got, want := digest.Approximate(enc), readVector(t, root, name, ".approx"); got != want {
			t.Fatalf("%s: approximate digest mismatch: got %s want %s", name, got, want)
		}
	}
}

func TestConformanceVectors_CIDs(t *testing.T) {
	root := filepath.Join("..", "testdata", "conformance", "dhash", "v1")

	for _, name := range vectorNames {
		encHex := readVector(t, root, name, ".canonical.hex")
		enc, err := hex.DecodeString(encHex)
		if err != nil {
			t.Fatalf("%s: bad canonical.hex vector: %v", name, err)
		}
		wantCID := readVector(t, root, name, ".cid")

		if got := cidutil.SumString(enc); got != wantCID {
			t.Fatalf("%s: CID mismatch: got %s want %s", name, got, wantCID)
		}

		// The digest-to-CID bridge must land on the same identifier without
		// touching the encoding.
		id, err := cidutil.FromHexDigest(digest.Sum(enc))
		if err != nil {
			t.Fatalf("%s: FromHexDigest: %v", name, err)
		}
		if got := id.String(); got != wantCID {
			t.Fatalf("%s: digest-derived CID mismatch: got %s want %s", name, got, wantCID)
		}
	}
}
