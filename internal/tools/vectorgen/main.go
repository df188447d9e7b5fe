// Command vectorgen regenerates the canonical-encoding conformance vectors
// under testdata/conformance/dhash/v1.
//
// For each input JSON document it emits the canonical encoding (hex), the
// full-mode digest, the approximate-mode digest, and the CIDv1 of the
// canonical bytes. The checked-in vectors are authoritative; regenerate only
// when the encoding rules themselves change, and treat any diff as a
// compatibility break.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xdao.co/dhash/canonical"
	"xdao.co/dhash/cidutil"
	"xdao.co/dhash/digest"
)

type multiStringFlag []string

func (m *multiStringFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiStringFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var (
		inputs multiStringFlag
		outDir = flag.String("out", "", "output directory")
	)
	flag.Var(&inputs, "in", "path to an input JSON document (repeatable)")
	flag.Parse()

	if len(inputs) == 0 || *outDir == "" {
		fmt.Fprintln(os.Stderr, "usage: vectorgen -in <case.json> [-in <case2.json> ...] -out <dir>")
		os.Exit(2)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("mkdir out: %v", err)
	}

	for _, in := range inputs {
		doc, err := os.ReadFile(in)
		if err != nil {
			fatalf("read %s: %v", in, err)
		}
		v, err := canonical.FromJSON(doc)
		if err != nil {
			fatalf("canonicalize %s: %v", in, err)
		}
		enc, err := canonical.Encode(v)
		if err != nil {
			fatalf("encode %s: %v", in, err)
		}

		name := strings.TrimSuffix(filepath.Base(in), ".json")
		write(*outDir, name+".canonical.hex", hex.EncodeToString(enc))
		write(*outDir, name+".digest", digest.Sum(enc))
		write(*outDir, name+".approx", digest.Approximate(enc))
		write(*outDir, name+".cid", cidutil.SumString(enc))
	}
}

func write(dir, name, content string) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
