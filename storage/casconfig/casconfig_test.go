package casconfig

import (
	"os"
	"path/filepath"
	"testing"

	"xdao.co/dhash/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cas.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"write_policy": "all",
		"backends": [
			{"name": "memory", "id": "primary"},
			{"name": "memory", "id": "replica"}
		]
	}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.Backends) != 2 {
		t.Fatalf("backend count %d, want 2", len(cfg.Backends))
	}
	if cfg.WritePolicy != "all" {
		t.Fatalf("write_policy %q, want all", cfg.WritePolicy)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := LoadFile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"no backends", Config{}},
		{"unnamed backend", Config{Backends: []BackendConfig{{}}}},
		{"unknown backend", Config{Backends: []BackendConfig{{Name: "s3"}}}},
		{"localfs without dir", Config{Backends: []BackendConfig{{Name: "localfs"}}}},
		{"grpc without target", Config{Backends: []BackendConfig{{Name: "grpc"}}}},
		{"duplicate ids", Config{Backends: []BackendConfig{{Name: "memory"}, {Name: "memory"}}}},
		{"bad policy", Config{WritePolicy: "quorum", Backends: []BackendConfig{{Name: "memory"}}}},
	}
	for _, tc := range cases {
		if err := tc.cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestOpen_SingleBackend(t *testing.T) {
	cfg := Config{Backends: []BackendConfig{{Name: "memory"}}}
	cas, closeAll, err := cfg.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = closeAll() }()

	id, err := cas.Put([]byte("one backend"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !cas.Has(id) {
		t.Fatalf("Has after Put returned false")
	}
}

func TestOpen_FirstPolicyBuildsMulti(t *testing.T) {
	cfg := Config{
		WritePolicy: "first",
		Backends: []BackendConfig{
			{Name: "memory", ID: "a"},
			{Name: "localfs", ID: "b", Dir: t.TempDir()},
		},
	}
	cas, closeAll, err := cfg.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = closeAll() }()

	if _, ok := cas.(storage.MultiCAS); !ok {
		t.Fatalf("write_policy first must build a MultiCAS, got %T", cas)
	}
}

func TestOpen_AllPolicyReplicates(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		WritePolicy: "all",
		Backends: []BackendConfig{
			{Name: "memory", ID: "mem"},
			{Name: "localfs", ID: "disk", Dir: dir},
		},
	}
	cas, closeAll, err := cfg.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = closeAll() }()

	rep, ok := cas.(storage.ReplicatingCAS)
	if !ok {
		t.Fatalf("write_policy all must build a ReplicatingCAS, got %T", cas)
	}

	id, perBackend, err := rep.PutAll([]byte("replicated by config"))
	if err != nil {
		t.Fatalf("PutAll: %v", err)
	}
	for _, name := range []string{"mem", "disk"} {
		if got := perBackend[name]; got != id {
			t.Fatalf("backend %q CID %s, want %s", name, got, id)
		}
	}
}
