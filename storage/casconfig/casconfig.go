// Package casconfig builds a CAS stack from a JSON description.
package casconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"xdao.co/dhash/storage"
	"xdao.co/dhash/storage/grpccas"
	"xdao.co/dhash/storage/localfs"
	"xdao.co/dhash/storage/memory"
)

// Config describes how to open one or more CAS backends.
//
// WritePolicy values:
// - "first" (default): write only to the first backend; reads fall back in order
// - "all": write to all backends and require CID equality (see storage.ReplicatingCAS)
//
// Example:
//
//	{
//	  "write_policy": "all",
//	  "backends": [
//	    {"name": "localfs", "dir": "/var/cache/dhash"},
//	    {"name": "grpc", "target": "cas.internal:7343"}
//	  ]
//	}
type Config struct {
	WritePolicy string          `json:"write_policy,omitempty"`
	Backends    []BackendConfig `json:"backends"`
}

// BackendConfig selects and parameterizes one backend.
//
// Known names: "memory" (no parameters), "localfs" (Dir required),
// "grpc" (Target required, TimeoutSeconds optional).
type BackendConfig struct {
	Name string `json:"name"`
	// ID is an optional stable alias used for per-backend CID maps in
	// ReplicatingCAS.PutAll. If empty, Name is used.
	ID             string `json:"id,omitempty"`
	Dir            string `json:"dir,omitempty"`
	Target         string `json:"target,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("casconfig: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Backends) == 0 {
		return errors.New("casconfig: at least one backend is required")
	}
	seen := make(map[string]struct{}, len(c.Backends))
	for _, b := range c.Backends {
		switch b.Name {
		case "memory":
		case "localfs":
			if b.Dir == "" {
				return errors.New("casconfig: localfs backend requires dir")
			}
		case "grpc":
			if b.Target == "" {
				return errors.New("casconfig: grpc backend requires target")
			}
		case "":
			return errors.New("casconfig: backend name is required")
		default:
			return fmt.Errorf("casconfig: unknown backend %q", b.Name)
		}
		id := b.id()
		if _, ok := seen[id]; ok {
			return fmt.Errorf("casconfig: duplicate backend id %q", id)
		}
		seen[id] = struct{}{}
	}
	switch c.WritePolicy {
	case "", "first", "all":
		return nil
	default:
		return fmt.Errorf("casconfig: invalid write_policy %q", c.WritePolicy)
	}
}

func (b BackendConfig) id() string {
	if b.ID != "" {
		return b.ID
	}
	return b.Name
}

func (b BackendConfig) open() (storage.CAS, func() error, error) {
	switch b.Name {
	case "memory":
		return memory.New(), nil, nil
	case "localfs":
		cas, err := localfs.New(b.Dir)
		return cas, nil, err
	case "grpc":
		client, err := grpccas.Dial(b.Target, grpccas.DialOptions{})
		if err != nil {
			return nil, nil, err
		}
		client.Timeout = time.Duration(b.TimeoutSeconds) * time.Second
		return client, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("casconfig: unknown backend %q", b.Name)
	}
}

// Open opens a CAS per config. The returned close function releases all
// backends (it is never nil).
func (c Config) Open() (storage.CAS, func() error, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	named := make([]storage.NamedCAS, 0, len(c.Backends))
	closers := make([]func() error, 0, len(c.Backends))
	for _, b := range c.Backends {
		cas, closeFn, err := b.open()
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i]()
			}
			return nil, nil, err
		}
		named = append(named, storage.NamedCAS{Name: b.id(), CAS: cas})
		if closeFn != nil {
			closers = append(closers, closeFn)
		}
	}

	closeAll := func() error {
		var firstErr error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	if len(named) == 1 {
		return named[0].CAS, closeAll, nil
	}

	switch c.WritePolicy {
	case "", "first":
		adapters := make([]storage.CAS, 0, len(named))
		for _, n := range named {
			adapters = append(adapters, n.CAS)
		}
		return storage.MultiCAS{Adapters: adapters}, closeAll, nil
	default: // "all", already validated
		return storage.ReplicatingCAS{Backends: named}, closeAll, nil
	}
}
