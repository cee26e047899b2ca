//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rulecache persists the AC-permutation-expanded equivalence rule catalog to disk, gob
// encoded and s2 compressed the way InferredMap does in the upstream analyzer this package is
// adapted from, so that a process does not pay permuteOps's combinatorial expansion cost on
// every start when the catalog has not changed. equivalence.Catalog is the sole production
// caller: it tries Load(DefaultPath()) first and falls back to building the catalog directly
// (and then Save-ing it) on a miss.
package rulecache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/s2"
	"go.uber.org/aris/config"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/rewrite"
	"go.uber.org/aris/util/orderedmap"
)

func init() {
	gob.Register(expr.Contra{})
	gob.Register(expr.Taut{})
	gob.Register(expr.Var{})
	gob.Register(expr.Apply{})
	gob.Register(expr.Not{})
	gob.Register(expr.Impl{})
	gob.Register(expr.Assoc{})
	gob.Register(expr.Quant{})
}

// The on-disk shape of the cached catalog is an orderedmap.OrderedMap from
// rule name to its expanded reduction table, flattened to plain Pairs so it
// round-trips through gob without exposing rewrite.RewriteRule's unexported
// fields. An OrderedMap rather than a plain map so that Save, given the
// same catalog contents, always serializes the same bytes regardless of
// Go's randomized map iteration order -- callers diffing or
// content-addressing the cache file see a stable result.

// Load reads and decodes the rule catalog cached at path, reconstructing
// each entry with rewrite.FromReductions (the expansion is assumed to have
// already happened before the catalog was saved).
func Load(path string) (map[string]*rewrite.RewriteRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	om := orderedmap.New[string, []rewrite.Pair]()
	if err := gob.NewDecoder(s2.NewReader(f)).Decode(om); err != nil {
		return nil, err
	}

	out := make(map[string]*rewrite.RewriteRule, len(om.Pairs))
	for _, p := range om.Pairs {
		out[p.Key] = rewrite.FromReductions(p.Value)
	}
	return out, nil
}

// Save encodes catalog and writes it to path, creating parent directories
// as needed. Entries are inserted in sorted name order so the serialized
// form is deterministic across runs even though catalog itself is a plain
// map.
func Save(path string, catalog map[string]*rewrite.RewriteRule) (err error) {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	om := orderedmap.New[string, []rewrite.Pair]()
	for _, name := range names {
		om.Store(name, catalog[name].Reductions())
	}

	var buf bytes.Buffer
	writer := s2.NewWriter(&buf)
	defer func() {
		if cerr := writer.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	if err := gob.NewEncoder(writer).Encode(om); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// DefaultPath returns the path Save/Load use by default: config.RuleCacheFileName inside the
// user's cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.RuleCacheFileName), nil
}
