package domain

import (
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// Node is a value in a manifest tree: a Table, an Array or a Scalar.
type Node interface {
	node()
}

// Table is a keyed collection of nodes.
type Table map[string]Node

// Array is an ordered list of nodes.
type Array []Node

// Scalar is a leaf value: string, int64, float64, bool or a TOML datetime.
type Scalar struct {
	Value any
}

func (Table) node()  {}
func (Array) node()  {}
func (Scalar) node() {}

// String wraps a string in a Scalar.
func String(s string) Scalar {
	return Scalar{Value: s}
}

// Clone returns a copy of the table. Nested tables are copied one level deep.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		if sub, ok := v.(Table); ok {
			cp := make(Table, len(sub))
			for sk, sv := range sub {
				cp[sk] = sv
			}
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup follows a dotted path of table keys.
func (t Table) Lookup(path ...string) (Node, bool) {
	var cur Node = t
	for _, key := range path {
		tab, ok := cur.(Table)
		if !ok {
			return nil, false
		}
		cur, ok = tab[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// MergeManifest merges fragment into base and returns the result.
// Only top-level tables are merged: a fragment table extends the base table at the
// same key, with fragment entries winning. Every other fragment value replaces the
// base value outright. A fragment table over a base non-table is a conflict.
func MergeManifest(base, fragment Table) (Table, error) {
	out := base.Clone()
	for _, key := range fragment.Keys() {
		value := fragment[key]

		fromTable, ok := value.(Table)
		if !ok {
			out[key] = value
			continue
		}

		existing, present := out[key]
		if !present {
			out[key] = fromTable
			continue
		}

		intoTable, ok := existing.(Table)
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrMergeConflict, ""), "key", key)
		}
		for k, v := range fromTable {
			intoTable[k] = v
		}
	}
	return out, nil
}

// manifestPathLocations are the manifest locations holding filesystem paths.
// "*" matches every key of a table.
var manifestPathLocations = [][]string{
	{"build-dependencies", "*", "path"},
	{"dependencies", "*", "path"},
	{"dev-dependencies", "*", "path"},
	{"package", "build"},
	{"target", "*", "dependencies", "*", "path"},
}

// FixManifestPaths rewrites relative path strings at known locations to absolute
// paths anchored at base. The manifest is modified in place and returned.
func FixManifestPaths(manifest Table, base string) Table {
	for _, loc := range manifestPathLocations {
		rewritePath(manifest, loc, func(s string) string {
			if filepath.IsAbs(s) {
				return s
			}
			return filepath.Join(base, s)
		})
	}
	return manifest
}

func rewritePath(t Table, path []string, fn func(string) string) {
	head, tail := path[0], path[1:]

	visit := func(key string) {
		v, ok := t[key]
		if !ok {
			return
		}
		if len(tail) == 0 {
			if s, ok := v.(Scalar); ok {
				if str, ok := s.Value.(string); ok {
					t[key] = String(fn(str))
				}
			}
			return
		}
		if sub, ok := v.(Table); ok {
			rewritePath(sub, tail, fn)
		}
	}

	if head == "*" {
		for key := range t {
			visit(key)
		}
		return
	}
	visit(head)
}
