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

package expr

// Set is an unordered collection of Exprs, keyed by their canonical String
// representation. Expr cannot be used directly as a Go map key (Apply and
// Assoc hold slices), so Set indexes by rendered text instead; this is safe
// because the pretty-printer is structurally unambiguous.
type Set struct {
	m map[string]Expr
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{m: make(map[string]Expr)}
}

// SetOf returns a Set containing exactly the given exprs.
func SetOf(exprs ...Expr) *Set {
	s := NewSet()
	for _, e := range exprs {
		s.Add(e)
	}
	return s
}

// Add inserts e, reporting whether it was not already present.
func (s *Set) Add(e Expr) bool {
	key := e.String()
	if _, ok := s.m[key]; ok {
		return false
	}
	s.m[key] = e
	return true
}

// Contains reports whether e is a member.
func (s *Set) Contains(e Expr) bool {
	_, ok := s.m[e.String()]
	return ok
}

// Len reports the number of members.
func (s *Set) Len() int { return len(s.m) }

// Slice returns the members in unspecified order.
func (s *Set) Slice() []Expr {
	out := make([]Expr, 0, len(s.m))
	for _, e := range s.m {
		out = append(out, e)
	}
	return out
}

// TransformSet returns the set of all expressions reachable from e by
// applying f zero or more times at any sub-node. Unlike Transform, it does
// not assume confluence: every combination of child rewrites is explored,
// via the Cartesian product over children, and f may be applied repeatedly
// at any resulting node. The checker accepts any member of the set as a
// valid rewrite target.
func TransformSet(e Expr, f RewriteFunc) *Set {
	return transformSetRec(e, f)
}

func transformSetRec(e Expr, f RewriteFunc) *Set {
	var rebuilt []Expr

	switch v := e.(type) {
	case Contra, Taut, Var:
		rebuilt = []Expr{e}
	case Apply:
		childSets := make([][]Expr, len(v.Args)+1)
		childSets[0] = transformSetRec(v.Func, f).Slice()
		for i, a := range v.Args {
			childSets[i+1] = transformSetRec(a, f).Slice()
		}
		for _, combo := range cartesianProduct(childSets) {
			rebuilt = append(rebuilt, Apply{Func: combo[0], Args: append([]Expr(nil), combo[1:]...)})
		}
	case Not:
		for _, o := range transformSetRec(v.Operand, f).Slice() {
			rebuilt = append(rebuilt, Not{Operand: o})
		}
	case Impl:
		lefts := transformSetRec(v.Left, f).Slice()
		rights := transformSetRec(v.Right, f).Slice()
		for _, l := range lefts {
			for _, r := range rights {
				rebuilt = append(rebuilt, Impl{Left: l, Right: r})
			}
		}
	case Assoc:
		childSets := make([][]Expr, len(v.Exprs))
		for i, sub := range v.Exprs {
			childSets[i] = transformSetRec(sub, f).Slice()
		}
		for _, combo := range cartesianProduct(childSets) {
			rebuilt = append(rebuilt, Assoc{Op: v.Op, Exprs: append([]Expr(nil), combo...)})
		}
	case Quant:
		for _, b := range transformSetRec(v.Body, f).Slice() {
			rebuilt = append(rebuilt, Quant{Kind: v.Kind, Name: v.Name, Body: b})
		}
	default:
		panic("expr: unknown Expr variant in TransformSet")
	}

	result := NewSet()
	var frontier []Expr
	for _, r := range rebuilt {
		if result.Add(r) {
			frontier = append(frontier, r)
		}
	}
	for len(frontier) > 0 {
		var next []Expr
		for _, x := range frontier {
			if y, ok := f(x); ok {
				if result.Add(y) {
					next = append(next, y)
				}
			}
		}
		frontier = next
	}
	return result
}

// cartesianProduct returns the Cartesian product of the given slices, as a
// slice of combinations each with one element drawn from each input slice.
// An empty input yields a single empty combination.
func cartesianProduct(slices [][]Expr) [][]Expr {
	result := [][]Expr{{}}
	for _, s := range slices {
		var next [][]Expr
		for _, combo := range result {
			for _, e := range s {
				nc := make([]Expr, len(combo), len(combo)+1)
				copy(nc, combo)
				next = append(next, append(nc, e))
			}
		}
		result = next
	}
	return result
}
