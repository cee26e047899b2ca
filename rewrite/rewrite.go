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

// Package rewrite implements the fixpoint, pattern-based rewrite engine:
// RewriteRule pairs a pattern with a replacement, expanded at construction
// time by enumerating commutative permutations so that AC-matching is
// simulated instead of performed. Reduce/ReduceSet drive expr.Transform and
// expr.TransformSet respectively over the expanded reduction table.
package rewrite

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/unify"
)

// Pair is a single (pattern, replacement) declaration, as written by a
// catalog entry before commutative-permutation expansion.
type Pair struct {
	Pattern     expr.Expr
	Replacement expr.Expr
}

// reduction is one expanded (pattern, replacement) entry in a RewriteRule's
// table, post commutative-permutation expansion.
type reduction struct {
	pattern     expr.Expr
	replacement expr.Expr
}

// RewriteRule is an expanded table of pattern/replacement reductions.
type RewriteRule struct {
	reductions []reduction
}

// FromPairs parses no input (pairs are already Exprs, built by the caller
// from the surface syntax or directly as Go literals) and expands every
// commutative Assoc node anywhere in each pattern into one reduction per
// permutation of its children, all sharing the same replacement.
func FromPairs(pairs []Pair) *RewriteRule {
	var reductions []reduction
	for _, p := range pairs {
		for _, perm := range permuteOps(p.Pattern) {
			reductions = append(reductions, reduction{pattern: perm, replacement: p.Replacement})
		}
	}
	return &RewriteRule{reductions: reductions}
}

// permuteOps returns every expression obtainable by permuting the children
// of every Assoc node within e (and, for Apply/Not/Impl/Quant, by
// recursively permuting their sub-expressions). This is the AC-matching
// substitute: it is only ever applied to small, fixed catalog patterns.
func permuteOps(e expr.Expr) []expr.Expr {
	switch v := e.(type) {
	case expr.Contra, expr.Taut, expr.Var:
		return []expr.Expr{e}

	case expr.Apply:
		children := make([][]expr.Expr, 0, len(v.Args)+1)
		children = append(children, permuteOps(v.Func))
		for _, a := range v.Args {
			children = append(children, permuteOps(a))
		}
		var out []expr.Expr
		for _, combo := range multiCartesianProduct(children) {
			out = append(out, expr.NewApply(combo[0], combo[1:]...))
		}
		return out

	case expr.Not:
		var out []expr.Expr
		for _, o := range permuteOps(v.Operand) {
			out = append(out, expr.NewNot(o))
		}
		return out

	case expr.Impl:
		var out []expr.Expr
		lefts := permuteOps(v.Left)
		rights := permuteOps(v.Right)
		for _, l := range lefts {
			for _, r := range rights {
				out = append(out, expr.NewImpl(l, r))
			}
		}
		return out

	case expr.Assoc:
		var out []expr.Expr
		for _, ordering := range permutations(v.Exprs) {
			childPerms := make([][]expr.Expr, len(ordering))
			for i, child := range ordering {
				childPerms[i] = permuteOps(child)
			}
			for _, combo := range multiCartesianProduct(childPerms) {
				out = append(out, expr.NewAssoc(v.Op, combo...))
			}
		}
		return out

	case expr.Quant:
		var out []expr.Expr
		for _, b := range permuteOps(v.Body) {
			out = append(out, expr.NewQuant(v.Kind, v.Name, b))
		}
		return out

	default:
		panic("rewrite: unknown Expr variant in permuteOps")
	}
}

// FromReductions rebuilds a RewriteRule directly from an already-expanded
// reduction table, skipping permuteOps entirely. This is the fast path used
// to reconstruct a catalog from internal/rulecache without re-deriving the
// commutative permutations on every process start.
func FromReductions(pairs []Pair) *RewriteRule {
	reductions := make([]reduction, len(pairs))
	for i, p := range pairs {
		reductions[i] = reduction{pattern: p.Pattern, replacement: p.Replacement}
	}
	return &RewriteRule{reductions: reductions}
}

// Reductions exports the rule's expanded (pattern, replacement) table, for
// callers that need to inspect or re-verify it directly (e.g. the
// equivalence catalog's brute-force truth-table regression tests).
func (r *RewriteRule) Reductions() []Pair {
	out := make([]Pair, len(r.reductions))
	for i, red := range r.reductions {
		out[i] = Pair{Pattern: red.pattern, Replacement: red.replacement}
	}
	return out
}

// Reduce rewrites e to a confluent fixpoint using the rule's reductions, by
// way of expr.Transform.
func (r *RewriteRule) Reduce(e expr.Expr) expr.Expr {
	patterns := r.freevarsify(e)
	return expr.Transform(e, reduceTransformFunc(patterns))
}

// ReduceSet returns every expression reachable from e by applying the
// rule's reductions zero or more times at any sub-node, by way of
// expr.TransformSet. Use this for rules that are not confluent.
func (r *RewriteRule) ReduceSet(e expr.Expr) *expr.Set {
	patterns := r.freevarsify(e)
	return expr.TransformSet(e, reduceTransformFunc(patterns))
}

// instantiatedPattern is one reduction entry with its pattern variables
// renamed fresh relative to a particular target expression, ready to drive
// a single Transform/TransformSet call.
type instantiatedPattern struct {
	pattern     expr.Expr
	replacement expr.Expr
	vars        *set.Set[string]
}

// freevarsify renames each reduction's pattern free variables to names
// fresh relative to fv(e), carrying the same rename into the replacement,
// so that matching against e's subexpressions cannot accidentally treat one
// of e's own variables as a pattern variable.
func (r *RewriteRule) freevarsify(e expr.Expr) []instantiatedPattern {
	eFree := expr.FreeVars(e)
	out := make([]instantiatedPattern, len(r.reductions))
	for i, red := range r.reductions {
		pattern := red.pattern
		replacement := red.replacement

		patternFree := expr.FreeVars(pattern)
		replaceFree := expr.FreeVars(replacement)
		if !replaceFree.Subset(patternFree) {
			panic(fmt.Sprintf("rewrite: replacement %v has free variables not in pattern %v", replacement, pattern))
		}

		vars := set.New[string](patternFree.Size())
		for _, v := range patternFree.Slice() {
			fresh := expr.GenVar(v, eFree)
			pattern = expr.Subst(pattern, v, expr.NewVar(fresh))
			replacement = expr.Subst(replacement, v, expr.NewVar(fresh))
			vars.Insert(fresh)
		}
		out[i] = instantiatedPattern{pattern: pattern, replacement: replacement, vars: vars}
	}
	return out
}

// reduceTransformFunc tries every instantiated pattern against sub, in
// order, accepting the first whose unification substitution binds exactly
// the pattern's variable set (no more, no less -- otherwise the match
// reached past the pattern into a "constant" that happened to share a name).
func reduceTransformFunc(patterns []instantiatedPattern) expr.RewriteFunc {
	return func(sub expr.Expr) (expr.Expr, bool) {
		for _, p := range patterns {
			result, ok := unify.Unify([]unify.Constraint{{Left: p.pattern, Right: sub}})
			if !ok {
				continue
			}

			bound := set.New[string](len(result))
			replaced := p.replacement
			valid := true
			seen := make(map[string]bool)
			for _, b := range result {
				if !p.vars.Contains(b.Name) {
					valid = false
					break
				}
				if seen[b.Name] {
					panic(fmt.Sprintf("rewrite: pattern variable %q bound twice", b.Name))
				}
				seen[b.Name] = true
				bound.Insert(b.Name)
				replaced = expr.Subst(replaced, b.Name, b.Value)
			}
			if !valid || bound.Size() != p.vars.Size() {
				continue
			}
			return replaced, true
		}
		return sub, false
	}
}
