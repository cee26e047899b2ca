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

package checker

import (
	"go.uber.org/aris/expr"
	"go.uber.org/aris/proof"
	"go.uber.org/aris/rewrite"
)

// resolveDep looks up a dependency's expression anywhere in root, failing
// with LineDoesNotExist if the reference is dangling (which should not
// happen once VerifyLine's scope check has already run, but validators are
// written defensively since they may also be called directly by tests).
func resolveDep(root *proof.Proof, ref proof.PjRef) (expr.Expr, error) {
	e, ok := root.ResolveExpr(ref)
	if !ok {
		return nil, &LineDoesNotExist{Ref: ref}
	}
	return e, nil
}

// resolveSubproof looks up a subproof anywhere in root.
func resolveSubproof(root *proof.Proof, ref proof.SubproofRef) (*proof.Proof, error) {
	sp, ok := root.ResolveSubproof(ref)
	if !ok {
		return nil, &LineDoesNotExist{Ref: ref}
	}
	return sp, nil
}

// matchMultiset reports whether a and b contain the same expressions as a
// multiset, modulo canonicalization. Used by AndIntro (deps vs. conjuncts)
// and similar rules comparing an unordered collection against a set of
// dependencies.
func matchMultiset(a, b []expr.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if used[i] {
				continue
			}
			if expr.CanonicalEqual(x, y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// containsCanonical reports whether target occurs in es modulo
// canonicalization.
func containsCanonical(es []expr.Expr, target expr.Expr) bool {
	for _, e := range es {
		if expr.CanonicalEqual(e, target) {
			return true
		}
	}
	return false
}

// assocOperands returns es.Exprs if e is an Assoc of the given op, else
// (nil, false).
func assocOperands(e expr.Expr, op expr.Op) ([]expr.Expr, bool) {
	a, ok := e.(expr.Assoc)
	if !ok || a.Op != op {
		return nil, false
	}
	return a.Exprs, true
}

// setContainsCanonical reports whether target is a member of s modulo
// canonicalization -- expr.Set itself keys by literal rendered text, which
// is finer than the equivalence rules need.
func setContainsCanonical(s *expr.Set, target expr.Expr) bool {
	return containsCanonical(s.Slice(), target)
}

// equivalentUnderRule reports whether a and b are related by zero or more
// applications of rule's reductions in either direction, modulo
// canonicalization -- the "conclusion derivable from the dep or vice versa"
// test every equivalence rule in §4.7 shares.
func equivalentUnderRule(rule *rewrite.RewriteRule, a, b expr.Expr) bool {
	if setContainsCanonical(rule.ReduceSet(a), b) {
		return true
	}
	return setContainsCanonical(rule.ReduceSet(b), a)
}

// equivalentUnderFunc is equivalentUnderRule's counterpart for the
// quantifier package's expr.RewriteFunc-based rules, which are driven by
// expr.Transform (confluent, one direction at a time) rather than a
// RewriteRule's reduction table.
func equivalentUnderFunc(f expr.RewriteFunc, a, b expr.Expr) bool {
	if expr.CanonicalEqual(expr.Transform(a, f), b) {
		return true
	}
	return expr.CanonicalEqual(expr.Transform(b, f), a)
}
