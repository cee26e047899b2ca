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

// Package quantifier implements the quantifier-scope transforms: null
// quantifier elimination, quantifier-run sorting, the prenex laws, and the
// Aristotelean square. Each is an expr.RewriteFunc
// enforcing its side condition via expr.FreeVars; callers drive them to a
// confluent fixpoint with expr.Transform or explore the non-confluent
// closure with expr.TransformSet.
package quantifier

import "go.uber.org/aris/expr"

// NullQuantifierRule removes Quant{k,y,b} when y does not occur free in b.
func NullQuantifierRule(e expr.Expr) (expr.Expr, bool) {
	q, ok := e.(expr.Quant)
	if !ok {
		return e, false
	}
	if expr.FreeVars(q.Body).Contains(q.Name) {
		return e, false
	}
	return q.Body, true
}

// QuantifierSwapRule swaps two adjacent same-kind quantifiers whose bound
// names are out of lexicographic order. Driven to a fixpoint, repeated
// adjacent swaps sort any maximal run of same-kind quantifiers, exactly as
// an in-place bubble sort would; alpha-equivalence is preserved because the
// two bound names are necessarily distinct.
func QuantifierSwapRule(e expr.Expr) (expr.Expr, bool) {
	outer, ok := e.(expr.Quant)
	if !ok {
		return e, false
	}
	inner, ok := outer.Body.(expr.Quant)
	if !ok || inner.Kind != outer.Kind || outer.Name <= inner.Name {
		return e, false
	}
	return expr.NewQuant(inner.Kind, inner.Name, expr.NewQuant(outer.Kind, outer.Name, inner.Body)), true
}

// PrenexAndOrRule implements the two prenex laws for And/Or:
//
//	Quant k x. (phi(x) OP psi)  ==  (Quant k x. phi(x)) OP psi    when x not in fv(psi)
//
// for OP in {And, Or}, tried with the quantifier-independent side in either
// position of the binary Assoc.
func PrenexAndOrRule(e expr.Expr) (expr.Expr, bool) {
	q, ok := e.(expr.Quant)
	if !ok {
		return e, false
	}
	a, ok := q.Body.(expr.Assoc)
	if !ok || len(a.Exprs) != 2 || (a.Op != expr.And && a.Op != expr.Or) {
		return e, false
	}

	for i := 0; i < 2; i++ {
		dependent, independent := a.Exprs[i], a.Exprs[1-i]
		if expr.FreeVars(independent).Contains(q.Name) {
			continue
		}
		pushed := expr.NewQuant(q.Kind, q.Name, dependent)
		if i == 0 {
			return expr.NewAssoc(a.Op, pushed, independent), true
		}
		return expr.NewAssoc(a.Op, independent, pushed), true
	}
	return e, false
}

// PrenexImplKindFlipRule implements:
//
//	forall x. (phi(x) -> psi)  ==  (exists x. phi(x)) -> psi   when x not in fv(psi)
//	exists x. (phi(x) -> psi)  ==  (forall x. phi(x)) -> psi   when x not in fv(psi)
//
// The antecedent's quantifier kind flips because it occurs in a negative
// position relative to the implication.
func PrenexImplKindFlipRule(e expr.Expr) (expr.Expr, bool) {
	q, ok := e.(expr.Quant)
	if !ok {
		return e, false
	}
	impl, ok := q.Body.(expr.Impl)
	if !ok || expr.FreeVars(impl.Right).Contains(q.Name) {
		return e, false
	}
	flipped := flipKind(q.Kind)
	return expr.NewImpl(expr.NewQuant(flipped, q.Name, impl.Left), impl.Right), true
}

// PrenexImplKindPreserveRule implements:
//
//	forall/exists x. (psi -> phi(x))  ==  psi -> (forall/exists x. phi(x))   when x not in fv(psi)
func PrenexImplKindPreserveRule(e expr.Expr) (expr.Expr, bool) {
	q, ok := e.(expr.Quant)
	if !ok {
		return e, false
	}
	impl, ok := q.Body.(expr.Impl)
	if !ok || expr.FreeVars(impl.Left).Contains(q.Name) {
		return e, false
	}
	return expr.NewImpl(impl.Left, expr.NewQuant(q.Kind, q.Name, impl.Right)), true
}

// AristoteleanSquareRule implements:
//
//	~(forall/exists x. (phi -> psi))  ==  exists/forall x. (phi & ~psi)
func AristoteleanSquareRule(e expr.Expr) (expr.Expr, bool) {
	n, ok := e.(expr.Not)
	if !ok {
		return e, false
	}
	q, ok := n.Operand.(expr.Quant)
	if !ok {
		return e, false
	}
	impl, ok := q.Body.(expr.Impl)
	if !ok {
		return e, false
	}
	flipped := flipKind(q.Kind)
	return expr.NewQuant(flipped, q.Name, expr.NewAssoc(expr.And, impl.Left, expr.NewNot(impl.Right))), true
}

func flipKind(k expr.QuantKind) expr.QuantKind {
	if k == expr.Forall {
		return expr.Exists
	}
	return expr.Forall
}

// AllRules lists every quantifier RewriteFunc, in the order
// checker/equivalence_rules.go registers them as separate rules.
var AllRules = []expr.RewriteFunc{
	NullQuantifierRule,
	QuantifierSwapRule,
	PrenexAndOrRule,
	PrenexImplKindFlipRule,
	PrenexImplKindPreserveRule,
	AristoteleanSquareRule,
}

// Chain composes fs into a single RewriteFunc that tries each in order,
// accepting the first that applies.
func Chain(fs ...expr.RewriteFunc) expr.RewriteFunc {
	return func(e expr.Expr) (expr.Expr, bool) {
		for _, f := range fs {
			if out, ok := f(e); ok {
				return out, true
			}
		}
		return e, false
	}
}
