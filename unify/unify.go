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

// Package unify implements first-order unification modulo alpha-equivalence:
// a specialization of the classical Martelli-Montanari algorithm that
// additionally handles quantifiers via fresh-constant substitution and an
// escape check. Unification here is not modulo associativity or
// commutativity; callers that need AC-matching first canonicalize
// (expr.Canonicalize) and/or enumerate permutations (rewrite.FromPairs).
package unify

import "go.uber.org/aris/expr"

// Constraint is an equation s = t that a substitution must satisfy.
type Constraint struct {
	Left  expr.Expr
	Right expr.Expr
}

// Binding maps a single variable name to the expression it was unified to.
// A Substitution is the ordered list of bindings discovered during
// unification, earliest first.
type Binding struct {
	Name  string
	Value expr.Expr
}

// Substitution is the result of a successful Unify call.
type Substitution []Binding

// Apply applies every binding in s to e, in order, via capture-avoiding
// substitution.
func (s Substitution) Apply(e expr.Expr) expr.Expr {
	for _, b := range s {
		e = expr.Subst(e, b.Name, b.Value)
	}
	return e
}

// Lookup returns the expression bound to name, if any.
func (s Substitution) Lookup(name string) (expr.Expr, bool) {
	for _, b := range s {
		if b.Name == name {
			return b.Value, true
		}
	}
	return nil, false
}

const unificationVarPrefix = "__unification_var"

// Unify attempts to solve the given constraints, returning the substitution
// that makes every left side alpha-equivalent to its corresponding right
// side, or ok=false if no such substitution exists.
func Unify(constraints []Constraint) (Substitution, bool) {
	if len(constraints) == 0 {
		return nil, true
	}

	c := constraints[0]
	rest := constraints[1:]
	s, t := c.Left, c.Right

	if expr.Equal(s, t) {
		return Unify(rest)
	}

	if v, ok := s.(expr.Var); ok {
		if !expr.FreeVars(t).Contains(v.Name) {
			return bindAndContinue(v.Name, t, rest)
		}
	}
	if v, ok := t.(expr.Var); ok {
		if !expr.FreeVars(s).Contains(v.Name) {
			return bindAndContinue(v.Name, s, rest)
		}
	}

	switch sv := s.(type) {
	case expr.Not:
		tv, ok := t.(expr.Not)
		if !ok {
			return nil, false
		}
		return Unify(prepend(Constraint{sv.Operand, tv.Operand}, rest))

	case expr.Impl:
		tv, ok := t.(expr.Impl)
		if !ok {
			return nil, false
		}
		return Unify(prepend2(Constraint{sv.Left, tv.Left}, Constraint{sv.Right, tv.Right}, rest))

	case expr.Apply:
		tv, ok := t.(expr.Apply)
		if !ok || len(sv.Args) != len(tv.Args) {
			return nil, false
		}
		extra := make([]Constraint, 0, len(sv.Args)+1)
		extra = append(extra, Constraint{sv.Func, tv.Func})
		for i := range sv.Args {
			extra = append(extra, Constraint{sv.Args[i], tv.Args[i]})
		}
		return Unify(append(extra, rest...))

	case expr.Assoc:
		tv, ok := t.(expr.Assoc)
		if !ok || sv.Op != tv.Op || len(sv.Exprs) != len(tv.Exprs) {
			return nil, false
		}
		extra := make([]Constraint, len(sv.Exprs))
		for i := range sv.Exprs {
			extra[i] = Constraint{sv.Exprs[i], tv.Exprs[i]}
		}
		return Unify(append(extra, rest...))

	case expr.Quant:
		tv, ok := t.(expr.Quant)
		if !ok || sv.Kind != tv.Kind {
			return nil, false
		}
		avoid := expr.FreeVars(s)
		avoid.InsertSet(expr.FreeVars(t))
		fresh := expr.GenVar(unificationVarPrefix, avoid)
		sBody := expr.Subst(sv.Body, sv.Name, expr.NewVar(fresh))
		tBody := expr.Subst(tv.Body, tv.Name, expr.NewVar(fresh))

		result, ok := Unify(prepend(Constraint{sBody, tBody}, rest))
		if !ok {
			return nil, false
		}
		for _, b := range result {
			if expr.FreeVars(b.Value).Contains(fresh) {
				// The fresh constant escaped into the substitution's range:
				// the quantified variable would leak outside its scope.
				return nil, false
			}
		}
		return result, true

	default:
		return nil, false
	}
}

func bindAndContinue(name string, value expr.Expr, rest []Constraint) (Substitution, bool) {
	substituted := make([]Constraint, len(rest))
	for i, c := range rest {
		substituted[i] = Constraint{
			Left:  expr.Subst(c.Left, name, value),
			Right: expr.Subst(c.Right, name, value),
		}
	}
	result, ok := Unify(substituted)
	if !ok {
		return nil, false
	}
	return append(Substitution{{Name: name, Value: value}}, result...), true
}

func prepend(c Constraint, rest []Constraint) []Constraint {
	out := make([]Constraint, 0, len(rest)+1)
	return append(append(out, c), rest...)
}

func prepend2(c1, c2 Constraint, rest []Constraint) []Constraint {
	out := make([]Constraint, 0, len(rest)+2)
	return append(append(out, c1, c2), rest...)
}
