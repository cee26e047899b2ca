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

// Package normalform implements the negation-normal-form and
// conjunctive-normal-form builders: a conversion path Expr -> NNF -> CNF,
// plus an export to the signed-integer clause format the SAT-solver
// collaborator expects.
package normalform

import "go.uber.org/aris/expr"

// NnfExpr is an expression in negation normal form: negation appears only
// on literals. It is implemented by NnfLit, NnfAnd, and NnfOr.
type NnfExpr interface {
	nnfNode()
	String() string
}

// NnfLit is a literal: a variable or its negation.
type NnfLit struct {
	Polarity bool
	Name     string
}

// NnfAnd is a (possibly empty) conjunction; an empty And is Top.
type NnfAnd struct {
	Clauses []NnfExpr
}

// NnfOr is a (possibly empty) disjunction; an empty Or is Bottom.
type NnfOr struct {
	Clauses []NnfExpr
}

func (NnfLit) nnfNode() {}
func (NnfAnd) nnfNode() {}
func (NnfOr) nnfNode()  {}

// NnfTaut returns Top, represented as the empty conjunction.
func NnfTaut() NnfExpr { return NnfAnd{} }

// NnfContra returns Bottom, represented as the empty disjunction.
func NnfContra() NnfExpr { return NnfOr{} }

// NnfVar returns the positive literal for name.
func NnfVar(name string) NnfExpr { return NnfLit{Polarity: true, Name: name} }

// NnfNot returns the De Morgan negation of n: literals flip polarity, And
// becomes Or of negated children and vice versa. NNF is closed under this
// operation by construction.
func NnfNot(n NnfExpr) NnfExpr {
	switch v := n.(type) {
	case NnfLit:
		return NnfLit{Polarity: !v.Polarity, Name: v.Name}
	case NnfAnd:
		negated := make([]NnfExpr, len(v.Clauses))
		for i, c := range v.Clauses {
			negated[i] = NnfNot(c)
		}
		return NnfOr{Clauses: negated}
	case NnfOr:
		negated := make([]NnfExpr, len(v.Clauses))
		for i, c := range v.Clauses {
			negated[i] = NnfNot(c)
		}
		return NnfAnd{Clauses: negated}
	default:
		panic("normalform: unknown NnfExpr variant in NnfNot")
	}
}

// NnfImplies returns the NNF of a -> b, namely NnfNot(a) or b.
func NnfImplies(a, b NnfExpr) NnfExpr {
	return NnfOr{Clauses: []NnfExpr{NnfNot(a), b}}
}

// NnfBicon returns the NNF of a <-> b: (a and b) or (not a and not b).
func NnfBicon(a, b NnfExpr) NnfExpr {
	return NnfOr{Clauses: []NnfExpr{
		NnfAnd{Clauses: []NnfExpr{a, b}},
		NnfAnd{Clauses: []NnfExpr{NnfNot(a), NnfNot(b)}},
	}}
}

func (l NnfLit) String() string {
	if l.Polarity {
		return l.Name
	}
	return "¬" + l.Name
}

func (a NnfAnd) String() string {
	s := "⊤"
	for i, c := range a.Clauses {
		if i == 0 {
			s = c.String()
		} else {
			s += " ∧ " + c.String()
		}
	}
	return s
}

func (o NnfOr) String() string {
	s := "⊥"
	for i, c := range o.Clauses {
		if i == 0 {
			s = c.String()
		} else {
			s += " ∨ " + c.String()
		}
	}
	return s
}

// ToNNF converts a propositional Expr to negation normal form. Apply,
// Quant, Equiv, Add, and Mult have no NNF interpretation in this system and
// yield ok=false.
func ToNNF(e expr.Expr) (NnfExpr, bool) {
	switch v := e.(type) {
	case expr.Contra:
		return NnfContra(), true
	case expr.Taut:
		return NnfTaut(), true
	case expr.Var:
		return NnfVar(v.Name), true
	case expr.Not:
		inner, ok := ToNNF(v.Operand)
		if !ok {
			return nil, false
		}
		return NnfNot(inner), true
	case expr.Impl:
		left, ok := ToNNF(v.Left)
		if !ok {
			return nil, false
		}
		right, ok := ToNNF(v.Right)
		if !ok {
			return nil, false
		}
		return NnfImplies(left, right), true
	case expr.Assoc:
		switch v.Op {
		case expr.And:
			clauses := make([]NnfExpr, len(v.Exprs))
			for i, sub := range v.Exprs {
				c, ok := ToNNF(sub)
				if !ok {
					return nil, false
				}
				clauses[i] = c
			}
			return NnfAnd{Clauses: clauses}, true
		case expr.Or:
			clauses := make([]NnfExpr, len(v.Exprs))
			for i, sub := range v.Exprs {
				c, ok := ToNNF(sub)
				if !ok {
					return nil, false
				}
				clauses[i] = c
			}
			return NnfOr{Clauses: clauses}, true
		case expr.Bicon:
			return foldBicon(v.Exprs)
		default:
			return nil, false
		}
	default:
		return nil, false
	}
}

// foldBicon folds a chain a <-> b <-> c <-> ... pairwise, left to right.
func foldBicon(exprs []expr.Expr) (NnfExpr, bool) {
	acc, ok := ToNNF(exprs[0])
	if !ok {
		return nil, false
	}
	for _, sub := range exprs[1:] {
		next, ok := ToNNF(sub)
		if !ok {
			return nil, false
		}
		acc = NnfBicon(acc, next)
	}
	return acc, true
}
