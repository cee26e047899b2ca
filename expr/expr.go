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

// Package expr implements the expression model for first-order logic with
// equality and arithmetic symbols: the `Expr` tagged variant tree, its
// pretty-printer, and the structural operations (free variables, fresh-name
// generation, capture-avoiding substitution, canonicalization, and the
// fixpoint transform drivers) that every other package in this module builds
// on.
package expr

import (
	"fmt"
	"strings"
)

// Op is the tag of an n-ary associative operator. All six operators are
// commutative, so Assoc.Exprs may be freely reordered by canonicalization.
type Op int

const (
	// And is conjunction.
	And Op = iota
	// Or is disjunction.
	Or
	// Bicon is a chained biconditional: a <-> b <-> c means each pair is
	// equivalent two at a time, left to right.
	Bicon
	// Equiv is an n-ary "all equivalent" operator. EquivalenceElim and
	// EquivalenceIntro read an Equiv chain the same way BiconditionalElim
	// and BiconditionalIntro read a Bicon chain.
	Equiv
	// Add is arithmetic addition.
	Add
	// Mult is arithmetic multiplication.
	Mult
)

// String renders the operator's infix glyph.
func (o Op) String() string {
	switch o {
	case And:
		return "∧"
	case Or:
		return "∨"
	case Bicon:
		return "↔"
	case Equiv:
		return "≡"
	case Add:
		return "+"
	case Mult:
		return "*"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// QuantKind distinguishes universal from existential quantification.
type QuantKind int

const (
	// Forall is universal quantification.
	Forall QuantKind = iota
	// Exists is existential quantification.
	Exists
)

// String renders the quantifier's glyph.
func (k QuantKind) String() string {
	switch k {
	case Forall:
		return "∀"
	case Exists:
		return "∃"
	default:
		return fmt.Sprintf("QuantKind(%d)", int(k))
	}
}

// Expr is the sum type at the core of the engine. It is implemented by
// exactly the variants declared in this file; the unexported exprNode method
// closes the interface to this package, mirroring the closed-variant style
// go/ast uses for its Expr interface.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Contra is the logical constant ⊥ (falsum).
type Contra struct{}

// Taut is the logical constant ⊤ (verum).
type Taut struct{}

// Var is a symbolic atom: a variable, constant, or function/predicate name
// depending on where it occurs.
type Var struct {
	Name string
}

// Apply is an application of Func to Args, e.g. a predicate or function
// invocation p(a, b). Func is an arbitrary Expr but in practice a Var.
type Apply struct {
	Func Expr
	Args []Expr
}

// Not is logical negation.
type Not struct {
	Operand Expr
}

// Impl is material implication, Left -> Right.
type Impl struct {
	Left  Expr
	Right Expr
}

// Assoc is an n-ary associative, commutative operator applied to Exprs. The
// constructors and normalizers in this package maintain len(Exprs) >= 2.
type Assoc struct {
	Op    Op
	Exprs []Expr
}

// Quant is a quantified expression, binding Name in Body.
type Quant struct {
	Kind QuantKind
	Name string
	Body Expr
}

func (Contra) exprNode() {}
func (Taut) exprNode()   {}
func (Var) exprNode()    {}
func (Apply) exprNode()  {}
func (Not) exprNode()    {}
func (Impl) exprNode()   {}
func (Assoc) exprNode()  {}
func (Quant) exprNode()  {}

// NewVar constructs a Var. Convenience wrapper mirroring the freeform
// `Expr::var` constructor used throughout pattern tables.
func NewVar(name string) Expr { return Var{Name: name} }

// NewNot constructs a negation.
func NewNot(e Expr) Expr { return Not{Operand: e} }

// NewImpl constructs an implication.
func NewImpl(l, r Expr) Expr { return Impl{Left: l, Right: r} }

// NewAssoc constructs an n-ary operator node. Panics if fewer than two
// operands are given: Assoc with fewer than two children is not a value this
// package's invariants allow to exist.
func NewAssoc(op Op, exprs ...Expr) Expr {
	if len(exprs) < 2 {
		panic(fmt.Sprintf("expr: Assoc requires at least 2 operands, got %d", len(exprs)))
	}
	cp := make([]Expr, len(exprs))
	copy(cp, exprs)
	return Assoc{Op: op, Exprs: cp}
}

// NewQuant constructs a quantified expression.
func NewQuant(kind QuantKind, name string, body Expr) Expr {
	return Quant{Kind: kind, Name: name, Body: body}
}

// NewApply constructs a function/predicate application.
func NewApply(fn Expr, args ...Expr) Expr {
	cp := make([]Expr, len(args))
	copy(cp, args)
	return Apply{Func: fn, Args: cp}
}

// String pretty-prints e using the fixed Unicode glyphs of the surface
// syntax: each Assoc renders as a flat parenthesized group, Impl as
// "(a → b)", Quant as "(∀x, body)", and Apply as "f(a, b)". Not prefixes its
// operand's own rendering with "¬", so ¬(A → B) gets a single pair of parens.
func (Contra) String() string { return "⊥" }
func (Taut) String() string   { return "⊤" }
func (v Var) String() string  { return v.Name }

func (a Apply) String() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", a.Func.String(), strings.Join(parts, ", "))
}

func (n Not) String() string {
	return "¬" + n.Operand.String()
}

func (i Impl) String() string {
	return fmt.Sprintf("(%s → %s)", i.Left.String(), i.Right.String())
}

func (a Assoc) String() string {
	parts := make([]string, len(a.Exprs))
	for i, e := range a.Exprs {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " "+a.Op.String()+" ") + ")"
}

func (q Quant) String() string {
	return fmt.Sprintf("(%s%s, %s)", q.Kind.String(), q.Name, q.Body.String())
}
