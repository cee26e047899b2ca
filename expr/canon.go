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

import "sort"

// SortCommutativeOps sorts each Assoc node's children by the total order
// declared in Compare. All six associative operators are commutative in
// this system, so this is a semantics-preserving rewrite. Idempotent.
func SortCommutativeOps(e Expr) Expr {
	switch v := e.(type) {
	case Contra, Taut, Var:
		return e
	case Apply:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = SortCommutativeOps(a)
		}
		return Apply{Func: SortCommutativeOps(v.Func), Args: args}
	case Not:
		return Not{Operand: SortCommutativeOps(v.Operand)}
	case Impl:
		return Impl{Left: SortCommutativeOps(v.Left), Right: SortCommutativeOps(v.Right)}
	case Assoc:
		exprs := make([]Expr, len(v.Exprs))
		for i, sub := range v.Exprs {
			exprs[i] = SortCommutativeOps(sub)
		}
		sort.Slice(exprs, func(i, j int) bool { return Compare(exprs[i], exprs[j]) < 0 })
		return Assoc{Op: v.Op, Exprs: exprs}
	case Quant:
		return Quant{Kind: v.Kind, Name: v.Name, Body: SortCommutativeOps(v.Body)}
	default:
		panic("expr: unknown Expr variant in SortCommutativeOps")
	}
}

// CombineAssociativeOps flattens nested Assoc nodes of the same operator:
// (A ∧ (B ∧ C)) becomes (A ∧ B ∧ C). Idempotent.
func CombineAssociativeOps(e Expr) Expr {
	switch v := e.(type) {
	case Contra, Taut, Var:
		return e
	case Apply:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = CombineAssociativeOps(a)
		}
		return Apply{Func: CombineAssociativeOps(v.Func), Args: args}
	case Not:
		return Not{Operand: CombineAssociativeOps(v.Operand)}
	case Impl:
		return Impl{Left: CombineAssociativeOps(v.Left), Right: CombineAssociativeOps(v.Right)}
	case Assoc:
		var flat []Expr
		for _, sub := range v.Exprs {
			sub = CombineAssociativeOps(sub)
			if inner, ok := sub.(Assoc); ok && inner.Op == v.Op {
				flat = append(flat, inner.Exprs...)
				continue
			}
			flat = append(flat, sub)
		}
		return Assoc{Op: v.Op, Exprs: flat}
	case Quant:
		return Quant{Kind: v.Kind, Name: v.Name, Body: CombineAssociativeOps(v.Body)}
	default:
		panic("expr: unknown Expr variant in CombineAssociativeOps")
	}
}

// Canonicalize applies CombineAssociativeOps then SortCommutativeOps. The
// composition is idempotent and confluent, giving a canonical form under
// associativity and commutativity for the six associative operators; the
// checker uses it to compare conclusions and dependencies modulo AC.
// Duplicate operands are kept, so A ∧ A and A do not canonicalize alike.
func Canonicalize(e Expr) Expr {
	return SortCommutativeOps(CombineAssociativeOps(e))
}

// CanonicalEqual reports whether a and b are equal modulo Canonicalize.
func CanonicalEqual(a, b Expr) bool {
	return Equal(Canonicalize(a), Canonicalize(b))
}
