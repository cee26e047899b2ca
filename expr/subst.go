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

// Subst replaces free occurrences of x in e with r, avoiding variable
// capture: a quantifier that binds x stops the substitution from entering
// its body; a quantifier whose bound name occurs free in r is alpha-renamed
// first.
func Subst(e Expr, x string, r Expr) Expr {
	switch v := e.(type) {
	case Contra, Taut:
		return e
	case Var:
		if v.Name == x {
			return r
		}
		return e
	case Apply:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = Subst(a, x, r)
		}
		return Apply{Func: Subst(v.Func, x, r), Args: args}
	case Not:
		return Not{Operand: Subst(v.Operand, x, r)}
	case Impl:
		return Impl{Left: Subst(v.Left, x, r), Right: Subst(v.Right, x, r)}
	case Assoc:
		exprs := make([]Expr, len(v.Exprs))
		for i, sub := range v.Exprs {
			exprs[i] = Subst(sub, x, r)
		}
		return Assoc{Op: v.Op, Exprs: exprs}
	case Quant:
		if v.Name == x {
			// x is re-bound here; it does not occur free in the body.
			return e
		}
		if !FreeVars(v.Body).Contains(x) {
			// Nothing to substitute below this binder; leave it as is.
			return e
		}
		body := v.Body
		name := v.Name
		if FreeVars(r).Contains(v.Name) {
			fresh := GenVar(v.Name, FreeVars(r))
			body = Subst(v.Body, v.Name, Var{Name: fresh})
			name = fresh
		}
		return Quant{Kind: v.Kind, Name: name, Body: Subst(body, x, r)}
	default:
		panic("expr: unknown Expr variant in Subst")
	}
}
