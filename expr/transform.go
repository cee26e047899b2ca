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

// RewriteFunc attempts one rewrite of e, returning the rewritten expression
// and whether a rewrite was applied. Returning false leaves e untouched.
type RewriteFunc func(e Expr) (Expr, bool)

// Transform applies f bottom-up across e: children are transformed first,
// then f is tried on the resulting node; if anything changed anywhere in
// the pass, the whole pass is rerun from the top. Transform terminates only
// when a full pass produces no change; it does not detect divergence for a
// non-confluent f (use TransformSet for those).
func Transform(e Expr, f RewriteFunc) Expr {
	for {
		next, changed := transformOnce(e, f)
		if !changed {
			return next
		}
		e = next
	}
}

// transformOnce performs a single bottom-up pass, reporting whether any
// node (self or descendant) changed.
func transformOnce(e Expr, f RewriteFunc) (Expr, bool) {
	var rebuilt Expr
	childChanged := false

	switch v := e.(type) {
	case Contra, Taut, Var:
		rebuilt = e
	case Apply:
		fn, c0 := transformOnce(v.Func, f)
		childChanged = childChanged || c0
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			na, c := transformOnce(a, f)
			args[i] = na
			childChanged = childChanged || c
		}
		rebuilt = Apply{Func: fn, Args: args}
	case Not:
		operand, c := transformOnce(v.Operand, f)
		childChanged = c
		rebuilt = Not{Operand: operand}
	case Impl:
		left, c0 := transformOnce(v.Left, f)
		right, c1 := transformOnce(v.Right, f)
		childChanged = c0 || c1
		rebuilt = Impl{Left: left, Right: right}
	case Assoc:
		exprs := make([]Expr, len(v.Exprs))
		for i, sub := range v.Exprs {
			ne, c := transformOnce(sub, f)
			exprs[i] = ne
			childChanged = childChanged || c
		}
		rebuilt = Assoc{Op: v.Op, Exprs: exprs}
	case Quant:
		body, c := transformOnce(v.Body, f)
		childChanged = c
		rebuilt = Quant{Kind: v.Kind, Name: v.Name, Body: body}
	default:
		panic("expr: unknown Expr variant in Transform")
	}

	self, selfChanged := f(rebuilt)
	return self, childChanged || selfChanged
}
