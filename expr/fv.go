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

import "github.com/hashicorp/go-set/v3"

// FreeVars computes the free variables of e: quantifiers subtract their
// bound name, applications union the function's and arguments' free sets.
func FreeVars(e Expr) *set.Set[string] {
	switch v := e.(type) {
	case Contra, Taut:
		return set.New[string](0)
	case Var:
		return set.From([]string{v.Name})
	case Apply:
		s := FreeVars(v.Func)
		for _, a := range v.Args {
			s.InsertSet(FreeVars(a))
		}
		return s
	case Not:
		return FreeVars(v.Operand)
	case Impl:
		s := FreeVars(v.Left)
		s.InsertSet(FreeVars(v.Right))
		return s
	case Assoc:
		s := set.New[string](0)
		for _, sub := range v.Exprs {
			s.InsertSet(FreeVars(sub))
		}
		return s
	case Quant:
		s := FreeVars(v.Body)
		s.Remove(v.Name)
		return s
	default:
		panic("expr: unknown Expr variant in FreeVars")
	}
}
