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

import "fmt"

// Eval evaluates the propositional fragment of e (Contra, Taut, Var, Not,
// Impl, and the boolean Assoc operators And/Or/Bicon/Equiv) against a truth
// assignment env mapping variable names to booleans. It is used by the
// equivalence catalog's brute-force truth-table tests and has no meaning
// for Apply, Quant, or the arithmetic operators Add/Mult; those return an
// error.
func Eval(e Expr, env map[string]bool) (bool, error) {
	switch v := e.(type) {
	case Contra:
		return false, nil
	case Taut:
		return true, nil
	case Var:
		val, ok := env[v.Name]
		if !ok {
			return false, fmt.Errorf("expr: Eval: variable %q not bound in environment", v.Name)
		}
		return val, nil
	case Not:
		operand, err := Eval(v.Operand, env)
		if err != nil {
			return false, err
		}
		return !operand, nil
	case Impl:
		left, err := Eval(v.Left, env)
		if err != nil {
			return false, err
		}
		right, err := Eval(v.Right, env)
		if err != nil {
			return false, err
		}
		return !left || right, nil
	case Assoc:
		switch v.Op {
		case And:
			for _, sub := range v.Exprs {
				b, err := Eval(sub, env)
				if err != nil {
					return false, err
				}
				if !b {
					return false, nil
				}
			}
			return true, nil
		case Or:
			for _, sub := range v.Exprs {
				b, err := Eval(sub, env)
				if err != nil {
					return false, err
				}
				if b {
					return true, nil
				}
			}
			return false, nil
		case Bicon, Equiv:
			first, err := Eval(v.Exprs[0], env)
			if err != nil {
				return false, err
			}
			for _, sub := range v.Exprs[1:] {
				b, err := Eval(sub, env)
				if err != nil {
					return false, err
				}
				if b != first {
					return false, nil
				}
			}
			return true, nil
		default:
			return false, fmt.Errorf("expr: Eval: operator %v is not boolean-valued", v.Op)
		}
	case Apply:
		return false, fmt.Errorf("expr: Eval: Apply has no boolean interpretation")
	case Quant:
		return false, fmt.Errorf("expr: Eval: Quant has no boolean interpretation")
	default:
		panic("expr: unknown Expr variant in Eval")
	}
}
