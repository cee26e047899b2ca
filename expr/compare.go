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

import "strings"

// rank orders the variants for Compare: Contra < Taut < Var < Apply < Not <
// Impl < Assoc < Quant. Two exprs of different variants compare by rank
// alone; same-variant exprs fall through to field-wise comparison below.
func rank(e Expr) int {
	switch e.(type) {
	case Contra:
		return 0
	case Taut:
		return 1
	case Var:
		return 2
	case Apply:
		return 3
	case Not:
		return 4
	case Impl:
		return 5
	case Assoc:
		return 6
	case Quant:
		return 7
	default:
		panic("expr: unknown Expr variant in rank")
	}
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than b
// under the total order declared in the data model: a deterministic order
// consistent with Equal, used both to sort commutative operands into
// canonical form and as a map/set key by canonicalized String output.
func Compare(a, b Expr) int {
	if ra, rb := rank(a), rank(b); ra != rb {
		return cmpInt(ra, rb)
	}

	switch av := a.(type) {
	case Contra:
		return 0
	case Taut:
		return 0
	case Var:
		return strings.Compare(av.Name, b.(Var).Name)
	case Apply:
		bv := b.(Apply)
		if c := Compare(av.Func, bv.Func); c != 0 {
			return c
		}
		return compareSlice(av.Args, bv.Args)
	case Not:
		return Compare(av.Operand, b.(Not).Operand)
	case Impl:
		bv := b.(Impl)
		if c := Compare(av.Left, bv.Left); c != 0 {
			return c
		}
		return Compare(av.Right, bv.Right)
	case Assoc:
		bv := b.(Assoc)
		if c := cmpInt(int(av.Op), int(bv.Op)); c != 0 {
			return c
		}
		return compareSlice(av.Exprs, bv.Exprs)
	case Quant:
		bv := b.(Quant)
		if c := cmpInt(int(av.Kind), int(bv.Kind)); c != 0 {
			return c
		}
		if c := strings.Compare(av.Name, bv.Name); c != 0 {
			return c
		}
		return Compare(av.Body, bv.Body)
	default:
		panic("expr: unknown Expr variant in Compare")
	}
}

func compareSlice(a, b []Expr) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b are structurally (syntactically,
// alpha-sensitive) identical.
func Equal(a, b Expr) bool {
	return Compare(a, b) == 0
}
