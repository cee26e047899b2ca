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

package normalform

import "sort"

// SATFormula is a CNF exported as the signed-integer clause format the SAT
// solver collaborator expects: one slice of nonzero ints per clause (a
// negative int is a negated variable), together with the variable-index to
// name mapping.
type SATFormula struct {
	Clauses [][]int
	Names   map[int]string
}

// ToSATFormula assigns a stable 1-based index to every distinct variable
// name occurring in c (in first-occurrence order) and renders each clause
// as a slice of signed indices.
func (c CnfExpr) ToSATFormula() SATFormula {
	index := make(map[string]int)
	var order []string
	indexOf := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		order = append(order, name)
		i := len(order)
		index[name] = i
		return i
	}

	clauses := make([][]int, len(c.Clauses))
	for i, clause := range c.Clauses {
		lits := make([]int, len(clause))
		for j, lit := range clause {
			idx := indexOf(lit.Name)
			if lit.Polarity {
				lits[j] = idx
			} else {
				lits[j] = -idx
			}
		}
		clauses[i] = lits
	}

	names := make(map[int]string, len(order))
	for name, idx := range index {
		names[idx] = name
	}

	return SATFormula{Clauses: clauses, Names: names}
}

// VarIndices returns the variable indices of f in ascending order, useful
// for deterministic iteration in tests and diagnostics.
func (f SATFormula) VarIndices() []int {
	idxs := make([]int, 0, len(f.Names))
	for i := range f.Names {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return idxs
}
