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

// Literal is a signed propositional variable occurrence.
type Literal struct {
	Polarity bool
	Name     string
}

// Clause is a disjunction of literals; a clause with zero literals is Bottom.
type Clause []Literal

// CnfExpr is a conjunction of clauses; an empty outer sequence is Top.
type CnfExpr struct {
	Clauses []Clause
}

// CnfTaut returns Top: the empty conjunction of clauses.
func CnfTaut() CnfExpr { return CnfExpr{} }

// CnfContra returns Bottom: a single empty clause.
func CnfContra() CnfExpr { return CnfExpr{Clauses: []Clause{{}}} }

// CnfLiteral returns the CNF of a single literal.
func CnfLiteral(polarity bool, name string) CnfExpr {
	return CnfExpr{Clauses: []Clause{{{Polarity: polarity, Name: name}}}}
}

// CnfAnd conjoins a sequence of CnfExprs: conjunction of CNFs is simply the
// concatenation of their clause lists.
func CnfAnd(parts ...CnfExpr) CnfExpr {
	var clauses []Clause
	for _, p := range parts {
		clauses = append(clauses, p.Clauses...)
	}
	return CnfExpr{Clauses: clauses}
}

// CnfOr disjoins a sequence of CnfExprs by distributing OR over AND: the
// result has one clause per combination, drawn from the Cartesian product
// of each operand's clause list, concatenated.
func CnfOr(parts ...CnfExpr) CnfExpr {
	clauseLists := make([][]Clause, len(parts))
	for i, p := range parts {
		clauseLists[i] = p.Clauses
	}
	var clauses []Clause
	for _, combo := range clauseCartesianProduct(clauseLists) {
		var merged Clause
		for _, c := range combo {
			merged = append(merged, c...)
		}
		clauses = append(clauses, merged)
	}
	return CnfExpr{Clauses: clauses}
}

func clauseCartesianProduct(lists [][]Clause) [][]Clause {
	result := [][]Clause{{}}
	for _, l := range lists {
		var next [][]Clause
		for _, combo := range result {
			for _, c := range l {
				nc := make([]Clause, len(combo), len(combo)+1)
				copy(nc, combo)
				next = append(next, append(nc, c))
			}
		}
		result = next
	}
	return result
}

// ToCNF converts an NnfExpr to conjunctive normal form.
func ToCNF(n NnfExpr) CnfExpr {
	switch v := n.(type) {
	case NnfLit:
		return CnfLiteral(v.Polarity, v.Name)
	case NnfAnd:
		if len(v.Clauses) == 0 {
			return CnfTaut()
		}
		parts := make([]CnfExpr, len(v.Clauses))
		for i, c := range v.Clauses {
			parts[i] = ToCNF(c)
		}
		return CnfAnd(parts...)
	case NnfOr:
		if len(v.Clauses) == 0 {
			return CnfContra()
		}
		parts := make([]CnfExpr, len(v.Clauses))
		for i, c := range v.Clauses {
			parts[i] = ToCNF(c)
		}
		return CnfOr(parts...)
	default:
		panic("normalform: unknown NnfExpr variant in ToCNF")
	}
}
