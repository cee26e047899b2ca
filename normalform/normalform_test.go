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

package normalform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/normalform"
)

func TestToNNFRejectsNonPropositional(t *testing.T) {
	_, ok := normalform.ToNNF(expr.NewApply(expr.NewVar("p"), expr.NewVar("x")))
	assert.False(t, ok)

	_, ok = normalform.ToNNF(expr.NewQuant(expr.Forall, "x", expr.NewVar("x")))
	assert.False(t, ok)

	_, ok = normalform.ToNNF(expr.NewAssoc(expr.Add, expr.NewVar("a"), expr.NewVar("b")))
	assert.False(t, ok)
}

func TestToNNFPushesNegationToLiterals(t *testing.T) {
	// not(A and B) -> (not A) or (not B)
	e := expr.NewNot(expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("B")))
	n, ok := normalform.ToNNF(e)
	require.True(t, ok)

	or, ok := n.(normalform.NnfOr)
	require.True(t, ok)
	require.Len(t, or.Clauses, 2)
	lit0 := or.Clauses[0].(normalform.NnfLit)
	lit1 := or.Clauses[1].(normalform.NnfLit)
	assert.False(t, lit0.Polarity)
	assert.False(t, lit1.Polarity)
}

func TestToCNFTautContra(t *testing.T) {
	taut := normalform.ToCNF(normalform.NnfTaut())
	assert.Empty(t, taut.Clauses)

	contra := normalform.ToCNF(normalform.NnfContra())
	require.Len(t, contra.Clauses, 1)
	assert.Empty(t, contra.Clauses[0])
}

func TestToCNFDistributesOrOverAnd(t *testing.T) {
	// (A and B) or C -> (A or C) and (B or C)
	n := normalform.NnfOr{Clauses: []normalform.NnfExpr{
		normalform.NnfAnd{Clauses: []normalform.NnfExpr{normalform.NnfVar("A"), normalform.NnfVar("B")}},
		normalform.NnfVar("C"),
	}}
	cnf := normalform.ToCNF(n)
	assert.Len(t, cnf.Clauses, 2)
	for _, clause := range cnf.Clauses {
		assert.Len(t, clause, 2)
	}
}

func TestToSATFormulaAssignsStableIndices(t *testing.T) {
	e := expr.NewAssoc(expr.Or, expr.NewVar("A"), expr.NewNot(expr.NewVar("B")))
	n, ok := normalform.ToNNF(e)
	require.True(t, ok)
	cnf := normalform.ToCNF(n)
	formula := cnf.ToSATFormula()

	require.Len(t, formula.Clauses, 1)
	require.Len(t, formula.Clauses[0], 2)
	assert.Equal(t, "A", formula.Names[formula.Clauses[0][0]])
	negIdx := -formula.Clauses[0][1]
	assert.Equal(t, "B", formula.Names[negIdx])
}

func TestNnfSatisfiabilityPreservedThroughCNF(t *testing.T) {
	// A and not A is unsatisfiable in NNF and should translate to a CNF with
	// an empty-literal-overlap pair of unit clauses {A}, {-A}.
	e := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewNot(expr.NewVar("A")))
	n, ok := normalform.ToNNF(e)
	require.True(t, ok)
	cnf := normalform.ToCNF(n)
	formula := cnf.ToSATFormula()
	require.Len(t, formula.Clauses, 2)
}
