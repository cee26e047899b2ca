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

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/aris/expr"
)

func TestCombineAssociativeOpsFlattens(t *testing.T) {
	// (A & (B & C)) -> (A & B & C)
	nested := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewAssoc(expr.And, expr.NewVar("B"), expr.NewVar("C")))
	flat := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("B"), expr.NewVar("C"))
	assert.True(t, expr.Equal(expr.CombineAssociativeOps(nested), flat))
}

func TestCombineAssociativeOpsDoesNotCrossOperators(t *testing.T) {
	mixed := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewAssoc(expr.Or, expr.NewVar("B"), expr.NewVar("C")))
	got := expr.CombineAssociativeOps(mixed)
	assoc, ok := got.(expr.Assoc)
	if assert.True(t, ok) {
		assert.Len(t, assoc.Exprs, 2)
	}
}

func TestSortCommutativeOpsIdempotent(t *testing.T) {
	e := expr.NewAssoc(expr.And, expr.NewVar("C"), expr.NewVar("A"), expr.NewVar("B"))
	once := expr.SortCommutativeOps(e)
	twice := expr.SortCommutativeOps(once)
	assert.True(t, expr.Equal(once, twice))
}

func TestCanonicalizeIdempotentAndConfluent(t *testing.T) {
	e1 := expr.NewAssoc(expr.And, expr.NewVar("B"), expr.NewAssoc(expr.And, expr.NewVar("C"), expr.NewVar("A")))
	e2 := expr.NewAssoc(expr.And, expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("C")), expr.NewVar("B"))

	c1 := expr.Canonicalize(e1)
	c2 := expr.Canonicalize(e2)
	assert.True(t, expr.Equal(c1, c2), "ACI-equivalent forms should canonicalize identically")
	assert.True(t, expr.Equal(c1, expr.Canonicalize(c1)), "canonicalization must be idempotent")
}

func TestCanonicalEqual(t *testing.T) {
	a := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("B"))
	b := expr.NewAssoc(expr.And, expr.NewVar("B"), expr.NewVar("A"))
	assert.True(t, expr.CanonicalEqual(a, b))
}
