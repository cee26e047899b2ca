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

// commuteAnd is deliberately non-confluent: swapping a 2-ary And's operands
// is its own inverse, so naive repeated application to a fixpoint would
// oscillate; transform_set is exactly the tool for a rule like this.
func commuteAnd(e expr.Expr) (expr.Expr, bool) {
	a, ok := e.(expr.Assoc)
	if !ok || a.Op != expr.And || len(a.Exprs) != 2 {
		return e, false
	}
	return expr.NewAssoc(expr.And, a.Exprs[1], a.Exprs[0]), true
}

func TestTransformSetIncludesOriginalAndCommuted(t *testing.T) {
	e := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("B"))
	set := expr.TransformSet(e, commuteAnd)

	ba := expr.NewAssoc(expr.And, expr.NewVar("B"), expr.NewVar("A"))
	assert.True(t, set.Contains(e))
	assert.True(t, set.Contains(ba))
	assert.Equal(t, 2, set.Len())
}

func TestTransformSetCartesianProductOverChildren(t *testing.T) {
	// Not(And(A,B)) should reach Not(And(A,B)) and Not(And(B,A)).
	e := expr.NewNot(expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("B")))
	set := expr.TransformSet(e, commuteAnd)
	assert.Equal(t, 2, set.Len())
}

func TestTransformSetNoApplicableRuleYieldsSingleton(t *testing.T) {
	e := expr.NewVar("A")
	set := expr.TransformSet(e, commuteAnd)
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(e))
}
