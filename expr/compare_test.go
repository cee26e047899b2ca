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

func TestCompareVariantRank(t *testing.T) {
	ordered := []expr.Expr{
		expr.Contra{},
		expr.Taut{},
		expr.NewVar("A"),
		expr.NewApply(expr.NewVar("p"), expr.NewVar("a")),
		expr.NewNot(expr.NewVar("A")),
		expr.NewImpl(expr.NewVar("A"), expr.NewVar("B")),
		expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("B")),
		expr.NewQuant(expr.Forall, "x", expr.NewVar("x")),
	}
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			assert.Equal(t, -1, expr.Compare(ordered[i], ordered[j]), "%v should be < %v", ordered[i], ordered[j])
			assert.Equal(t, 1, expr.Compare(ordered[j], ordered[i]))
		}
	}
}

func TestCompareReflexiveAndEqual(t *testing.T) {
	a := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewImpl(expr.NewVar("B"), expr.NewVar("C")))
	b := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewImpl(expr.NewVar("B"), expr.NewVar("C")))
	assert.Equal(t, 0, expr.Compare(a, b))
	assert.True(t, expr.Equal(a, b))
}

func TestCompareOrderSensitiveBeforeCanonicalization(t *testing.T) {
	ab := expr.NewAssoc(expr.And, expr.NewVar("A"), expr.NewVar("B"))
	ba := expr.NewAssoc(expr.And, expr.NewVar("B"), expr.NewVar("A"))
	assert.False(t, expr.Equal(ab, ba))
}
