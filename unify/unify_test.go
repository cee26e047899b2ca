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

package unify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/unify"
)

func TestUnifyVarToExpr(t *testing.T) {
	// x = p(y) should bind x to p(y).
	c := unify.Constraint{Left: expr.NewVar("x"), Right: expr.NewApply(expr.NewVar("p"), expr.NewVar("y"))}
	sub, ok := unify.Unify([]unify.Constraint{c})
	require.True(t, ok)

	val, found := sub.Lookup("x")
	require.True(t, found)
	assert.True(t, expr.Equal(val, expr.NewApply(expr.NewVar("p"), expr.NewVar("y"))))
}

func TestUnifyOccursCheckFails(t *testing.T) {
	// x = p(x) is not unifiable.
	c := unify.Constraint{Left: expr.NewVar("x"), Right: expr.NewApply(expr.NewVar("p"), expr.NewVar("x"))}
	_, ok := unify.Unify([]unify.Constraint{c})
	assert.False(t, ok)
}

func TestUnifyApplySameArity(t *testing.T) {
	// p(x, b) = p(a, y) unifies with x:=a, b:=y (a variable on the left side
	// of a constraint is bound first).
	left := expr.NewApply(expr.NewVar("p"), expr.NewVar("x"), expr.NewVar("b"))
	right := expr.NewApply(expr.NewVar("p"), expr.NewVar("a"), expr.NewVar("y"))
	sub, ok := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	require.True(t, ok)

	x, _ := sub.Lookup("x")
	assert.True(t, expr.Equal(x, expr.NewVar("a")))
	b, _ := sub.Lookup("b")
	assert.True(t, expr.Equal(b, expr.NewVar("y")))
}

func TestUnifyApplyArityMismatchFails(t *testing.T) {
	left := expr.NewApply(expr.NewVar("p"), expr.NewVar("a"))
	right := expr.NewApply(expr.NewVar("p"), expr.NewVar("a"), expr.NewVar("b"))
	_, ok := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	assert.False(t, ok)
}

func TestUnifyNotModuloCommutativity(t *testing.T) {
	// p(⊤, ⊥) = p(⊥, ⊤) should fail: ⊤ != ⊥ pointwise, and Unify never
	// permutes Assoc/Apply children.
	left := expr.NewApply(expr.NewVar("p"), expr.Taut{}, expr.Contra{})
	right := expr.NewApply(expr.NewVar("p"), expr.Contra{}, expr.Taut{})
	_, ok := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	assert.False(t, ok)
}

func TestUnifyQuantifiersAlphaEquivalent(t *testing.T) {
	// (forall x, p(x)) unifies with (forall y, p(y)) with no residual bindings
	// for x or y -- they are alpha-equivalent.
	left := expr.NewQuant(expr.Forall, "x", expr.NewApply(expr.NewVar("p"), expr.NewVar("x")))
	right := expr.NewQuant(expr.Forall, "y", expr.NewApply(expr.NewVar("p"), expr.NewVar("y")))
	sub, ok := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	require.True(t, ok)
	_, foundX := sub.Lookup("x")
	_, foundY := sub.Lookup("y")
	assert.False(t, foundX)
	assert.False(t, foundY)
}

func TestUnifyQuantifierDifferentKindFails(t *testing.T) {
	left := expr.NewQuant(expr.Forall, "x", expr.NewVar("x"))
	right := expr.NewQuant(expr.Exists, "x", expr.NewVar("x"))
	_, ok := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	assert.False(t, ok)
}

func TestUnifyForallElimExample(t *testing.T) {
	// forall x, p(x) unified against p(a) (scenario E from the end-to-end tests)
	// should bind x := a.
	pattern := expr.NewApply(expr.NewVar("p"), expr.NewVar("x"))
	target := expr.NewApply(expr.NewVar("p"), expr.NewVar("a"))
	sub, ok := unify.Unify([]unify.Constraint{{Left: pattern, Right: target}})
	require.True(t, ok)
	x, found := sub.Lookup("x")
	require.True(t, found)
	assert.True(t, expr.Equal(x, expr.NewVar("a")))
}

func TestUnifyForallElimMismatchFails(t *testing.T) {
	// p(x) against ¬p(a): no substitution turns an application into a
	// negation.
	pattern := expr.NewApply(expr.NewVar("p"), expr.NewVar("x"))
	target := expr.NewNot(expr.NewApply(expr.NewVar("p"), expr.NewVar("a")))
	_, ok := unify.Unify([]unify.Constraint{{Left: pattern, Right: target}})
	assert.False(t, ok)
}

func TestSubstitutionApplyMatchesUnification(t *testing.T) {
	// unify({a = b}) returns a substitution sigma with sigma(a) ~ sigma(b).
	left := expr.NewApply(expr.NewVar("p"), expr.NewVar("x"))
	right := expr.NewApply(expr.NewVar("p"), expr.NewVar("a"))
	sub, ok := unify.Unify([]unify.Constraint{{Left: left, Right: right}})
	require.True(t, ok)
	assert.True(t, expr.Equal(sub.Apply(left), sub.Apply(right)))
}
