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

package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/aris/checker"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/proof"
	"go.uber.org/aris/satbridge"
)

func v(name string) expr.Expr { return expr.NewVar(name) }

// ScenarioA: AndIntro citing both premises succeeds.
func TestScenarioAAndIntro(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	b := p.AddPremise(v("B"))
	s := p.AddStep(proof.Justification{
		Conclusion: expr.NewAssoc(expr.And, v("A"), v("B")),
		Rule:       checker.AndIntro,
		Deps:       []proof.PjRef{a, b},
	})

	c := checker.New(p, satbridge.Gophersat{})
	assert.NoError(t, c.VerifyLine(s))
}

// ScenarioB: AndElim citing an unrelated conclusion reports DoesNotOccur.
func TestScenarioBAndElimMismatch(t *testing.T) {
	p := proof.New()
	premise := p.AddPremise(expr.NewAssoc(expr.And, v("A"), v("B"), v("C"), v("D")))
	s := p.AddStep(proof.Justification{
		Conclusion: v("E"),
		Rule:       checker.AndElim,
		Deps:       []proof.PjRef{premise},
	})

	c := checker.New(p, satbridge.Gophersat{})
	err := c.VerifyLine(s)
	require.Error(t, err)
	var doesNotOccur *checker.DoesNotOccur
	require.ErrorAs(t, err, &doesNotOccur)
}

// ScenarioC: ImpIntro via a subproof that reiterates an outer premise.
func TestScenarioCImpIntroViaSubproof(t *testing.T) {
	p := proof.New()
	b := p.AddPremise(v("B"))
	sub := p.AddSubproof()
	var innerReiteration proof.JustificationRef
	p.WithMutSubproof(sub, func(inner *proof.Proof) {
		inner.AddPremise(v("A"))
		innerReiteration = inner.AddStep(proof.Justification{
			Conclusion: v("B"),
			Rule:       checker.Reiteration,
			Deps:       []proof.PjRef{b},
		})
	})
	s := p.AddStep(proof.Justification{
		Conclusion: expr.NewImpl(v("A"), v("B")),
		Rule:       checker.ImpIntro,
		SDeps:      []proof.SubproofRef{sub},
	})

	c := checker.New(p, satbridge.Gophersat{})
	assert.NoError(t, c.VerifyLine(innerReiteration))
	assert.NoError(t, c.VerifyLine(s))
}

// ScenarioD: DeMorgan accepted in the direction the premise supports,
// rejected in the other.
func TestScenarioDDeMorgan(t *testing.T) {
	p := proof.New()
	premise := p.AddPremise(expr.NewNot(expr.NewAssoc(expr.And, v("A"), v("B"))))

	ok := p.AddStep(proof.Justification{
		Conclusion: expr.NewAssoc(expr.Or, expr.NewNot(v("A")), expr.NewNot(v("B"))),
		Rule:       checker.DeMorgan,
		Deps:       []proof.PjRef{premise},
	})
	bad := p.AddStep(proof.Justification{
		Conclusion: expr.NewNot(expr.NewAssoc(expr.Or, v("A"), v("B"))),
		Rule:       checker.DeMorgan,
		Deps:       []proof.PjRef{premise},
	})

	c := checker.New(p, satbridge.Gophersat{})
	assert.NoError(t, c.VerifyLine(ok))
	assert.Error(t, c.VerifyLine(bad))
}

// ScenarioE: ForallElim succeeds for a matching instantiation, fails when
// the predicate symbol itself differs.
func TestScenarioEForallElim(t *testing.T) {
	p := proof.New()
	pxVar := expr.NewQuant(expr.Forall, "x", expr.NewApply(v("p"), v("x")))
	premise := p.AddPremise(pxVar)

	ok := p.AddStep(proof.Justification{
		Conclusion: expr.NewApply(v("p"), v("a")),
		Rule:       checker.ForallElim,
		Deps:       []proof.PjRef{premise},
	})
	bad := p.AddStep(proof.Justification{
		Conclusion: expr.NewApply(v("q"), v("x")),
		Rule:       checker.ForallElim,
		Deps:       []proof.PjRef{premise},
	})

	c := checker.New(p, satbridge.Gophersat{})
	assert.NoError(t, c.VerifyLine(ok))
	assert.Error(t, c.VerifyLine(bad))
}

// ScenarioF: Resolution combines two clauses on a complementary literal;
// dropping a disjunct from the conclusion is rejected.
func TestScenarioFResolution(t *testing.T) {
	p := proof.New()
	left := p.AddPremise(expr.NewAssoc(expr.Or, v("a1"), v("a2"), v("c")))
	right := p.AddPremise(expr.NewAssoc(expr.Or, v("b1"), v("b2"), expr.NewNot(v("c"))))

	ok := p.AddStep(proof.Justification{
		Conclusion: expr.NewAssoc(expr.Or, v("a1"), v("a2"), v("b1"), v("b2")),
		Rule:       checker.Resolution,
		Deps:       []proof.PjRef{left, right},
	})
	bad := p.AddStep(proof.Justification{
		Conclusion: expr.NewAssoc(expr.Or, v("a1"), v("a2"), v("b1")),
		Rule:       checker.Resolution,
		Deps:       []proof.PjRef{left, right},
	})

	c := checker.New(p, satbridge.Gophersat{})
	assert.NoError(t, c.VerifyLine(ok))
	assert.Error(t, c.VerifyLine(bad))
}

// Every registered rule's serialized name round-trips through NameOf/FromName.
func TestRuleNameRoundTrip(t *testing.T) {
	for _, name := range checker.AllNames() {
		id, ok := checker.FromName(name)
		require.True(t, ok, "name %q did not resolve to a rule", name)
		gotName, ok := checker.NameOf(id)
		require.True(t, ok)
		assert.Equal(t, name, gotName)
	}
}

// A step citing a rule id that is not registered reports an error rather
// than panicking.
func TestVerifyLineUnregisteredRuleReportsError(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	s := p.AddStep(proof.Justification{
		Conclusion: v("A"),
		Rule:       proof.RuleID("NOT_A_REAL_RULE"),
		Deps:       []proof.PjRef{a},
	})

	c := checker.New(p, satbridge.Gophersat{})
	assert.Error(t, c.VerifyLine(s))
}

// Edits invalidate cached results for lines that transitively depend on the
// edited line.
func TestInvalidatePropagatesToDependents(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	b := p.AddPremise(v("B"))
	s := p.AddStep(proof.Justification{
		Conclusion: expr.NewAssoc(expr.And, v("A"), v("B")),
		Rule:       checker.AndIntro,
		Deps:       []proof.PjRef{a, b},
	})

	c := checker.New(p, satbridge.Gophersat{})
	require.NoError(t, c.VerifyLine(s))

	p.WithMutPremise(a, func(expr.Expr) expr.Expr { return v("Z") })
	c.Invalidate(a)

	assert.Error(t, c.VerifyLine(s))
}
