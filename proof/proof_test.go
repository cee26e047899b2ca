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

package proof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/proof"
)

func v(name string) expr.Expr { return expr.NewVar(name) }

func TestAddPremiseAndStep(t *testing.T) {
	p := proof.New()
	p1 := p.AddPremise(v("A"))
	p2 := p.AddPremise(v("B"))
	s1 := p.AddStep(proof.Justification{
		Conclusion: expr.NewAssoc(expr.And, v("A"), v("B")),
		Rule:       proof.RuleID("AndIntro"),
		Deps:       []proof.PjRef{p1, p2},
	})

	assert.Equal(t, []proof.PremiseRef{p1, p2}, p.Premises())
	assert.Equal(t, []proof.JustificationRef{s1}, p.DirectLines())

	e, ok := p.LookupExpr(s1)
	require.True(t, ok)
	assert.True(t, expr.Equal(e, expr.NewAssoc(expr.And, v("A"), v("B"))))
}

func TestReferenceStabilityAcrossRemoval(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	b := p.AddPremise(v("B"))
	c := p.AddPremise(v("C"))

	ok := p.RemoveLine(b)
	require.True(t, ok)

	// a and c keep resolving to the same expressions after b is gone.
	ae, ok := p.LookupPremise(a)
	require.True(t, ok)
	assert.True(t, expr.Equal(ae, v("A")))

	ce, ok := p.LookupPremise(c)
	require.True(t, ok)
	assert.True(t, expr.Equal(ce, v("C")))

	_, ok = p.LookupPremise(b)
	assert.False(t, ok)

	assert.Equal(t, []proof.PremiseRef{a, c}, p.Premises())
}

func TestAddStepRelativeInsertsAtExactPosition(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	s1 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})
	s3 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})

	s2, ok := p.AddStepRelative(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}}, s3, false)
	require.True(t, ok)

	got := p.DirectLines()
	require.Len(t, got, 3)
	assert.Equal(t, []proof.JustificationRef{s1, s2, s3}, got)
}

func TestWithMutStepEditsInPlace(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	s := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})

	ok := p.WithMutStep(s, func(j *proof.Justification) {
		j.Conclusion = v("B")
	})
	require.True(t, ok)

	e, ok := p.LookupExpr(s)
	require.True(t, ok)
	assert.True(t, expr.Equal(e, v("B")))
}

func TestCanReferenceDepWithinSameProof(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	s1 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})
	s2 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})

	assert.True(t, p.CanReferenceDep(s2, a))
	assert.True(t, p.CanReferenceDep(s2, s1))
	assert.False(t, p.CanReferenceDep(s1, s2), "a later line is never in scope for an earlier one")
	assert.False(t, p.CanReferenceDep(a, s1), "a premise cannot depend on anything")
}

func TestCanReferenceDepReachesIntoSubproofFromOutside(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	sub := p.AddSubproof()
	var innerAssumption proof.PremiseRef
	p.WithMutSubproof(sub, func(inner *proof.Proof) {
		innerAssumption = inner.AddPremise(v("B"))
		inner.AddStep(proof.Justification{Conclusion: v("B"), Rule: "Reiteration", Deps: []proof.PjRef{innerAssumption}})
	})
	after := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})

	// A step after the subproof can cite the subproof itself...
	assert.True(t, p.CanReferenceDep(after, sub))
	// ...and can cite the outer premise that precedes it...
	assert.True(t, p.CanReferenceDep(after, a))
	// ...but never a line that lives strictly inside the subproof.
	assert.False(t, p.CanReferenceDep(after, innerAssumption))
}

func TestCanReferenceDepReachesOutwardFromInsideSubproof(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	sub := p.AddSubproof()

	var innerStep proof.JustificationRef
	p.WithMutSubproof(sub, func(inner *proof.Proof) {
		b := inner.AddPremise(v("B"))
		innerStep = inner.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a, b}})
	})

	// From inside the subproof, the outer premise that precedes the subproof
	// boundary is in scope.
	assert.True(t, p.CanReferenceDep(innerStep, a))
}

func TestCanReferenceDepRejectsSiblingSubproofInternals(t *testing.T) {
	p := proof.New()
	sub1 := p.AddSubproof()
	var innerOfSub1 proof.PremiseRef
	p.WithMutSubproof(sub1, func(inner *proof.Proof) {
		innerOfSub1 = inner.AddPremise(v("A"))
	})
	sub2 := p.AddSubproof()
	var innerOfSub2 proof.JustificationRef
	p.WithMutSubproof(sub2, func(inner *proof.Proof) {
		b := inner.AddPremise(v("B"))
		innerOfSub2 = inner.AddStep(proof.Justification{Conclusion: v("B"), Rule: "Reiteration", Deps: []proof.PjRef{b}})
	})

	// sub2's contents may cite sub1 as a subproof reference (a completed,
	// preceding sibling) but never reach into sub1's own internals.
	assert.True(t, p.CanReferenceDep(innerOfSub2, sub1))
	assert.False(t, p.CanReferenceDep(innerOfSub2, innerOfSub1))
}

func TestParentAndDepthOfLine(t *testing.T) {
	p := proof.New()
	sub := p.AddSubproof()
	var inner proof.JustificationRef
	var nested proof.SubproofRef
	p.WithMutSubproof(sub, func(s1 *proof.Proof) {
		a := s1.AddPremise(v("A"))
		inner = s1.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})
		nested = s1.AddSubproof()
	})

	parent, ok := p.ParentOfLine(inner)
	require.True(t, ok)
	assert.Equal(t, sub, parent)
	assert.Equal(t, 1, p.DepthOfLine(inner))

	_, ok = p.ParentOfLine(sub)
	assert.False(t, ok, "the outermost subproof's own line has no enclosing subproof")
	assert.Equal(t, 0, p.DepthOfLine(sub))

	nestedParent, ok := p.ParentOfLine(nested)
	require.True(t, ok)
	assert.Equal(t, sub, nestedParent)
}

func TestTransitiveDependenciesFollowsChainAndSubproofs(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	s1 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})

	sub := p.AddSubproof()
	var innerStep proof.JustificationRef
	p.WithMutSubproof(sub, func(inner *proof.Proof) {
		b := inner.AddPremise(v("B"))
		innerStep = inner.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{s1, b}})
	})

	s2 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "ImpIntro", SDeps: []proof.SubproofRef{sub}})

	deps := p.TransitiveDependencies(s2)
	assert.True(t, deps.Contains(a), "ImpIntro over the subproof should transitively reach the outer premise via the inner step's dep on it")
	assert.True(t, deps.Contains(s1))
	assert.True(t, deps.Contains(innerStep))
}

func TestTransitiveDependentsIsInverseOfDependencies(t *testing.T) {
	p := proof.New()
	a := p.AddPremise(v("A"))
	s1 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{a}})
	s2 := p.AddStep(proof.Justification{Conclusion: v("A"), Rule: "Reiteration", Deps: []proof.PjRef{s1}})

	dependents := p.TransitiveDependents(s1)
	assert.True(t, dependents.Contains(s2))
	assert.False(t, dependents.Contains(s1))
}

func TestRemoveSubproofDropsItsContents(t *testing.T) {
	p := proof.New()
	sub := p.AddSubproof()
	var inner proof.PremiseRef
	p.WithMutSubproof(sub, func(s1 *proof.Proof) {
		inner = s1.AddPremise(v("A"))
	})

	ok := p.RemoveSubproof(sub)
	require.True(t, ok)

	_, ok = p.LookupSubproof(sub)
	assert.False(t, ok)
	_, ok = p.ParentOfLine(inner)
	assert.False(t, ok, "a reference into a removed subproof no longer resolves anywhere")
}
