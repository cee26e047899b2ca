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

package checker

import (
	"go.uber.org/aris/expr"
	"go.uber.org/aris/proof"
)

func init() {
	register(&Rule{
		ID: BiconditionalElim, DisplayName: "BiconditionalElim", Classification: Elimination,
		DepArity: arity(2), SubDepArity: arity(0), Check: biconElimChecker(expr.Bicon),
	})
	register(&Rule{
		ID: EquivalenceElim, DisplayName: "EquivalenceElim", Classification: Elimination,
		DepArity: arity(2), SubDepArity: arity(0), Check: biconElimChecker(expr.Equiv),
	})
	register(&Rule{
		ID: BiconditionalIntro, DisplayName: "BiconditionalIntro", Classification: Introduction,
		Check: biconIntroChecker(expr.Bicon),
	})
	register(&Rule{
		ID: EquivalenceIntro, DisplayName: "EquivalenceIntro", Classification: Introduction,
		Check: biconIntroChecker(expr.Equiv),
	})
	register(&Rule{
		ID: ExcludedMiddle, DisplayName: "ExcludedMiddle", Classification: MiscInference,
		DepArity: arity(0), SubDepArity: arity(0), Check: checkExcludedMiddle,
	})
	register(&Rule{
		ID: DisjunctiveSyllogism, DisplayName: "DisjunctiveSyllogism", Classification: MiscInference,
		DepArity: arity(2), SubDepArity: arity(0), Check: checkDisjunctiveSyllogism,
	})
	register(&Rule{
		ID: HypotheticalSyllogism, DisplayName: "HypotheticalSyllogism", Classification: MiscInference,
		DepArity: arity(2), SubDepArity: arity(0), Check: checkHypotheticalSyllogism,
	})
	register(&Rule{
		ID: ConstructiveDilemma, DisplayName: "ConstructiveDilemma", Classification: MiscInference,
		DepArity: arity(3), SubDepArity: arity(0), Check: checkConstructiveDilemma,
	})
	register(&Rule{
		ID: DestructiveDilemma, DisplayName: "DestructiveDilemma", Classification: MiscInference,
		DepArity: arity(3), SubDepArity: arity(0), Check: checkDestructiveDilemma,
	})
}

// biconElimChecker builds BiconditionalElim/EquivalenceElim's validator for
// the given chain operator (Bicon or Equiv): given a.m op chain and one of
// its arguments as the second dep, the conclusion may be any other
// argument of the chain.
func biconElimChecker(op expr.Op) CheckFunc {
	return func(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
		chainDep, argDep := deps[0], deps[1]
		err := biconElimOrdered(root, op, chainDep, argDep, conclusion)
		if err == nil {
			return nil
		}
		swapErr := biconElimOrdered(root, op, argDep, chainDep, conclusion)
		if swapErr == nil {
			return nil
		}
		return NewOneOf(err, swapErr)
	}
}

func biconElimOrdered(root *proof.Proof, op expr.Op, chainRef, argRef proof.PjRef, conclusion expr.Expr) error {
	chain, err := resolveDep(root, chainRef)
	if err != nil {
		return err
	}
	arg, err := resolveDep(root, argRef)
	if err != nil {
		return err
	}
	es, ok := assocOperands(chain, op)
	if !ok {
		return &DepOfWrongForm{Ref: chainRef, Shape: "a chain of the expected operator"}
	}
	if !containsCanonical(es, arg) {
		return &DoesNotOccur{Sub: arg, Whole: chain}
	}
	if !containsCanonical(es, conclusion) {
		return &DoesNotOccur{Sub: conclusion, Whole: chain}
	}
	return nil
}

// biconIntroChecker assembles a chain from sub-implications: each
// consecutive pair of the conclusion's arguments must be justified by an
// ImpIntro-shaped subproof (or a cited p -> q dependency) in both
// directions.
func biconIntroChecker(op expr.Op) CheckFunc {
	return func(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, sdeps []proof.SubproofRef) error {
		es, ok := assocOperands(conclusion, op)
		if !ok {
			return &ConclusionOfWrongForm{Shape: "A <-> B <-> ..."}
		}
		impls := make([]expr.Impl, 0, len(deps))
		for _, d := range deps {
			e, err := resolveDep(root, d)
			if err != nil {
				return err
			}
			i, ok := e.(expr.Impl)
			if !ok {
				return &DepOfWrongForm{Ref: d, Shape: "A → B"}
			}
			impls = append(impls, i)
		}
		for _, sref := range sdeps {
			sp, err := resolveSubproof(root, sref)
			if err != nil {
				return err
			}
			assumption, ok := subproofAssumption(sp)
			if !ok {
				return &DepOfWrongForm{Ref: sref, Shape: "a subproof with a single assumption"}
			}
			lines := sp.Lines()
			if len(lines) == 0 {
				return Otherf("subproof %v derives nothing", sref)
			}
			last, ok := lines[len(lines)-1].(proof.JustificationRef)
			if !ok {
				return Otherf("subproof %v does not end in a derived step", sref)
			}
			consequent, ok := sp.LookupExpr(last)
			if !ok {
				return &LineDoesNotExist{Ref: last}
			}
			impls = append(impls, expr.Impl{Left: assumption, Right: consequent})
		}
		for i := 0; i+1 < len(es); i++ {
			if !hasBothDirections(impls, es[i], es[i+1]) {
				return Otherf("no pair of implications links %v and %v", es[i], es[i+1])
			}
		}
		return nil
	}
}

func hasBothDirections(impls []expr.Impl, a, b expr.Expr) bool {
	forward, backward := false, false
	for _, i := range impls {
		if expr.CanonicalEqual(i.Left, a) && expr.CanonicalEqual(i.Right, b) {
			forward = true
		}
		if expr.CanonicalEqual(i.Left, b) && expr.CanonicalEqual(i.Right, a) {
			backward = true
		}
	}
	return forward && backward
}

func checkExcludedMiddle(_ *proof.Proof, conclusion expr.Expr, _ []proof.PjRef, _ []proof.SubproofRef) error {
	es, ok := assocOperands(conclusion, expr.Or)
	if !ok || len(es) != 2 {
		return &ConclusionOfWrongForm{Shape: "A ∨ ¬A"}
	}
	if isNegationOf(es[0], es[1]) {
		return nil
	}
	return &ConclusionOfWrongForm{Shape: "A ∨ ¬A"}
}

func checkDisjunctiveSyllogism(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	a, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	b, err := resolveDep(root, deps[1])
	if err != nil {
		return err
	}
	err = disjunctiveSyllogismOrdered(a, b, conclusion)
	if err == nil {
		return nil
	}
	swapErr := disjunctiveSyllogismOrdered(b, a, conclusion)
	if swapErr == nil {
		return nil
	}
	return NewOneOf(err, swapErr)
}

func disjunctiveSyllogismOrdered(disj, negatedDisjunct, conclusion expr.Expr) error {
	es, ok := assocOperands(disj, expr.Or)
	if !ok {
		return &DepOfWrongForm{Shape: "A ∨ B ∨ ..."}
	}
	not, ok := negatedDisjunct.(expr.Not)
	if !ok {
		return &DepOfWrongForm{Shape: "¬A for some disjunct A"}
	}
	remaining := make([]expr.Expr, 0, len(es))
	removed := false
	for _, e := range es {
		if !removed && expr.CanonicalEqual(e, not.Operand) {
			removed = true
			continue
		}
		remaining = append(remaining, e)
	}
	if !removed {
		return &DoesNotOccur{Sub: not.Operand, Whole: disj}
	}
	var want expr.Expr
	if len(remaining) == 1 {
		want = remaining[0]
	} else {
		want = expr.NewAssoc(expr.Or, remaining...)
	}
	if !expr.CanonicalEqual(conclusion, want) {
		return &ConclusionOfWrongForm{Shape: "the disjunction with the negated disjunct removed"}
	}
	return nil
}

func checkHypotheticalSyllogism(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	a, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	b, err := resolveDep(root, deps[1])
	if err != nil {
		return err
	}
	want, ok := conclusion.(expr.Impl)
	if !ok {
		return &ConclusionOfWrongForm{Shape: "A → C"}
	}
	if err := hypotheticalSyllogismOrdered(a, b, want); err == nil {
		return nil
	}
	return hypotheticalSyllogismOrdered(b, a, want)
}

func hypotheticalSyllogismOrdered(first, second expr.Expr, want expr.Impl) error {
	i1, ok := first.(expr.Impl)
	if !ok {
		return &DepOfWrongForm{Shape: "A → B"}
	}
	i2, ok := second.(expr.Impl)
	if !ok {
		return &DepOfWrongForm{Shape: "B → C"}
	}
	if !expr.CanonicalEqual(i1.Right, i2.Left) {
		return &DoesNotOccur{Sub: i1.Right, Whole: i2}
	}
	if !expr.CanonicalEqual(want.Left, i1.Left) || !expr.CanonicalEqual(want.Right, i2.Right) {
		return &ConclusionOfWrongForm{Shape: "A → C"}
	}
	return nil
}

func checkConstructiveDilemma(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	exprs := make([]expr.Expr, len(deps))
	for i, d := range deps {
		e, err := resolveDep(root, d)
		if err != nil {
			return err
		}
		exprs[i] = e
	}
	concl, ok := assocOperands(conclusion, expr.Or)
	if !ok || len(concl) != 2 {
		return &ConclusionOfWrongForm{Shape: "C ∨ D"}
	}
	impl1, impl2, disj, err := findTwoImplsAndDisjunction(exprs)
	if err != nil {
		return err
	}
	alt1 := [2]expr.Expr{impl1.Right, impl2.Right}
	alt2 := [2]expr.Expr{impl2.Right, impl1.Right}
	disjOperands, _ := assocOperands(disj, expr.Or)
	if len(disjOperands) != 2 {
		return &DepOfWrongForm{Shape: "A ∨ B"}
	}
	if !((expr.CanonicalEqual(disjOperands[0], impl1.Left) && expr.CanonicalEqual(disjOperands[1], impl2.Left)) ||
		(expr.CanonicalEqual(disjOperands[0], impl2.Left) && expr.CanonicalEqual(disjOperands[1], impl1.Left))) {
		return Otherf("disjunction %v does not match the antecedents of the cited implications", disj)
	}
	if expr.CanonicalEqual(conclusion, expr.NewAssoc(expr.Or, alt1[0], alt1[1])) ||
		expr.CanonicalEqual(conclusion, expr.NewAssoc(expr.Or, alt2[0], alt2[1])) {
		return nil
	}
	return &ConclusionOfWrongForm{Shape: "the disjunction of the implications' consequents"}
}

func checkDestructiveDilemma(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	exprs := make([]expr.Expr, len(deps))
	for i, d := range deps {
		e, err := resolveDep(root, d)
		if err != nil {
			return err
		}
		exprs[i] = e
	}
	impl1, impl2, disj, err := findTwoImplsAndDisjunction(exprs)
	if err != nil {
		return err
	}
	disjOperands, ok := assocOperands(disj, expr.Or)
	if !ok || len(disjOperands) != 2 {
		return &DepOfWrongForm{Shape: "¬C ∨ ¬D"}
	}
	notA, notAOk := disjOperands[0].(expr.Not)
	notB, notBOk := disjOperands[1].(expr.Not)
	if !notAOk || !notBOk {
		return &DepOfWrongForm{Shape: "¬C ∨ ¬D"}
	}
	matches := (expr.CanonicalEqual(notA.Operand, impl1.Right) && expr.CanonicalEqual(notB.Operand, impl2.Right)) ||
		(expr.CanonicalEqual(notA.Operand, impl2.Right) && expr.CanonicalEqual(notB.Operand, impl1.Right))
	if !matches {
		return Otherf("disjunction %v does not negate the cited implications' consequents", disj)
	}
	want1 := expr.NewAssoc(expr.Or, expr.NewNot(impl1.Left), expr.NewNot(impl2.Left))
	want2 := expr.NewAssoc(expr.Or, expr.NewNot(impl2.Left), expr.NewNot(impl1.Left))
	if expr.CanonicalEqual(conclusion, want1) || expr.CanonicalEqual(conclusion, want2) {
		return nil
	}
	return &ConclusionOfWrongForm{Shape: "the disjunction of the implications' negated antecedents"}
}

// findTwoImplsAndDisjunction classifies three dependency expressions into
// exactly two Impls and one Or-Assoc, in any argument order, as both
// dilemma rules need.
func findTwoImplsAndDisjunction(exprs []expr.Expr) (expr.Impl, expr.Impl, expr.Expr, error) {
	var impls []expr.Impl
	var disjs []expr.Expr
	for _, e := range exprs {
		switch v := e.(type) {
		case expr.Impl:
			impls = append(impls, v)
		case expr.Assoc:
			if v.Op == expr.Or {
				disjs = append(disjs, v)
			}
		}
	}
	if len(impls) != 2 || len(disjs) != 1 {
		return expr.Impl{}, expr.Impl{}, nil, Otherf("expected exactly two implications and one disjunction among the dependencies")
	}
	return impls[0], impls[1], disjs[0], nil
}
