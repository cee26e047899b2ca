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
		ID: AndIntro, DisplayName: "AndIntro", Classification: Introduction,
		SubDepArity: arity(0), Check: checkAndIntro,
	})
	register(&Rule{
		ID: AndElim, DisplayName: "AndElim", Classification: Elimination,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkAndElim,
	})
	register(&Rule{
		ID: OrIntro, DisplayName: "OrIntro", Classification: Introduction,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkOrIntro,
	})
	register(&Rule{
		ID: OrElim, DisplayName: "OrElim", Classification: Elimination,
		DepArity: arity(1), Check: checkOrElim,
	})
	register(&Rule{
		ID: ImpIntro, DisplayName: "ImpIntro", Classification: Introduction,
		DepArity: arity(0), SubDepArity: arity(1), Check: checkImpIntro,
	})
	register(&Rule{
		ID: ImpElim, DisplayName: "ImpElim", Classification: Elimination,
		DepArity: arity(2), SubDepArity: arity(0), Check: checkImpElim,
	})
	register(&Rule{
		ID: ModusTollens, DisplayName: "ModusTollens", Classification: Elimination,
		DepArity: arity(2), SubDepArity: arity(0), Check: checkModusTollens,
	})
	register(&Rule{
		ID: NotIntro, DisplayName: "NotIntro", Classification: Introduction,
		DepArity: arity(0), SubDepArity: arity(1), Check: checkNotIntro,
	})
	register(&Rule{
		ID: NotElim, DisplayName: "NotElim", Classification: Elimination,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkNotElim,
	})
	register(&Rule{
		ID: ContradictionIntro, DisplayName: "ContradictionIntro", Classification: Introduction,
		DepArity: arity(2), SubDepArity: arity(0), Check: checkContradictionIntro,
	})
	register(&Rule{
		ID: ContradictionElim, DisplayName: "ContradictionElim", Classification: Elimination,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkContradictionElim,
	})
	register(&Rule{
		ID: Reiteration, DisplayName: "Reiteration", Classification: MiscInference,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkReiteration,
	})
}

func checkAndIntro(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	es, ok := assocOperands(conclusion, expr.And)
	if !ok {
		return &ConclusionOfWrongForm{Shape: "A ∧ B ∧ ..."}
	}
	depExprs := make([]expr.Expr, len(deps))
	for i, d := range deps {
		e, err := resolveDep(root, d)
		if err != nil {
			return err
		}
		depExprs[i] = e
	}
	if !matchMultiset(depExprs, es) {
		return Otherf("dependencies do not match the conjuncts of %v", conclusion)
	}
	return nil
}

func checkAndElim(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	es, ok := assocOperands(dep, expr.And)
	if !ok {
		return &DepOfWrongForm{Ref: deps[0], Shape: "A ∧ B ∧ ..."}
	}
	if !containsCanonical(es, conclusion) {
		return &DoesNotOccur{Sub: conclusion, Whole: dep}
	}
	return nil
}

func checkOrIntro(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	es, ok := assocOperands(conclusion, expr.Or)
	if !ok {
		return &ConclusionOfWrongForm{Shape: "A ∨ B ∨ ..."}
	}
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	if !containsCanonical(es, dep) {
		return &DoesNotOccur{Sub: dep, Whole: conclusion}
	}
	return nil
}

func checkOrElim(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, sdeps []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	ds, ok := assocOperands(dep, expr.Or)
	if !ok {
		return &DepOfWrongForm{Ref: deps[0], Shape: "A ∨ B ∨ ..."}
	}
	if len(sdeps) == 0 {
		return &IncorrectSubDepCount{Got: 0, Expected: len(ds)}
	}

	covered := make([]bool, len(ds))
	for _, sref := range sdeps {
		sp, err := resolveSubproof(root, sref)
		if err != nil {
			return err
		}
		assumption, ok := subproofAssumption(sp)
		if !ok {
			return &DepOfWrongForm{Ref: sref, Shape: "a subproof assuming one disjunct"}
		}
		if !derivesConclusion(sp, conclusion) {
			return Otherf("subproof %v does not derive %v", sref, conclusion)
		}
		matched := false
		for i, d := range ds {
			if !covered[i] && expr.CanonicalEqual(assumption, d) {
				covered[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return &DoesNotOccur{Sub: assumption, Whole: dep}
		}
	}
	for i, c := range covered {
		if !c {
			return &DepDoesNotExist{Expr: ds[i]}
		}
	}
	return nil
}

func checkImpIntro(root *proof.Proof, conclusion expr.Expr, _ []proof.PjRef, sdeps []proof.SubproofRef) error {
	impl, ok := conclusion.(expr.Impl)
	if !ok {
		return &ConclusionOfWrongForm{Shape: "A → B"}
	}
	sp, err := resolveSubproof(root, sdeps[0])
	if err != nil {
		return err
	}
	assumption, ok := subproofAssumption(sp)
	if !ok {
		return &DepOfWrongForm{Ref: sdeps[0], Shape: "a subproof with a single assumption"}
	}
	if !expr.CanonicalEqual(assumption, impl.Left) {
		return &DoesNotOccur{Sub: impl.Left, Whole: assumption}
	}
	if !derivesConclusion(sp, impl.Right) {
		return Otherf("subproof %v does not derive %v", sdeps[0], impl.Right)
	}
	return nil
}

func checkImpElim(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	a, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	b, err := resolveDep(root, deps[1])
	if err != nil {
		return err
	}
	if err := checkImpElimOrdered(a, b, conclusion); err == nil {
		return nil
	}
	if err := checkImpElimOrdered(b, a, conclusion); err == nil {
		return nil
	}
	return NewOneOf(
		checkImpElimOrdered(a, b, conclusion),
		checkImpElimOrdered(b, a, conclusion),
	)
}

func checkImpElimOrdered(impl, antecedent, conclusion expr.Expr) error {
	i, ok := impl.(expr.Impl)
	if !ok {
		return &DepOfWrongForm{Shape: "A → B"}
	}
	if !expr.CanonicalEqual(i.Left, antecedent) {
		return &DoesNotOccur{Sub: antecedent, Whole: i}
	}
	if !expr.CanonicalEqual(i.Right, conclusion) {
		return &ConclusionOfWrongForm{Shape: "the consequent of the implication"}
	}
	return nil
}

func checkModusTollens(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	a, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	b, err := resolveDep(root, deps[1])
	if err != nil {
		return err
	}
	if err := checkModusTollensOrdered(a, b, conclusion); err == nil {
		return nil
	}
	return checkModusTollensOrdered(b, a, conclusion)
}

func checkModusTollensOrdered(impl, negatedConsequent, conclusion expr.Expr) error {
	i, ok := impl.(expr.Impl)
	if !ok {
		return &DepOfWrongForm{Shape: "A → B"}
	}
	notConsequent, ok := negatedConsequent.(expr.Not)
	if !ok {
		return &DepOfWrongForm{Shape: "¬B"}
	}
	if !expr.CanonicalEqual(notConsequent.Operand, i.Right) {
		return &DoesNotOccur{Sub: notConsequent.Operand, Whole: i}
	}
	want := expr.NewNot(i.Left)
	if !expr.CanonicalEqual(conclusion, want) {
		return &ConclusionOfWrongForm{Shape: "¬A"}
	}
	return nil
}

func checkNotIntro(root *proof.Proof, conclusion expr.Expr, _ []proof.PjRef, sdeps []proof.SubproofRef) error {
	not, ok := conclusion.(expr.Not)
	if !ok {
		return &ConclusionOfWrongForm{Shape: "¬A"}
	}
	sp, err := resolveSubproof(root, sdeps[0])
	if err != nil {
		return err
	}
	assumption, ok := subproofAssumption(sp)
	if !ok {
		return &DepOfWrongForm{Ref: sdeps[0], Shape: "a subproof with a single assumption"}
	}
	if !expr.CanonicalEqual(assumption, not.Operand) {
		return &DoesNotOccur{Sub: not.Operand, Whole: assumption}
	}
	if !derivesConclusion(sp, expr.Contra{}) {
		return Otherf("subproof %v does not derive ⊥", sdeps[0])
	}
	return nil
}

func checkNotElim(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	outer, ok := dep.(expr.Not)
	if !ok {
		return &DepOfWrongForm{Ref: deps[0], Shape: "¬¬A"}
	}
	inner, ok := outer.Operand.(expr.Not)
	if !ok {
		return &DepOfWrongForm{Ref: deps[0], Shape: "¬¬A"}
	}
	if !expr.CanonicalEqual(conclusion, inner.Operand) {
		return &ConclusionOfWrongForm{Shape: "A"}
	}
	return nil
}

func checkContradictionIntro(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	if _, ok := conclusion.(expr.Contra); !ok {
		return &ConclusionOfWrongForm{Shape: "⊥"}
	}
	a, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	b, err := resolveDep(root, deps[1])
	if err != nil {
		return err
	}
	if isNegationOf(a, b) {
		return nil
	}
	return Otherf("dependencies %v and %v are not a contradictory pair", a, b)
}

func isNegationOf(a, b expr.Expr) bool {
	if n, ok := a.(expr.Not); ok && expr.CanonicalEqual(n.Operand, b) {
		return true
	}
	if n, ok := b.(expr.Not); ok && expr.CanonicalEqual(n.Operand, a) {
		return true
	}
	return false
}

func checkContradictionElim(root *proof.Proof, _ expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	if _, ok := dep.(expr.Contra); !ok {
		return &DepOfWrongForm{Ref: deps[0], Shape: "⊥"}
	}
	return nil
}

func checkReiteration(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	if !expr.CanonicalEqual(dep, conclusion) {
		return &ConclusionOfWrongForm{Shape: "identical to the cited dependency"}
	}
	return nil
}

// subproofAssumption returns the single premise a subproof rests on. The
// data model allows a subproof zero or many premises, but every inference
// rule that cites a subproof (ImpIntro, NotIntro, OrElim, ExistsElim, ...)
// expects exactly one.
func subproofAssumption(sp *proof.Proof) (expr.Expr, bool) {
	premises := sp.Premises()
	if len(premises) != 1 {
		return nil, false
	}
	e, ok := sp.LookupPremise(premises[0])
	return e, ok
}

// derivesConclusion reports whether sp's last line is exactly want. The
// scope discipline in proof.CanReferenceDep already guarantees that
// whichever line a subproof-citing rule points at is the subproof's final
// line; this just reads it back out.
func derivesConclusion(sp *proof.Proof, want expr.Expr) bool {
	lines := sp.Lines()
	if len(lines) == 0 {
		return false
	}
	last := lines[len(lines)-1]
	if jref, ok := last.(proof.JustificationRef); ok {
		e, ok := sp.LookupExpr(jref)
		return ok && expr.CanonicalEqual(e, want)
	}
	return false
}
