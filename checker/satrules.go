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
	"go.uber.org/aris/normalform"
	"go.uber.org/aris/proof"
	"go.uber.org/aris/satbridge"
)

func init() {
	register(&Rule{
		ID: Resolution, DisplayName: "Resolution", Classification: MiscInference,
		DepArity: arity(2), SubDepArity: arity(0), Check: checkResolution,
	})
	register(&Rule{
		ID: TruthFunctionalConsequence, DisplayName: "TruthFunctionalConsequence", Classification: MiscInference,
		SubDepArity: arity(0), CheckSolver: checkTruthFunctionalConsequence,
	})
	register(&Rule{
		ID: WeakInduction, DisplayName: "WeakInduction", Classification: MiscInference,
		DepArity: arity(2), SubDepArity: arity(0), Check: checkWeakInduction,
	})
	register(&Rule{
		ID: StrongInduction, DisplayName: "StrongInduction", Classification: MiscInference,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkStrongInduction,
	})
}

// disjuncts views e as a set of disjuncts: an Or-Assoc's operands, or the
// singleton {e} if e is not a disjunction.
func disjuncts(e expr.Expr) []expr.Expr {
	if es, ok := assocOperands(e, expr.Or); ok {
		return es
	}
	return []expr.Expr{e}
}

// fromDisjuncts is disjuncts' inverse: the Or of es, or the single element
// of es if there is only one.
func fromDisjuncts(es []expr.Expr) expr.Expr {
	switch len(es) {
	case 0:
		return expr.Contra{}
	case 1:
		return es[0]
	default:
		return expr.NewAssoc(expr.Or, es...)
	}
}

func checkResolution(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	a, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	b, err := resolveDep(root, deps[1])
	if err != nil {
		return err
	}
	err = resolutionOrdered(a, b, conclusion)
	if err == nil {
		return nil
	}
	swapErr := resolutionOrdered(b, a, conclusion)
	if swapErr == nil {
		return nil
	}
	return NewOneOf(err, swapErr)
}

func resolutionOrdered(left, right, conclusion expr.Expr) error {
	ls, rs := disjuncts(left), disjuncts(right)
	for _, c := range ls {
		notC := expr.NewNot(c)
		if !containsCanonical(rs, notC) {
			continue
		}
		remainder := append(removeOneCanonical(ls, c), removeOneCanonical(rs, notC)...)
		if expr.CanonicalEqual(conclusion, fromDisjuncts(remainder)) {
			return nil
		}
	}
	return Otherf("no complementary pair resolves %v and %v to %v", left, right, conclusion)
}

func removeOneCanonical(es []expr.Expr, target expr.Expr) []expr.Expr {
	out := make([]expr.Expr, 0, len(es))
	removed := false
	for _, e := range es {
		if !removed && expr.CanonicalEqual(e, target) {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out
}

func checkTruthFunctionalConsequence(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef, solver satbridge.Solver) error {
	conjuncts := make([]expr.Expr, 0, len(deps)+1)
	for _, d := range deps {
		e, err := resolveDep(root, d)
		if err != nil {
			return err
		}
		conjuncts = append(conjuncts, e)
	}
	conjuncts = append(conjuncts, expr.NewNot(conclusion))

	all := conjuncts[0]
	if len(conjuncts) > 1 {
		all = expr.NewAssoc(expr.And, conjuncts...)
	}
	nnf, ok := normalform.ToNNF(all)
	if !ok {
		return Otherf("premises and conclusion must be propositional for TruthFunctionalConsequence")
	}
	formula := normalform.ToCNF(nnf).ToSATFormula()
	unsat, err := satbridge.IsUnsatisfiable(solver, formula)
	if err != nil {
		return Otherf("SAT solver error: %s", err.Error())
	}
	if !unsat {
		return Otherf("premises do not truth-functionally entail %v", conclusion)
	}
	return nil
}

func checkWeakInduction(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	base, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	step, err := resolveDep(root, deps[1])
	if err != nil {
		return err
	}
	q, ok := conclusion.(expr.Quant)
	if !ok || q.Kind != expr.Forall {
		return &ConclusionOfWrongForm{Shape: "∀n. φ(n)"}
	}
	baseWant := expr.Subst(q.Body, q.Name, expr.NewVar("0"))
	if !expr.CanonicalEqual(base, baseWant) {
		return &DepOfWrongForm{Ref: deps[0], Shape: "φ(0)"}
	}
	outer, ok := step.(expr.Quant)
	if !ok || outer.Kind != expr.Forall {
		return &DepOfWrongForm{Ref: deps[1], Shape: "∀n. φ(n) → φ(s(n))"}
	}
	inner, ok := outer.Body.(expr.Impl)
	if !ok {
		return &DepOfWrongForm{Ref: deps[1], Shape: "∀n. φ(n) → φ(s(n))"}
	}
	phiOfN := expr.Subst(q.Body, q.Name, expr.NewVar(outer.Name))
	if !expr.CanonicalEqual(inner.Left, phiOfN) {
		return &DepOfWrongForm{Ref: deps[1], Shape: "∀n. φ(n) → φ(s(n))"}
	}
	successor := expr.NewApply(expr.NewVar("s"), expr.NewVar(outer.Name))
	phiOfSuccessor := expr.Subst(q.Body, q.Name, successor)
	if !expr.CanonicalEqual(inner.Right, phiOfSuccessor) {
		return &DepOfWrongForm{Ref: deps[1], Shape: "∀n. φ(n) → φ(s(n))"}
	}
	return nil
}

func checkStrongInduction(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	q, ok := conclusion.(expr.Quant)
	if !ok || q.Kind != expr.Forall {
		return &ConclusionOfWrongForm{Shape: "∀n. φ(n)"}
	}
	outer, ok := dep.(expr.Quant)
	if !ok || outer.Kind != expr.Forall {
		return &DepOfWrongForm{Ref: deps[0], Shape: "∀n. (∀k. k<n → φ(k)) → φ(n)"}
	}
	impl, ok := outer.Body.(expr.Impl)
	if !ok {
		return &DepOfWrongForm{Ref: deps[0], Shape: "∀n. (∀k. k<n → φ(k)) → φ(n)"}
	}
	inductiveHyp, ok := impl.Left.(expr.Quant)
	if !ok || inductiveHyp.Kind != expr.Forall {
		return &DepOfWrongForm{Ref: deps[0], Shape: "∀k. k<n → φ(k)"}
	}
	hypBody, ok := inductiveHyp.Body.(expr.Impl)
	if !ok {
		return &DepOfWrongForm{Ref: deps[0], Shape: "k<n → φ(k)"}
	}
	lessThan := expr.NewApply(expr.NewVar("<"), expr.NewVar(inductiveHyp.Name), expr.NewVar(outer.Name))
	if !expr.CanonicalEqual(hypBody.Left, lessThan) {
		return &DepOfWrongForm{Ref: deps[0], Shape: "k<n"}
	}
	phiOfK := expr.Subst(q.Body, q.Name, expr.NewVar(inductiveHyp.Name))
	if !expr.CanonicalEqual(hypBody.Right, phiOfK) {
		return &DepOfWrongForm{Ref: deps[0], Shape: "φ(k)"}
	}
	phiOfN := expr.Subst(q.Body, q.Name, expr.NewVar(outer.Name))
	if !expr.CanonicalEqual(impl.Right, phiOfN) {
		return &DepOfWrongForm{Ref: deps[0], Shape: "φ(n)"}
	}
	return nil
}
