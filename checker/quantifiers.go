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
	"go.uber.org/aris/unify"
)

func init() {
	register(&Rule{
		ID: ForallIntro, DisplayName: "ForallIntro", Classification: Introduction,
		DepArity: arity(0), SubDepArity: arity(1), Check: checkForallIntro,
	})
	register(&Rule{
		ID: ForallElim, DisplayName: "ForallElim", Classification: Elimination,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkForallElim,
	})
	register(&Rule{
		ID: ExistsIntro, DisplayName: "ExistsIntro", Classification: Introduction,
		DepArity: arity(1), SubDepArity: arity(0), Check: checkExistsIntro,
	})
	register(&Rule{
		ID: ExistsElim, DisplayName: "ExistsElim", Classification: Elimination,
		DepArity: arity(1), SubDepArity: arity(1), Check: checkExistsElim,
	})
}

func checkForallIntro(root *proof.Proof, conclusion expr.Expr, _ []proof.PjRef, sdeps []proof.SubproofRef) error {
	q, ok := conclusion.(expr.Quant)
	if !ok || q.Kind != expr.Forall {
		return &ConclusionOfWrongForm{Shape: "∀y. φ(y)"}
	}
	sp, err := resolveSubproof(root, sdeps[0])
	if err != nil {
		return err
	}
	assumption, ok := subproofAssumption(sp)
	if !ok {
		return &DepOfWrongForm{Ref: sdeps[0], Shape: "a subproof assuming a fresh variable"}
	}
	x, ok := assumption.(expr.Var)
	if !ok {
		return &DepOfWrongForm{Ref: sdeps[0], Shape: "a subproof assuming a bare variable x"}
	}

	lines := sp.Lines()
	if len(lines) == 0 {
		return Otherf("subproof %v derives nothing", sdeps[0])
	}
	last, ok := lines[len(lines)-1].(proof.JustificationRef)
	if !ok {
		return Otherf("subproof %v does not end in a derived step", sdeps[0])
	}
	phiOfX, ok := sp.LookupExpr(last)
	if !ok {
		return &LineDoesNotExist{Ref: last}
	}
	want := expr.Subst(q.Body, q.Name, x)
	if !expr.CanonicalEqual(phiOfX, want) {
		return &ConclusionOfWrongForm{Shape: "φ(x) matching the bound variable"}
	}

	if freeVariableEscapes(root, sp, sdeps[0], x.Name, conclusion) {
		return Otherf("%s escapes the scope of its subproof", x.Name)
	}
	return nil
}

// freeVariableEscapes reports whether name occurs free outside sdep: in
// conclusionBody, in any line of the proofs enclosing sdep (up to root), or
// in the free variables of any dependency that a line inside sdep cites
// from outside it.
func freeVariableEscapes(root *proof.Proof, sp *proof.Proof, sdep proof.SubproofRef, name string, conclusionBody expr.Expr) bool {
	if expr.FreeVars(conclusionBody).Contains(name) {
		return true
	}
	for _, jref := range sp.DirectLines() {
		just, ok := sp.LookupStep(jref)
		if !ok {
			continue
		}
		for _, dep := range just.Deps {
			if insideSubproof(sp, dep) {
				continue
			}
			e, ok := root.ResolveExpr(dep)
			if ok && expr.FreeVars(e).Contains(name) {
				return true
			}
		}
	}
	ref := proof.PjsRef(sdep)
	for {
		enclosing := root
		parentRef, nested := root.ParentOfLine(ref)
		if nested {
			if sub, ok := root.ResolveSubproof(parentRef); ok {
				enclosing = sub
			}
		}
		for _, line := range enclosing.Exprs() {
			e, ok := enclosing.LookupExpr(line)
			if ok && expr.FreeVars(e).Contains(name) {
				return true
			}
		}
		if !nested {
			return false
		}
		ref = parentRef
	}
}

func insideSubproof(sp *proof.Proof, ref proof.PjRef) bool {
	_, ok := sp.LookupExpr(ref)
	return ok
}

func checkForallElim(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	q, ok := dep.(expr.Quant)
	if !ok || q.Kind != expr.Forall {
		return &DepOfWrongForm{Ref: deps[0], Shape: "∀x. φ(x)"}
	}
	if witnessExists(q.Name, q.Body, conclusion) {
		return nil
	}
	return Otherf("cannot unify %v with %v under any instantiation of %s", q.Body, conclusion, q.Name)
}

// witnessExists reports whether there is some term t with
// expr.Subst(body, name, t) canonically equal to target: it unifies body
// against target (the unifier may bind any variable, not only name), takes
// the binding found for name as t, and checks that substituting t for name
// in body reproduces target.
func witnessExists(name string, body, target expr.Expr) bool {
	fresh := expr.NewVar(name)
	renamed := expr.Subst(body, name, fresh)
	sub, ok := unify.Unify([]unify.Constraint{{Left: renamed, Right: target}})
	if !ok {
		return false
	}
	t, ok := sub.Lookup(name)
	if !ok {
		// body doesn't actually mention the bound variable; any witness works
		// as long as body already equals target.
		return expr.CanonicalEqual(body, target)
	}
	return expr.CanonicalEqual(expr.Subst(body, name, t), target)
}

func checkExistsIntro(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
	q, ok := conclusion.(expr.Quant)
	if !ok || q.Kind != expr.Exists {
		return &ConclusionOfWrongForm{Shape: "∃x. φ(x)"}
	}
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	if witnessExists(q.Name, q.Body, dep) {
		return nil
	}
	return Otherf("%v is not an instance of %v for any witness term", dep, q.Body)
}

func checkExistsElim(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, sdeps []proof.SubproofRef) error {
	dep, err := resolveDep(root, deps[0])
	if err != nil {
		return err
	}
	q, ok := dep.(expr.Quant)
	if !ok || q.Kind != expr.Exists {
		return &DepOfWrongForm{Ref: deps[0], Shape: "∃x. φ(x)"}
	}
	sp, err := resolveSubproof(root, sdeps[0])
	if err != nil {
		return err
	}
	assumption, ok := subproofAssumption(sp)
	if !ok {
		return &DepOfWrongForm{Ref: sdeps[0], Shape: "a subproof assuming φ(c) for a fresh c"}
	}
	c, ok := freshConstantInstance(q.Name, q.Body, assumption)
	if !ok {
		return &DepOfWrongForm{Ref: sdeps[0], Shape: "an instance of φ(c) for a single fresh constant c"}
	}
	if !derivesConclusion(sp, conclusion) {
		return Otherf("subproof %v does not derive %v", sdeps[0], conclusion)
	}
	if freeVariableEscapes(root, sp, sdeps[0], c, conclusion) {
		return Otherf("%s escapes the scope of its subproof", c)
	}
	return nil
}

// freshConstantInstance reports whether assumption is body with name
// replaced throughout by a single fresh variable, and returns that
// variable's name.
func freshConstantInstance(name string, body, assumption expr.Expr) (string, bool) {
	bodyFree := expr.FreeVars(body)
	assumptionFree := expr.FreeVars(assumption)
	for _, c := range assumptionFree.Slice() {
		if bodyFree.Contains(c) {
			continue
		}
		if expr.CanonicalEqual(expr.Subst(body, name, expr.NewVar(c)), assumption) {
			return c, true
		}
	}
	return "", false
}
