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
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/aris/config"
	"go.uber.org/aris/proof"
	"go.uber.org/aris/satbridge"
)

// verifyState is the per-line memoization state. Only checked results (Ok
// or Err) are ever cached; an in-flight verification is tracked as
// resolving purely to catch a validator that (incorrectly) re-enters
// VerifyLine on the same line it is itself validating.
type verifyState int

const (
	checkedOk verifyState = iota
	checkedErr
	resolving
)

type cacheEntry struct {
	state verifyState
	err   RuleError
}

// Checker verifies individual proof lines against the registered rule
// catalog, memoizing results per line so that re-verifying an unedited
// proof after a distant edit does not re-run every validator.
type Checker struct {
	root   *proof.Proof
	solver satbridge.Solver
	cache  *lru.Cache[proof.LineID, cacheEntry]
}

// New constructs a Checker over root. solver backs the rules that need a
// SAT oracle (TruthFunctionalConsequence); pass satbridge.Gophersat{} for
// the default.
func New(root *proof.Proof, solver satbridge.Solver) *Checker {
	cache, err := lru.New[proof.LineID, cacheEntry](config.RuleCheckerLRUSize)
	if err != nil {
		// config.RuleCheckerLRUSize is a positive compile-time constant;
		// lru.New only fails for size <= 0.
		panic(err)
	}
	return &Checker{root: root, solver: solver, cache: cache}
}

// Invalidate drops ref and everything that transitively depends on it from
// the memoization cache, following an edit at ref. Safe to call even if ref
// was never cached.
func (c *Checker) Invalidate(ref proof.PjRef) {
	c.cache.Remove(ref.ID())
	for _, dep := range c.root.TransitiveDependents(ref).Slice() {
		c.cache.Remove(dep.ID())
	}
}

// VerifyLine checks one line's justification: a premise is always valid;
// a step must cite only in-scope lines and subproofs (proof.CanReferenceDep),
// and its rule's validator must accept the conclusion given those
// dependencies' current expressions.
func (c *Checker) VerifyLine(ref proof.PjsRef) error {
	if entry, ok := c.cache.Get(ref.ID()); ok {
		switch entry.state {
		case checkedOk:
			return nil
		case checkedErr:
			return entry.err
		case resolving:
			return Otherf("cyclic verification at line %v", ref)
		}
	}

	if pref, ok := ref.(proof.PremiseRef); ok {
		if _, exists := c.root.LookupPremise(pref); !exists {
			return &LineDoesNotExist{Ref: ref}
		}
		c.cache.Add(ref.ID(), cacheEntry{state: checkedOk})
		return nil
	}

	jref, ok := ref.(proof.JustificationRef)
	if !ok {
		// A SubproofRef names a nested proof, not a justified line; there is
		// nothing here for VerifyLine to check directly. Callers verify a
		// subproof's contents by verifying its own lines.
		return Otherf("%v does not name a justified line", ref)
	}

	just, exists := c.root.LookupStep(jref)
	if !exists {
		return &LineDoesNotExist{Ref: ref}
	}

	c.cache.Add(ref.ID(), cacheEntry{state: resolving})

	if err := c.checkJustification(jref, just); err != nil {
		c.cache.Add(ref.ID(), cacheEntry{state: checkedErr, err: toRuleError(err)})
		return err
	}
	c.cache.Add(ref.ID(), cacheEntry{state: checkedOk})
	return nil
}

func (c *Checker) checkJustification(self proof.JustificationRef, just *proof.Justification) error {
	for _, dep := range just.Deps {
		if !c.root.CanReferenceDep(self, dep) {
			return &ReferencesLaterLine{Target: self, Bad: dep}
		}
	}
	for _, sdep := range just.SDeps {
		if !c.root.CanReferenceDep(self, sdep) {
			return &ReferencesLaterLine{Target: self, Bad: sdep}
		}
	}

	rule, ok := All[just.Rule]
	if !ok {
		return Otherf("unregistered rule id %q", just.Rule)
	}
	if err := rule.checkArity(just.Deps, just.SDeps); err != nil {
		return err
	}
	if rule.CheckSolver != nil {
		return rule.CheckSolver(c.root, just.Conclusion, just.Deps, just.SDeps, c.solver)
	}
	return rule.Check(c.root, just.Conclusion, just.Deps, just.SDeps)
}

// toRuleError best-efforts a RuleError wrapper around an error returned by
// a validator or the scope check, so cache entries always carry a
// queryable RuleError even if a validator returned a bare error.
func toRuleError(err error) RuleError {
	if re, ok := err.(RuleError); ok {
		return re
	}
	return Otherf("%s", err.Error())
}
