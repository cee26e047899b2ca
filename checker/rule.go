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

// Package checker implements the tagged union of inference and equivalence
// rules, rule dispatch (scope checking plus the per-rule validator), and the
// memoized per-line verification state machine over a proof.Proof.
//
// Rule dispatch lives here rather than in a separate package (as a first
// cut of this module organized it) because a rule's Check function needs to
// construct checker.RuleError values and walk a *proof.Proof: splitting
// validators into their own package would either import checker back (a
// cycle) or push RuleError down into proof, which would make the data model
// depend on the thing that validates it. Consolidating avoids both.
package checker

import (
	"go.uber.org/aris/expr"
	"go.uber.org/aris/proof"
	"go.uber.org/aris/satbridge"
)

// Classification groups rules the way the catalog documents them.
type Classification int

const (
	// Introduction rules build a compound conclusion from its parts.
	Introduction Classification = iota
	// Elimination rules extract a part from a compound dependency.
	Elimination
	// BooleanEquivalence rules rewrite under propositional equivalence.
	BooleanEquivalence
	// ConditionalEquivalence rules rewrite implications and biconditionals.
	ConditionalEquivalence
	// QuantifierEquivalence rules rewrite under quantifier laws.
	QuantifierEquivalence
	// MiscInference covers everything else (resolution, SAT, induction, ...).
	MiscInference
)

// CheckFunc validates one justification. root is the whole proof tree (so
// that deps/sdeps anywhere in scope resolve via root.ResolveExpr/
// ResolveSubproof); conclusion, deps, and sdeps are already resolved to
// their cited lines' positions -- Check only needs to look up their values.
type CheckFunc func(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, sdeps []proof.SubproofRef) error

// SolverCheckFunc is CheckFunc's counterpart for the one rule
// (TruthFunctionalConsequence) that needs the external SAT collaborator;
// kept as a distinct type rather than threading a Solver through every
// rule's signature.
type SolverCheckFunc func(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, sdeps []proof.SubproofRef, solver satbridge.Solver) error

// Rule is one entry of the tagged union: a rule identity plus its
// validator. Exactly one of Check or CheckSolver is set.
type Rule struct {
	ID             proof.RuleID
	DisplayName    string
	Classification Classification
	DepArity       *int // nil means variadic
	SubDepArity    *int
	Check          CheckFunc
	CheckSolver    SolverCheckFunc
}

func arity(n int) *int { return &n }

// checkArity reports an IncorrectDepCount/IncorrectSubDepCount error if deps
// or sdeps don't match r's declared arities.
func (r *Rule) checkArity(deps []proof.PjRef, sdeps []proof.SubproofRef) error {
	if r.DepArity != nil && len(deps) != *r.DepArity {
		return &IncorrectDepCount{Got: len(deps), Expected: *r.DepArity}
	}
	if r.SubDepArity != nil && len(sdeps) != *r.SubDepArity {
		return &IncorrectSubDepCount{Got: len(sdeps), Expected: *r.SubDepArity}
	}
	return nil
}

// All is the registry of every rule this module implements, keyed by ID.
// Populated by the init functions in introelim.go, quantifiers.go,
// bicon_misc.go, equivalence_rules.go, and satrules.go.
var All = map[proof.RuleID]*Rule{}

func register(r *Rule) {
	if _, dup := All[r.ID]; dup {
		panic("checker: duplicate rule id " + string(r.ID))
	}
	All[r.ID] = r
}
