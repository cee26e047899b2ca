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

// Package equivalence is the declarative catalog of named RewriteRules
// whose soundness follows from propositional truth-table equivalence:
// DeMorgan, distribution, idempotence, absorption, and the rest of the
// boolean and conditional equivalences the checker's equivalence-rule
// validators consult.
package equivalence

import (
	"sync"

	"go.uber.org/aris/expr"
	"go.uber.org/aris/internal/rulecache"
	"go.uber.org/aris/rewrite"
)

func v(name string) expr.Expr { return expr.NewVar(name) }

func and(es ...expr.Expr) expr.Expr  { return expr.NewAssoc(expr.And, es...) }
func or(es ...expr.Expr) expr.Expr   { return expr.NewAssoc(expr.Or, es...) }
func bicon(es ...expr.Expr) expr.Expr { return expr.NewAssoc(expr.Bicon, es...) }
func not(e expr.Expr) expr.Expr      { return expr.NewNot(e) }
func implies(a, b expr.Expr) expr.Expr { return expr.NewImpl(a, b) }

var (
	phi    = v("phi")
	psi    = v("psi")
	lambda = v("lambda")
)

// DoubleNegation: ~~phi == phi.
var DoubleNegation = []rewrite.Pair{
	{Pattern: not(not(phi)), Replacement: phi},
}

// Distribution: both directions of AND/OR distributing over each other.
var Distribution = []rewrite.Pair{
	{Pattern: or(and(phi, psi), and(phi, lambda)), Replacement: and(phi, or(psi, lambda))},
	{Pattern: and(or(phi, psi), or(phi, lambda)), Replacement: or(phi, and(psi, lambda))},
}

// Complement: phi & ~phi == Bottom; phi | ~phi == Top.
var Complement = []rewrite.Pair{
	{Pattern: and(phi, not(phi)), Replacement: expr.Contra{}},
	{Pattern: or(phi, not(phi)), Replacement: expr.Taut{}},
}

// Identity: phi & Top == phi; phi | Bottom == phi.
var Identity = []rewrite.Pair{
	{Pattern: and(phi, expr.Taut{}), Replacement: phi},
	{Pattern: or(phi, expr.Contra{}), Replacement: phi},
}

// Annihilation: phi & Bottom == Bottom; phi | Top == Top.
var Annihilation = []rewrite.Pair{
	{Pattern: and(phi, expr.Contra{}), Replacement: expr.Contra{}},
	{Pattern: or(phi, expr.Taut{}), Replacement: expr.Taut{}},
}

// Inverse: ~Top == Bottom; ~Bottom == Top.
var Inverse = []rewrite.Pair{
	{Pattern: not(expr.Taut{}), Replacement: expr.Contra{}},
	{Pattern: not(expr.Contra{}), Replacement: expr.Taut{}},
}

// Absorption: phi & (phi | psi) == phi; phi | (phi & psi) == phi.
var Absorption = []rewrite.Pair{
	{Pattern: and(phi, or(phi, psi)), Replacement: phi},
	{Pattern: or(phi, and(phi, psi)), Replacement: phi},
}

// Reduction: phi & (~phi | psi) == phi & psi; phi | (~phi & psi) == phi | psi.
var Reduction = []rewrite.Pair{
	{Pattern: and(phi, or(not(phi), psi)), Replacement: and(phi, psi)},
	{Pattern: or(phi, and(not(phi), psi)), Replacement: or(phi, psi)},
}

// Adjacency: (phi | psi) & (phi | ~psi) == phi; (phi & psi) | (phi & ~psi) == phi.
var Adjacency = []rewrite.Pair{
	{Pattern: and(or(phi, psi), or(phi, not(psi))), Replacement: phi},
	{Pattern: or(and(phi, psi), and(phi, not(psi))), Replacement: phi},
}

// DeMorgan: ~(phi & psi) == ~phi | ~psi; ~(phi | psi) == ~phi & ~psi.
var DeMorgan = []rewrite.Pair{
	{Pattern: not(and(phi, psi)), Replacement: or(not(phi), not(psi))},
	{Pattern: not(or(phi, psi)), Replacement: and(not(phi), not(psi))},
}

// HalfDeMorgan: a partial-application variant of DeMorgan distributing
// negation across one conjunct. The source leaves the exact shape of this
// rule implicit; this is the narrowest reading consistent with DeMorgan
// and Reduction: ~phi & psi == ~(phi | ~psi).
var HalfDeMorgan = []rewrite.Pair{
	{Pattern: and(not(phi), psi), Replacement: not(or(phi, not(psi)))},
}

// Commutation: phi & psi == psi & phi; phi | psi == psi | phi. Subsumed in
// practice by canonicalization, but exposed separately so a proof step can
// cite "by commutation" explicitly.
var Commutation = []rewrite.Pair{
	{Pattern: and(phi, psi), Replacement: and(psi, phi)},
	{Pattern: or(phi, psi), Replacement: or(psi, phi)},
}

// Association: (phi & psi) & lambda == phi & (psi & lambda), and the OR case.
var Association = []rewrite.Pair{
	{Pattern: and(and(phi, psi), lambda), Replacement: and(phi, and(psi, lambda))},
	{Pattern: or(or(phi, psi), lambda), Replacement: or(phi, or(psi, lambda))},
}

// Idempotence: phi & phi == phi; phi | phi == phi.
var Idempotence = []rewrite.Pair{
	{Pattern: and(phi, phi), Replacement: phi},
	{Pattern: or(phi, phi), Replacement: phi},
}

// ConditionalComplement: phi -> phi == Top; phi <-> phi == Top;
// phi <-> ~phi == Bottom.
var ConditionalComplement = []rewrite.Pair{
	{Pattern: implies(phi, phi), Replacement: expr.Taut{}},
	{Pattern: bicon(phi, phi), Replacement: expr.Taut{}},
	{Pattern: bicon(phi, not(phi)), Replacement: expr.Contra{}},
}

// ConditionalIdentity: phi -> Bottom == ~phi; Top -> phi == phi;
// phi <-> Bottom == ~phi; phi <-> Top == phi.
var ConditionalIdentity = []rewrite.Pair{
	{Pattern: implies(phi, expr.Contra{}), Replacement: not(phi)},
	{Pattern: implies(expr.Taut{}, phi), Replacement: phi},
	{Pattern: bicon(phi, expr.Contra{}), Replacement: not(phi)},
	{Pattern: bicon(phi, expr.Taut{}), Replacement: phi},
}

// ConditionalAnnihilation: phi -> Top == Top; Bottom -> phi == Top.
var ConditionalAnnihilation = []rewrite.Pair{
	{Pattern: implies(phi, expr.Taut{}), Replacement: expr.Taut{}},
	{Pattern: implies(expr.Contra{}, phi), Replacement: expr.Taut{}},
}

// ConditionalImplication: phi -> psi == ~phi | psi;
// ~(phi -> psi) == phi & ~psi.
var ConditionalImplication = []rewrite.Pair{
	{Pattern: implies(phi, psi), Replacement: or(not(phi), psi)},
	{Pattern: not(implies(phi, psi)), Replacement: and(phi, not(psi))},
}

// ConditionalBiimplication: phi <-> psi == (phi -> psi) & (psi -> phi), and
// the disjunctive-normal-form expansion (phi & psi) | (~phi & ~psi).
var ConditionalBiimplication = []rewrite.Pair{
	{Pattern: bicon(phi, psi), Replacement: and(implies(phi, psi), implies(psi, phi))},
	{Pattern: bicon(phi, psi), Replacement: or(and(phi, psi), and(not(phi), not(psi)))},
}

// ConditionalContraposition: ~phi -> ~psi == psi -> phi.
var ConditionalContraposition = []rewrite.Pair{
	{Pattern: implies(not(phi), not(psi)), Replacement: implies(psi, phi)},
}

// BiconditionalContraposition: phi <-> psi == ~phi <-> ~psi.
var BiconditionalContraposition = []rewrite.Pair{
	{Pattern: bicon(phi, psi), Replacement: bicon(not(phi), not(psi))},
}

// BiconditionalSubstitution: phi <-> psi licenses replacing phi with psi (or
// vice versa) wherever it occurs; as a pattern rule restricted to the
// top-level biconditional chain itself, this is the Bicon/Equiv bridge:
// (phi <-> psi) == (phi === psi) as an n-ary equivalence chain of two terms.
var BiconditionalSubstitution = []rewrite.Pair{
	{Pattern: bicon(phi, psi), Replacement: expr.NewAssoc(expr.Equiv, phi, psi)},
}

// ConditionalCurrying: phi -> (psi -> lambda) == (phi & psi) -> lambda.
var ConditionalCurrying = []rewrite.Pair{
	{Pattern: implies(phi, implies(psi, lambda)), Replacement: implies(and(phi, psi), lambda)},
}

// rawPairs is every catalog entry's unexpanded (pattern, replacement)
// declaration, keyed by the display name used in proof-step rule
// citations and in the catalog's truth-table regression tests. Expansion
// into a full AC-permutation RewriteRule (rewrite.FromPairs, the expensive
// step) happens in Build/Catalog below, not here, so that a cache hit in
// Catalog can skip it entirely.
var rawPairs = map[string][]rewrite.Pair{
	"DoubleNegation":              DoubleNegation,
	"Distribution":                Distribution,
	"Complement":                  Complement,
	"Identity":                    Identity,
	"Annihilation":                Annihilation,
	"Inverse":                     Inverse,
	"Absorption":                  Absorption,
	"Reduction":                   Reduction,
	"Adjacency":                   Adjacency,
	"DeMorgan":                    DeMorgan,
	"HalfDeMorgan":                HalfDeMorgan,
	"Commutation":                 Commutation,
	"Association":                 Association,
	"Idempotence":                 Idempotence,
	"ConditionalComplement":       ConditionalComplement,
	"ConditionalIdentity":         ConditionalIdentity,
	"ConditionalAnnihilation":     ConditionalAnnihilation,
	"ConditionalImplication":      ConditionalImplication,
	"ConditionalBiimplication":    ConditionalBiimplication,
	"ConditionalContraposition":   ConditionalContraposition,
	"BiconditionalContraposition": BiconditionalContraposition,
	"BiconditionalSubstitution":   BiconditionalSubstitution,
	"ConditionalCurrying":         ConditionalCurrying,
}

// bruteForceTruthTableRules lists the rules whose reductions are fully
// propositional (no Bicon/Equiv involved, which expr.Eval treats as n-ary
// agreement rather than exclusive pairwise equivalence) and so are
// checkable by TestEquivalenceCatalogTruthTables.
var bruteForceTruthTableRules = []string{
	"DoubleNegation", "Distribution", "Complement", "Identity", "Annihilation",
	"Inverse", "Absorption", "Reduction", "Adjacency", "DeMorgan", "HalfDeMorgan",
	"Commutation", "Association", "Idempotence",
	"ConditionalAnnihilation", "ConditionalImplication", "ConditionalContraposition",
	"ConditionalCurrying",
}

// Build expands every catalog entry from its raw pattern/replacement pairs
// via rewrite.FromPairs, paying the AC-permutation expansion cost. It never
// touches disk; callers that want the on-disk cache consulted should call
// Catalog instead. Build exists mainly so tests (and Catalog's own
// cache-miss path) can get a hermetic, always-fresh catalog.
func Build() map[string]*rewrite.RewriteRule {
	out := make(map[string]*rewrite.RewriteRule, len(rawPairs))
	for name, pairs := range rawPairs {
		out[name] = rewrite.FromPairs(pairs)
	}
	return out
}

var (
	catalogOnce sync.Once
	catalog     map[string]*rewrite.RewriteRule
)

// Catalog returns the full AC-permutation-expanded equivalence catalog,
// computed once per process. It first tries the on-disk cache at
// rulecache.DefaultPath(); on a cache hit that accounts for every entry in
// rawPairs it reuses the cached tables, skipping permuteOps entirely. On a
// miss -- no cache file yet, a stale cache missing an entry, or any read
// error -- it falls back to Build and writes the result back to the cache
// for the next process to reuse. A write failure (e.g. an unwritable cache
// directory) is not fatal: the catalog this call built is still returned.
func Catalog() map[string]*rewrite.RewriteRule {
	catalogOnce.Do(func() {
		path, pathErr := rulecache.DefaultPath()
		if pathErr == nil {
			if loaded, err := rulecache.Load(path); err == nil && hasAllEntries(loaded) {
				catalog = loaded
				return
			}
		}

		catalog = Build()
		if pathErr == nil {
			_ = rulecache.Save(path, catalog)
		}
	})
	return catalog
}

// hasAllEntries reports whether loaded carries a rule for every name in
// rawPairs, the check Catalog uses to reject a stale cache file left over
// from a build with a different (or smaller) rule set.
func hasAllEntries(loaded map[string]*rewrite.RewriteRule) bool {
	for name := range rawPairs {
		if _, ok := loaded[name]; !ok {
			return false
		}
	}
	return true
}
