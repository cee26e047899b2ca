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
	"go.uber.org/aris/equivalence"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/proof"
	"go.uber.org/aris/quantifier"
	"go.uber.org/aris/rewrite"
)

// conditionalRuleNames lists the equivalence.Catalog entries whose patterns
// involve -> or <-> at the top level, so their rule gets classified as
// ConditionalEquivalence rather than BooleanEquivalence. Everything else
// in the catalog is purely propositional.
var conditionalRuleNames = map[string]bool{
	"ConditionalComplement":       true,
	"ConditionalIdentity":         true,
	"ConditionalAnnihilation":     true,
	"ConditionalImplication":      true,
	"ConditionalBiimplication":    true,
	"ConditionalContraposition":   true,
	"BiconditionalContraposition": true,
	"BiconditionalSubstitution":   true,
	"ConditionalCurrying":         true,
}

func init() {
	for name, rule := range equivalence.Catalog() {
		classification := BooleanEquivalence
		if conditionalRuleNames[name] {
			classification = ConditionalEquivalence
		}
		register(&Rule{
			ID:             equivalenceRuleID(name),
			DisplayName:    name,
			Classification: classification,
			DepArity:       arity(1),
			SubDepArity:    arity(0),
			Check:          equivalenceRuleChecker(rule),
		})
	}

	registerQuantifierEquivalence("NullQuantifier", quantifier.NullQuantifierRule)
	registerQuantifierEquivalence("QuantifierSwap", quantifier.QuantifierSwapRule)
	registerQuantifierEquivalence("PrenexAndOr", quantifier.PrenexAndOrRule)
	registerQuantifierEquivalence("PrenexImplKindFlip", quantifier.PrenexImplKindFlipRule)
	registerQuantifierEquivalence("PrenexImplKindPreserve", quantifier.PrenexImplKindPreserveRule)
	registerQuantifierEquivalence("AristoteleanSquare", quantifier.AristoteleanSquareRule)
}

// equivalenceRuleChecker validates that conclusion and the single dep are
// related by zero or more applications of rule's reductions, in either
// direction, under the non-confluent transform_set closure (the catalog's
// rules are not guaranteed confluent individually, only sound).
func equivalenceRuleChecker(rule *rewrite.RewriteRule) CheckFunc {
	return func(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
		dep, err := resolveDep(root, deps[0])
		if err != nil {
			return err
		}
		if equivalentUnderRule(rule, dep, conclusion) {
			return nil
		}
		return Otherf("%v is not derivable from %v by this rule", conclusion, dep)
	}
}

func registerQuantifierEquivalence(name string, f expr.RewriteFunc) {
	register(&Rule{
		ID:             quantifierRuleID(name),
		DisplayName:    name,
		Classification: QuantifierEquivalence,
		DepArity:       arity(1),
		SubDepArity:    arity(0),
		Check:          quantifierRuleChecker(f),
	})
}

func quantifierRuleChecker(f expr.RewriteFunc) CheckFunc {
	return func(root *proof.Proof, conclusion expr.Expr, deps []proof.PjRef, _ []proof.SubproofRef) error {
		dep, err := resolveDep(root, deps[0])
		if err != nil {
			return err
		}
		if equivalentUnderFunc(f, dep, conclusion) {
			return nil
		}
		return Otherf("%v is not derivable from %v by this rule", conclusion, dep)
	}
}
