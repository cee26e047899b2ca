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
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/aris/expr"
	"go.uber.org/aris/proof"
)

// RuleError is the taxonomy of ways a justification can fail verification.
// Every concrete kind below implements error, so they compose with
// fmt.Errorf("%w", ...) and errors.As the way the rest of the module's
// error values do.
type RuleError interface {
	error
	isRuleError()
}

// LineDoesNotExist reports that a cited line is unknown.
type LineDoesNotExist struct{ Ref proof.PjsRef }

func (e *LineDoesNotExist) Error() string {
	return fmt.Sprintf("checker: line %v does not exist", e.Ref)
}
func (*LineDoesNotExist) isRuleError() {}

// ReferencesLaterLine reports that a cited line is at or after the
// justification it was cited from, or otherwise out of scope.
type ReferencesLaterLine struct {
	Target proof.PjsRef
	Bad    proof.PjsRef
}

func (e *ReferencesLaterLine) Error() string {
	return fmt.Sprintf("checker: line %v cites %v, which is not in scope", e.Target, e.Bad)
}
func (*ReferencesLaterLine) isRuleError() {}

// IncorrectDepCount reports a dependency-count mismatch against the rule's
// declared arity.
type IncorrectDepCount struct{ Got, Expected int }

func (e *IncorrectDepCount) Error() string {
	return fmt.Sprintf("checker: got %d dependencies, expected %d", e.Got, e.Expected)
}
func (*IncorrectDepCount) isRuleError() {}

// IncorrectSubDepCount reports a subproof-dependency-count mismatch.
type IncorrectSubDepCount struct{ Got, Expected int }

func (e *IncorrectSubDepCount) Error() string {
	return fmt.Sprintf("checker: got %d subproof dependencies, expected %d", e.Got, e.Expected)
}
func (*IncorrectSubDepCount) isRuleError() {}

// DepOfWrongForm reports that a cited dependency does not match the rule's
// expected shape.
type DepOfWrongForm struct {
	Ref   proof.PjRef
	Shape string
}

func (e *DepOfWrongForm) Error() string {
	return fmt.Sprintf("checker: dependency %v is not of the expected form (%s)", e.Ref, e.Shape)
}
func (*DepOfWrongForm) isRuleError() {}

// ConclusionOfWrongForm reports that the conclusion does not match the
// rule's expected shape.
type ConclusionOfWrongForm struct{ Shape string }

func (e *ConclusionOfWrongForm) Error() string {
	return fmt.Sprintf("checker: conclusion is not of the expected form (%s)", e.Shape)
}
func (*ConclusionOfWrongForm) isRuleError() {}

// DoesNotOccur reports that Sub was expected to be a component of Whole.
type DoesNotOccur struct{ Sub, Whole expr.Expr }

func (e *DoesNotOccur) Error() string {
	return fmt.Sprintf("checker: %v does not occur in %v", e.Sub, e.Whole)
}
func (*DoesNotOccur) isRuleError() {}

// DepDoesNotExist reports that a required expression is not among the
// cited dependencies.
type DepDoesNotExist struct{ Expr expr.Expr }

func (e *DepDoesNotExist) Error() string {
	return fmt.Sprintf("checker: no cited dependency equals %v", e.Expr)
}
func (*DepDoesNotExist) isRuleError() {}

// OneOf aggregates the failures of every alternative derivation shape a
// rule accepted, for rules with more than one acceptable argument order.
type OneOf struct{ Errors *multierror.Error }

func (e *OneOf) Error() string {
	if e.Errors == nil {
		return "checker: no derivation shape matched"
	}
	return e.Errors.Error()
}
func (*OneOf) isRuleError() {}

// NewOneOf collects errs (skipping nils) into a OneOf, or returns nil if
// every attempt in fact succeeded (errs is empty or all nil).
func NewOneOf(errs ...error) RuleError {
	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if merr == nil || len(merr.Errors) == 0 {
		return nil
	}
	return &OneOf{Errors: merr}
}

// Other is a freeform failure for rare cases (e.g. a SAT solver error).
type Other struct{ Message string }

func (e *Other) Error() string { return fmt.Sprintf("checker: %s", e.Message) }
func (*Other) isRuleError()    {}

// Otherf builds an Other from a format string.
func Otherf(format string, args ...any) RuleError {
	return &Other{Message: fmt.Sprintf(format, args...)}
}

// shapeList renders a list of shape descriptions for error messages, e.g.
// "A & B" or "A & B, or A | B".
func shapeList(shapes ...string) string {
	return strings.Join(shapes, ", or ")
}
