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

package config

// This file hosts non-user-configurable parameters --- these are for development and testing purposes only.

// TransformFixpointRoundLimit is a round count for rerun-to-fixpoint rewriting. No package
// reads it: expr.Transform reruns until a full pass changes nothing and has no round limit.
const TransformFixpointRoundLimit = 64

// RuleCheckerLRUSize is the number of per-line verification results (keyed by line ID)
// the checker keeps memoized. Sized to comfortably hold every line of a large proof at once so
// that a single edit only invalidates its own transitive dependents, not the whole cache.
const RuleCheckerLRUSize = 4096

// AristoteleanPkgPathPrefix is the package prefix for Aris.
const AristoteleanPkgPathPrefix = "go.uber.org/aris"

// RuleCacheFileName is the name of the gob+s2 file, relative to the user's cache directory,
// that stores the AC-permutation-expanded equivalence rule catalog so it need not be
// re-derived from its pattern/replacement pairs on every process start.
const RuleCacheFileName = "aris-rulecache.gob.s2"

// SATVariablePrefix is a name prefix for atoms handed to the SAT oracle. No package reads it:
// normalform's ToSATFormula numbers atoms 1, 2, ... and keeps their original names in
// SATFormula.Names.
const SATVariablePrefix = "p"
