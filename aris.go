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

// Package aris is the root of a natural-deduction proof checker for
// first-order logic with equality and arithmetic symbols. It re-exports
// nothing: expr, unify, normalform, rewrite, equivalence, quantifier,
// proof, checker, and satbridge are the importable packages. This file
// exists only to anchor the module's top-level doc comment and the
// root-package goroutine-leak guard in aris_test.go.
package aris
