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

package expr

import (
	"strconv"

	"github.com/hashicorp/go-set/v3"
)

// GenVar returns prefix if it is not in avoid; otherwise it returns the
// first name of the form prefix0, prefix1, ... not in avoid. Total and
// deterministic.
func GenVar(prefix string, avoid *set.Set[string]) string {
	if !avoid.Contains(prefix) {
		return prefix
	}
	for i := 0; ; i++ {
		candidate := prefix + strconv.Itoa(i)
		if !avoid.Contains(candidate) {
			return candidate
		}
	}
}
