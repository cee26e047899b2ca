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

package proof

import "fmt"

// NotFoundError reports that a reference does not resolve to a line of the
// expected kind in this proof.
type NotFoundError struct {
	Ref LineID
	Of  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("proof: no %s with id %d", e.Of, e.Ref)
}
