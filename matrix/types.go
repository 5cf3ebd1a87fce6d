// SPDX-License-Identifier: MIT

// Package matrix: element constraint for Dense.
package matrix

import "golang.org/x/exp/constraints"

// Cell is the set of element types a Dense grid may hold: any integer kind
// (alignment scores) or a boolean kind (dot-plot hits).
type Cell interface {
	constraints.Integer | ~bool
}
