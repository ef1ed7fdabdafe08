package ktree

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate reports every hole that has a present value somewhere below it.
// Set only checks the immediate parent of a write and New takes its input
// as given, so such holes can exist; Validate returns nil when none do.
func (tree *KTree[V]) Validate() error {
	if tree.root == nil {
		return nil
	}

	var result *multierror.Error
	tree.validate(tree.root, 0, &result)
	return result.ErrorOrNil()
}

// validate returns whether n or any node below it holds a value.
func (tree *KTree[V]) validate(n *node[V], index int, result **multierror.Error) bool {
	present := false
	for c, child := range n.children {
		if child != nil && tree.validate(child, childIndex(tree.k, index, c), result) {
			present = true
		}
	}

	if present && n.isHole() {
		*result = multierror.Append(*result, fmt.Errorf("%w: hole at index %d has a present descendant", ErrInvalidTree, index))
	}
	return present || !n.isHole()
}
