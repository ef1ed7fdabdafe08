package ktree

// ToArray returns the tree in level order, NodeCount long. Missing nodes and
// holes are absent.
func (tree *KTree[V]) ToArray() []Optional[V] {
	values := make([]Optional[V], tree.nodes)
	tree.addToArray(tree.root, values, 0)
	return values
}

// Subtree returns, in level order, the subtree rooted at the node created at
// index i. The result is as long as a complete tree reaching from i down to
// Height, so it equals ToArray of a tree built from it. Subtree returns nil
// for a negative index or a zero-value tree.
func (tree *KTree[V]) Subtree(i int) []Optional[V] {
	if i < 0 || tree.root == nil {
		return nil
	}

	values := make([]Optional[V], perfectCount(tree.k, tree.height-depthOf(tree.k, i)))
	tree.addToArray(tree.lookup(i), values, 0)
	return values
}

// Mirror reverses the children of every node in place and returns the
// mirrored tree in level order. Calling it twice restores the original
// shape. Nodes keep the index they were created at, so Get and Set keep
// addressing nodes by their pre-mirror position.
func (tree *KTree[V]) Mirror() []Optional[V] {
	mirror(tree.root)
	return tree.ToArray()
}

func mirror[V any](n *node[V]) {
	if n == nil {
		return
	}

	for _, child := range n.children {
		mirror(child)
	}
	n.reverseChildren()
}

// addToArray stores the subtree below n at its position relative to index.
func (tree *KTree[V]) addToArray(n *node[V], values []Optional[V], index int) {
	if n == nil || index >= len(values) {
		return
	}

	values[index] = n.value
	for c, child := range n.children {
		tree.addToArray(child, values, childIndex(tree.k, index, c))
	}
}
