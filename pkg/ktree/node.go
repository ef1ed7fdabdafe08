package ktree

type node[V any] struct {
	value    Optional[V]
	children []*node[V]
	index    int // level-order index at creation
}

func newNode[V any](value Optional[V], k, index int) *node[V] {
	return &node[V]{
		value:    value,
		children: make([]*node[V], k),
		index:    index,
	}
}

func (n *node[V]) isHole() bool {
	return !n.value.present
}

// presentChild reports whether the child at slot c exists and holds a value.
func (n *node[V]) presentChild(c int) bool {
	return n.children[c] != nil && n.children[c].value.present
}

// isLeaf reports whether none of n's children hold a value.
func (n *node[V]) isLeaf() bool {
	for c := range n.children {
		if n.presentChild(c) {
			return false
		}
	}
	return true
}

func (n *node[V]) reverseChildren() {
	for i, j := 0, len(n.children)-1; i < j; i, j = i+1, j-1 {
		n.children[i], n.children[j] = n.children[j], n.children[i]
	}
}

// childIndex is the level-order index of the c-th child of index i.
func childIndex(k, i, c int) int {
	return k*i + 1 + c
}

// parentIndex returns the parent of index i and the slot i occupies in it.
// i must be greater than zero.
func parentIndex(k, i int) (parent, slot int) {
	return (i - 1) / k, (i - 1) % k
}

// depthOf returns the level index i lives on, the root being level 0.
func depthOf(k, i int) int {
	depth := 0
	for i > 0 {
		i, _ = parentIndex(k, i)
		depth++
	}
	return depth
}

// heightFor returns the height of the smallest complete k-ary tree holding
// n nodes, -1 when n is zero.
func heightFor(k, n int) int {
	height := -1
	for total, width := 0, 1; total < n; width *= k {
		total += width
		height++
	}
	return height
}

// perfectCount returns (k^(height+1) - 1) / (k - 1), the node count of a
// complete k-ary tree of the given height.
func perfectCount(k, height int) int {
	total := 0
	for width, level := 1, 0; level <= height; width, level = width*k, level+1 {
		total += width
	}
	return total
}
