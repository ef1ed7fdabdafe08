package ktree

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"karytree/pkg/cache"
)

// KTree is a k-ary tree whose nodes are addressed by level-order index: the
// position a node would take in a complete k-ary tree stored breadth-first
// in an array. The root is index 0 and the children of i are k*i+1 through
// k*i+k.
//
// A KTree is not safe for concurrent use.
type KTree[V any] struct {
	root   *node[V]
	k      int
	size   int // present values
	nodes  int // node count of a complete tree of the current height
	height int

	lookups *cache.Cache[int, *node[V]] // nil when disabled
	logger  hclog.Logger
}

// New builds a tree from values laid out in level order. Absent entries
// become holes. Entries past the end of values are not allocated.
func New[V any](values []Optional[V], k int, opts ...Option) (*KTree[V], error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBranchingFactor, k)
	}

	flat := flattenOptions(opts)
	tree := &KTree[V]{
		k:      k,
		height: heightFor(k, len(values)),
		logger: flat.logger,
	}
	tree.nodes = perfectCount(k, tree.height)
	if flat.lookupCache > 0 {
		tree.lookups = cache.New(flat.lookupCache, func(index int, _ *node[V]) {
			tree.logger.Trace("evicted cached lookup", "index", index)
		})
	}

	if len(values) == 0 {
		tree.root = newNode(None[V](), k, 0)
	} else {
		tree.root = tree.addChildren(values, 0)
	}

	tree.logger.Trace("built tree", "k", k, "size", tree.size, "height", tree.height)
	return tree, nil
}

func (tree *KTree[V]) addChildren(values []Optional[V], index int) *node[V] {
	if index >= len(values) {
		return nil
	}

	n := newNode(values[index], tree.k, index)
	if n.value.present {
		tree.size++
	}

	for c := range tree.k {
		n.children[c] = tree.addChildren(values, childIndex(tree.k, index, c))
	}
	return n
}

// K returns the branching factor.
func (tree *KTree[V]) K() int {
	return tree.k
}

// Size returns the number of present values.
func (tree *KTree[V]) Size() int {
	return tree.size
}

// Height returns the height of the smallest complete tree covering every
// index written so far. It never shrinks.
func (tree *KTree[V]) Height() int {
	return tree.height
}

// NodeCount returns the node count of a complete tree of Height, which is
// also the length of ToArray.
func (tree *KTree[V]) NodeCount() int {
	return tree.nodes
}

// Get returns the value at level-order index i.
func (tree *KTree[V]) Get(i int) (V, error) {
	var zero V
	if i < 0 || tree.root == nil {
		return zero, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}

	n := tree.lookup(i)
	if n == nil || n.isHole() {
		return zero, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return n.value.value, nil
}

// Set writes value at level-order index i.
//
// An absent value deletes a leaf: it reports false when there is nothing to
// delete or the node still has present children. A present value either
// overwrites the node at i or attaches a new one under its parent, growing
// Height when i lies outside the current complete tree. Set reports false
// when no parent node exists and fails with ErrInvalidTree when the parent
// is a hole. The tree is unchanged whenever Set does not report true.
func (tree *KTree[V]) Set(i int, value Optional[V]) (bool, error) {
	if i < 0 || tree.root == nil {
		return false, nil
	}

	target := tree.lookup(i)
	if !value.present {
		return tree.delete(target), nil
	}

	if target != nil && !target.isHole() {
		target.value = value
		return true, nil
	}

	if i == 0 {
		// root hole, nothing above it to validate
		tree.fill(target, value, i)
		return true, nil
	}

	p, c := parentIndex(tree.k, i)
	parent := tree.lookup(p)
	if parent == nil {
		return false, nil
	}

	if parent.isHole() {
		tree.logger.Debug("rejected write under a hole", "index", i, "parent", p)
		return false, fmt.Errorf("%w: parent %d of index %d is a hole", ErrInvalidTree, p, i)
	}

	if target == nil {
		if parent.children[c] != nil {
			// slot taken by a node moved there by Mirror
			return false, nil
		}
		target = newNode(None[V](), tree.k, i)
		parent.children[c] = target
	}

	tree.fill(target, value, i)
	return true, nil
}

// Delete clears the value at index i. It is Set(i, None).
func (tree *KTree[V]) Delete(i int) bool {
	ok, _ := tree.Set(i, None[V]())
	return ok
}

func (tree *KTree[V]) delete(n *node[V]) bool {
	if n == nil || n.isHole() || !n.isLeaf() {
		return false
	}

	n.value = None[V]()
	tree.size--
	return true
}

func (tree *KTree[V]) fill(n *node[V], value Optional[V], i int) {
	n.value = value
	tree.size++

	if i >= tree.nodes {
		tree.height++
		tree.nodes = perfectCount(tree.k, tree.height)
		tree.logger.Trace("grew tree", "index", i, "height", tree.height, "nodes", tree.nodes)
	}
}

// lookup returns the node created at index i, nil if there is none.
func (tree *KTree[V]) lookup(i int) *node[V] {
	if tree.lookups != nil {
		if n, ok := tree.lookups.Get(i); ok {
			return n
		}
	}

	n := tree.findNode(tree.root, i)
	if n != nil && tree.lookups != nil {
		tree.lookups.Add(i, n)
	}
	return n
}

// findNode searches depth first below n for the node created at index i.
func (tree *KTree[V]) findNode(n *node[V], i int) *node[V] {
	if n.index == i {
		return n
	}

	for _, child := range n.children {
		if child == nil {
			continue
		}
		if found := tree.findNode(child, i); found != nil {
			return found
		}
	}
	return nil
}
