package ktree

import (
	"iter"

	"karytree/pkg/array"
	"karytree/pkg/stack"
)

// Iterator walks the present values of a tree once. Holes and missing nodes
// are skipped.
type Iterator[V any] interface {
	HasNext() bool
	// Next returns the next value, or false once the walk is over.
	Next() (V, bool)
}

// Iterable is implemented by trees offering the three traversal orders.
type Iterable[V any] interface {
	LevelOrderIterator() Iterator[V]
	PreOrderIterator() Iterator[V]
	PostOrderIterator() Iterator[V]
}

var _ Iterable[int] = (*KTree[int])(nil)

type levelOrderIterator[V any] struct {
	queue array.Array[*node[V]]
}

// LevelOrderIterator walks the tree breadth first, children left to right.
func (tree *KTree[V]) LevelOrderIterator() Iterator[V] {
	it := &levelOrderIterator[V]{queue: array.New[*node[V]]()}
	if tree.root != nil && !tree.root.isHole() {
		it.queue.Push(tree.root)
	}
	return it
}

func (it *levelOrderIterator[V]) HasNext() bool {
	return it.queue.Len() > 0
}

func (it *levelOrderIterator[V]) Next() (V, bool) {
	if !it.HasNext() {
		var zero V
		return zero, false
	}

	n := it.queue.Shift()
	for c, child := range n.children {
		if n.presentChild(c) {
			it.queue.Push(child)
		}
	}
	return n.value.value, true
}

type preOrderIterator[V any] struct {
	stack stack.Stack[*node[V]]
}

// PreOrderIterator walks the tree depth first, visiting a node before its
// children.
func (tree *KTree[V]) PreOrderIterator() Iterator[V] {
	it := &preOrderIterator[V]{stack: stack.New[*node[V]]()}
	if tree.root != nil && !tree.root.isHole() {
		it.stack.Push(tree.root)
	}
	return it
}

func (it *preOrderIterator[V]) HasNext() bool {
	return !it.stack.Empty()
}

func (it *preOrderIterator[V]) Next() (V, bool) {
	if !it.HasNext() {
		var zero V
		return zero, false
	}

	n := it.stack.Pop()
	// pushed right to left so the leftmost child pops first
	for c := len(n.children) - 1; c >= 0; c-- {
		if n.presentChild(c) {
			it.stack.Push(n.children[c])
		}
	}
	return n.value.value, true
}

type postOrderIterator[V any] struct {
	pending stack.Stack[*node[V]]
	ordered stack.Stack[*node[V]]
}

// PostOrderIterator walks the tree depth first, visiting a node after its
// children.
func (tree *KTree[V]) PostOrderIterator() Iterator[V] {
	it := &postOrderIterator[V]{
		pending: stack.New[*node[V]](),
		ordered: stack.New[*node[V]](),
	}
	if tree.root != nil && !tree.root.isHole() {
		it.pending.Push(tree.root)
	}
	return it
}

func (it *postOrderIterator[V]) HasNext() bool {
	return !it.pending.Empty() || !it.ordered.Empty()
}

func (it *postOrderIterator[V]) Next() (V, bool) {
	// the first call moves the whole tree onto ordered, in reverse post order
	for !it.pending.Empty() {
		n := it.pending.Pop()
		it.ordered.Push(n)
		for c, child := range n.children {
			if n.presentChild(c) {
				it.pending.Push(child)
			}
		}
	}

	if it.ordered.Empty() {
		var zero V
		return zero, false
	}
	return it.ordered.Pop().value.value, true
}

// LevelOrder is LevelOrderIterator as a sequence. It can be ranged over once.
func (tree *KTree[V]) LevelOrder() iter.Seq[V] {
	return seq(tree.LevelOrderIterator())
}

// PreOrder is PreOrderIterator as a sequence. It can be ranged over once.
func (tree *KTree[V]) PreOrder() iter.Seq[V] {
	return seq(tree.PreOrderIterator())
}

// PostOrder is PostOrderIterator as a sequence. It can be ranged over once.
func (tree *KTree[V]) PostOrder() iter.Seq[V] {
	return seq(tree.PostOrderIterator())
}

func seq[V any](it Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
