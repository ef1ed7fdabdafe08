package ktree

import (
	"fmt"
	"strings"
)

// String prints one line per level, each node's value separated by a
// space. Holes print as nil.
func (tree *KTree[V]) String() string {
	var sb strings.Builder
	for level := 0; level <= tree.height; level++ {
		var values []string
		printLevel(tree.root, level, &values)
		sb.WriteString(strings.Join(values, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func printLevel[V any](n *node[V], level int, values *[]string) {
	if n == nil {
		return
	}

	if level == 0 {
		if n.isHole() {
			*values = append(*values, "nil")
		} else {
			*values = append(*values, fmt.Sprint(n.value.value))
		}
		return
	}

	for _, child := range n.children {
		printLevel(child, level-1, values)
	}
}

func (tree *KTree[V]) LevelOrderString() string {
	return join(tree.LevelOrderIterator())
}

func (tree *KTree[V]) PreOrderString() string {
	return join(tree.PreOrderIterator())
}

func (tree *KTree[V]) PostOrderString() string {
	return join(tree.PostOrderIterator())
}

func join[V any](it Iterator[V]) string {
	var values []string
	for v := range seq(it) {
		values = append(values, fmt.Sprint(v))
	}
	return strings.Join(values, " ")
}
