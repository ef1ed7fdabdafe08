package ktree

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Codeword pairs a leaf with the digit string Decode follows to reach it.
type Codeword[V any] struct {
	Index int // level-order position of the leaf
	Value V
	Code  string
}

// Codebook lists every leaf Decode can emit, ordered by level-order
// position. Leaves below a hole, the root, and slots past digit 'z' cannot
// be reached and are left out.
func Codebook[V any](tree *KTree[V]) []Codeword[V] {
	if tree == nil || tree.root == nil {
		return nil
	}

	leaves := treemap.NewWith(utils.IntComparator)
	tree.collectCodewords(tree.root, 0, nil, leaves)

	codebook := make([]Codeword[V], 0, leaves.Size())
	it := leaves.Iterator()
	for it.Next() {
		codebook = append(codebook, it.Value().(Codeword[V]))
	}
	return codebook
}

func (tree *KTree[V]) collectCodewords(n *node[V], index int, path []byte, leaves *treemap.Map) {
	for c, child := range n.children {
		if c >= len(digits) || !n.presentChild(c) {
			continue
		}

		childPath := append(path[:len(path):len(path)], digits[c])
		pos := childIndex(tree.k, index, c)
		if child.isLeaf() {
			leaves.Put(pos, Codeword[V]{Index: pos, Value: child.value.value, Code: string(childPath)})
			continue
		}
		tree.collectCodewords(child, pos, childPath, leaves)
	}
}

// Encode writes message as the concatenation of codewords. When a value
// labels several leaves, the one earliest in level order is used.
func Encode[V comparable](tree *KTree[V], message []V) (string, error) {
	if tree == nil || tree.root == nil {
		return "", ErrNullTree
	}

	codes := map[V]string{}
	for _, cw := range Codebook(tree) {
		if _, ok := codes[cw.Value]; !ok {
			codes[cw.Value] = cw.Code
		}
	}

	var sb strings.Builder
	for i, v := range message {
		code, ok := codes[v]
		if !ok {
			return "", fmt.Errorf("%w: %v at position %d", ErrUnencodable, v, i)
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}
