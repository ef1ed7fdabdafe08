package ktree

import (
	"fmt"
	"strings"
)

// Decode reads code as a prefix code over tree. Each digit selects a child
// of the current node, starting from the root. Reaching a leaf emits its
// value and restarts at the root; values of internal nodes are never
// emitted. A digit leading to a missing node or a hole also restarts at the
// root, dropping the partial codeword.
//
// Digits are 0-9 followed by a-z (case insensitive), so trees up to k = 36
// can be addressed. Letters past the branching factor and any other rune
// are ignored.
func Decode[V any](tree *KTree[V], code string) ([]V, error) {
	if tree == nil || tree.root == nil {
		return nil, ErrNullTree
	}

	var message []V
	current := tree.root
	for _, r := range code {
		d := digit(r)
		if d < 0 || (d >= 10 && d >= tree.k) {
			continue
		}

		if d >= tree.k || !current.presentChild(d) {
			current = tree.root
			continue
		}

		current = current.children[d]
		if current.isLeaf() {
			message = append(message, current.value.value)
			current = tree.root
		}
	}
	return message, nil
}

// DecodeString decodes code and concatenates the emitted values.
func DecodeString(tree *KTree[string], code string) (string, error) {
	message, err := Decode(tree, code)
	if err != nil {
		return "", fmt.Errorf("decode %q: %w", code, err)
	}
	return strings.Join(message, ""), nil
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func digit(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}
