package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/bstree/tree"
	"golang.org/x/exp/constraints"
)

// String returns a string representation of the tree.
// A complete binary tree with height 3 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
//
// An empty tree is the empty string.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprint(t.root.Key))
	sb.WriteRune('\n')
	writeChildren(&sb, t.root, "")

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

type labelled[T any] struct {
	n     *tree.Node[T]
	label string
}

// writeChildren writes one line per child of n, each followed by
// that child's own subtree, indented by prefix.
func writeChildren[T constraints.Ordered](sb *strings.Builder, n *tree.Node[T], prefix string) {
	children := make([]labelled[T], 0, 2)
	if n.Left != nil {
		children = append(children, labelled[T]{n.Left, treeLeftBranch})
	}
	if n.Right != nil {
		children = append(children, labelled[T]{n.Right, treeRightBranch})
	}

	for i, c := range children {
		branch, cont := treeMidBranch, treeMidContinue
		if i == len(children)-1 {
			branch, cont = treeLastBranch, treeLastContinue
		}

		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(c.label)
		sb.WriteString(fmt.Sprint(c.n.Key))
		sb.WriteRune('\n')

		writeChildren(sb, c.n, prefix+cont)
	}
}
