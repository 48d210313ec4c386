package motionplan

// noParent marks the root node, the single node in a tree with no parent.
const noParent = -1

// treeNode is a single vertex of the planning tree: a State, an index-based back-reference to its
// parent (noParent for the root), and the cumulative path cost from the root along parent links.
//
// Representing parent as an index into the owning tree's node slice, rather than a pointer or a
// map[*node]*node adjacency, keeps rewiring a simple slice mutation and avoids any back-reference
// lifetime concerns.
type treeNode struct {
	state  State
	parent int
	cost   float64
}

// TreeNode is the read-only view of a treeNode exposed for external inspection. ParentIndex is
// noParent's exported spelling, -1, for the root.
type TreeNode struct {
	State       State
	ParentIndex int
	Cost        float64
}

// tree is the append-only (in size) collection of nodes making up a planning run. Index 0 is
// always the root. Non-root nodes may have their parent and cost mutated by rewiring, but a
// node's State and its position in the slice never change after insertion.
type tree struct {
	nodes []treeNode
}

func newTree(root State) *tree {
	return &tree{nodes: []treeNode{{state: root, parent: noParent, cost: 0}}}
}

func (t *tree) len() int {
	return len(t.nodes)
}

func (t *tree) at(i int) treeNode {
	return t.nodes[i]
}

// insert appends a new node and returns its index.
func (t *tree) insert(state State, parent int, cost float64) int {
	t.nodes = append(t.nodes, treeNode{state: state, parent: parent, cost: cost})
	return len(t.nodes) - 1
}

// setParent rewires node i onto a new parent with a new cost. Callers must only invoke this when
// the new cost is lower than the node's current cost.
func (t *tree) setParent(i, parent int, cost float64) {
	t.nodes[i].parent = parent
	t.nodes[i].cost = cost
}

// path walks parent links from node i back to the root and returns the resulting states in
// start-to-i order.
func (t *tree) path(i int) []State {
	var rev []State
	for i != noParent {
		n := t.nodes[i]
		rev = append(rev, n.state)
		i = n.parent
	}
	out := make([]State, len(rev))
	for k, s := range rev {
		out[len(rev)-1-k] = s
	}
	return out
}

// snapshot returns the exported, read-only view of every node in the tree.
func (t *tree) snapshot() []TreeNode {
	out := make([]TreeNode, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = TreeNode{State: n.state, ParentIndex: n.parent, Cost: n.cost}
	}
	return out
}
