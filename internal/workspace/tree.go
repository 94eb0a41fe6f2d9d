package workspace

// NodeKind distinguishes files from directories in the tree.
type NodeKind int

const (
	KindFile NodeKind = iota
	KindDirectory
)

// String returns the seed-file spelling of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Node is one entry in the workspace tree.
//
// Nodes are treated as immutable once a Tree has been built from them.
// ToggleExpanded never writes to an existing Node; it copies the path
// from the root to the toggled directory and shares everything else.
type Node struct {
	ID       string
	Name     string
	Kind     NodeKind
	Language string // chroma lexer name, files only
	Content  string // files only

	// Original is the HEAD revision shown by the diff view. Empty means
	// the file is unchanged.
	Original string

	Children []*Node // directories only, display order
	Expanded bool    // directories only
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool {
	return n != nil && n.Kind == KindDirectory
}

// Row is a visible line of the tree once collapsed directories are
// hidden.
type Row struct {
	Node  *Node
	Depth int
}

// Tree is the File Registry: an immutable forest of nodes.
type Tree struct {
	roots []*Node
}

// NewTree wraps roots without copying them. The caller must not mutate
// the nodes afterwards.
func NewTree(roots ...*Node) *Tree {
	return &Tree{roots: roots}
}

// Roots returns the top-level nodes in display order.
func (t *Tree) Roots() []*Node {
	return t.roots
}

// ToggleExpanded returns a tree in which the directory with the given id
// has its Expanded flag flipped. Only that directory and its ancestors
// are copied; siblings and unrelated subtrees are shared with t.
//
// A file id or an unknown id returns t itself.
func (t *Tree) ToggleExpanded(id string) *Tree {
	roots, changed := toggleIn(t.roots, id)
	if !changed {
		return t
	}
	return &Tree{roots: roots}
}

func toggleIn(nodes []*Node, id string) ([]*Node, bool) {
	for i, n := range nodes {
		var replacement *Node
		switch {
		case n.ID == id:
			if !n.IsDir() {
				return nodes, false
			}
			cp := *n
			cp.Expanded = !n.Expanded
			replacement = &cp
		case n.IsDir():
			children, changed := toggleIn(n.Children, id)
			if !changed {
				continue
			}
			cp := *n
			cp.Children = children
			replacement = &cp
		default:
			continue
		}

		out := make([]*Node, len(nodes))
		copy(out, nodes)
		out[i] = replacement
		return out, true
	}
	return nodes, false
}

// Find returns the node with the given id, or nil.
func (t *Tree) Find(id string) *Node {
	var found *Node
	t.walk(func(n *Node, _ int) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	}, false)
	return found
}

// Visible flattens the tree into display rows, descending only into
// expanded directories.
func (t *Tree) Visible() []Row {
	var rows []Row
	t.walk(func(n *Node, depth int) bool {
		rows = append(rows, Row{Node: n, Depth: depth})
		return true
	}, true)
	return rows
}

// Files returns every file node in display order, regardless of
// whether its ancestors are expanded.
func (t *Tree) Files() []*Node {
	var files []*Node
	t.walk(func(n *Node, _ int) bool {
		if !n.IsDir() {
			files = append(files, n)
		}
		return true
	}, false)
	return files
}

// walk visits nodes depth first. fn returning false stops the walk.
func (t *Tree) walk(fn func(n *Node, depth int) bool, onlyExpanded bool) {
	var visit func(nodes []*Node, depth int) bool
	visit = func(nodes []*Node, depth int) bool {
		for _, n := range nodes {
			if !fn(n, depth) {
				return false
			}
			if n.IsDir() && (n.Expanded || !onlyExpanded) {
				if !visit(n.Children, depth+1) {
					return false
				}
			}
		}
		return true
	}
	visit(t.roots, 0)
}
