package sqldialect

// Node is an opaque handle to a parsed SQL fragment. Nodes are produced by a
// dialect's Parse and consumed by Render and the oracle; callers outside
// this package never inspect them directly.
type Node interface {
	node()
}

// Seq is an ordered run of sibling fragments: keywords, identifiers,
// operators, calls and groups in source order. The parser is deliberately
// tolerant, so most statement structure lives in flat sequences.
type Seq struct {
	Items []Node
}

// Call is a function invocation: a bare word immediately followed by a
// parenthesized argument list. Impl is the implementation identity resolved
// from the parsing dialect's catalog, or empty for unknown functions.
type Call struct {
	Name string
	Impl string
	Args []*Seq
}

// Group is a parenthesized fragment that is not a call argument list.
type Group struct {
	Inner *Seq
}

// Leaf is a single token kept verbatim.
type Leaf struct {
	Kind tokenKind
	Text string
}

func (*Seq) node()   {}
func (*Call) node()  {}
func (*Group) node() {}
func (*Leaf) node()  {}

// ArgCount returns the number of arguments when n is a function call and
// zero otherwise, without exposing the node's structure to callers.
func ArgCount(n Node) int {
	if call, ok := n.(*Call); ok {
		return len(call.Args)
	}

	return 0
}

// walk visits root and every descendant depth-first, reporting the nesting
// depth of each node.
func walk(root Node, depth int, visit func(n Node, depth int)) {
	if root == nil {
		return
	}

	visit(root, depth)

	switch n := root.(type) {
	case *Seq:
		for _, item := range n.Items {
			walk(item, depth+1, visit)
		}
	case *Call:
		for _, arg := range n.Args {
			walk(arg, depth+1, visit)
		}
	case *Group:
		walk(n.Inner, depth+1, visit)
	}
}
