package engine

// Backward computes gradients of v with respect to every node in its graph.
//
// It seeds v's own gradient to 1 (overwriting whatever was there), then
// walks the graph once in reverse topological order: each node is processed
// only after every consumer has contributed to its gradient, so a single
// visit per node suffices even for diamond-shaped graphs. An operation
// whose two operand slots hold the same node still yields two additive
// contributions, which is how aliasing (x*x, x+x) gets the full gradient.
//
// Gradients accumulate across Backward calls on overlapping graphs; call
// ZeroGrad on the leaves first if a fresh pass is wanted.
func (v *Value) Backward() {
	order := topoSort(v)
	v.grad = 1

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == nil {
			continue
		}
		contribs := node.op.Backward(node.grad)
		for slot, input := range node.op.Inputs() {
			input.grad += contribs[slot]
		}
	}
}

// topoSort returns the nodes reachable from root in topological order
// (operands before consumers), via a depth-first post-order walk. Nodes are
// deduplicated by pointer identity, so a node reachable through several
// paths appears exactly once.
func topoSort(root *Value) []*Value {
	visited := make(map[*Value]bool)
	order := make([]*Value, 0, 64)

	var visit func(*Value)
	visit = func(node *Value) {
		if visited[node] {
			return
		}
		visited[node] = true
		if node.op != nil {
			for _, input := range node.op.Inputs() {
				visit(input)
			}
		}
		order = append(order, node)
	}
	visit(root)

	return order
}
