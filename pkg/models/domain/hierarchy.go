package domain

// HierarchyNode wraps one EmployeeRecord inside the reconstructed reporting
// tree. Children keep input order. Layer is 0 for the root; nodes never
// reached by the layering traversal keep the zero value and are excluded from
// every statistic. Nodes are built once per analysis run and are read-only
// after linking.
type HierarchyNode struct {
	Record        EmployeeRecord
	Children      []*HierarchyNode
	Layer         int
	DirectReports int
}

// Walk visits the node and every descendant in depth-first preorder, children
// in input order. Organizational trees are at most a few dozen layers deep, so
// an explicit stack is used for determinism rather than recursion limits.
func (n *HierarchyNode) Walk(visit func(*HierarchyNode)) {
	if n == nil {
		return
	}
	stack := []*HierarchyNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}
