// Package hierarchy reconstructs a single-root reporting tree from flat
// employee records linked by manager reference. Input integrity is not
// assumed: references may dangle, point at the record itself, or form cycles.
package hierarchy

import (
	"github.com/de-tools/org-atlas/pkg/models/domain"
)

// Build reconstructs the reporting tree and assigns layers. It returns nil
// for an empty roster.
//
// Construction is arena-based: all nodes are allocated in one slice, a lookup
// maps identifier to node index, edges are linked in a first pass, and a
// single traversal from the chosen root assigns layers. That traversal is the
// sole source of truth for tree membership: orphans, members of cycles not
// containing the root, and losing root candidates are never visited and carry
// no layer. No cycle guard is needed because unreachable nodes are never
// traversed.
//
// When several records qualify as root candidates (no manager reference, or a
// reference that does not resolve), the first candidate in input order wins.
// When two records share an identifier the later one wins the lookup and the
// earlier is dropped entirely; the ingestion layer reports duplicates as
// warnings before records reach this package.
func Build(records []domain.EmployeeRecord) *domain.HierarchyNode {
	if len(records) == 0 {
		return nil
	}

	nodes := make([]domain.HierarchyNode, len(records))
	index := make(map[string]int, len(records))
	for i, r := range records {
		nodes[i] = domain.HierarchyNode{Record: r}
		index[r.ID] = i
	}

	root := -1
	for i := range nodes {
		if index[nodes[i].Record.ID] != i {
			// Shadowed by a later record with the same identifier.
			continue
		}
		ref := nodes[i].Record.ManagerID
		parent, ok := index[ref]
		if ref == "" || !ok {
			if root == -1 {
				root = i
			}
			continue
		}
		nodes[parent].Children = append(nodes[parent].Children, &nodes[i])
		nodes[parent].DirectReports++
	}
	if root == -1 {
		// Every record sits on a cycle; nothing can anchor a tree.
		return nil
	}

	nodes[root].Walk(func(n *domain.HierarchyNode) {
		for _, c := range n.Children {
			c.Layer = n.Layer + 1
		}
	})

	return &nodes[root]
}

// Reachable returns the records of every node in the tree in depth-first
// preorder. This is the record set all downstream statistics are computed
// over.
func Reachable(root *domain.HierarchyNode) []domain.EmployeeRecord {
	if root == nil {
		return nil
	}
	var records []domain.EmployeeRecord
	root.Walk(func(n *domain.HierarchyNode) {
		records = append(records, n.Record)
	})
	return records
}
