package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/org-atlas/pkg/models/domain"
)

func rec(id, manager string) domain.EmployeeRecord {
	return domain.EmployeeRecord{ID: id, ManagerID: manager}
}

func TestBuild_EmptyRoster(t *testing.T) {
	assert.Nil(t, Build(nil))
	assert.Nil(t, Build([]domain.EmployeeRecord{}))
}

func TestBuild_DanglingManagerExcluded(t *testing.T) {
	// D references a manager that does not exist, so it is a losing root
	// candidate and stays outside the tree.
	records := []domain.EmployeeRecord{
		rec("A", ""),
		rec("B", "A"),
		rec("C", "A"),
		rec("D", "Z"),
	}

	root := Build(records)
	require.NotNil(t, root)
	assert.Equal(t, "A", root.Record.ID)
	assert.Equal(t, 0, root.Layer)
	assert.Equal(t, 2, root.DirectReports)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "B", root.Children[0].Record.ID)
	assert.Equal(t, "C", root.Children[1].Record.ID)
	assert.Equal(t, 1, root.Children[0].Layer)
	assert.Equal(t, 1, root.Children[1].Layer)

	reachable := Reachable(root)
	require.Len(t, reachable, 3)
	for _, r := range reachable {
		assert.NotEqual(t, "D", r.ID)
	}
}

func TestBuild_LayerEqualsParentPlusOne(t *testing.T) {
	records := []domain.EmployeeRecord{
		rec("ceo", ""),
		rec("vp1", "ceo"),
		rec("vp2", "ceo"),
		rec("dir", "vp1"),
		rec("eng", "dir"),
	}

	root := Build(records)
	require.NotNil(t, root)

	root.Walk(func(n *domain.HierarchyNode) {
		for _, c := range n.Children {
			assert.Equal(t, n.Layer+1, c.Layer, "child %s of %s", c.Record.ID, n.Record.ID)
		}
	})
	assert.Equal(t, 0, root.Layer)
}

func TestBuild_FirstRootCandidateWins(t *testing.T) {
	// Two disconnected roots: the first one in input order anchors the tree,
	// the second becomes unreachable together with its subtree.
	records := []domain.EmployeeRecord{
		rec("r1", ""),
		rec("a", "r1"),
		rec("r2", ""),
		rec("b", "r2"),
	}

	root := Build(records)
	require.NotNil(t, root)
	assert.Equal(t, "r1", root.Record.ID)
	assert.Len(t, Reachable(root), 2)
}

func TestBuild_SelfReferenceExcluded(t *testing.T) {
	records := []domain.EmployeeRecord{
		rec("A", ""),
		rec("B", "B"),
	}

	root := Build(records)
	require.NotNil(t, root)
	assert.Equal(t, "A", root.Record.ID)
	assert.Len(t, Reachable(root), 1)
}

func TestBuild_CycleWithoutRootExcluded(t *testing.T) {
	records := []domain.EmployeeRecord{
		rec("A", ""),
		rec("B", "C"),
		rec("C", "B"),
	}

	root := Build(records)
	require.NotNil(t, root)
	assert.Equal(t, "A", root.Record.ID)
	assert.Len(t, Reachable(root), 1)
}

func TestBuild_AllCycleRosterHasNoRoot(t *testing.T) {
	records := []domain.EmployeeRecord{
		rec("A", "B"),
		rec("B", "A"),
	}
	assert.Nil(t, Build(records))
}

func TestBuild_DuplicateIdentifierLastWins(t *testing.T) {
	// The later record claims the identifier; the earlier one vanishes from
	// the tree. Ingestion warns about this before records get here.
	records := []domain.EmployeeRecord{
		rec("boss", ""),
		{ID: "X", ManagerID: "boss", Function: "first"},
		{ID: "X", ManagerID: "boss", Function: "second"},
	}

	root := Build(records)
	require.NotNil(t, root)
	require.Equal(t, 1, root.DirectReports)
	assert.Equal(t, "second", root.Children[0].Record.Function)
}

func TestReachable_NilRoot(t *testing.T) {
	assert.Nil(t, Reachable(nil))
}
