package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFamilyTreeGenerations(t *testing.T) {
	engine := NewEngine(fixtureModel())

	tree := engine.GetFamilyTree("3", 2)
	require.NotNil(t, tree)
	assert.Equal(t, "3", tree.ID)
	assert.Equal(t, 0, tree.Generation)

	require.Len(t, tree.Parents, 2)
	assert.Equal(t, "1", tree.Parents[0].ID)
	assert.Equal(t, 1, tree.Parents[0].Generation)
	assert.Equal(t, "2", tree.Parents[1].ID)

	// Depth 2: the parent level does not expand further.
	assert.Empty(t, tree.Parents[0].Parents)
	assert.Empty(t, tree.Parents[0].Children)
}

func TestGetFamilyTreeDescendantsAreNegative(t *testing.T) {
	engine := NewEngine(fixtureModel())

	tree := engine.GetFamilyTree("1", 3)
	require.NotNil(t, tree)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "3", tree.Children[0].ID)
	assert.Equal(t, -1, tree.Children[0].Generation)
}

func TestGetFamilyTreeUnknownRoot(t *testing.T) {
	engine := NewEngine(fixtureModel())
	assert.Nil(t, engine.GetFamilyTree("404", 3))
}

func TestGetFamilyTreeSkipsDanglingIds(t *testing.T) {
	engine := NewEngine(fixtureModel())

	// Individual 9 links to child 404 which has no record; the node is
	// simply absent from the tree.
	tree := engine.GetFamilyTree("9", 3)
	require.NotNil(t, tree)
	assert.Empty(t, tree.Children)
}
