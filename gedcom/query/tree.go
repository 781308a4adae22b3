package query

import "github.com/teranos/kin/gedcom"

// TreeNode is one person in a family tree. Generations are signed: the
// root is 0, ancestors count up, descendants count down. Parents and
// Children are present only on nodes that were still allowed to expand
// within the requested depth.
type TreeNode struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Birth      gedcom.EventDetail `json:"birth"`
	Death      gedcom.EventDetail `json:"death"`
	Generation int                `json:"generation"`
	Parents    []*TreeNode        `json:"parents,omitempty"`
	Children   []*TreeNode        `json:"children,omitempty"`
}

// GetFamilyTree builds a tree rooted at the given individual, walking up
// through parents and down through children. The generations bound limits
// absolute depth in both directions; an unknown root yields nil.
func (e *Engine) GetFamilyTree(id string, generations int) *TreeNode {
	if _, ok := e.data.Individuals[id]; !ok {
		return nil
	}
	return e.buildTree(id, 0, generations)
}

func (e *Engine) buildTree(id string, gen, maxGen int) *TreeNode {
	if gen >= maxGen {
		return nil
	}
	person, ok := e.data.Individuals[id]
	if !ok {
		return nil
	}

	node := &TreeNode{
		ID:         id,
		Name:       person.Name,
		Birth:      person.Birth,
		Death:      person.Death,
		Generation: gen,
	}

	if gen < maxGen-1 {
		for _, parentID := range person.Parents {
			if parent := e.buildTree(parentID, gen+1, maxGen); parent != nil {
				node.Parents = append(node.Parents, parent)
			}
		}
		for _, childID := range person.Children {
			if child := e.buildTree(childID, gen-1, maxGen); child != nil {
				node.Children = append(node.Children, child)
			}
		}
	}

	return node
}
