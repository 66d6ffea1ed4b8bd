package dfs

import "github.com/katalvlaran/synonet/symgraph"

// Components labels every vertex of a graph with its connected component.
// Component ids are dense, assigned in order of each component's lowest vertex id.
type Components struct {
	label []int
	sizes []int
}

// FindComponents labels the components of g with one full traversal.
//
// Complexity: O(V + E) time, O(V) memory.
func FindComponents(g *symgraph.Graph) (*Components, error) {
	c := &Components{}
	rootID := make(map[int]int)
	res, err := DFS(g, 0, WithFullTraversal(), WithOnVisit(func(_, _, root int) error {
		id, ok := rootID[root]
		if !ok {
			id = len(c.sizes)
			rootID[root] = id
			c.sizes = append(c.sizes, 0)
		}
		c.sizes[id]++
		return nil
	}))
	if err != nil {
		return nil, err
	}
	c.label = make([]int, len(res.Root))
	for v, root := range res.Root {
		c.label[v] = rootID[root]
	}
	return c, nil
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.sizes) }

// Of returns the component id of v, or Unvisited when v is out of range.
func (c *Components) Of(v int) int {
	if v < 0 || v >= len(c.label) {
		return Unvisited
	}
	return c.label[v]
}

// Same reports whether u and v lie in one component.
func (c *Components) Same(u, v int) bool {
	cu := c.Of(u)
	return cu != Unvisited && cu == c.Of(v)
}

// Size returns the number of vertices in component id, or 0 if there is no such component.
func (c *Components) Size(id int) int {
	if id < 0 || id >= len(c.sizes) {
		return 0
	}
	return c.sizes[id]
}

// Largest returns the size of the biggest component, or 0 for an empty graph.
func (c *Components) Largest() int {
	largest := 0
	for _, s := range c.sizes {
		largest = max(largest, s)
	}
	return largest
}
