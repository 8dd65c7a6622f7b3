// Package scene provides a hierarchical transform graph: a tree of nodes
// each holding a local position, rotation and scale, with lazily cached
// local matrices and world matrices composed up the ancestor chain.
//
// Nodes live in an arena owned by a [Graph] and are addressed by [Node]
// handles. Handles carry a generation so a handle to a removed node is
// detectable rather than dangling. A Graph must not be mutated or
// traversed concurrently; callers serialize access.
package scene

import (
	"fmt"

	"github.com/machin0r/vector-maths/vmath"
)

// Node is a stable handle to a node in a [Graph]. The zero value is Nil,
// referring to no node.
type Node struct {
	id  uint32 // slot index + 1; 0 is nil
	gen uint32
}

// Nil is the empty Node handle.
var Nil Node

// IsNil returns whether this handle refers to no node.
func (n Node) IsNil() bool {
	return n.id == 0
}

type slot struct {
	gen  uint32
	live bool

	position vmath.Vector3
	rotation vmath.Quat
	scale    vmath.Vector3

	parent   Node
	children []Node

	local vmath.Matrix4
	dirty bool
}

// Graph is an arena of transform nodes forming a forest of trees.
type Graph struct {
	slots []slot
	free  []uint32
}

// NewGraph returns a new empty transform graph.
func NewGraph() *Graph {
	return &Graph{}
}

// New creates a root node with identity transform and returns its handle.
func (g *Graph) New() Node {
	return g.NewAt(vmath.Vector3{}, vmath.QuatIdentity(), vmath.Vec3(1, 1, 1))
}

// NewAt creates a root node with the given local position, rotation and
// scale and returns its handle. The node starts dirty: its local matrix is
// computed on first read.
func (g *Graph) NewAt(position vmath.Vector3, rotation vmath.Quat, scale vmath.Vector3) Node {
	var idx uint32
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		g.slots = append(g.slots, slot{})
		idx = uint32(len(g.slots) - 1)
	}
	s := &g.slots[idx]
	s.live = true
	s.position = position
	s.rotation = rotation
	s.scale = scale
	s.parent = Nil
	s.children = s.children[:0]
	s.dirty = true
	return Node{id: idx + 1, gen: s.gen}
}

// Valid returns whether the given handle refers to a live node in this graph.
func (g *Graph) Valid(n Node) bool {
	return g.get(n) != nil
}

// get returns the slot for a handle, or nil if the handle is dead.
func (g *Graph) get(n Node) *slot {
	if n.id == 0 || int(n.id) > len(g.slots) {
		return nil
	}
	s := &g.slots[n.id-1]
	if !s.live || s.gen != n.gen {
		return nil
	}
	return s
}

// Remove deletes the node: it is detached from its parent, its children
// are re-rooted (orphaned, not deleted), and the slot is recycled. Handles
// to the removed node become invalid. Removing an invalid handle is a no-op.
func (g *Graph) Remove(n Node) {
	s := g.get(n)
	if s == nil {
		return
	}
	g.detach(n, s)
	for _, c := range s.children {
		if cs := g.get(c); cs != nil {
			cs.parent = Nil
			g.markDirty(c)
		}
	}
	s.children = s.children[:0]
	s.live = false
	s.gen++
	g.free = append(g.free, n.id-1)
}

// Parent returns the handle of the node's parent, or Nil for roots and
// invalid handles.
func (g *Graph) Parent(n Node) Node {
	s := g.get(n)
	if s == nil {
		return Nil
	}
	return s.parent
}

// Children returns a copy of the node's child handles.
func (g *Graph) Children(n Node) []Node {
	s := g.get(n)
	if s == nil {
		return nil
	}
	out := make([]Node, len(s.children))
	copy(out, s.children)
	return out
}

// SetParent reparents child under parent, or makes it a root if parent is
// Nil. Both directions of bookkeeping happen atomically: the child is
// removed from its old parent's child list, appended to the new one, and
// its subtree is marked dirty. It is an error to parent a node to itself,
// to one of its descendants, or through a dead handle.
func (g *Graph) SetParent(child, parent Node) error {
	cs := g.get(child)
	if cs == nil {
		return fmt.Errorf("scene: SetParent: invalid child handle")
	}
	if !parent.IsNil() {
		if g.get(parent) == nil {
			return fmt.Errorf("scene: SetParent: invalid parent handle")
		}
		// the graph must stay a tree
		for a := parent; !a.IsNil(); a = g.Parent(a) {
			if a == child {
				return fmt.Errorf("scene: SetParent: node would become its own ancestor")
			}
		}
	}
	g.detach(child, cs)
	cs.parent = parent
	if ps := g.get(parent); ps != nil {
		ps.children = append(ps.children, child)
	}
	g.markDirty(child)
	return nil
}

// AddChild appends child under this node; equivalent to SetParent(child, parent).
func (g *Graph) AddChild(parent, child Node) error {
	return g.SetParent(child, parent)
}

// RemoveChild detaches child from parent, making it a root. It is a no-op
// if child is not currently a child of parent.
func (g *Graph) RemoveChild(parent, child Node) error {
	cs := g.get(child)
	if cs == nil {
		return fmt.Errorf("scene: RemoveChild: invalid child handle")
	}
	if cs.parent != parent {
		return nil
	}
	return g.SetParent(child, Nil)
}

// detach removes the node from its current parent's child list without
// touching the node's own parent reference.
func (g *Graph) detach(n Node, s *slot) {
	ps := g.get(s.parent)
	if ps == nil {
		return
	}
	for i, c := range ps.children {
		if c == n {
			ps.children = append(ps.children[:i], ps.children[i+1:]...)
			return
		}
	}
}

// markDirty marks the node and every descendant as needing a local matrix
// recompute. Invalidation is eager and happens at mutation time.
func (g *Graph) markDirty(n Node) {
	s := g.get(n)
	if s == nil {
		return
	}
	s.dirty = true
	for _, c := range s.children {
		g.markDirty(c)
	}
}
