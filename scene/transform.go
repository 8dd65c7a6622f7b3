package scene

import "github.com/machin0r/vector-maths/vmath"

// Accessors return zero values for invalid handles; mutators on invalid
// handles are no-ops. Use [Graph.Valid] where liveness matters.

// Position returns the node's local position.
func (g *Graph) Position(n Node) vmath.Vector3 {
	s := g.get(n)
	if s == nil {
		return vmath.Vector3{}
	}
	return s.position
}

// Rotation returns the node's local rotation.
func (g *Graph) Rotation(n Node) vmath.Quat {
	s := g.get(n)
	if s == nil {
		return vmath.QuatIdentity()
	}
	return s.rotation
}

// Scale returns the node's local scale.
func (g *Graph) Scale(n Node) vmath.Vector3 {
	s := g.get(n)
	if s == nil {
		return vmath.Vector3{}
	}
	return s.scale
}

// SetPosition sets the node's local position and marks its subtree dirty.
func (g *Graph) SetPosition(n Node, position vmath.Vector3) {
	s := g.get(n)
	if s == nil {
		return
	}
	s.position = position
	g.markDirty(n)
}

// SetRotation sets the node's local rotation and marks its subtree dirty.
func (g *Graph) SetRotation(n Node, rotation vmath.Quat) {
	s := g.get(n)
	if s == nil {
		return
	}
	s.rotation = rotation
	g.markDirty(n)
}

// SetScale sets the node's local scale and marks its subtree dirty.
func (g *Graph) SetScale(n Node, scale vmath.Vector3) {
	s := g.get(n)
	if s == nil {
		return
	}
	s.scale = scale
	g.markDirty(n)
}

// Translate offsets the node's local position and marks its subtree dirty.
func (g *Graph) Translate(n Node, offset vmath.Vector3) {
	s := g.get(n)
	if s == nil {
		return
	}
	s.position = s.position.Add(offset)
	g.markDirty(n)
}

// Rotate post-multiplies the node's local rotation by the given extra
// rotation (object-space) and marks its subtree dirty.
func (g *Graph) Rotate(n Node, extra vmath.Quat) {
	s := g.get(n)
	if s == nil {
		return
	}
	s.rotation = s.rotation.Mul(extra)
	g.markDirty(n)
}

// Dirty returns whether the node's cached local matrix is stale and will
// be recomputed on the next [Graph.LocalMatrix] read.
func (g *Graph) Dirty(n Node) bool {
	s := g.get(n)
	if s == nil {
		return false
	}
	return s.dirty
}

// LocalMatrix returns the node's local transform matrix, composed as
// translate * rotate * scale. The matrix is cached: it is recomputed only
// when the node is dirty.
func (g *Graph) LocalMatrix(n Node) vmath.Matrix4 {
	s := g.get(n)
	if s == nil {
		return vmath.Identity4()
	}
	if s.dirty {
		s.local = vmath.Translation(s.position).RotatedLocal(s.rotation).Scaled(s.scale)
		s.dirty = false
	}
	return s.local
}

// WorldMatrix returns the node's world transform matrix: the parent's
// world matrix times this node's local matrix, recursively to the root.
// Only local matrices are cached; every call walks the ancestor chain.
func (g *Graph) WorldMatrix(n Node) vmath.Matrix4 {
	s := g.get(n)
	if s == nil {
		return vmath.Identity4()
	}
	if g.get(s.parent) != nil {
		return g.WorldMatrix(s.parent).Mul(g.LocalMatrix(n))
	}
	return g.LocalMatrix(n)
}

// LookAt rotates the node so its forward axis (-Z) points at target. The
// basis is derived from the direction to the target and the given
// approximate up vector via cross products, then converted to a
// quaternion. If target coincides with the node's position the direction
// is indeterminate and the rotation is left unchanged.
func (g *Graph) LookAt(n Node, target, up vmath.Vector3) {
	s := g.get(n)
	if s == nil {
		return
	}
	f := target.Sub(s.position)
	if f.Length() < vmath.Epsilon {
		return
	}
	f = f.Normal()
	right := f.Cross(up).Normal()
	newUp := right.Cross(f)

	basis := vmath.Matrix3FromColumns(right, newUp, f.Negate())
	s.rotation = vmath.QuatFromRotationMatrix(basis)
	g.markDirty(n)
}

// Forward returns the node's forward direction: the canonical -Z axis
// rotated by the node's rotation (camera convention).
func (g *Graph) Forward(n Node) vmath.Vector3 {
	return g.Rotation(n).RotateVector(vmath.Vec3(0, 0, -1))
}

// Right returns the node's right direction: the canonical +X axis rotated
// by the node's rotation.
func (g *Graph) Right(n Node) vmath.Vector3 {
	return g.Rotation(n).RotateVector(vmath.Vec3(1, 0, 0))
}

// Up returns the node's up direction: the canonical +Y axis rotated by
// the node's rotation.
func (g *Graph) Up(n Node) vmath.Vector3 {
	return g.Rotation(n).RotateVector(vmath.Vec3(0, 1, 0))
}
