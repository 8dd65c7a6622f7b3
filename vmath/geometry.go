package vmath

// Ray is a half-line from an origin along a unit direction.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay returns a new [Ray] with the given origin and direction; the
// direction is normalized. A degenerate direction falls back to +Z.
func NewRay(origin, direction Vector3) Ray {
	d := direction.Normal()
	if d == (Vector3{}) {
		d = Vec3(0, 0, 1)
	}
	return Ray{Origin: origin, Direction: d}
}

// Point returns the point at parameter t along this ray.
func (r Ray) Point(t float32) Vector3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// AABB is an axis-aligned bounding box defined by its minimum and maximum
// corner points. Bounds are inclusive.
type AABB struct {
	Min Vector3
	Max Vector3
}

// NewAABB returns a new [AABB] with the given minimum and maximum corners.
func NewAABB(min, max Vector3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromCenterAndExtents returns a new [AABB] centered on the given
// point with the given half-sizes per axis.
func AABBFromCenterAndExtents(center, extents Vector3) AABB {
	return AABB{Min: center.Sub(extents), Max: center.Add(extents)}
}

// Center returns the center point of this box.
func (b AABB) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Extents returns the half-size of this box per axis.
func (b AABB) Extents() Vector3 {
	return b.Max.Sub(b.Min).MulScalar(0.5)
}

// Contains returns whether this box contains the given point; points on
// the boundary are contained.
func (b AABB) Contains(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// Expand grows this box as needed to include the given point.
func (b *AABB) Expand(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Merge returns the minimal box enclosing both this box and the other
// given box. Merge is commutative.
func (b AABB) Merge(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Sphere is a sphere with a center point and radius.
type Sphere struct {
	Center Vector3
	Radius float32
}

// NewSphere returns a new [Sphere] with the given center and radius.
func NewSphere(center Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Contains returns whether this sphere contains the given point; points
// on the surface are contained.
func (s Sphere) Contains(point Vector3) bool {
	return point.Sub(s.Center).LengthSquared() <= s.Radius*s.Radius
}
