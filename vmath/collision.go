package vmath

// Closed-form intersection predicates over the geometric primitives. Each
// returns a hit report and, where meaningful, the ray parameter of the hit.
// These are pure and never error; degenerate inputs fall out of the
// arithmetic (see RayIntersectsAABB).

// RayIntersectsSphere reports whether the ray hits the sphere, and the ray
// parameter of the nearest intersection in front of the origin. A ray
// starting inside the sphere hits at its exit point.
func RayIntersectsSphere(ray Ray, sphere Sphere) (bool, float32) {
	l := sphere.Center.Sub(ray.Origin)
	tca := l.Dot(ray.Direction)
	d2 := l.LengthSquared() - tca*tca
	r2 := sphere.Radius * sphere.Radius
	if d2 > r2 {
		return false, 0
	}
	thc := Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			// sphere entirely behind the origin
			return false, 0
		}
	}
	return true, t0
}

// RayIntersectsPlane reports whether the ray hits the plane through
// planePoint with the given normal, and the ray parameter of the hit.
// Rays parallel to the plane or pointing away from it miss.
func RayIntersectsPlane(ray Ray, planeNormal, planePoint Vector3) (bool, float32) {
	denom := planeNormal.Dot(ray.Direction)
	if Abs(denom) < Epsilon {
		return false, 0
	}
	t := planePoint.Sub(ray.Origin).Dot(planeNormal) / denom
	if t < 0 {
		return false, 0
	}
	return true, t
}

// RayIntersectsAABB reports whether the ray hits the box, and the ray
// parameter of the entry point, using the slab test. Zero direction
// components divide to IEEE-754 infinities, which make the corresponding
// slab degenerate correctly for axis-aligned rays; they are deliberately
// not special-cased. A ray starting inside the box hits with a negative
// entry parameter.
func RayIntersectsAABB(ray Ray, box AABB) (bool, float32) {
	tmin := -Infinity
	tmax := Infinity

	mins := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}
	origin := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for i := 0; i < 3; i++ {
		t1 := (mins[i] - origin[i]) / dir[i]
		t2 := (maxs[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return false, 0
	}
	return true, tmin
}

// AABBIntersectsAABB reports whether the two boxes overlap; boxes that
// merely touch count as overlapping.
func AABBIntersectsAABB(a, b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// SphereIntersectsSphere reports whether the two spheres overlap; spheres
// that merely touch count as overlapping.
func SphereIntersectsSphere(a, b Sphere) bool {
	r := a.Radius + b.Radius
	return a.Center.Sub(b.Center).LengthSquared() <= r*r
}

// PointInAABB reports whether the given point lies inside the box,
// boundary included.
func PointInAABB(point Vector3, box AABB) bool {
	return box.Contains(point)
}
