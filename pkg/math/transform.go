package math

// Transform is the terrain's local-to-world transform: a translation plus a
// uniform scale. The terrain never rotates, so a full matrix is unnecessary
// and the inverse is exact.
type Transform struct {
	Translation Vec3
	Scale       float32
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// Apply converts a local-space point to world space.
func (t Transform) Apply(p Vec3) Vec3 {
	return p.Scale(t.Scale).Add(t.Translation)
}

// Unapply converts a world-space point back to local space.
func (t Transform) Unapply(p Vec3) Vec3 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return p.Sub(t.Translation).Scale(1 / s)
}

// ApplyDirection converts a local-space direction to world space. Uniform
// scale preserves direction, so only normalization length changes.
func (t Transform) ApplyDirection(d Vec3) Vec3 {
	return d
}
