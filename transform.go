package tableau

import (
	"cogentcore.org/core/math32"
)

// Transform places an entity in world space. Use NewTransform for the
// identity; the zero value has zero scale.
type Transform struct {
	Translation math32.Vector3
	Rotation    math32.Quat
	Scaling     math32.Vector3
}

func NewTransform() Transform {
	t := Transform{
		Scaling: math32.Vec3(1, 1, 1),
	}
	t.Rotation.SetIdentity()
	return t
}

// Translate sets the translation.
func (t *Transform) Translate(v math32.Vector3) {
	t.Translation = v
}

// Rotate composes a rotation of angle degrees around axis.
func (t *Transform) Rotate(angle float32, axis math32.Vector3) {
	var delta math32.Quat
	delta.SetFromAxisAngle(axis.Normal(), math32.DegToRad(angle))
	t.Rotation.SetMul(delta)
	t.Rotation.Normalize()
}

// Scale sets the scale.
func (t *Transform) Scale(v math32.Vector3) {
	t.Scaling = v
}

// Matrix returns the model matrix: translation * rotation * scale.
func (t Transform) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(t.Translation, t.Rotation, t.Scaling)
	return m
}

func (t Transform) RotationMatrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(math32.Vector3{}, t.Rotation, math32.Vec3(1, 1, 1))
	return m
}
