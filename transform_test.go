package tableau

import (
	"testing"

	"cogentcore.org/core/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestNewTransformIsIdentity(t *testing.T) {
	m := NewTransform().Matrix()
	var identity math32.Matrix4
	identity.SetIdentity()
	for i := range m {
		if !approx(m[i], identity[i]) {
			t.Fatalf("Matrix()[%d] = %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestTransformMatrix(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Transform)
		point math32.Vector3
		want  math32.Vector3
	}{
		{
			name:  "Translate",
			apply: func(tr *Transform) { tr.Translate(math32.Vec3(3, 0, 0)) },
			point: math32.Vec3(0, 0, 0),
			want:  math32.Vec3(3, 0, 0),
		},
		{
			name:  "Scale then translate",
			apply: func(tr *Transform) { tr.Scale(math32.Vec3(2, 2, 2)); tr.Translate(math32.Vec3(0, 1, 0)) },
			point: math32.Vec3(1, 1, 1),
			want:  math32.Vec3(2, 3, 2),
		},
		{
			name:  "Rotate a quarter turn around Z",
			apply: func(tr *Transform) { tr.Rotate(90, math32.Vec3(0, 0, 5)) },
			point: math32.Vec3(1, 0, 0),
			want:  math32.Vec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tt.apply(&tr)
			m := tr.Matrix()
			p := tt.point
			got := math32.Vec3(
				m[0]*p.X+m[4]*p.Y+m[8]*p.Z+m[12],
				m[1]*p.X+m[5]*p.Y+m[9]*p.Z+m[13],
				m[2]*p.X+m[6]*p.Y+m[10]*p.Z+m[14],
			)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) || !approx(got.Z, tt.want.Z) {
				t.Errorf("Matrix() maps %v to %v, want %v", p, got, tt.want)
			}
		})
	}
}

func TestTransformRotationMatrixIgnoresPlacement(t *testing.T) {
	tr := NewTransform()
	tr.Translate(math32.Vec3(5, 5, 5))
	tr.Scale(math32.Vec3(3, 3, 3))
	m := tr.RotationMatrix()
	if m[12] != 0 || m[13] != 0 || m[14] != 0 {
		t.Errorf("RotationMatrix() carries translation %v %v %v", m[12], m[13], m[14])
	}
	if !approx(m[0], 1) || !approx(m[5], 1) || !approx(m[10], 1) {
		t.Errorf("RotationMatrix() carries scale %v %v %v", m[0], m[5], m[10])
	}
}
