// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Quat is a rotation quaternion with its components in X, Y, Z, W order.
type Quat [4]float32

// Identity returns the quaternion (0,0,0,1).
func Identity() Quat {
	return Quat{0, 0, 0, 1}
}

// FromWXYZ converts a scalar-first quaternion e into X, Y, Z, W order.
func FromWXYZ(e [4]float32) Quat {
	return Quat{e[1], e[2], e[3], e[0]}
}

func (q Quat) X() float32 { return q[0] }
func (q Quat) Y() float32 { return q[1] }
func (q Quat) Z() float32 { return q[2] }
func (q Quat) W() float32 { return q[3] }

// Len returns the norm of the quaternion
func (q Quat) Len() float32 {
	return math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Mgl returns q as a mathgl quaternion.
func (q Quat) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q[3], V: mgl32.Vec3{q[0], q[1], q[2]}}
}

// Finite reports whether none of vs is NaN or infinite.
func Finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Length returns the length of the vector
func Length(v mgl32.Vec3) float32 {
	return math32.Sqrt(Dot(v, v))
}

// Dot returns a dot b
func Dot(a, b mgl32.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
