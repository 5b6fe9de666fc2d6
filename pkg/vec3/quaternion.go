package vec3

import "math"

// Quaternion represents a rotation. Used by Transform/RotateY (instance
// transforms) and Portal (the teleporting material).
type Quaternion struct {
	W, X, Y, Z float64
}

// QuaternionIdentity is the no-op rotation.
func QuaternionIdentity() Quaternion { return Quaternion{W: 1} }

// QuaternionFromAxisAngle builds a rotation of angleDegrees around axis.
func QuaternionFromAxisAngle(axis Vec3, angleDegrees float64) Quaternion {
	half := angleDegrees * math.Pi / 180 * 0.5
	s, c := math.Sin(half), math.Cos(half)
	a, ok := Normalize(axis)
	if !ok {
		return QuaternionIdentity()
	}
	return Quaternion{W: c, X: a.X() * s, Y: a.Y() * s, Z: a.Z() * s}
}

// QuaternionFromEuler builds a rotation from yaw/pitch/roll in radians.
func QuaternionFromEuler(yaw, pitch, roll float64) Quaternion {
	cy, sy := math.Cos(0.5*yaw), math.Sin(0.5*yaw)
	cp, sp := math.Cos(0.5*pitch), math.Sin(0.5*pitch)
	cr, sr := math.Cos(0.5*roll), math.Sin(0.5*roll)
	return Quaternion{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// ToEuler recovers yaw, pitch, roll in radians. Round-trips FromEuler for
// non-gimbal-locked rotations.
func (q Quaternion) ToEuler() (yaw, pitch, roll float64) {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw = math.Atan2(sinyCosp, cosyCosp)
	return yaw, pitch, roll
}

// Mul composes q then rhs is applied first: (q*rhs) rotates by rhs, then q.
func (q Quaternion) Mul(rhs Quaternion) Quaternion {
	return Quaternion{
		W: q.W*rhs.W - q.X*rhs.X - q.Y*rhs.Y - q.Z*rhs.Z,
		X: q.W*rhs.X + q.X*rhs.W + q.Y*rhs.Z - q.Z*rhs.Y,
		Y: q.W*rhs.Y - q.X*rhs.Z + q.Y*rhs.W + q.Z*rhs.X,
		Z: q.W*rhs.Z + q.X*rhs.Y - q.Y*rhs.X + q.Z*rhs.W,
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// RotateVector rotates v by the quaternion.
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}
