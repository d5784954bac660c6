// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion は回転を表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionFromValues は成分指定でクォータニオンを生成する。
func NewQuaternionFromValues(w float64, x float64, y float64, z float64) Quaternion {
	return Quaternion{Quat: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// NewQuaternionFromDegrees はXYZ順のオイラー角(度)からクォータニオンを生成する。
func NewQuaternionFromDegrees(xDegree float64, yDegree float64, zDegree float64) Quaternion {
	return Quaternion{Quat: mgl64.AnglesToQuat(
		DegToRad(xDegree),
		DegToRad(yDegree),
		DegToRad(zDegree),
		mgl64.XYZ,
	)}
}

// X はX成分を返す。
func (q Quaternion) X() float64 {
	return q.V[0]
}

// Y はY成分を返す。
func (q Quaternion) Y() float64 {
	return q.V[1]
}

// Z はZ成分を返す。
func (q Quaternion) Z() float64 {
	return q.V[2]
}

// Muled は回転合成結果(q×other)を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// MulVec3 はベクトルを回転した結果を返す。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	rotated := q.Quat.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return NewVec3(rotated[0], rotated[1], rotated[2])
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	return Quaternion{Quat: q.Quat.Inverse()}
}

// Normalized は正規化結果を返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{Quat: q.Quat.Normalize()}
}

// Slerp は球面線形補間結果を返す。
func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	return Quaternion{Quat: mgl64.QuatSlerp(q.Quat, other.Quat, t)}
}

// NearEquals は回転として等価かを許容誤差内で判定する。qと-qは同一回転として扱う。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	dot := q.W*other.W + q.V[0]*other.V[0] + q.V[1]*other.V[1] + q.V[2]*other.V[2]
	return math.Abs(math.Abs(dot)-1.0) <= epsilon
}
