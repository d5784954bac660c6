// 指示: miu200521358
// Package model はリグ・ボーン・ポーズのドメイン型を提供する。
package model

import "github.com/miu200521358/mu_poseblend/pkg/domain/mmath"

// BoneTransform はボーンのローカル変換を表す。
type BoneTransform struct {
	Translation mmath.Vec3
	Rotation    mmath.Quaternion
	Scale       mmath.Vec3
}

// NewBoneTransform は単位変換を生成する。
func NewBoneTransform() BoneTransform {
	return BoneTransform{
		Translation: mmath.NewVec3(0, 0, 0),
		Rotation:    mmath.NewQuaternion(),
		Scale:       mmath.NewVec3(1, 1, 1),
	}
}

// NearEquals は変換が許容誤差内で一致するか判定する。
func (t BoneTransform) NearEquals(other BoneTransform, epsilon float64) bool {
	return t.Translation.NearEquals(other.Translation, epsilon) &&
		t.Rotation.NearEquals(other.Rotation, epsilon) &&
		t.Scale.NearEquals(other.Scale, epsilon)
}

// Bone はリグ上の1ボーンを表す。
type Bone struct {
	name        string
	index       int
	ParentIndex int
	Selected    bool
	Transform   BoneTransform
}

// NewBoneByName は名前指定でボーンを生成する。
func NewBoneByName(name string) *Bone {
	return &Bone{
		name:        name,
		index:       -1,
		ParentIndex: -1,
		Transform:   NewBoneTransform(),
	}
}

// Name はボーン名を返す。
func (b *Bone) Name() string {
	return b.name
}

// Index はコレクション内indexを返す。未登録時は-1。
func (b *Bone) Index() int {
	return b.index
}
