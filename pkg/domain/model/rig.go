// 指示: miu200521358
package model

// Rig はポーズ編集対象の多関節スケルトンを表す。
type Rig struct {
	Name        string
	Bones       *BoneCollection
	PoseEditing bool

	evaluationLocked bool
}

// NewRig は空のリグを生成する。
func NewRig(name string) *Rig {
	return &Rig{
		Name:  name,
		Bones: NewBoneCollection(),
	}
}

// LockEvaluation は外部再評価による上書きを禁止し、解除関数を返す。
// 解除関数はロック前の状態を復元するため、入れ子呼び出しでも安全に使える。
func (r *Rig) LockEvaluation() func() {
	previous := r.evaluationLocked
	r.evaluationLocked = true
	return func() {
		r.evaluationLocked = previous
	}
}

// IsEvaluationLocked は外部再評価が禁止中か返す。
func (r *Rig) IsEvaluationLocked() bool {
	return r.evaluationLocked
}

// HasSelectedBone は名前一覧のうち1つでも選択中ボーンがあるか判定する。
func (r *Rig) HasSelectedBone(names []string) bool {
	if r.Bones == nil {
		return false
	}
	for _, name := range names {
		bone, err := r.Bones.GetByName(name)
		if err != nil || bone == nil {
			continue
		}
		if bone.Selected {
			return true
		}
	}
	return false
}
