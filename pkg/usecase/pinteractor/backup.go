// 指示: miu200521358
package pinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model/merrors"
)

// PoseBackup はブレンド対象ボーンの変換スナップショットを表す。
// ブレンド開始前からセッション破棄まで存在し、復元は何度行っても同じ結果になる。
type PoseBackup struct {
	saved             map[string]model.BoneTransform
	selectionRelevant bool
}

// newPoseBackup は対象ポーズが参照するボーンのスナップショットを作る。
// 選択中ボーンが1つでもあれば選択中のみ、無ければ参照ボーン全てを記録する。
// 記録対象が空の場合は空バックアップとErrNoAffectedBonesを返す(継続可能)。
func newPoseBackup(rig *model.Rig, pose *model.TargetPose) (*PoseBackup, error) {
	backup := &PoseBackup{saved: map[string]model.BoneTransform{}}
	if rig == nil || rig.Bones == nil || pose == nil {
		return backup, fmt.Errorf("バックアップ対象がありません: %w", merrors.ErrNoAffectedBones)
	}

	backup.selectionRelevant = rig.HasSelectedBone(pose.BoneNames())
	for _, name := range pose.BoneNames() {
		bone, err := rig.Bones.GetByName(name)
		if err != nil || bone == nil {
			continue
		}
		if backup.selectionRelevant && !bone.Selected {
			continue
		}
		backup.saved[bone.Name()] = bone.Transform
	}

	if len(backup.saved) == 0 {
		return backup, fmt.Errorf("バックアップ対象がありません: %w", merrors.ErrNoAffectedBones)
	}
	return backup, nil
}

// Restore は記録済み変換をリグへ書き戻す。リグから消えたボーンは読み飛ばす。
func (b *PoseBackup) Restore(rig *model.Rig) {
	if b == nil || rig == nil || rig.Bones == nil {
		return
	}
	for name, transform := range b.saved {
		bone, err := rig.Bones.GetByName(name)
		if err != nil || bone == nil {
			continue
		}
		bone.Transform = transform
	}
}

// IsSelectionRelevant は選択中ボーンのみを記録したバックアップか返す。
func (b *PoseBackup) IsSelectionRelevant() bool {
	return b != nil && b.selectionRelevant
}

// SavedTransform は記録済み変換を返す。
func (b *PoseBackup) SavedTransform(name string) (model.BoneTransform, bool) {
	if b == nil {
		return model.BoneTransform{}, false
	}
	transform, exists := b.saved[name]
	return transform, exists
}

// Len は記録ボーン数を返す。
func (b *PoseBackup) Len() int {
	if b == nil {
		return 0
	}
	return len(b.saved)
}
