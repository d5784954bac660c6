// 指示: miu200521358
package pinteractor

import "github.com/miu200521358/mu_poseblend/pkg/domain/model"

// blendChannelsOntoRig はバックアップ済み変換を基準に係数ブレンド結果をリグへ書き込む。
// バックアップに無いボーン(選択対象外など)は変更しない。
func blendChannelsOntoRig(rig *model.Rig, pose *model.TargetPose, backup *PoseBackup, factor float64) {
	if rig == nil || rig.Bones == nil || pose == nil || backup == nil {
		return
	}
	for _, channel := range pose.Channels {
		base, exists := backup.SavedTransform(channel.BoneName)
		if !exists {
			continue
		}
		bone, err := rig.Bones.GetByName(channel.BoneName)
		if err != nil || bone == nil {
			continue
		}
		bone.Transform = blendTransform(base, channel.Transform, factor)
	}
}

// blendTransform は係数0で基準、係数1で対象と一致する補間変換を返す。
func blendTransform(base model.BoneTransform, target model.BoneTransform, factor float64) model.BoneTransform {
	return model.BoneTransform{
		Translation: base.Translation.Lerp(target.Translation, factor),
		Rotation:    base.Rotation.Slerp(target.Rotation, factor).Normalized(),
		Scale:       base.Scale.Lerp(target.Scale, factor),
	}
}
