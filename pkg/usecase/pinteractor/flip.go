// 指示: miu200521358
package pinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_poseblend/pkg/domain/mmath"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/tiendc/go-deepcopy"
)

// flipPose は対象ポーズを矢状面(YZ平面)で鏡映した所有ポーズを返す。
// 入力ポーズは変更しない。鏡映中はリグの排他再計算ロックを取り、
// 失敗時も含めて必ず解除する。
func flipPose(rig *model.Rig, pose *model.TargetPose) (*model.TargetPose, error) {
	if pose == nil {
		return nil, fmt.Errorf("反転対象ポーズが未設定です")
	}
	if rig != nil {
		release := rig.LockEvaluation()
		defer release()
	}

	flipped := &model.TargetPose{}
	if err := deepcopy.Copy(flipped, pose); err != nil {
		return nil, fmt.Errorf("ポーズ複製に失敗しました: %w", err)
	}

	for i := range flipped.Channels {
		flipped.Channels[i].BoneName = model.MirrorBoneName(flipped.Channels[i].BoneName)
		flipped.Channels[i].Transform = mirrorTransform(flipped.Channels[i].Transform)
	}
	return flipped, nil
}

// mirrorTransform はYZ平面鏡映後のローカル変換を返す。
// 平行移動はX反転、回転はY/Z成分反転で鏡映に対応する。
func mirrorTransform(transform model.BoneTransform) model.BoneTransform {
	rotation := transform.Rotation
	return model.BoneTransform{
		Translation: mmath.NewVec3(
			-transform.Translation.X,
			transform.Translation.Y,
			transform.Translation.Z,
		),
		Rotation: mmath.NewQuaternionFromValues(
			rotation.W,
			rotation.X(),
			-rotation.Y(),
			-rotation.Z(),
		),
		Scale: transform.Scale,
	}
}
