// 指示: miu200521358
package pinteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_poseblend/pkg/usecase/port/moutput"
)

// PoseBlendUsecaseDeps はポーズブレンドユースケースの依存先を表す。
type PoseBlendUsecaseDeps struct {
	PoseSource     moutput.IPoseSource
	AutoKey        moutput.IAutoKeyRecorder
	SceneEvaluator moutput.ISceneEvaluator
	StatusReporter moutput.IStatusReporter
}

// PoseBlendUsecase は対話/一括のポーズブレンド入口を提供する。
type PoseBlendUsecase struct {
	deps PoseBlendUsecaseDeps
}

// NewPoseBlendUsecase はポーズブレンドユースケースを生成する。
func NewPoseBlendUsecase(deps PoseBlendUsecaseDeps) *PoseBlendUsecase {
	return &PoseBlendUsecase{deps: deps}
}

// Blend は対話(モーダル)セッションを開始する。
// 以後の入力はBlendSession.HandleEventへ渡し、終端到達まではOutcomeRunningが返る。
func (uc *PoseBlendUsecase) Blend(request BlendRequest) (*BlendSession, error) {
	pose, err := uc.resolvePose(request.Rig, request.PoseRef, request.Pose)
	if err != nil {
		return nil, err
	}

	if request.Flipped {
		flipped, flipErr := flipPose(request.Rig, pose.value())
		if flipErr != nil {
			return nil, flipErr
		}
		pose.replaceWithOwned(flipped)
	}

	rule := releaseConfirmRule{}
	if request.ReleaseConfirm && request.OpeningEvent != nil {
		rule = releaseConfirmRule{enabled: true, eventType: request.OpeningEvent.Type}
	}

	return newBlendSession(
		uc.deps,
		request.Rig,
		pose,
		request.InitialFactor,
		rule,
		request.Frame,
		request.OpeningEvent,
	)
}

// Apply はバックアップ→ブレンド→確定を同期実行する。
// 結果には反転やクランプ反映後の実使用係数を載せる。
func (uc *PoseBlendUsecase) Apply(request ApplyRequest) (*ApplyResult, error) {
	session, err := uc.Blend(BlendRequest{
		Rig:           request.Rig,
		PoseRef:       request.PoseRef,
		Pose:          request.Pose,
		InitialFactor: request.Factor,
		Flipped:       request.Flipped,
		Frame:         request.Frame,
	})
	if err != nil {
		return &ApplyResult{Outcome: OutcomeCancelled}, err
	}

	session.state = StateConfirmed
	usedFactor := session.Factor()
	outcome, exitErr := session.exit()
	return &ApplyResult{Outcome: outcome, UsedFactor: usedFactor}, exitErr
}

// resolvePose は前提条件を検査し対象ポーズを解決する。
// 前提違反は副作用発生前にErrNotApplicableで拒否する。
func (uc *PoseBlendUsecase) resolvePose(
	rig *model.Rig,
	poseRef string,
	directPose *model.TargetPose,
) (poseHolder, error) {
	if rig == nil || rig.Bones == nil || !rig.PoseEditing {
		return poseHolder{}, fmt.Errorf("ポーズ編集中のリグが必要です: %w", merrors.ErrNotApplicable)
	}

	if directPose != nil {
		return newBorrowedPose(directPose), nil
	}

	if strings.TrimSpace(poseRef) == "" || uc.deps.PoseSource == nil {
		return poseHolder{}, fmt.Errorf("ポーズ参照が解決できません: %w", merrors.ErrNotApplicable)
	}

	pose, err := uc.deps.PoseSource.ResolvePose(poseRef)
	if err != nil {
		return poseHolder{}, err
	}
	if pose == nil {
		return poseHolder{}, fmt.Errorf("ポーズ解決結果が空です: %w", merrors.ErrAssetNotFound)
	}
	return newBorrowedPose(pose), nil
}
