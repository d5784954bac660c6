// 指示: miu200521358
// 対話ブレンドセッションを台本イベントで通しで動かす手動確認用ハーネス。
package main

import (
	"fmt"
	"os"

	"github.com/miu200521358/mu_poseblend/pkg/domain/mmath"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/miu200521358/mu_poseblend/pkg/usecase/pinteractor"
)

// scriptedEvents はセッションへ流す台本イベント一覧。
var scriptedEvents = []pinteractor.InputEvent{
	{Type: pinteractor.EventMouseMove, Value: pinteractor.EventValueNothing, X: 90},
	{Type: pinteractor.EventMouseMove, Value: pinteractor.EventValueNothing, X: 180},
	{Type: pinteractor.EventKeyTab, Value: pinteractor.EventValuePress, X: 180},
	{Type: pinteractor.EventKeyTab, Value: pinteractor.EventValuePress, X: 180},
	{Type: pinteractor.EventKeyF, Value: pinteractor.EventValuePress, X: 180},
	{Type: pinteractor.EventMouseMove, Value: pinteractor.EventValueNothing, X: 300},
	{Type: pinteractor.EventKeyReturn, Value: pinteractor.EventValuePress, X: 300},
}

// stdoutReporter は状態テキストを標準出力へ流す。
type stdoutReporter struct{}

// ReportStatus は状態テキストを出力する。
func (r *stdoutReporter) ReportStatus(text string) {
	fmt.Printf("[status] %s\n", text)
}

// ClearStatus は状態表示解除を出力する。
func (r *stdoutReporter) ClearStatus() {
	fmt.Println("[status] (解除)")
}

// stdoutEvaluator は再評価通知を標準出力へ流す。
type stdoutEvaluator struct{}

// TagGeometryUpdate は再評価要求を出力する。
func (e *stdoutEvaluator) TagGeometryUpdate(rig *model.Rig) {
	fmt.Printf("[scene] 再評価要求: %s\n", rig.Name)
}

// NotifyPoseChanged はポーズ変更通知を出力する。
func (e *stdoutEvaluator) NotifyPoseChanged(rig *model.Rig) {
	fmt.Printf("[scene] ポーズ変更: %s\n", rig.Name)
}

// NotifySessionEnded はセッション終了通知を出力する。
func (e *stdoutEvaluator) NotifySessionEnded(rig *model.Rig) {
	fmt.Printf("[scene] セッション終了: %s\n", rig.Name)
}

// main は台本イベントでモーダルセッションを1周させる。
func main() {
	rig := buildHarnessRig()
	pose := buildHarnessPose()

	usecase := pinteractor.NewPoseBlendUsecase(pinteractor.PoseBlendUsecaseDeps{
		SceneEvaluator: &stdoutEvaluator{},
		StatusReporter: &stdoutReporter{},
	})

	session, err := usecase.Blend(pinteractor.BlendRequest{
		Rig:          rig,
		Pose:         pose,
		OpeningEvent: &pinteractor.InputEvent{Type: pinteractor.EventMouseMove, X: 0},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, event := range scriptedEvents {
		outcome, err := session.HandleEvent(event)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("[event] %s -> state=%s factor=%.2f outcome=%s\n",
			event.Type, session.State(), session.Factor(), outcome)
		if outcome != pinteractor.OutcomeRunning {
			break
		}
	}

	for _, bone := range rig.Bones.Values() {
		fmt.Printf("[rig] %s rotation=(%.3f, %.3f, %.3f, %.3f)\n",
			bone.Name(),
			bone.Transform.Rotation.W,
			bone.Transform.Rotation.X(),
			bone.Transform.Rotation.Y(),
			bone.Transform.Rotation.Z(),
		)
	}
}

// buildHarnessRig は確認用の左右腕リグを作る。
func buildHarnessRig() *model.Rig {
	rig := model.NewRig("harness_rig")
	rig.PoseEditing = true
	for _, name := range []string{"左腕", "右腕"} {
		if err := rig.Bones.Append(model.NewBoneByName(name)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	return rig
}

// buildHarnessPose は左腕だけを回す確認用ポーズを作る。
func buildHarnessPose() *model.TargetPose {
	transform := model.NewBoneTransform()
	transform.Rotation = mmath.NewQuaternionFromDegrees(0, 0, 35)
	return &model.TargetPose{
		Name: "harness_pose",
		Channels: []model.PoseChannel{
			{BoneName: "左腕", Transform: transform},
		},
	}
}
