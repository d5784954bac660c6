// 指示: miu200521358
package pinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_poseblend/pkg/domain/mmath"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model/merrors"
)

// poseHolder は対象ポーズの借用/所有を区別して保持する。
// 所有ポーズの解放はここへ集約し、二重解放や解放後参照を防ぐ。
type poseHolder struct {
	pose  *model.TargetPose
	owned bool
}

// newBorrowedPose は外部ストア所有のポーズを借用として保持する。
func newBorrowedPose(pose *model.TargetPose) poseHolder {
	return poseHolder{pose: pose}
}

// replaceWithOwned は保持ポーズを所有ポーズへ差し替える。
// 以前のポーズは所有していた場合ここで手放す。
func (h *poseHolder) replaceWithOwned(pose *model.TargetPose) {
	h.pose = pose
	h.owned = true
}

// value は保持中のポーズを返す。
func (h *poseHolder) value() *model.TargetPose {
	return h.pose
}

// release は所有ポーズを解放する。借用ポーズには触れない。
func (h *poseHolder) release() {
	if h.owned {
		h.pose = nil
	}
	h.owned = false
}

// BlendSession は対話的ポーズブレンドの1セッションを表す。
// 入力イベントは1件ずつ完結処理され、終端状態到達後の入力は無視される。
type BlendSession struct {
	rig    *model.Rig
	pose   poseHolder
	backup *PoseBackup

	state          SessionState
	factor         float64
	needsRedraw    bool
	releaseConfirm releaseConfirmRule
	slider         *factorSlider
	frame          float64

	unlockEvaluation func()
	deps             PoseBlendUsecaseDeps
	finished         bool
}

// newBlendSession はバックアップ取得・リグロック・初回適用まで済ませたセッションを返す。
// 初期化途中で失敗した場合も取り消し経路で後始末してから誤りを返す。
func newBlendSession(
	deps PoseBlendUsecaseDeps,
	rig *model.Rig,
	pose poseHolder,
	initialFactor float64,
	rule releaseConfirmRule,
	frame float64,
	openingEvent *InputEvent,
) (*BlendSession, error) {
	session := &BlendSession{
		rig:            rig,
		pose:           pose,
		state:          StateInit,
		factor:         mmath.Clamped(initialFactor, sliderFactorMin, sliderFactorMax),
		needsRedraw:    true,
		releaseConfirm: rule,
		frame:          frame,
		deps:           deps,
	}
	if openingEvent != nil {
		session.slider = newFactorSlider(*openingEvent, session.factor)
		session.factor = session.slider.Factor()
	}

	session.unlockEvaluation = rig.LockEvaluation()
	session.createBackup()

	if err := session.refresh(); err != nil {
		session.state = StateCancelled
		session.exit()
		return nil, err
	}
	return session, nil
}

// HandleEvent は1入力イベントを処理し、現在のセッション結果を返す。
func (s *BlendSession) HandleEvent(event InputEvent) (Outcome, error) {
	if s.finished || s.state.IsTerminal() {
		return s.outcome(), nil
	}

	if s.slider != nil {
		s.setFactor(s.slider.Update(event))
	}

	nextState, effect := transition(s.state, event, s.releaseConfirm)
	s.state = nextState

	switch effect {
	case effectToggleDisplay:
		s.needsRedraw = true
	case effectFlip:
		if err := s.flipCurrentPose(); err != nil {
			s.state = StateCancelled
			outcome, _ := s.exit()
			return outcome, err
		}
	}

	if s.state.IsTerminal() {
		return s.exit()
	}

	if err := s.refresh(); err != nil {
		s.state = StateCancelled
		outcome, _ := s.exit()
		return outcome, err
	}
	return OutcomeRunning, nil
}

// Abort はホスト都合(終了処理など)でセッションを取り消す。
func (s *BlendSession) Abort() {
	if s.finished || s.state.IsTerminal() {
		return
	}
	s.state = StateCancelled
	s.exit()
}

// State は現在状態を返す。
func (s *BlendSession) State() SessionState {
	return s.state
}

// Factor は現在のブレンド係数を返す。
func (s *BlendSession) Factor() float64 {
	return s.factor
}

// StatusText は状態表示用テキストを返す。
func (s *BlendSession) StatusText() string {
	toggleHint := statusShowOriginalHint
	if s.state == StateShowingOriginal {
		toggleHint = statusShowBlendedHint
	}
	fragment := ""
	if s.slider != nil {
		fragment = s.slider.StatusFragment()
	} else {
		fragment = fmt.Sprintf(statusFactorFormat, factorPercent(s.factor))
	}
	return fmt.Sprintf("%s | %s | %s", statusFlipHint, toggleHint, fragment)
}

// setFactor は係数をクランプして保存し再描画を要求する。
func (s *BlendSession) setFactor(factor float64) {
	s.factor = mmath.Clamped(factor, sliderFactorMin, sliderFactorMax)
	s.needsRedraw = true
}

// createBackup はバックアップを取り直し、初期状態ならブレンド状態へ進める。
// 対象ボーンが無い場合は空バックアップのまま継続し、状態表示で知らせる。
func (s *BlendSession) createBackup() {
	backup, err := newPoseBackup(s.rig, s.pose.value())
	s.backup = backup
	if err != nil {
		s.reportStatusText(statusNoAffectedBones)
	}
	if s.state == StateInit {
		s.state = StateBlending
	}
}

// flipCurrentPose は対象ポーズを左右反転へ差し替える。
// 反転デルタの合成を避けるため、差し替え前にバックアップを復元してから
// バックアップを取り直す(鏡映で対象ボーン集合が変わり得る)。
func (s *BlendSession) flipCurrentPose() error {
	flipped, err := flipPose(s.rig, s.pose.value())
	if err != nil {
		return err
	}

	s.backup.Restore(s.rig)
	s.pose.replaceWithOwned(flipped)
	s.needsRedraw = true
	s.createBackup()
	return nil
}

// refresh は再描画要求がある場合に状態表示とブレンド適用を行う。
func (s *BlendSession) refresh() error {
	if !s.needsRedraw {
		return nil
	}
	s.reportStatusText(s.StatusText())
	return s.applyBlend()
}

// applyBlend はバックアップ復元の上、ブレンド状態なら補間結果をリグへ書き込む。
// バックアップ未作成での呼び出しは内部異常でありErrInvalidStateを返す。
func (s *BlendSession) applyBlend() error {
	if !s.needsRedraw {
		return nil
	}
	s.needsRedraw = false

	if s.backup == nil {
		return fmt.Errorf("バックアップ未作成でブレンド適用が呼ばれました: %w", merrors.ErrInvalidState)
	}

	// 元ポーズ表示・ブレンド表示のどちらでも、まず基準状態へ戻す。
	s.backup.Restore(s.rig)
	s.tagRigUpdated()

	if s.state != StateBlending {
		return nil
	}
	blendChannelsOntoRig(s.rig, s.pose.value(), s.backup, s.factor)
	return nil
}

// exit は後始末と資源解放を行い最終結果を返す。何度呼ばれても後始末は一度だけ走る。
func (s *BlendSession) exit() (Outcome, error) {
	if s.finished {
		return s.outcome(), nil
	}
	err := s.cleanup()
	s.free()
	return s.outcome(), err
}

// cleanup は終端状態に応じた確定/復元と、経路共通の解放処理を行う。
func (s *BlendSession) cleanup() error {
	if s.deps.StatusReporter != nil {
		s.deps.StatusReporter.ClearStatus()
	}
	if s.unlockEvaluation != nil {
		s.unlockEvaluation()
		s.unlockEvaluation = nil
	}

	var err error
	switch s.state {
	case StateConfirmed:
		s.keytagPose()

	case StateCancelled:
		s.backup.Restore(s.rig)

	default:
		// 非終端状態からの到達は内部異常。取り消し扱いで復元を試みる。
		err = fmt.Errorf("後始末が非終端状態で呼ばれました: %w", merrors.ErrInvalidState)
		s.state = StateCancelled
		s.backup.Restore(s.rig)
	}

	if s.deps.SceneEvaluator != nil {
		s.deps.SceneEvaluator.TagGeometryUpdate(s.rig)
		s.deps.SceneEvaluator.NotifySessionEnded(s.rig)
	}
	return err
}

// free はセッション保有資源を解放する。
func (s *BlendSession) free() {
	s.pose.release()
	s.backup = nil
	s.slider = nil
	s.finished = true
}

// keytagPose は確定時の自動キーフレーム記録を外部協調者へ依頼する。
// バックアップが選択範囲由来なら記録対象も同じ範囲へ絞る。
func (s *BlendSession) keytagPose() {
	if s.deps.AutoKey == nil || !s.deps.AutoKey.CanAutoKey(s.rig) {
		return
	}
	pose := s.pose.value()
	if pose == nil || s.rig == nil || s.rig.Bones == nil {
		return
	}

	names := make([]string, 0, len(pose.Channels))
	for _, channel := range pose.Channels {
		bone, err := s.rig.Bones.GetByName(channel.BoneName)
		if err != nil || bone == nil {
			continue
		}
		if s.backup.IsSelectionRelevant() && !bone.Selected {
			continue
		}
		names = append(names, bone.Name())
	}
	if len(names) == 0 {
		return
	}
	s.deps.AutoKey.RecordKeyframes(s.rig, names, s.frame)
}

// tagRigUpdated はリグ再評価要求とポーズ変更を通知する。
func (s *BlendSession) tagRigUpdated() {
	if s.deps.SceneEvaluator == nil {
		return
	}
	s.deps.SceneEvaluator.TagGeometryUpdate(s.rig)
	s.deps.SceneEvaluator.NotifyPoseChanged(s.rig)
}

// reportStatusText は状態テキストを通知する。
func (s *BlendSession) reportStatusText(text string) {
	if s.deps.StatusReporter == nil {
		return
	}
	s.deps.StatusReporter.ReportStatus(text)
}

// outcome は現在状態に対応する結果を返す。
func (s *BlendSession) outcome() Outcome {
	switch s.state {
	case StateConfirmed:
		return OutcomeFinished
	case StateCancelled:
		return OutcomeCancelled
	}
	return OutcomeRunning
}
