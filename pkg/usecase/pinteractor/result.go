// 指示: miu200521358
// Package pinteractor は対話的ポーズブレンドセッションのユースケースを提供する。
package pinteractor

import "github.com/miu200521358/mu_poseblend/pkg/domain/model"

// InputEventType は離散入力イベント種別を表す。
type InputEventType string

const (
	// EventMouseMove はポインタ移動イベントを表す。
	EventMouseMove InputEventType = "mouse_move"
	// EventLeftMouse は左ボタンイベントを表す。
	EventLeftMouse InputEventType = "left_mouse"
	// EventRightMouse は右ボタンイベントを表す。
	EventRightMouse InputEventType = "right_mouse"
	// EventKeyEscape はEscapeキーイベントを表す。
	EventKeyEscape InputEventType = "key_escape"
	// EventKeyReturn はReturnキーイベントを表す。
	EventKeyReturn InputEventType = "key_return"
	// EventKeySpace はSpaceキーイベントを表す。
	EventKeySpace InputEventType = "key_space"
	// EventKeyTab はTabキーイベントを表す。
	EventKeyTab InputEventType = "key_tab"
	// EventKeyF はFキーイベントを表す。
	EventKeyF InputEventType = "key_f"
)

// InputEventValue は入力イベントの押下状態を表す。
type InputEventValue string

const (
	// EventValuePress は押下を表す。
	EventValuePress InputEventValue = "press"
	// EventValueRelease は解放を表す。
	EventValueRelease InputEventValue = "release"
	// EventValueNothing は押下状態を持たないイベントを表す。
	EventValueNothing InputEventValue = "nothing"
)

// InputEvent はセッションへ届く1入力イベントを表す。
type InputEvent struct {
	Type  InputEventType
	Value InputEventValue
	X     float64
	Y     float64
}

// Outcome はセッション処理結果を表す。
type Outcome string

const (
	// OutcomeRunning はセッション継続中を表す。
	OutcomeRunning Outcome = "running"
	// OutcomeFinished は確定終了を表す。
	OutcomeFinished Outcome = "finished"
	// OutcomeCancelled は取り消し終了を表す。
	OutcomeCancelled Outcome = "cancelled"
)

// BlendRequest は対話(モーダル)ブレンド開始要求を表す。
type BlendRequest struct {
	Rig            *model.Rig
	PoseRef        string
	Pose           *model.TargetPose // 指定時はPoseRefを解決しない
	InitialFactor  float64
	Flipped        bool
	ReleaseConfirm bool
	Frame          float64
	OpeningEvent   *InputEvent
}

// ApplyRequest は一括適用要求を表す。
type ApplyRequest struct {
	Rig     *model.Rig
	PoseRef string
	Pose    *model.TargetPose
	Factor  float64
	Flipped bool
	Frame   float64
}

// ApplyResult は一括適用結果を表す。UsedFactorは実際に使われた係数。
type ApplyResult struct {
	Outcome    Outcome
	UsedFactor float64
}
