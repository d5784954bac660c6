// 指示: miu200521358
// Package moutput はポーズブレンドが依存する外部協調者の契約を提供する。
package moutput

import "github.com/miu200521358/mu_poseblend/pkg/domain/model"

// IPoseSource はポーズ資産参照の解決契約を表す。
// 返されるポーズは借用であり、セッション側で破棄してはならない。
type IPoseSource interface {
	// ResolvePose は資産参照から対象ポーズを解決する。
	ResolvePose(ref string) (*model.TargetPose, error)
}

// IAutoKeyRecorder は自動キーフレーム記録の契約を表す。
type IAutoKeyRecorder interface {
	// CanAutoKey は現在の文脈で自動記録が可能か判定する。
	CanAutoKey(rig *model.Rig) bool
	// RecordKeyframes は指定ボーンの現在変換を指定時刻で記録する。
	RecordKeyframes(rig *model.Rig, boneNames []string, frame float64)
}

// ISceneEvaluator はシーン再評価エンジンへの通知契約を表す。セッションは発信のみ行う。
type ISceneEvaluator interface {
	// TagGeometryUpdate はリグの空間データ再評価が必要になったことを通知する。
	TagGeometryUpdate(rig *model.Rig)
	// NotifyPoseChanged はポーズ変更を観測者へ通知する。
	NotifyPoseChanged(rig *model.Rig)
	// NotifySessionEnded は対話セッション終了を観測者へ通知する。
	NotifySessionEnded(rig *model.Rig)
}

// IStatusReporter は状態表示テキストの通知契約を表す。表示専用でありセッション状態を持たない。
type IStatusReporter interface {
	// ReportStatus は状態テキストを通知する。
	ReportStatus(text string)
	// ClearStatus は状態テキスト表示を解除する。
	ClearStatus()
}
