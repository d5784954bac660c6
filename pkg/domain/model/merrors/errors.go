// 指示: miu200521358
// Package merrors はポーズブレンドのエラー種別を提供する。
package merrors

import "errors"

// エラー種別一覧。
var (
	// ErrNotApplicable は有効なリグ/ポーズ文脈が無い場合を表す。副作用発生前に拒否される。
	ErrNotApplicable = errors.New("適用可能なリグ/ポーズがありません")
	// ErrAssetNotFound はポーズ資産が解決できない場合を表す。
	ErrAssetNotFound = errors.New("ポーズ資産が見つかりません")
	// ErrWrongAssetType は参照先がポーズ資産ではない場合を表す。
	ErrWrongAssetType = errors.New("ポーズ資産の種別が不正です")
	// ErrNoAffectedBones は対象ボーンが1つも無い場合を表す。セッション継続可能な非致命エラー。
	ErrNoAffectedBones = errors.New("対象ボーンがありません")
	// ErrInvalidState はバックアップ未作成でのブレンド適用など内部状態異常を表す。
	ErrInvalidState = errors.New("セッション状態が不正です")
)
