// 指示: miu200521358
// Package messages はCLI・ハーネス出力に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	LogLoadRigSuccess = "リグ読み込み成功: %s"
	LogApplyStart     = "ポーズ適用開始: %s"
	LogApplySuccess   = "ポーズ適用完了: 係数 %.3f"
	LogSaveSuccess    = "リグ保存成功: %s"
)
