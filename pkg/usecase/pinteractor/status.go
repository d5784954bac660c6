// 指示: miu200521358
package pinteractor

import "math"

// 状態表示テキスト一覧。
const (
	statusFlipHint         = "[F] 反転"
	statusShowOriginalHint = "[Tab] 元のポーズを表示"
	statusShowBlendedHint  = "[Tab] ブレンド結果を表示"
	statusFactorFormat     = "ブレンド %d%%"
	statusIncreaseHint     = "右ドラッグで増加"
	statusDecreaseHint     = "左ドラッグで減少"
	statusNoAffectedBones  = "対象ボーンが無いため空のバックアップで継続します"
)

// factorPercent は係数を表示用百分率へ変換する。
func factorPercent(factor float64) int {
	return int(math.Round(factor * 100))
}
