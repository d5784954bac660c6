// 指示: miu200521358
package pinteractor

import (
	"fmt"

	"github.com/miu200521358/mu_poseblend/pkg/domain/mmath"
)

const (
	sliderFactorMin = 0.0
	sliderFactorMax = 1.0
	// sliderSpanUnits は係数0→1に対応する水平移動量。
	sliderSpanUnits = 300.0
)

// factorSlider はポインタ移動をブレンド係数へ写像する。
// セッション状態からは独立した増分状態のみを持つ。
type factorSlider struct {
	anchorX      float64
	anchorFactor float64
	factor       float64
}

// newFactorSlider は開始イベント位置を基準点としてスライダーを生成する。
func newFactorSlider(event InputEvent, initialFactor float64) *factorSlider {
	factor := mmath.Clamped(initialFactor, sliderFactorMin, sliderFactorMax)
	return &factorSlider{
		anchorX:      event.X,
		anchorFactor: factor,
		factor:       factor,
	}
}

// Update はイベントを処理し現在係数を返す。範囲外はハードクランプする。
func (s *factorSlider) Update(event InputEvent) float64 {
	if event.Type == EventMouseMove {
		s.factor = mmath.Clamped(
			s.anchorFactor+((event.X-s.anchorX)/sliderSpanUnits),
			sliderFactorMin,
			sliderFactorMax,
		)
	}
	return s.factor
}

// Factor は現在係数を返す。
func (s *factorSlider) Factor() float64 {
	return s.factor
}

// StatusFragment は表示用の係数テキストを返す。表示専用データであり状態ではない。
func (s *factorSlider) StatusFragment() string {
	percent := factorPercent(s.factor)
	hint := statusIncreaseHint
	if s.factor >= sliderFactorMax {
		hint = statusDecreaseHint
	}
	return fmt.Sprintf(statusFactorFormat+" (%s)", percent, hint)
}
