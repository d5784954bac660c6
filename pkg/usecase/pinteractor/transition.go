// 指示: miu200521358
package pinteractor

// SessionState はセッション状態を表す。
type SessionState string

const (
	// StateInit はポーズ未適用の初期状態を表す。
	StateInit SessionState = "init"
	// StateBlending は現在↔対象の補間を表示中の状態を表す。
	StateBlending SessionState = "blending"
	// StateShowingOriginal はバックアップのみを表示中の状態を表す。
	StateShowingOriginal SessionState = "showing_original"
	// StateConfirmed はブレンド結果を保持する終端状態を表す。
	StateConfirmed SessionState = "confirmed"
	// StateCancelled はバックアップを復元する終端状態を表す。
	StateCancelled SessionState = "cancelled"
)

// IsTerminal は終端状態か返す。
func (s SessionState) IsTerminal() bool {
	return s == StateConfirmed || s == StateCancelled
}

// sessionEffect は状態遷移に伴う副作用を表す。
type sessionEffect string

const (
	effectNone          sessionEffect = "none"
	effectUpdateFactor  sessionEffect = "update_factor"
	effectToggleDisplay sessionEffect = "toggle_display"
	effectFlip          sessionEffect = "flip"
	effectConfirm       sessionEffect = "confirm"
	effectCancel        sessionEffect = "cancel"
)

// releaseConfirmRule は「開始入力の解放で確定する」設定を表す。
type releaseConfirmRule struct {
	enabled   bool
	eventType InputEventType
}

// transition は状態と入力から次状態と副作用を決める純粋関数。
// 終端状態は全入力を無視する。解放確定ルールは通常の割り当てより優先される。
func transition(state SessionState, event InputEvent, rule releaseConfirmRule) (SessionState, sessionEffect) {
	if state.IsTerminal() {
		return state, effectNone
	}

	if event.Type == EventMouseMove {
		return state, effectUpdateFactor
	}

	if rule.enabled && event.Type == rule.eventType && event.Value == EventValueRelease {
		return StateConfirmed, effectConfirm
	}

	// 解放イベントで二重動作しないよう、通常割り当ては押下のみ受け付ける。
	if event.Value != EventValuePress && event.Value != EventValueNothing {
		return state, effectNone
	}

	switch event.Type {
	case EventKeyEscape, EventRightMouse:
		return StateCancelled, effectCancel

	case EventLeftMouse, EventKeyReturn, EventKeySpace:
		return StateConfirmed, effectConfirm

	case EventKeyTab:
		switch state {
		case StateBlending:
			return StateShowingOriginal, effectToggleDisplay
		case StateShowingOriginal:
			return StateBlending, effectToggleDisplay
		}
		return state, effectNone

	case EventKeyF:
		if state == StateBlending || state == StateShowingOriginal {
			return state, effectFlip
		}
		return state, effectNone
	}

	return state, effectNone
}
