// 指示: miu200521358
package pinteractor

import "testing"

func TestTransitionTable(t *testing.T) {
	releaseRule := releaseConfirmRule{enabled: true, eventType: EventLeftMouse}

	cases := []struct {
		name       string
		state      SessionState
		event      InputEvent
		rule       releaseConfirmRule
		wantState  SessionState
		wantEffect sessionEffect
	}{
		{
			name:       "mouse move updates factor",
			state:      StateBlending,
			event:      InputEvent{Type: EventMouseMove, Value: EventValueNothing},
			wantState:  StateBlending,
			wantEffect: effectUpdateFactor,
		},
		{
			name:       "mouse move while showing original keeps display state",
			state:      StateShowingOriginal,
			event:      InputEvent{Type: EventMouseMove, Value: EventValueNothing},
			wantState:  StateShowingOriginal,
			wantEffect: effectUpdateFactor,
		},
		{
			name:       "escape cancels",
			state:      StateBlending,
			event:      InputEvent{Type: EventKeyEscape, Value: EventValuePress},
			wantState:  StateCancelled,
			wantEffect: effectCancel,
		},
		{
			name:       "right mouse cancels",
			state:      StateShowingOriginal,
			event:      InputEvent{Type: EventRightMouse, Value: EventValuePress},
			wantState:  StateCancelled,
			wantEffect: effectCancel,
		},
		{
			name:       "left mouse confirms",
			state:      StateBlending,
			event:      InputEvent{Type: EventLeftMouse, Value: EventValuePress},
			wantState:  StateConfirmed,
			wantEffect: effectConfirm,
		},
		{
			name:       "return confirms",
			state:      StateBlending,
			event:      InputEvent{Type: EventKeyReturn, Value: EventValuePress},
			wantState:  StateConfirmed,
			wantEffect: effectConfirm,
		},
		{
			name:       "space confirms",
			state:      StateShowingOriginal,
			event:      InputEvent{Type: EventKeySpace, Value: EventValuePress},
			wantState:  StateConfirmed,
			wantEffect: effectConfirm,
		},
		{
			name:       "tab toggles to original display",
			state:      StateBlending,
			event:      InputEvent{Type: EventKeyTab, Value: EventValuePress},
			wantState:  StateShowingOriginal,
			wantEffect: effectToggleDisplay,
		},
		{
			name:       "tab toggles back to blending",
			state:      StateShowingOriginal,
			event:      InputEvent{Type: EventKeyTab, Value: EventValuePress},
			wantState:  StateBlending,
			wantEffect: effectToggleDisplay,
		},
		{
			name:       "f requests flip while blending",
			state:      StateBlending,
			event:      InputEvent{Type: EventKeyF, Value: EventValuePress},
			wantState:  StateBlending,
			wantEffect: effectFlip,
		},
		{
			name:       "f requests flip while showing original",
			state:      StateShowingOriginal,
			event:      InputEvent{Type: EventKeyF, Value: EventValuePress},
			wantState:  StateShowingOriginal,
			wantEffect: effectFlip,
		},
		{
			name:       "release is ignored for ordinary bindings",
			state:      StateBlending,
			event:      InputEvent{Type: EventKeyReturn, Value: EventValueRelease},
			wantState:  StateBlending,
			wantEffect: effectNone,
		},
		{
			name:       "release of opening input confirms under the rule",
			state:      StateBlending,
			event:      InputEvent{Type: EventLeftMouse, Value: EventValueRelease},
			rule:       releaseRule,
			wantState:  StateConfirmed,
			wantEffect: effectConfirm,
		},
		{
			name:       "release of a different input does not confirm under the rule",
			state:      StateBlending,
			event:      InputEvent{Type: EventKeyReturn, Value: EventValueRelease},
			rule:       releaseRule,
			wantState:  StateBlending,
			wantEffect: effectNone,
		},
		{
			name:       "confirmed state ignores further input",
			state:      StateConfirmed,
			event:      InputEvent{Type: EventKeyEscape, Value: EventValuePress},
			wantState:  StateConfirmed,
			wantEffect: effectNone,
		},
		{
			name:       "cancelled state ignores further input",
			state:      StateCancelled,
			event:      InputEvent{Type: EventLeftMouse, Value: EventValuePress},
			wantState:  StateCancelled,
			wantEffect: effectNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotState, gotEffect := transition(tc.state, tc.event, tc.rule)
			if gotState != tc.wantState {
				t.Errorf("state mismatch: got %s, want %s", gotState, tc.wantState)
			}
			if gotEffect != tc.wantEffect {
				t.Errorf("effect mismatch: got %s, want %s", gotEffect, tc.wantEffect)
			}
		})
	}
}

func TestSessionStateIsTerminal(t *testing.T) {
	terminals := []SessionState{StateConfirmed, StateCancelled}
	for _, state := range terminals {
		if !state.IsTerminal() {
			t.Errorf("%s should be terminal", state)
		}
	}
	running := []SessionState{StateInit, StateBlending, StateShowingOriginal}
	for _, state := range running {
		if state.IsTerminal() {
			t.Errorf("%s should not be terminal", state)
		}
	}
}
