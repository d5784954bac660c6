// 指示: miu200521358
package pinteractor

import (
	"fmt"
	"testing"

	"github.com/miu200521358/mu_poseblend/pkg/domain/mmath"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model/merrors"
)

const testEpsilon = 1e-9

// newBlendTestRig builds a pose-editing rig with L_arm / R_arm / spine bones.
func newBlendTestRig(t *testing.T) *model.Rig {
	t.Helper()
	rig := model.NewRig("test_rig")
	rig.PoseEditing = true
	for _, name := range []string{"L_arm", "R_arm", "spine"} {
		if err := rig.Bones.Append(model.NewBoneByName(name)); err != nil {
			t.Fatalf("append bone failed: %v", err)
		}
	}
	return rig
}

// newArmPoseTransform returns the canonical target transform used by the scenarios.
func newArmPoseTransform() model.BoneTransform {
	transform := model.NewBoneTransform()
	transform.Translation = mmath.NewVec3(0.5, 1.5, -0.25)
	transform.Rotation = mmath.NewQuaternionFromDegrees(10, 20, 35)
	transform.Scale = mmath.NewVec3(1.0, 1.2, 1.0)
	return transform
}

// newLeftArmPose builds a target pose affecting only L_arm.
func newLeftArmPose() *model.TargetPose {
	return &model.TargetPose{
		Name: "test_pose",
		Channels: []model.PoseChannel{
			{BoneName: "L_arm", Transform: newArmPoseTransform()},
		},
	}
}

// newBothArmsPose builds a target pose affecting L_arm and R_arm.
func newBothArmsPose() *model.TargetPose {
	left := newArmPoseTransform()
	right := mirrorTransform(left)
	return &model.TargetPose{
		Name: "test_pose_both",
		Channels: []model.PoseChannel{
			{BoneName: "L_arm", Transform: left},
			{BoneName: "R_arm", Transform: right},
		},
	}
}

// mustGetBone fetches a bone by name or fails the test.
func mustGetBone(t *testing.T, rig *model.Rig, name string) *model.Bone {
	t.Helper()
	bone, err := rig.Bones.GetByName(name)
	if err != nil {
		t.Fatalf("bone %s not found: %v", name, err)
	}
	return bone
}

// recordingAutoKey is an IAutoKeyRecorder stub capturing every call.
type recordingAutoKey struct {
	canKey bool
	calls  [][]string
	frames []float64
}

func (a *recordingAutoKey) CanAutoKey(rig *model.Rig) bool {
	return a.canKey
}

func (a *recordingAutoKey) RecordKeyframes(rig *model.Rig, boneNames []string, frame float64) {
	recorded := append([]string(nil), boneNames...)
	a.calls = append(a.calls, recorded)
	a.frames = append(a.frames, frame)
}

// countingEvaluator is an ISceneEvaluator stub counting notifications.
type countingEvaluator struct {
	geometryTags int
	poseChanges  int
	sessionEnds  int
}

func (e *countingEvaluator) TagGeometryUpdate(rig *model.Rig) {
	e.geometryTags++
}

func (e *countingEvaluator) NotifyPoseChanged(rig *model.Rig) {
	e.poseChanges++
}

func (e *countingEvaluator) NotifySessionEnded(rig *model.Rig) {
	e.sessionEnds++
}

// capturingReporter is an IStatusReporter stub capturing status texts.
type capturingReporter struct {
	statuses []string
	cleared  int
}

func (r *capturingReporter) ReportStatus(text string) {
	r.statuses = append(r.statuses, text)
}

func (r *capturingReporter) ClearStatus() {
	r.cleared++
}

// stubPoseSource is an IPoseSource stub backed by a map.
type stubPoseSource struct {
	poses map[string]*model.TargetPose
	err   error
}

func (s *stubPoseSource) ResolvePose(ref string) (*model.TargetPose, error) {
	if s.err != nil {
		return nil, s.err
	}
	pose, exists := s.poses[ref]
	if !exists {
		return nil, fmt.Errorf("stub pose missing (%s): %w", ref, merrors.ErrAssetNotFound)
	}
	return pose, nil
}

// testPorts bundles the stub collaborators for a session.
type testPorts struct {
	autoKey   *recordingAutoKey
	evaluator *countingEvaluator
	reporter  *capturingReporter
}

// newTestDeps builds usecase deps wired to fresh stubs.
func newTestDeps() (PoseBlendUsecaseDeps, *testPorts) {
	ports := &testPorts{
		autoKey:   &recordingAutoKey{canKey: true},
		evaluator: &countingEvaluator{},
		reporter:  &capturingReporter{},
	}
	return PoseBlendUsecaseDeps{
		AutoKey:        ports.autoKey,
		SceneEvaluator: ports.evaluator,
		StatusReporter: ports.reporter,
	}, ports
}

// moveEvent builds a pointer move event at the given X position.
func moveEvent(x float64) InputEvent {
	return InputEvent{Type: EventMouseMove, Value: EventValueNothing, X: x}
}

// pressEvent builds a press event of the given type.
func pressEvent(eventType InputEventType) InputEvent {
	return InputEvent{Type: eventType, Value: EventValuePress}
}
