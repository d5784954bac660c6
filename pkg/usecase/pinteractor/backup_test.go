// 指示: miu200521358
package pinteractor

import (
	"errors"
	"testing"

	"github.com/miu200521358/mu_poseblend/pkg/domain/mmath"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model/merrors"
)

func TestNewPoseBackupSavesReferencedBones(t *testing.T) {
	rig := newBlendTestRig(t)
	pose := newBothArmsPose()

	backup, err := newPoseBackup(rig, pose)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backup.IsSelectionRelevant() {
		t.Error("backup should not be selection scoped without selected bones")
	}
	if backup.Len() != 2 {
		t.Errorf("saved bone count mismatch: got %d, want 2", backup.Len())
	}
	for _, name := range []string{"L_arm", "R_arm"} {
		if _, exists := backup.SavedTransform(name); !exists {
			t.Errorf("backup should contain %s", name)
		}
	}
	if _, exists := backup.SavedTransform("spine"); exists {
		t.Error("backup should not contain bones the pose does not reference")
	}
}

func TestNewPoseBackupSelectionScoped(t *testing.T) {
	rig := newBlendTestRig(t)
	mustGetBone(t, rig, "L_arm").Selected = true
	pose := newBothArmsPose()

	backup, err := newPoseBackup(rig, pose)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !backup.IsSelectionRelevant() {
		t.Error("backup should be selection scoped")
	}
	if backup.Len() != 1 {
		t.Errorf("saved bone count mismatch: got %d, want 1", backup.Len())
	}
	if _, exists := backup.SavedTransform("R_arm"); exists {
		t.Error("unselected bone should not be saved")
	}
}

func TestNewPoseBackupNoAffectedBones(t *testing.T) {
	rig := newBlendTestRig(t)
	pose := &model.TargetPose{
		Name: "unmatched",
		Channels: []model.PoseChannel{
			{BoneName: "tail", Transform: newArmPoseTransform()},
		},
	}

	backup, err := newPoseBackup(rig, pose)
	if !errors.Is(err, merrors.ErrNoAffectedBones) {
		t.Fatalf("expected ErrNoAffectedBones, got %v", err)
	}
	if backup == nil {
		t.Fatal("empty backup should still be usable")
	}
	if backup.Len() != 0 {
		t.Errorf("empty backup should save nothing, got %d", backup.Len())
	}

	if _, err := newPoseBackup(rig, nil); !errors.Is(err, merrors.ErrNoAffectedBones) {
		t.Fatalf("nil pose should report ErrNoAffectedBones, got %v", err)
	}
}

func TestPoseBackupRestoreIdempotent(t *testing.T) {
	rig := newBlendTestRig(t)
	pose := newLeftArmPose()
	arm := mustGetBone(t, rig, "L_arm")
	original := arm.Transform

	backup, err := newPoseBackup(rig, pose)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	arm.Transform = newArmPoseTransform()
	backup.Restore(rig)
	if !arm.Transform.NearEquals(original, testEpsilon) {
		t.Error("first restore should bring the bone back to the snapshot")
	}

	arm.Transform.Translation = mmath.NewVec3(9, 9, 9)
	backup.Restore(rig)
	if !arm.Transform.NearEquals(original, testEpsilon) {
		t.Error("repeated restore should keep producing the snapshot")
	}
}

func TestPoseBackupRestoreSkipsMissingBones(t *testing.T) {
	rig := newBlendTestRig(t)
	backup, err := newPoseBackup(rig, newLeftArmPose())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := model.NewRig("other_rig")
	if err := other.Bones.Append(model.NewBoneByName("spine")); err != nil {
		t.Fatalf("append bone failed: %v", err)
	}
	spine, _ := other.Bones.GetByName("spine")
	before := spine.Transform

	backup.Restore(other)
	if !spine.Transform.NearEquals(before, testEpsilon) {
		t.Error("restore should not touch bones outside the snapshot")
	}
}
