// 指示: miu200521358
// Package io_rig はリグ/ポーズ資産のJSON入出力を提供する。
package io_rig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_poseblend/pkg/domain/mmath"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model"
	"github.com/miu200521358/mu_poseblend/pkg/domain/model/merrors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const rigFileMode = 0o644

// rigFile はリグJSONの転送形を表す。
type rigFile struct {
	Name        string     `json:"name"`
	PoseEditing bool       `json:"poseEditing"`
	Bones       []boneFile `json:"bones"`
}

// boneFile はボーンJSONの転送形を表す。
type boneFile struct {
	Name        string     `json:"name"`
	Parent      int        `json:"parent"`
	Selected    bool       `json:"selected"`
	Translation *[3]float64 `json:"translation,omitempty"`
	Rotation    *[4]float64 `json:"rotation,omitempty"`
	Scale       *[3]float64 `json:"scale,omitempty"`
}

// poseFile はポーズ資産JSONの転送形を表す。
type poseFile struct {
	Name     string        `json:"name"`
	Channels []channelFile `json:"channels"`
}

// channelFile はポーズチャンネルJSONの転送形を表す。
type channelFile struct {
	Bone        string      `json:"bone"`
	Translation *[3]float64 `json:"translation,omitempty"`
	Rotation    *[4]float64 `json:"rotation,omitempty"`
	Scale       *[3]float64 `json:"scale,omitempty"`
}

// RigRepository はリグ/ポーズJSONの読み書き契約を表す。
// moutput.IPoseSourceとしても機能し、ファイルパスを資産参照として解決する。
type RigRepository struct {
	rigSchema  *jsonschema.Schema
	poseSchema *jsonschema.Schema
}

// NewRigRepository はRigRepositoryを生成する。
func NewRigRepository() *RigRepository {
	return &RigRepository{
		rigSchema:  jsonschema.MustCompileString("rig.schema.json", rigSchemaJSON),
		poseSchema: jsonschema.MustCompileString("pose.schema.json", poseSchemaJSON),
	}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *RigRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load はリグJSONを読み込む。
func (r *RigRepository) Load(path string) (*model.Rig, error) {
	raw, err := r.readValidated(path, r.rigSchema)
	if err != nil {
		return nil, err
	}

	file := rigFile{}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("リグJSONの解釈に失敗しました: %w", err)
	}

	rig := model.NewRig(file.Name)
	rig.PoseEditing = file.PoseEditing
	for _, boneData := range file.Bones {
		bone := model.NewBoneByName(boneData.Name)
		bone.ParentIndex = boneData.Parent
		bone.Selected = boneData.Selected
		bone.Transform = toBoneTransform(boneData.Translation, boneData.Rotation, boneData.Scale)
		if err := rig.Bones.Append(bone); err != nil {
			return nil, fmt.Errorf("リグ構築に失敗しました: %w", err)
		}
	}
	return rig, nil
}

// LoadPose はポーズ資産JSONを読み込む。
func (r *RigRepository) LoadPose(path string) (*model.TargetPose, error) {
	raw, err := r.readValidated(path, r.poseSchema)
	if err != nil {
		return nil, err
	}

	file := poseFile{}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("ポーズJSONの解釈に失敗しました: %w", err)
	}

	pose := &model.TargetPose{Name: file.Name}
	for _, channelData := range file.Channels {
		pose.Channels = append(pose.Channels, model.PoseChannel{
			BoneName:  channelData.Bone,
			Transform: toBoneTransform(channelData.Translation, channelData.Rotation, channelData.Scale),
		})
	}
	return pose, nil
}

// ResolvePose はファイルパスを資産参照としてポーズを解決する。
func (r *RigRepository) ResolvePose(ref string) (*model.TargetPose, error) {
	if !r.CanLoad(ref) {
		return nil, fmt.Errorf("ポーズ資産の拡張子が不正です(%s): %w", ref, merrors.ErrWrongAssetType)
	}
	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("ポーズ資産が開けません(%s): %w", ref, merrors.ErrAssetNotFound)
	}
	pose, err := r.LoadPose(ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), merrors.ErrWrongAssetType)
	}
	return pose, nil
}

// Save はリグをJSONとして保存する。
func (r *RigRepository) Save(path string, rig *model.Rig) error {
	if rig == nil || rig.Bones == nil {
		return fmt.Errorf("保存対象リグが未設定です")
	}

	file := rigFile{
		Name:        rig.Name,
		PoseEditing: rig.PoseEditing,
		Bones:       make([]boneFile, 0, rig.Bones.Len()),
	}
	for _, bone := range rig.Bones.Values() {
		translation := [3]float64{
			bone.Transform.Translation.X,
			bone.Transform.Translation.Y,
			bone.Transform.Translation.Z,
		}
		rotation := [4]float64{
			bone.Transform.Rotation.W,
			bone.Transform.Rotation.X(),
			bone.Transform.Rotation.Y(),
			bone.Transform.Rotation.Z(),
		}
		scale := [3]float64{
			bone.Transform.Scale.X,
			bone.Transform.Scale.Y,
			bone.Transform.Scale.Z,
		}
		file.Bones = append(file.Bones, boneFile{
			Name:        bone.Name(),
			Parent:      bone.ParentIndex,
			Selected:    bone.Selected,
			Translation: &translation,
			Rotation:    &rotation,
			Scale:       &scale,
		})
	}

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("リグJSONの生成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, raw, rigFileMode); err != nil {
		return fmt.Errorf("リグJSONの書き込みに失敗しました: %w", err)
	}
	return nil
}

// readValidated はファイルを読み込みスキーマ検証まで行う。
func (r *RigRepository) readValidated(path string, schema *jsonschema.Schema) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ファイル読み込みに失敗しました(%s): %w", path, err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("JSON解析に失敗しました(%s): %w", path, err)
	}
	if err := schema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("スキーマ検証に失敗しました(%s): %w", path, err)
	}
	return raw, nil
}

// toBoneTransform は転送形の配列からローカル変換を組み立てる。省略時は単位変換。
func toBoneTransform(translation *[3]float64, rotation *[4]float64, scale *[3]float64) model.BoneTransform {
	transform := model.NewBoneTransform()
	if translation != nil {
		transform.Translation = mmath.NewVec3(translation[0], translation[1], translation[2])
	}
	if rotation != nil {
		transform.Rotation = mmath.NewQuaternionFromValues(
			rotation[0], rotation[1], rotation[2], rotation[3],
		).Normalized()
	}
	if scale != nil {
		transform.Scale = mmath.NewVec3(scale[0], scale[1], scale[2])
	}
	return transform
}
