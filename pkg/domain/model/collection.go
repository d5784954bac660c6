// 指示: miu200521358
package model

import "fmt"

// BoneCollection は名前引き可能なボーン集合を表す。
type BoneCollection struct {
	bones       []*Bone
	indexByName map[string]int
}

// NewBoneCollection は空のボーン集合を生成する。
func NewBoneCollection() *BoneCollection {
	return &BoneCollection{
		bones:       []*Bone{},
		indexByName: map[string]int{},
	}
}

// Append はボーンを末尾へ登録する。同名ボーンは登録できない。
func (c *BoneCollection) Append(bone *Bone) error {
	if bone == nil {
		return fmt.Errorf("登録対象ボーンが未設定です")
	}
	if _, exists := c.indexByName[bone.name]; exists {
		return fmt.Errorf("同名ボーンが既に存在します: %s", bone.name)
	}
	bone.index = len(c.bones)
	c.bones = append(c.bones, bone)
	c.indexByName[bone.name] = bone.index
	return nil
}

// Get はindex指定でボーンを返す。
func (c *BoneCollection) Get(index int) (*Bone, error) {
	if index < 0 || index >= len(c.bones) {
		return nil, fmt.Errorf("ボーンindexが範囲外です: %d", index)
	}
	return c.bones[index], nil
}

// GetByName は名前指定でボーンを返す。
func (c *BoneCollection) GetByName(name string) (*Bone, error) {
	index, exists := c.indexByName[name]
	if !exists {
		return nil, fmt.Errorf("ボーンが見つかりません: %s", name)
	}
	return c.bones[index], nil
}

// ContainsByName は名前のボーンが存在するか判定する。
func (c *BoneCollection) ContainsByName(name string) bool {
	_, exists := c.indexByName[name]
	return exists
}

// Values は登録順のボーン一覧を返す。
func (c *BoneCollection) Values() []*Bone {
	return c.bones
}

// Len は登録ボーン数を返す。
func (c *BoneCollection) Len() int {
	return len(c.bones)
}
