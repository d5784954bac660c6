// 指示: miu200521358
package model

// PoseChannel は対象ポーズ内の1ボーン分の変換を表す。
type PoseChannel struct {
	BoneName  string
	Transform BoneTransform
}

// TargetPose はブレンド対象の保存済みポーズを表す。
// セッションからは不変として扱う。
type TargetPose struct {
	Name     string
	Channels []PoseChannel
}

// BoneNames はチャンネル順のボーン名一覧を返す。
func (p *TargetPose) BoneNames() []string {
	names := make([]string, 0, len(p.Channels))
	for _, channel := range p.Channels {
		names = append(names, channel.BoneName)
	}
	return names
}

// ChannelByBoneName は指定ボーン名のチャンネルを返す。
func (p *TargetPose) ChannelByBoneName(name string) (PoseChannel, bool) {
	for _, channel := range p.Channels {
		if channel.BoneName == name {
			return channel, true
		}
	}
	return PoseChannel{}, false
}
