// 指示: miu200521358
package model

import "strings"

// sideSeparators は左右トークンの区切りとして認識する文字集合。
const sideSeparators = "._-"

// sideWordPairs は左右対応する単語ペア(表記ゆれ込み)。
var sideWordPairs = [][2]string{
	{"左", "右"},
	{"Left", "Right"},
	{"left", "right"},
	{"LEFT", "RIGHT"},
}

// sideLetterPairs は左右対応する1文字トークンペア。
var sideLetterPairs = [][2]string{
	{"L", "R"},
	{"l", "r"},
}

// MirrorBoneName は左右対称の対応ボーン名を返す。
// 左/右プレフィックス、Left/Right系の接頭・接尾辞、区切り付きのL/Rトークンを
// 認識し、どの規則にも該当しない名前はそのまま返す。
func MirrorBoneName(name string) string {
	for _, pair := range sideWordPairs {
		if mirrored, ok := swapAffix(name, pair[0], pair[1]); ok {
			return mirrored
		}
		if mirrored, ok := swapAffix(name, pair[1], pair[0]); ok {
			return mirrored
		}
	}
	for _, pair := range sideLetterPairs {
		if mirrored, ok := swapLetterAffix(name, pair[0], pair[1]); ok {
			return mirrored
		}
		if mirrored, ok := swapLetterAffix(name, pair[1], pair[0]); ok {
			return mirrored
		}
	}
	return name
}

// swapAffix は接頭辞または接尾辞の単語を入れ替える。
func swapAffix(name string, from string, to string) (string, bool) {
	if strings.HasPrefix(name, from) {
		return to + strings.TrimPrefix(name, from), true
	}
	if strings.HasSuffix(name, from) {
		return strings.TrimSuffix(name, from) + to, true
	}
	return name, false
}

// swapLetterAffix は区切り文字を伴う1文字トークンを入れ替える。
// 例: "L_arm"⇄"R_arm"、"arm.L"⇄"arm.R"。
func swapLetterAffix(name string, from string, to string) (string, bool) {
	if len(name) >= len(from)+1 &&
		strings.HasPrefix(name, from) &&
		strings.ContainsAny(name[len(from):len(from)+1], sideSeparators) {
		return to + name[len(from):], true
	}
	if len(name) >= len(from)+1 &&
		strings.HasSuffix(name, from) &&
		strings.ContainsAny(name[len(name)-len(from)-1:len(name)-len(from)], sideSeparators) {
		return name[:len(name)-len(from)] + to, true
	}
	return name, false
}
