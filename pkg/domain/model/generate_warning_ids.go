// 指示: miu200521358
package model

const (
	// GenerateWarningBoneMissing は骨格に存在しないボーン参照のスキップ警告。
	GenerateWarningBoneMissing = "GenerateWarningBoneMissing"
	// GenerateWarningAnchorBoneMissing はブーリアン形状の基準ボーン不在警告。
	GenerateWarningAnchorBoneMissing = "GenerateWarningAnchorBoneMissing"
)

// GenerateWarning は生成処理の警告1件(対象ボーンと理由)を表す。
type GenerateWarning struct {
	Bone   string `json:"bone"`
	Reason string `json:"reason"`
}
