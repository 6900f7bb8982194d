// 指示: miu200521358
package model

import (
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
)

// ProfileKind は断面プロファイル種別を表す。
type ProfileKind string

const (
	// PROFILE_KIND_CIRCLE は円形断面を表す。
	PROFILE_KIND_CIRCLE ProfileKind = "circle"
	// PROFILE_KIND_SQUARE は正方形断面を表す。
	PROFILE_KIND_SQUARE ProfileKind = "square"
	// PROFILE_KIND_RECTANGLE は長方形断面を表す。
	PROFILE_KIND_RECTANGLE ProfileKind = "rectangle"
)

// Profile は断面プロファイル(種別と分割数)を表す。
type Profile struct {
	Kind     ProfileKind
	Segments int
}

// BulgePoint は膨らみ制御点を表す。Positionは[0,1]、Scaleは正値とする。
type BulgePoint struct {
	Position float64
	Scale    float64
}

// BooleanOp はブーリアン演算種別を表す。
type BooleanOp string

const (
	// BOOLEAN_OP_UNION は結合演算を表す。
	BOOLEAN_OP_UNION BooleanOp = "union"
	// BOOLEAN_OP_DIFFERENCE は差分演算を表す。
	BOOLEAN_OP_DIFFERENCE BooleanOp = "difference"
	// BOOLEAN_OP_INTERSECT は交差演算を表す。
	BOOLEAN_OP_INTERSECT BooleanOp = "intersect"
)

// AttachmentKind は付属ジオメトリ種別を表す。
type AttachmentKind string

const (
	// ATTACHMENT_KIND_PRIMITIVE はプリミティブ付属を表す。
	ATTACHMENT_KIND_PRIMITIVE AttachmentKind = "primitive"
	// ATTACHMENT_KIND_EXTRUDE は押し出し付属を表す。
	ATTACHMENT_KIND_EXTRUDE AttachmentKind = "extrude"
	// ATTACHMENT_KIND_ASSET は外部アセット付属を表す。
	ATTACHMENT_KIND_ASSET AttachmentKind = "asset"
)

// PrimitiveAttachment はプリミティブ付属の内容を表す。
// Dimensions はボーン相対寸法の生値(スカラー/ペア/absolute指定)を保持する。
type PrimitiveAttachment struct {
	PrimitiveKind   string
	Dimensions      any
	Offset          mmath.Vec3
	RotationDegrees *mmath.Vec3
}

// ExtrudeAttachment は押し出し付属の内容を表す。
// Start/End はボーン相対座標、Radius はボーン相対寸法の生値を保持する。
type ExtrudeAttachment struct {
	Start   mmath.Vec3
	End     mmath.Vec3
	Profile Profile
	Radius  any
	Taper   float64
}

// AssetAttachment は外部アセット付属の内容を表す。
type AssetAttachment struct {
	Path            string
	Offset          mmath.Vec3
	Scale           float64
	RotationDegrees *mmath.Vec3
}

// AttachmentSpec は付属ジオメトリ仕様のタグ付きバリアントを表す。
// Kind に対応する内容だけが非nilとなる。境界で一度だけ解析する。
type AttachmentSpec struct {
	Kind      AttachmentKind
	Primitive *PrimitiveAttachment
	Extrude   *ExtrudeAttachment
	Asset     *AssetAttachment
}

// ModifierKind はモディファイア種別を表す。
type ModifierKind string

const (
	// MODIFIER_KIND_BOOLEAN はブーリアンモディファイアを表す。
	MODIFIER_KIND_BOOLEAN ModifierKind = "boolean"
	// MODIFIER_KIND_BEVEL はベベルモディファイアを表す。
	MODIFIER_KIND_BEVEL ModifierKind = "bevel"
	// MODIFIER_KIND_SUBDIVIDE は分割モディファイアを表す。
	MODIFIER_KIND_SUBDIVIDE ModifierKind = "subdivide"
)

// BooleanModifier はブーリアンモディファイアの内容を表す。
// ShapeIndex は仕様全体の BoolShapes への添字とする。
type BooleanModifier struct {
	ShapeIndex int
}

// BevelModifier はベベルモディファイアの内容を表す。
type BevelModifier struct {
	Width    float64
	Segments int
}

// SubdivideModifier は分割モディファイアの内容を表す。
type SubdivideModifier struct {
	Cuts int
}

// ModifierSpec はモディファイア仕様のタグ付きバリアントを表す。
type ModifierSpec struct {
	Kind      ModifierKind
	Boolean   *BooleanModifier
	Bevel     *BevelModifier
	Subdivide *SubdivideModifier
}

// BoolShapeSpec はブーリアン用形状仕様を表す。
// AnchorBone が空の場合、Position/Dimensions は絶対座標系で解釈する。
type BoolShapeSpec struct {
	PrimitiveKind string
	Position      mmath.Vec3
	Dimensions    any
	AnchorBone    string
	Operation     BooleanOp
}

// BoneMeshSpec は1ボーン分のメッシュ仕様を表す。
// Radius はボーン相対寸法の生値(スカラー/ペア/absolute指定)を保持する。
type BoneMeshSpec struct {
	Profile       Profile
	Radius        any
	CapStart      bool
	CapEnd        bool
	Taper         float64
	Bulges        []BulgePoint
	TwistDegrees  float64
	Attachments   []AttachmentSpec
	Modifiers     []ModifierSpec
	Translate     mmath.Vec3
	RotateDegrees *mmath.Vec3
}

// MeshBuildSpec はモデル1体分の生成仕様を表す。
type MeshBuildSpec struct {
	Name       string
	BoneMeshes map[string]*BoneMeshSpec
	BoolShapes []*BoolShapeSpec
	GroupMap   map[string]string
}
