// 指示: miu200521358
package minteractor

import (
	"math"
	"testing"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

// kernelCall はメッシュカーネル呼び出し1件の記録を表す。
type kernelCall struct {
	Op          string
	Kind        string
	Segments    int
	Transform   moutput.WorldTransform
	BoneName    string
	Weight      float64
	Source      string
	Destination string
	PartCount   int
}

// recordingMeshKernel はテスト用にカーネル呼び出しを記録するフェイクを表す。
type recordingMeshKernel struct {
	nextHandle moutput.MeshHandle
	calls      []kernelCall
	fields     map[moutput.MeshHandle]moutput.DeformField
	groupNames []string
}

// newRecordingMeshKernel は記録フェイクカーネルを生成する。
func newRecordingMeshKernel(groupNames []string) *recordingMeshKernel {
	return &recordingMeshKernel{
		fields:     map[moutput.MeshHandle]moutput.DeformField{},
		groupNames: groupNames,
	}
}

func (k *recordingMeshKernel) allocate() moutput.MeshHandle {
	k.nextHandle++
	return k.nextHandle
}

func (k *recordingMeshKernel) CreatePrimitive(kind string, segments int, transform moutput.WorldTransform) (moutput.MeshHandle, error) {
	k.calls = append(k.calls, kernelCall{Op: "create", Kind: kind, Segments: segments, Transform: transform})
	return k.allocate(), nil
}

func (k *recordingMeshKernel) ApplyBoolean(target moutput.MeshHandle, operand moutput.MeshHandle, op model.BooleanOp) (moutput.MeshHandle, error) {
	k.calls = append(k.calls, kernelCall{Op: "boolean", Kind: string(op)})
	return k.allocate(), nil
}

func (k *recordingMeshKernel) ApplyBevel(target moutput.MeshHandle, width float64, segments int) (moutput.MeshHandle, error) {
	k.calls = append(k.calls, kernelCall{Op: "bevel", Weight: width, Segments: segments})
	return k.allocate(), nil
}

func (k *recordingMeshKernel) ApplySubdivide(target moutput.MeshHandle, cuts int) (moutput.MeshHandle, error) {
	k.calls = append(k.calls, kernelCall{Op: "subdivide", Segments: cuts})
	return k.allocate(), nil
}

func (k *recordingMeshKernel) RemoveCaps(target moutput.MeshHandle, keepStart bool, keepEnd bool) (moutput.MeshHandle, error) {
	k.calls = append(k.calls, kernelCall{Op: "remove_caps"})
	return k.allocate(), nil
}

func (k *recordingMeshKernel) DeformVertices(target moutput.MeshHandle, field moutput.DeformField) (moutput.MeshHandle, error) {
	handle := k.allocate()
	k.calls = append(k.calls, kernelCall{Op: "deform"})
	k.fields[handle] = field
	return handle, nil
}

func (k *recordingMeshKernel) ImportAsset(path string, transform moutput.WorldTransform) (moutput.MeshHandle, error) {
	k.calls = append(k.calls, kernelCall{Op: "import", Kind: path, Transform: transform})
	return k.allocate(), nil
}

func (k *recordingMeshKernel) Join(parts []moutput.MeshHandle) (moutput.MeshHandle, error) {
	k.calls = append(k.calls, kernelCall{Op: "join", PartCount: len(parts)})
	return k.allocate(), nil
}

func (k *recordingMeshKernel) BindToSkeleton(mesh moutput.MeshHandle, boneName string, weight float64) error {
	k.calls = append(k.calls, kernelCall{Op: "bind", BoneName: boneName, Weight: weight})
	return nil
}

func (k *recordingMeshKernel) VertexGroupNames(mesh moutput.MeshHandle) ([]string, error) {
	return append([]string(nil), k.groupNames...), nil
}

func (k *recordingMeshKernel) RenameVertexGroup(mesh moutput.MeshHandle, src string, dst string) error {
	k.calls = append(k.calls, kernelCall{Op: "rename", Source: src, Destination: dst})
	return nil
}

func (k *recordingMeshKernel) MergeVertexGroup(mesh moutput.MeshHandle, src string, dst string) error {
	k.calls = append(k.calls, kernelCall{Op: "merge", Source: src, Destination: dst})
	return nil
}

// findCalls は指定操作の呼び出し記録を返す。
func (k *recordingMeshKernel) findCalls(op string) []kernelCall {
	found := []kernelCall{}
	for _, call := range k.calls {
		if call.Op == op {
			found = append(found, call)
		}
	}
	return found
}

// generateProgressCollector は生成進捗イベント収集を表す。
type generateProgressCollector struct {
	events []GenerateProgressEvent
}

// ReportGenerateProgress は進捗イベントを収集する。
func (c *generateProgressCollector) ReportGenerateProgress(event GenerateProgressEvent) {
	if c == nil {
		return
	}
	c.events = append(c.events, event)
}

// findEventIndex は指定種別イベントの先頭indexを返す。
func (c *generateProgressCollector) findEventIndex(target GenerateProgressEventType) int {
	if c == nil {
		return -1
	}
	for idx, event := range c.events {
		if event.Type == target {
			return idx
		}
	}
	return -1
}

// newSingleBoneSkeleton は長さ2の単一ボーン骨格を生成する。
func newSingleBoneSkeleton(name string) *model.Skeleton {
	skeleton := model.NewSkeleton()
	skeleton.Append(&model.Bone{
		Name: name,
		Head: mmath.ZERO_VEC3,
		Tail: mmath.NewVec3(0.0, 0.0, 2.0),
	})
	return skeleton
}

// TestGenerateModelTaperShrinksRadiusLinearly はテーパー付き単一ボーン生成の半径変化を検証する。
func TestGenerateModelTaperShrinksRadiusLinearly(t *testing.T) {
	kernel := newRecordingMeshKernel(nil)
	uc := NewBoneMeshUsecase(BoneMeshUsecaseDeps{MeshKernel: kernel})

	result, err := uc.GenerateModel(GenerateRequest{
		Spec: &model.MeshBuildSpec{
			Name: "single",
			BoneMeshes: map[string]*model.BoneMeshSpec{
				"tail": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 12},
					Radius:   0.15,
					CapStart: true,
					CapEnd:   true,
					Taper:    0.5,
				},
			},
		},
		Skeleton: newSingleBoneSkeleton("tail"),
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	creates := kernel.findCalls("create")
	if len(creates) != 1 {
		t.Fatalf("create count mismatch: got=%d want=1", len(creates))
	}
	if creates[0].Kind != "cylinder" || creates[0].Segments != 12 {
		t.Fatalf("create mismatch: got=%s(%d) want=cylinder(12)", creates[0].Kind, creates[0].Segments)
	}
	scale := creates[0].Transform.Scale
	if math.Abs(scale.X-0.3) > 1e-9 || math.Abs(scale.Y-0.3) > 1e-9 || math.Abs(scale.Z-2.0) > 1e-9 {
		t.Fatalf("scale mismatch: got=(%v, %v, %v) want=(0.3, 0.3, 2)", scale.X, scale.Y, scale.Z)
	}

	field, exists := kernel.fields[result.Mesh]
	if !exists {
		t.Fatalf("deform field should be recorded for result mesh")
	}
	rootScale, _ := field(0.0)
	tipScale, _ := field(1.0)
	if math.Abs(rootScale*0.3-0.3) > 1e-9 {
		t.Fatalf("root radius mismatch: got=%v want=0.3", rootScale*0.3)
	}
	if math.Abs(tipScale*0.3-0.15) > 1e-9 {
		t.Fatalf("tip radius mismatch: got=%v want=0.15", tipScale*0.3)
	}

	binds := kernel.findCalls("bind")
	if len(binds) != 1 || binds[0].BoneName != "tail" || binds[0].Weight != 1.0 {
		t.Fatalf("bind mismatch: got=%+v", binds)
	}

	if result.Report.BuiltCount != 1 || result.Report.SkippedCount != 0 {
		t.Fatalf("report counts mismatch: got=built %d skipped %d", result.Report.BuiltCount, result.Report.SkippedCount)
	}
}

// TestGenerateModelSkipsMissingBonesWithWarning は骨格不在ボーンの警告スキップを検証する。
func TestGenerateModelSkipsMissingBonesWithWarning(t *testing.T) {
	kernel := newRecordingMeshKernel(nil)
	uc := NewBoneMeshUsecase(BoneMeshUsecaseDeps{MeshKernel: kernel})
	reporter := &generateProgressCollector{}

	result, err := uc.GenerateModel(GenerateRequest{
		Spec: &model.MeshBuildSpec{
			Name: "partial",
			BoneMeshes: map[string]*model.BoneMeshSpec{
				"tail": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 8},
					Radius:   0.2,
					CapStart: true,
					CapEnd:   true,
					Taper:    1.0,
				},
				"phantom": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 8},
					Radius:   0.2,
					CapStart: true,
					CapEnd:   true,
					Taper:    1.0,
				},
			},
		},
		Skeleton:         newSingleBoneSkeleton("tail"),
		ProgressReporter: reporter,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("warning count mismatch: got=%d want=1", len(result.Warnings))
	}
	if result.Warnings[0].Bone != "phantom" || result.Warnings[0].Reason != model.GenerateWarningBoneMissing {
		t.Fatalf("warning mismatch: got=%+v", result.Warnings[0])
	}
	if result.Report.BuiltCount != 1 || result.Report.SkippedCount != 1 {
		t.Fatalf("report counts mismatch: got=built %d skipped %d", result.Report.BuiltCount, result.Report.SkippedCount)
	}
	if reporter.findEventIndex(GenerateProgressEventTypeBoneSkipped) < 0 {
		t.Fatalf("bone skipped event should be reported")
	}
}

// TestGenerateModelFailsWhenNothingBuilt は全ボーン不在時の失敗を検証する。
func TestGenerateModelFailsWhenNothingBuilt(t *testing.T) {
	kernel := newRecordingMeshKernel(nil)
	uc := NewBoneMeshUsecase(BoneMeshUsecaseDeps{MeshKernel: kernel})

	_, err := uc.GenerateModel(GenerateRequest{
		Spec: &model.MeshBuildSpec{
			Name: "empty",
			BoneMeshes: map[string]*model.BoneMeshSpec{
				"phantom": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 8},
					Radius:   0.2,
					CapStart: true,
					CapEnd:   true,
					Taper:    1.0,
				},
			},
		},
		Skeleton: newSingleBoneSkeleton("tail"),
	})
	if err == nil {
		t.Fatalf("generation without built bones should fail")
	}
}

// TestGenerateModelReconcilesGroupsWithMergeSplit は多対一対応の改名+マージ分解を検証する。
func TestGenerateModelReconcilesGroupsWithMergeSplit(t *testing.T) {
	kernel := newRecordingMeshKernel([]string{"L_arm", "left_arm"})
	uc := NewBoneMeshUsecase(BoneMeshUsecaseDeps{MeshKernel: kernel})

	result, err := uc.GenerateModel(GenerateRequest{
		Spec: &model.MeshBuildSpec{
			Name: "grouped",
			BoneMeshes: map[string]*model.BoneMeshSpec{
				"tail": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 8},
					Radius:   0.2,
					CapStart: true,
					CapEnd:   true,
					Taper:    1.0,
				},
			},
			GroupMap: map[string]string{
				"L_arm":    "arm_L",
				"left_arm": "arm_L",
			},
		},
		Skeleton: newSingleBoneSkeleton("tail"),
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	renames := kernel.findCalls("rename")
	if len(renames) != 1 || renames[0].Source != "L_arm" || renames[0].Destination != "arm_L" {
		t.Fatalf("rename mismatch: got=%+v", renames)
	}
	merges := kernel.findCalls("merge")
	if len(merges) != 1 || merges[0].Source != "left_arm" || merges[0].Destination != "arm_L" {
		t.Fatalf("merge mismatch: got=%+v", merges)
	}

	if len(result.Report.GroupSteps) != 2 {
		t.Fatalf("group step count mismatch: got=%d want=2", len(result.Report.GroupSteps))
	}
	if result.Report.GroupSteps[0].Operation != "rename" || result.Report.GroupSteps[1].Operation != "merge" {
		t.Fatalf("group step order mismatch: got=%+v", result.Report.GroupSteps)
	}
}

// TestGenerateModelBuildsAttachmentsAndModifiers は付属・モディファイアの適用を検証する。
func TestGenerateModelBuildsAttachmentsAndModifiers(t *testing.T) {
	kernel := newRecordingMeshKernel(nil)
	uc := NewBoneMeshUsecase(BoneMeshUsecaseDeps{MeshKernel: kernel})

	result, err := uc.GenerateModel(GenerateRequest{
		Spec: &model.MeshBuildSpec{
			Name: "attached",
			BoneMeshes: map[string]*model.BoneMeshSpec{
				"tail": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 8},
					Radius:   0.2,
					CapStart: true,
					CapEnd:   true,
					Taper:    1.0,
					Attachments: []model.AttachmentSpec{
						{
							Kind: model.ATTACHMENT_KIND_PRIMITIVE,
							Primitive: &model.PrimitiveAttachment{
								PrimitiveKind: "sphere",
								Dimensions:    0.1,
								Offset:        mmath.NewVec3(0.0, 0.0, 1.0),
							},
						},
					},
					Modifiers: []model.ModifierSpec{
						{
							Kind:  model.MODIFIER_KIND_BEVEL,
							Bevel: &model.BevelModifier{Width: 0.02, Segments: 2},
						},
						{
							Kind:      model.MODIFIER_KIND_SUBDIVIDE,
							Subdivide: &model.SubdivideModifier{Cuts: 1},
						},
					},
				},
			},
		},
		Skeleton: newSingleBoneSkeleton("tail"),
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	creates := kernel.findCalls("create")
	if len(creates) != 2 {
		t.Fatalf("create count mismatch: got=%d want=2", len(creates))
	}
	if creates[1].Kind != "sphere" {
		t.Fatalf("attachment kind mismatch: got=%s want=sphere", creates[1].Kind)
	}
	// 付属オフセット(0,0,1)はボーン長2倍で先端(0,0,2)に配置される。
	offset := creates[1].Transform.Translation
	if math.Abs(offset.Z-2.0) > 1e-9 {
		t.Fatalf("attachment translation mismatch: got=%v want=2", offset.Z)
	}

	if len(kernel.findCalls("bevel")) != 1 {
		t.Fatalf("bevel should be applied once")
	}
	if len(kernel.findCalls("subdivide")) != 1 {
		t.Fatalf("subdivide should be applied once")
	}
	if len(kernel.findCalls("join")) != 1 {
		t.Fatalf("join count mismatch: got=%d want=1", len(kernel.findCalls("join")))
	}

	boneReport := result.Report.Bones[0]
	if boneReport.AttachmentCount != 1 || boneReport.ModifierCount != 2 {
		t.Fatalf("bone report mismatch: got=%+v", boneReport)
	}
}

// TestGenerateModelBooleanAnchorMissingIsWarning はブーリアン基準ボーン不在の警告スキップを検証する。
func TestGenerateModelBooleanAnchorMissingIsWarning(t *testing.T) {
	kernel := newRecordingMeshKernel(nil)
	uc := NewBoneMeshUsecase(BoneMeshUsecaseDeps{MeshKernel: kernel})

	result, err := uc.GenerateModel(GenerateRequest{
		Spec: &model.MeshBuildSpec{
			Name: "boolean",
			BoneMeshes: map[string]*model.BoneMeshSpec{
				"tail": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 8},
					Radius:   0.2,
					CapStart: true,
					CapEnd:   true,
					Taper:    1.0,
					Modifiers: []model.ModifierSpec{
						{
							Kind:    model.MODIFIER_KIND_BOOLEAN,
							Boolean: &model.BooleanModifier{ShapeIndex: 0},
						},
					},
				},
			},
			BoolShapes: []*model.BoolShapeSpec{
				{
					PrimitiveKind: "cube",
					Position:      mmath.ZERO_VEC3,
					Dimensions:    0.5,
					AnchorBone:    "phantom",
					Operation:     model.BOOLEAN_OP_DIFFERENCE,
				},
			},
		},
		Skeleton: newSingleBoneSkeleton("tail"),
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if len(kernel.findCalls("boolean")) != 0 {
		t.Fatalf("boolean should be skipped")
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Reason != model.GenerateWarningAnchorBoneMissing {
		t.Fatalf("anchor warning mismatch: got=%+v", result.Warnings)
	}
}

// TestGenerateModelReportsProgressInOrder は進捗イベントの順序を検証する。
func TestGenerateModelReportsProgressInOrder(t *testing.T) {
	kernel := newRecordingMeshKernel(nil)
	uc := NewBoneMeshUsecase(BoneMeshUsecaseDeps{MeshKernel: kernel})
	reporter := &generateProgressCollector{}

	_, err := uc.GenerateModel(GenerateRequest{
		Spec: &model.MeshBuildSpec{
			Name: "ordered",
			BoneMeshes: map[string]*model.BoneMeshSpec{
				"tail": {
					Profile:  model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: 8},
					Radius:   0.2,
					CapStart: true,
					CapEnd:   true,
					Taper:    1.0,
				},
			},
		},
		Skeleton:         newSingleBoneSkeleton("tail"),
		ProgressReporter: reporter,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	validatedIdx := reporter.findEventIndex(GenerateProgressEventTypeSpecValidated)
	framesIdx := reporter.findEventIndex(GenerateProgressEventTypeFramesBuilt)
	builtIdx := reporter.findEventIndex(GenerateProgressEventTypeBoneBuilt)
	joinedIdx := reporter.findEventIndex(GenerateProgressEventTypeMeshJoined)
	reconciledIdx := reporter.findEventIndex(GenerateProgressEventTypeGroupsReconciled)
	if validatedIdx < 0 || framesIdx < 0 || builtIdx < 0 || joinedIdx < 0 || reconciledIdx < 0 {
		t.Fatalf("progress events missing: %+v", reporter.events)
	}
	if !(validatedIdx < framesIdx && framesIdx < builtIdx && builtIdx < joinedIdx && joinedIdx < reconciledIdx) {
		t.Fatalf("progress order mismatch: %+v", reporter.events)
	}
}
