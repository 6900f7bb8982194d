// 指示: miu200521358
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_bone_mesh/pkg/adapter/io_report"
	"github.com/miu200521358/mu_bone_mesh/pkg/adapter/io_spec"
	"github.com/miu200521358/mu_bone_mesh/pkg/adapter/kernel_trace"
	"github.com/miu200521358/mu_bone_mesh/pkg/shared/base/logging"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/minteractor"
)

// options はCLI引数を保持する。
type options struct {
	specPath     string
	skeletonPath string
	reportPath   string
	tracePath    string
	verbose      bool
}

// main は生成仕様と骨格からメッシュ生成のドライランを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}
	if opts.verbose {
		logging.DefaultLogger().SetLevel(logging.LOG_LEVEL_DEBUG)
	}

	kernel := kernel_trace.NewTraceKernel()
	uc := minteractor.NewBoneMeshUsecase(minteractor.BoneMeshUsecaseDeps{
		SpecReader:     io_spec.NewSpecRepository(),
		SkeletonReader: io_spec.NewSkeletonRepository(),
		ReportWriter:   io_report.NewReportWriter(),
		MeshKernel:     kernel,
	})

	buildSpec, err := uc.LoadSpec(nil, opts.specPath)
	if err != nil {
		return fmt.Errorf("生成仕様の読み込みに失敗しました: %w", err)
	}
	skeleton, err := uc.LoadSkeleton(nil, opts.skeletonPath)
	if err != nil {
		return fmt.Errorf("骨格の読み込みに失敗しました: %w", err)
	}

	fmt.Fprintf(out, "[mu_bone_mesh] 生成開始: %s\n", buildSpec.Name)
	result, err := uc.GenerateModel(minteractor.GenerateRequest{
		Spec:     buildSpec,
		Skeleton: skeleton,
	})
	if err != nil {
		return fmt.Errorf("メッシュ生成に失敗しました: %w", err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "[mu_bone_mesh] 警告: bone=%s reason=%s\n", warning.Bone, warning.Reason)
	}

	reportPath := opts.reportPath
	if strings.TrimSpace(reportPath) == "" {
		reportPath = defaultSiblingPath(opts.specPath, "_report.json")
	}
	if err := ensureOutputDir(reportPath); err != nil {
		return err
	}
	if err := uc.SaveReport(nil, reportPath, result.Report); err != nil {
		return fmt.Errorf("レポート保存に失敗しました: %w", err)
	}

	if strings.TrimSpace(opts.tracePath) != "" {
		if err := ensureOutputDir(opts.tracePath); err != nil {
			return err
		}
		if err := saveTrace(opts.tracePath, kernel.Commands()); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "[mu_bone_mesh] 生成完了: 生成 %d件 / スキップ %d件 -> %s\n",
		result.Report.BuiltCount, result.Report.SkippedCount, reportPath)
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_bone_mesh", flag.ContinueOnError)
	fs.SetOutput(errOut)

	spec := fs.String("spec", "", "生成仕様JSONファイルパス")
	skeleton := fs.String("skeleton", "", "骨格JSONファイルパス")
	report := fs.String("report", "", "レポート出力パス(省略時は仕様パス由来)")
	trace := fs.String("trace", "", "カーネルコマンド列の出力パス(省略可)")
	verbose := fs.Bool("v", false, "詳細ログを出力する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *spec == "" && fs.NArg() > 0 {
		*spec = fs.Arg(0)
	}
	if *skeleton == "" && fs.NArg() > 1 {
		*skeleton = fs.Arg(1)
	}
	if *spec == "" {
		return options{}, fmt.Errorf("生成仕様ファイルを指定してください (-spec)")
	}
	if *skeleton == "" {
		return options{}, fmt.Errorf("骨格ファイルを指定してください (-skeleton)")
	}

	return options{
		specPath:     *spec,
		skeletonPath: *skeleton,
		reportPath:   *report,
		tracePath:    *trace,
		verbose:      *verbose,
	}, nil
}

// defaultSiblingPath は入力パスと同階層の派生ファイルパスを生成する。
func defaultSiblingPath(inputPath string, suffix string) string {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, base+suffix)
}

// ensureOutputDir は出力先ディレクトリを作成する。
func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("出力先ディレクトリの作成に失敗しました: %w", err)
	}
	return nil
}

// saveTrace はカーネルコマンド列をJSONとして保存する。
func saveTrace(path string, commands []kernel_trace.Command) error {
	b, err := json.MarshalIndent(commands, "", "  ")
	if err != nil {
		return fmt.Errorf("コマンド列JSONの生成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("コマンド列ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}
