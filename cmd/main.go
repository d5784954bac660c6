// 指示: miu200521358
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_poseblend/pkg/adapter/io_rig"
	"github.com/miu200521358/mu_poseblend/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_poseblend/pkg/usecase/pinteractor"
)

// options はCLI引数を保持する。
type options struct {
	rigPath    string
	posePath   string
	outputPath string
	factor     float64
	flipped    bool
}

// main は保存済みポーズのリグへの一括適用を実行する。
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

	repository := io_rig.NewRigRepository()
	if !repository.CanLoad(opts.rigPath) {
		return fmt.Errorf("入力形式が未対応です: %s", opts.rigPath)
	}

	rig, err := repository.Load(opts.rigPath)
	if err != nil {
		return fmt.Errorf("リグ読み込みに失敗しました: %w", err)
	}
	rig.PoseEditing = true
	fmt.Fprintf(out, "[mu_poseblend] "+messages.LogLoadRigSuccess+"\n", opts.rigPath)

	usecase := pinteractor.NewPoseBlendUsecase(pinteractor.PoseBlendUsecaseDeps{
		PoseSource: repository,
	})

	fmt.Fprintf(out, "[mu_poseblend] "+messages.LogApplyStart+"\n", opts.posePath)
	result, err := usecase.Apply(pinteractor.ApplyRequest{
		Rig:     rig,
		PoseRef: opts.posePath,
		Factor:  opts.factor,
		Flipped: opts.flipped,
	})
	if err != nil {
		return fmt.Errorf("ポーズ適用に失敗しました: %w", err)
	}
	if result.Outcome != pinteractor.OutcomeFinished {
		return fmt.Errorf("ポーズ適用が確定しませんでした: %s", result.Outcome)
	}
	fmt.Fprintf(out, "[mu_poseblend] "+messages.LogApplySuccess+"\n", result.UsedFactor)

	outputPath, err := resolveOutputPath(opts.rigPath, opts.outputPath)
	if err != nil {
		return err
	}
	if err := ensureOutputDir(outputPath); err != nil {
		return err
	}
	if err := repository.Save(outputPath, rig); err != nil {
		return fmt.Errorf("リグ保存に失敗しました: %w", err)
	}
	fmt.Fprintf(out, "[mu_poseblend] "+messages.LogSaveSuccess+"\n", outputPath)
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_poseblend", flag.ContinueOnError)
	fs.SetOutput(errOut)

	rigPath := fs.String("rig", "", "入力リグJSONファイルパス")
	posePath := fs.String("pose", "", "適用ポーズJSONファイルパス")
	outputPath := fs.String("out", "", "出力リグJSONファイルパス")
	factor := fs.Float64("factor", 1.0, "ブレンド係数 [0,1]")
	flipped := fs.Bool("flipped", false, "左右反転して適用する")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *rigPath == "" && fs.NArg() > 0 {
		*rigPath = fs.Arg(0)
	}
	if *posePath == "" && fs.NArg() > 1 {
		*posePath = fs.Arg(1)
	}
	if *rigPath == "" {
		return options{}, fmt.Errorf("入力リグJSONファイルを指定してください (-rig)")
	}
	if *posePath == "" {
		return options{}, fmt.Errorf("適用ポーズJSONファイルを指定してください (-pose)")
	}
	if !strings.EqualFold(filepath.Ext(*rigPath), ".json") {
		return options{}, fmt.Errorf("入力拡張子が .json ではありません: %s", *rigPath)
	}

	return options{
		rigPath:    *rigPath,
		posePath:   *posePath,
		outputPath: *outputPath,
		factor:     *factor,
		flipped:    *flipped,
	}, nil
}

// resolveOutputPath は出力リグパスを解決する。
func resolveOutputPath(rigPath string, outputPath string) (string, error) {
	if strings.TrimSpace(outputPath) == "" {
		dir := filepath.Dir(rigPath)
		base := strings.TrimSuffix(filepath.Base(rigPath), filepath.Ext(rigPath))
		return filepath.Join(dir, base+"_blend.json"), nil
	}
	if !strings.EqualFold(filepath.Ext(outputPath), ".json") {
		return "", fmt.Errorf("出力拡張子が .json ではありません: %s", outputPath)
	}
	return outputPath, nil
}

// ensureOutputDir は出力先ディレクトリを作成する。
func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
	}
	return nil
}
