package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ByLCY/cvgen/binding"
	"github.com/ByLCY/cvgen/layout"
	"github.com/ByLCY/cvgen/renderer"
	canvasrenderer "github.com/ByLCY/cvgen/renderer/canvas"
	fpdfrenderer "github.com/ByLCY/cvgen/renderer/fpdf"
	"github.com/ByLCY/cvgen/resume"
)

// version 在构建时通过 ldflags 注入。
var version = "dev"

const defaultData = "tools/cv_data.json"

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "把结构化简历数据渲染为两栏 A4 PDF",
	Long: `cvgen 读取按语言组织的简历数据（JSON 或 YAML），选择一种语言
（或用 --lang all 选择全部语言），排版为左窄右宽的两栏 A4 页面并写出 PDF。`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outs, err := run(optionsFromViper())
		for _, out := range outs {
			fmt.Fprintf(cmd.OutOrStdout(), "已生成 PDF：%s\n", out)
		}
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "配置文件（默认 ./cvgen.yaml 或 ~/.config/cvgen/cvgen.yaml）")

	flags := rootCmd.Flags()
	flags.String("lang", "", "简历数据中的语言键，例如 it、en；all 表示逐一生成全部语言（默认 meta.default_lang）")
	flags.String("data", defaultData, "简历数据文件路径（.json / .yaml）")
	flags.String("out", "", "PDF 输出路径，支持 ${name} 等占位符（默认 meta.output，相对于 root）")
	flags.String("root", "", "项目根目录（默认数据文件所在目录的上一级）")
	flags.String("theme", "", "主题文件路径")
	flags.String("backend", string(renderer.BackendCanvas), "渲染后端：canvas 或 fpdf")
	flags.String("break-policy", layout.BreakAfterProjects.String(), "换页策略：after-projects 或 before-blocks")
	flags.String("debug", "", "布局调试 JSON 输出路径")
	_ = viper.BindPFlags(flags)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cvgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cvgen"))
		}
	}

	viper.SetEnvPrefix("CVGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "使用配置文件:", viper.ConfigFileUsed())
	}
}

// options 是一次生成所需的全部输入。
type options struct {
	Lang        string
	Data        string
	Out         string
	Root        string
	Theme       string
	Backend     string
	BreakPolicy string
	Debug       string
}

func optionsFromViper() options {
	return options{
		Lang:        viper.GetString("lang"),
		Data:        viper.GetString("data"),
		Out:         viper.GetString("out"),
		Root:        viper.GetString("root"),
		Theme:       viper.GetString("theme"),
		Backend:     viper.GetString("backend"),
		BreakPolicy: viper.GetString("break-policy"),
		Debug:       viper.GetString("debug"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
}

// allLanguages 作为 --lang 的取值时，为数据中的每个语言键各生成一份 PDF。
const allLanguages = "all"

// generator 持有一次运行中所有语言共享的数据、主题与渲染后端。
type generator struct {
	opts   options
	doc    *resume.Document
	root   string
	theme  layout.Theme
	policy layout.BreakPolicy
	r      renderer.Renderer
}

// run 串联数据加载、布局与渲染，返回写出的 PDF 路径。
func run(opts options) ([]string, error) {
	dataPath := opts.Data
	if dataPath == "" {
		dataPath = defaultData
	}
	dataPath, err := filepath.Abs(dataPath)
	if err != nil {
		return nil, fmt.Errorf("解析数据路径失败: %w", err)
	}
	root := opts.Root
	if root == "" {
		root = filepath.Dir(filepath.Dir(dataPath))
	}

	doc, err := resume.Load(dataPath)
	if err != nil {
		return nil, err
	}

	langs := []string{opts.Lang}
	if opts.Lang == allLanguages {
		if langs = doc.Languages(); len(langs) == 0 {
			return nil, fmt.Errorf("简历数据中没有任何语言")
		}
	} else if _, _, err := doc.Select(opts.Lang); err != nil {
		return nil, err
	}

	g := &generator{opts: opts, doc: doc, root: root, theme: layout.DefaultTheme()}
	assetDir := root
	if opts.Theme != "" {
		if g.theme, err = layout.LoadTheme(opts.Theme); err != nil {
			return nil, fmt.Errorf("加载主题失败: %w", err)
		}
		assetDir = filepath.Dir(opts.Theme)
	}
	if g.policy, err = layout.ParseBreakPolicy(opts.BreakPolicy); err != nil {
		return nil, err
	}
	if g.r, err = newRenderer(opts.Backend, assetDir, g.theme); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(langs))
	owner := map[string]string{}
	for _, l := range langs {
		out, lang, err := g.generate(l, len(langs) > 1, owner)
		if err != nil {
			return written, err
		}
		owner[out] = lang
		written = append(written, out)
	}
	return written, nil
}

// generate 排版并写出一种语言。multi 为真时调试文件名带上语言后缀；
// owner 记录已写出的路径，避免不同语言互相覆盖。
func (g *generator) generate(want string, multi bool, owner map[string]string) (string, string, error) {
	rec, lang, err := g.doc.Select(want)
	if err != nil {
		return "", "", err
	}

	outPath, err := outputPath(g.opts.Out, g.doc.Meta.Output, g.root, rec, lang)
	if err != nil {
		return "", "", err
	}
	if prev, ok := owner[outPath]; ok {
		return "", "", fmt.Errorf("语言 %s 与 %s 的输出路径相同：%s（请在模板中使用 ${lang}）", prev, lang, outPath)
	}

	result, err := layout.Build(rec, lang, layout.BuildOptions{
		Measurer:    g.r,
		Theme:       &g.theme,
		BreakPolicy: g.policy,
		Meta:        layout.DocumentMeta{Title: g.doc.Meta.Title, Author: g.doc.Meta.Author},
	})
	if err != nil {
		return "", "", fmt.Errorf("布局计算失败（%s）: %w", lang, err)
	}

	if g.opts.Debug != "" {
		debugPath := g.opts.Debug
		if multi {
			debugPath = withLangSuffix(debugPath, lang)
		}
		if err := writeDebug(result, debugPath); err != nil {
			return "", "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	pdfBytes, err := g.r.Render(result)
	if err != nil {
		return "", "", fmt.Errorf("渲染 PDF 失败（%s）: %w", lang, err)
	}
	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		return "", "", fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return outPath, lang, nil
}

// withLangSuffix 把 layout.json 变为 layout.en.json。
func withLangSuffix(path, lang string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + lang + ext
}

func newRenderer(backend, assetDir string, theme layout.Theme) (renderer.Renderer, error) {
	switch renderer.Backend(backend) {
	case "", renderer.BackendCanvas:
		return canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
			BaseDir: assetDir,
			Fonts:   theme.Fonts,
		})
	case renderer.BackendFPDF:
		return fpdfrenderer.NewRenderer(), nil
	default:
		return nil, fmt.Errorf("未知的渲染后端 %q（可用: canvas, fpdf）", backend)
	}
}

// outputPath 展开输出模板中的占位符。命令行给出的相对路径基于当前目录，
// meta.output 中的相对路径基于 root。
func outputPath(flagOut, metaOut, root string, rec *resume.Record, lang string) (string, error) {
	tmpl, base := flagOut, ""
	if tmpl == "" {
		tmpl, base = metaOut, root
	}

	scope := map[string]any{}
	for k, v := range rec.Raw() {
		scope[k] = v
	}
	scope["lang"] = lang
	out, err := binding.Expand(tmpl, scope)
	if err != nil {
		return "", fmt.Errorf("展开输出路径失败: %w", err)
	}
	if base != "" && !filepath.IsAbs(out) {
		out = filepath.Join(base, out)
	}
	return filepath.Abs(out)
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
