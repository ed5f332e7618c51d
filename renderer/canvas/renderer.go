package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/cvgen/fonts"
	"github.com/ByLCY/cvgen/layout"
	"github.com/ByLCY/cvgen/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
// Layout coordinates are points with a bottom-left origin; canvas works in
// millimetres, so every value is converted at the drawing boundary.
type Renderer struct {
	baseDir string
	fonts   map[layout.FontWeight]layout.FontResource

	fontMu   sync.Mutex
	families map[layout.FontWeight]*canvas.FontFamily
	faces    map[faceKey]*canvas.FontFace
}

var _ renderer.Renderer = (*Renderer)(nil)

type faceKey struct {
	weight layout.FontWeight
	size   float64
	color  layout.Color
}

// Options configures the canvas renderer.
type Options struct {
	// BaseDir resolves relative font paths.
	BaseDir string
	// Fonts maps each weight to its source; missing weights use the default theme fonts.
	Fonts map[layout.FontWeight]layout.FontResource
}

// NewRenderer creates a renderer with the default theme fonts.
func NewRenderer(baseDir string) (*Renderer, error) {
	return NewRendererWithOptions(Options{BaseDir: baseDir})
}

// NewRendererWithOptions creates a renderer and loads both font families up front,
// so a bad font source fails before layout starts.
func NewRendererWithOptions(opts Options) (*Renderer, error) {
	r := &Renderer{
		baseDir:  opts.BaseDir,
		fonts:    map[layout.FontWeight]layout.FontResource{},
		families: map[layout.FontWeight]*canvas.FontFamily{},
		faces:    map[faceKey]*canvas.FontFace{},
	}
	for weight, res := range layout.DefaultTheme().Fonts {
		r.fonts[weight] = res
	}
	for weight, res := range opts.Fonts {
		r.fonts[weight] = res
	}
	for _, weight := range []layout.FontWeight{layout.FontRegular, layout.FontBold} {
		if _, err := r.family(weight); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// TextWidth implements layout.Measurer; size and result are in points.
func (r *Renderer) TextWidth(text string, weight layout.FontWeight, size float64) float64 {
	face, err := r.fontFace(weight, size, layout.Color{})
	if err != nil {
		return 0
	}
	return face.TextWidth(text) * layout.MmToPt
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianI)

		drawLines(ctx, page.Lines)
		for _, tb := range page.Texts {
			if err := r.drawTextBox(ctx, tb); err != nil {
				return nil, err
			}
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	face, err := r.fontFace(tb.Font, tb.FontSize, tb.Color)
	if err != nil {
		return err
	}
	align := canvas.Left
	if tb.Align == layout.AlignRight {
		align = canvas.Right
	}
	ctx.DrawText(toMm(tb.X), toMm(tb.Y), canvas.NewTextLine(face, tb.Content, align))
	return nil
}

func drawLines(ctx *canvas.Context, lines []layout.Line) {
	for _, ln := range lines {
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		ctx.SetStrokeColor(colorFromLayout(ln.Color))
		ctx.SetStrokeWidth(toMm(ln.Width))
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(ln.X2-ln.X1), toMm(ln.Y2-ln.Y1))
		ctx.DrawPath(toMm(ln.X1), toMm(ln.Y1), p)
	}
}

func (r *Renderer) fontFace(weight layout.FontWeight, size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.family(weight)
	if err != nil {
		return nil, err
	}
	key := faceKey{weight: weight, size: size, color: col}

	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	face := family.Face(size, colorFromLayout(col), canvasStyle(weight), canvas.FontNormal)
	r.faces[key] = face
	return face, nil
}

func (r *Renderer) family(weight layout.FontWeight) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.families[weight]; ok {
		return family, nil
	}
	res, ok := r.fonts[weight]
	if !ok {
		return nil, fmt.Errorf("未配置 %s 字体", weight)
	}
	data, err := r.loadFontBytes(res)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("cvgen-" + string(weight))
	if err := family.LoadFont(data, 0, canvasStyle(weight)); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", res.Src, err)
	}
	r.families[weight] = family
	return family, nil
}

func (r *Renderer) loadFontBytes(font layout.FontResource) ([]byte, error) {
	if font.Src == "" {
		return nil, fmt.Errorf("字体 %s 缺少 src", font.Name)
	}
	if fonts.IsBuiltin(font.Src) {
		return fonts.Load(font.Src)
	}
	path := font.Src
	if r.baseDir == "" && !filepath.IsAbs(path) {
		return nil, fmt.Errorf("未指定资源目录时不允许直接使用字体路径：%s（请改用 builtin:）", font.Src)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", font.Src, err)
	}
	return data, nil
}

func canvasStyle(weight layout.FontWeight) canvas.FontStyle {
	if weight == layout.FontBold {
		return canvas.FontBold
	}
	return canvas.FontRegular
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
