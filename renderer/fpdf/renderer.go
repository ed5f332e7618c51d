// Package fpdfrenderer draws layout results with the PDF core fonts
// (Helvetica / Helvetica-Bold) through codeberg.org/go-pdf/fpdf.
package fpdfrenderer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ByLCY/cvgen/layout"
	"github.com/ByLCY/cvgen/renderer"
)

const family = "Helvetica"

// Renderer renders with core fonts, so no font files are needed. Text is
// translated to cp1252; runes outside it are replaced by fpdf.
type Renderer struct {
	mu      sync.Mutex
	measure *fpdf.Fpdf
	tr      func(string) string
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a core-font renderer.
func NewRenderer() *Renderer {
	m := fpdf.New("P", "pt", "A4", "")
	return &Renderer{
		measure: m,
		tr:      m.UnicodeTranslatorFromDescriptor(""),
	}
}

// TextWidth implements layout.Measurer; size and result are in points.
func (r *Renderer) TextWidth(text string, weight layout.FontWeight, size float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.measure.SetFont(family, fontStyle(weight), size)
	return r.measure.GetStringWidth(r.tr(text))
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	first := result.Pages[0]
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	applyMeta(doc, result.Meta)

	for _, page := range result.Pages {
		doc.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for _, ln := range page.Lines {
			doc.SetDrawColor(ln.Color.R, ln.Color.G, ln.Color.B)
			doc.SetLineWidth(ln.Width)
			doc.Line(ln.X1, page.Height-ln.Y1, ln.X2, page.Height-ln.Y2)
		}
		for _, tb := range page.Texts {
			r.drawTextBox(doc, page.Height, tb)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawTextBox(doc *fpdf.Fpdf, pageHeight float64, tb layout.TextBox) {
	text := r.tr(tb.Content)
	doc.SetFont(family, fontStyle(tb.Font), tb.FontSize)
	doc.SetTextColor(tb.Color.R, tb.Color.G, tb.Color.B)
	x := tb.X
	if tb.Align == layout.AlignRight {
		x -= doc.GetStringWidth(text)
	}
	doc.Text(x, pageHeight-tb.Y, text)
}

func applyMeta(doc *fpdf.Fpdf, meta layout.DocumentMeta) {
	doc.SetTitle(meta.Title, true)
	doc.SetAuthor(meta.Author, true)
	doc.SetSubject(meta.Subject, true)
	doc.SetCreator(meta.Creator, true)
	doc.SetKeywords(strings.Join(meta.Keywords, ", "), true)
}

func fontStyle(weight layout.FontWeight) string {
	if weight == layout.FontBold {
		return "B"
	}
	return ""
}
