package layout

import (
	"fmt"
	"strings"
)

// Geometry 描述页面尺寸与两栏布局，单位 pt。
type Geometry struct {
	PageWidth  float64 `json:"pageWidth"`
	PageHeight float64 `json:"pageHeight"`
	Margin     float64 `json:"margin"`
	Gap        float64 `json:"gap"`
	LeftWidth  float64 `json:"leftWidth"`
}

var pagePresets = map[string][2]float64{
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
}

// A4 返回默认几何：A4、1.4cm 边距、6cm 左栏、0.8cm 栏间距。
func A4() Geometry {
	w, h, _ := pageSize("A4")
	return Geometry{
		PageWidth:  w,
		PageHeight: h,
		Margin:     Cm(1.4).ToPT(),
		Gap:        Cm(0.8).ToPT(),
		LeftWidth:  Cm(6).ToPT(),
	}
}

func pageSize(name string) (float64, float64, error) {
	base, ok := pagePresets[strings.ToUpper(name)]
	if !ok {
		return 0, 0, fmt.Errorf("暂不支持的纸张尺寸：%s", name)
	}
	return base[0] * MmToPt, base[1] * MmToPt, nil
}

// RightWidth 是右栏宽度：页面宽度减去两侧边距、左栏与栏间距。
func (g Geometry) RightWidth() float64 {
	return g.PageWidth - 2*g.Margin - g.LeftWidth - g.Gap
}

// XLeft 是左栏起点。
func (g Geometry) XLeft() float64 { return g.Margin }

// XRight 是右栏起点。
func (g Geometry) XRight() float64 { return g.Margin + g.LeftWidth + g.Gap }

// Top 是内容区顶部（两栏光标在换页时回到此处）。
func (g Geometry) Top() float64 { return g.PageHeight - g.Margin }

func (g Geometry) validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("页面尺寸无效: %gx%g", g.PageWidth, g.PageHeight)
	}
	if g.RightWidth() <= 0 {
		return fmt.Errorf("右栏宽度为 %g，请减小边距、栏间距或左栏宽度", g.RightWidth())
	}
	if 2*g.Margin >= g.PageHeight {
		return fmt.Errorf("边距 %g 超出页面高度", g.Margin)
	}
	return nil
}
