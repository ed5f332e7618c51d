package layout

// 排版常量（单位 pt），数值与参考版式保持一致。
const (
	defaultLeadingFactor = 1.35
	// BulletIndent 是项目符号与正文之间的缩进。
	BulletIndent = 10.0
	// BulletGlyph 是列表项前的符号。
	BulletGlyph = "•"
	ruleWidth   = 1.0
)

// Builder 是绘制面：把文本、线段追加到当前页，并负责换页与页码。
// 各绘制方法接收起始 y 并返回绘制后的 y，光标由调用方持有。
type Builder struct {
	theme   Theme
	measure Measurer
	pages   []Page
	dry     int
}

// NewBuilder 创建一个已有第一页的绘制面。
func NewBuilder(theme Theme, m Measurer) *Builder {
	b := &Builder{theme: theme, measure: m}
	b.NewPage()
	return b
}

// NewPage 结束当前页并开始新的一页，页码加一。
func (b *Builder) NewPage() {
	g := b.theme.Geometry
	b.pages = append(b.pages, Page{
		Number: len(b.pages) + 1,
		Width:  g.PageWidth,
		Height: g.PageHeight,
	})
}

// PageNum 返回当前页码（从 1 开始）。
func (b *Builder) PageNum() int { return len(b.pages) }

// Pages 返回目前为止的全部页面。
func (b *Builder) Pages() []Page { return b.pages }

func (b *Builder) curr() *Page { return &b.pages[len(b.pages)-1] }

// Leading 返回字号 size 下由主题决定的行距。
func (b *Builder) Leading(size float64) float64 { return b.theme.Leading.Resolve(size) }

// Measure 以试运行方式执行 draw，不产生任何绘制，返回其消耗的纵向空间。
func (b *Builder) Measure(y float64, draw func(y float64) float64) float64 {
	b.dry++
	defer func() { b.dry-- }()
	return y - draw(y)
}

// DrawLine 在 y 处绘制从 x0 到 x1 的细分隔线。
func (b *Builder) DrawLine(x0, y, x1 float64) {
	if b.dry > 0 {
		return
	}
	p := b.curr()
	p.Lines = append(p.Lines, Line{X1: x0, Y1: y, X2: x1, Y2: y, Color: b.theme.Rule, Width: ruleWidth})
}

// DrawText 以 (x, y) 为基线起点绘制单行文本，不折行。空串不产生任何元素。
func (b *Builder) DrawText(x, y float64, s string, size float64, font FontWeight, col Color) {
	b.drawAligned(x, y, s, size, font, col, AlignLeft)
}

// DrawTextRight 绘制右端对齐到 x 的单行文本。
func (b *Builder) DrawTextRight(x, y float64, s string, size float64, font FontWeight, col Color) {
	b.drawAligned(x, y, s, size, font, col, AlignRight)
}

func (b *Builder) drawAligned(x, y float64, s string, size float64, font FontWeight, col Color, align Align) {
	if s == "" || b.dry > 0 {
		return
	}
	p := b.curr()
	p.Texts = append(p.Texts, TextBox{
		Content:  s,
		X:        x,
		Y:        y,
		Font:     font,
		FontSize: size,
		Color:    col,
		Align:    align,
	})
}

// DrawParagraph 把 s 折行到 maxWidth 内逐行绘制，返回最后一行之后的 y。
// leading <= 0 时使用主题行距（默认 size × 1.35）。
func (b *Builder) DrawParagraph(x, y, maxWidth float64, s string, size float64, col Color, leading float64) float64 {
	if leading <= 0 {
		leading = b.Leading(size)
	}
	for _, line := range Wrap(s, maxWidth, FontRegular, size, b.measure) {
		b.DrawText(x, y, line.Content, size, FontRegular, col)
		y -= leading
	}
	return y
}

// DrawSectionHeading 绘制粗体标题及其下方横跨 width 的分隔线。
func (b *Builder) DrawSectionHeading(x, y float64, title string, width, size float64) float64 {
	b.DrawText(x, y, title, size, FontBold, b.theme.Ink)
	y -= size * 0.55
	b.DrawLine(x, y, x+width)
	y -= size * 0.9
	return y
}

// DrawBulletList 绘制项目符号列表；续行与首行正文对齐，不重复符号。
func (b *Builder) DrawBulletList(x, y, width float64, items []string, size float64) float64 {
	leading := b.Leading(size)
	for _, item := range items {
		lines := Wrap(item, width-BulletIndent, FontRegular, size, b.measure)
		if len(lines) == 0 {
			continue
		}
		b.DrawText(x, y, BulletGlyph, size, FontRegular, b.theme.Ink)
		for _, line := range lines {
			b.DrawText(x+BulletIndent, y, line.Content, size, FontRegular, b.theme.Ink)
			y -= leading
		}
	}
	return y
}
