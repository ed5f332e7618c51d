package layout

// 该文件定义布局结果，供布局计算、渲染与调试 JSON 共用。
// 坐标单位为 pt，原点位于页面左下角，y 向上增长。

// Result 保存布局后的页面与文档元信息。
type Result struct {
	Pages     []Page       `json:"pages"`
	Meta      DocumentMeta `json:"meta"`
	PageCount int          `json:"pageCount"`
	// Trajectory 记录页眉之后以及每个分区、条目之后的光标位置。
	Trajectory []Cursor `json:"trajectory"`
}

// FontWeight 标识正文或粗体字形。
type FontWeight string

const (
	FontRegular FontWeight = "regular"
	FontBold    FontWeight = "bold"
)

// FontResource 描述字体来源，src 可以是文件路径、embed:* 或 builtin:* 形式。
type FontResource struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Page 记录页面尺寸与可以直接绘制的元素。
type Page struct {
	Number int       `json:"number"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Texts  []TextBox `json:"texts"`
	Lines  []Line    `json:"lines,omitempty"`
}

// Align 是单行文本相对锚点的水平对齐方式。
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// TextBox 是一行已定位的文本，Y 为基线。
type TextBox struct {
	Content  string     `json:"content"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Font     FontWeight `json:"font"`
	FontSize float64    `json:"fontSize"`
	Color    Color      `json:"color"`
	Align    Align      `json:"align,omitempty"`
}

// TextLine 表示换行后的一行文本及其测量宽度。
type TextLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// Cursor 是左右两栏各自的纵向光标，随内容追加而递减。
type Cursor struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Reset 返回两栏都回到 top 的光标。
func (c Cursor) Reset(top float64) Cursor { return Cursor{Left: top, Right: top} }
