package renderer

import "github.com/ByLCY/cvgen/layout"

// Renderer 将布局结果输出为 PDF。
// 每个后端同时实现 layout.Measurer，使布局换行与绘制使用同一套字体度量。
type Renderer interface {
	layout.Measurer
	Render(result *layout.Result) ([]byte, error)
}

// Backend 是可选的渲染后端名称。
type Backend string

const (
	BackendCanvas Backend = "canvas"
	BackendFPDF   Backend = "fpdf"
)
