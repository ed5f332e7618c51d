package layout

import "fmt"

// BuildOptions 配置布局阶段所需的依赖。
type BuildOptions struct {
	// Measurer 提供字体度量，通常就是渲染后端本身。
	Measurer Measurer
	// Theme 为空时使用 DefaultTheme。
	Theme *Theme
	// BreakPolicy 决定何时换页，默认 BreakAfterProjects。
	BreakPolicy BreakPolicy
	// Meta 覆盖由记录推导出的 PDF 元信息中的非空字段。
	Meta DocumentMeta
}

// BreakPolicy 是换页策略。
type BreakPolicy int

const (
	// BreakAfterProjects 只在每个项目条目之后检查右栏是否低于 margin+120。
	BreakAfterProjects BreakPolicy = iota
	// BreakBeforeBlocks 在右栏每个条目绘制前试算高度，放不下时先换页。
	BreakBeforeBlocks
)

func (p BreakPolicy) String() string {
	switch p {
	case BreakBeforeBlocks:
		return "before-blocks"
	default:
		return "after-projects"
	}
}

// ParseBreakPolicy 解析命令行/配置中的策略名称。
func ParseBreakPolicy(s string) (BreakPolicy, error) {
	switch s {
	case "", "after-projects":
		return BreakAfterProjects, nil
	case "before-blocks":
		return BreakBeforeBlocks, nil
	default:
		return 0, fmt.Errorf("未知的换页策略 %q（可用: after-projects, before-blocks）", s)
	}
}
