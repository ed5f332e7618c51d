package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/cvgen/dsl"
)

// Theme 汇总配色、字体与页面几何。
type Theme struct {
	Name     string                      `json:"name"`
	Ink      Color                       `json:"ink"`
	Muted    Color                       `json:"muted"`
	Rule     Color                       `json:"rule"`
	Fonts    map[FontWeight]FontResource `json:"fonts"`
	Leading  LineHeightSpec              `json:"leading"`
	Geometry Geometry                    `json:"geometry"`
}

// DefaultTheme 返回 Europass 风格的默认主题。
func DefaultTheme() Theme {
	return Theme{
		Name:  "europass",
		Ink:   Color{R: 0x18, G: 0x18, B: 0x1b},
		Muted: Color{R: 0x6e, G: 0x6e, B: 0x78},
		Rule:  Color{R: 0xe6, G: 0xe6, B: 0xea},
		Fonts: map[FontWeight]FontResource{
			FontRegular: {Name: "regular", Src: "builtin:go-regular"},
			FontBold:    {Name: "bold", Src: "builtin:go-bold"},
		},
		Leading:  LineHeightSpec{Kind: LineHeightFactor, Factor: defaultLeadingFactor},
		Geometry: A4(),
	}
}

// LoadTheme 解析主题文件并叠加到默认主题之上。
func LoadTheme(path string) (Theme, error) {
	doc, err := dsl.ParseFile(path)
	if err != nil {
		return Theme{}, err
	}
	return ThemeFromDSL(doc)
}

// ThemeFromDSL 把主题 AST 解析为 Theme，未声明的部分沿用默认值。
func ThemeFromDSL(doc *dsl.Theme) (Theme, error) {
	theme := DefaultTheme()
	if doc == nil {
		return theme, nil
	}
	theme.Name = doc.Name

	for _, st := range doc.Statements {
		switch {
		case st.Color != nil:
			col, err := parseColor(st.Color.Value)
			if err != nil {
				return Theme{}, fmt.Errorf("%s: %w", st.Color.Pos, err)
			}
			switch st.Color.Name {
			case "ink":
				theme.Ink = col
			case "muted":
				theme.Muted = col
			case "rule":
				theme.Rule = col
			default:
				return Theme{}, fmt.Errorf("%s: 未知的颜色 %q（可用: ink, muted, rule）", st.Color.Pos, st.Color.Name)
			}
		case st.Font != nil:
			weight := FontWeight(st.Font.Name)
			if weight != FontRegular && weight != FontBold {
				return Theme{}, fmt.Errorf("%s: 未知的字体 %q（可用: regular, bold）", st.Font.Pos, st.Font.Name)
			}
			src, ok := st.Font.Prop("src")
			if !ok || strings.TrimSpace(src) == "" {
				return Theme{}, fmt.Errorf("%s: 字体 %s 缺少 src", st.Font.Pos, st.Font.Name)
			}
			theme.Fonts[weight] = FontResource{Name: st.Font.Name, Src: src}
		case st.Assignment != nil:
			if err := applyAssignment(&theme, st.Assignment); err != nil {
				return Theme{}, fmt.Errorf("%s: %w", st.Assignment.Pos, err)
			}
		}
	}

	if err := theme.Geometry.validate(); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

func applyAssignment(theme *Theme, a *dsl.Assignment) error {
	value := a.Value.Text()
	switch a.Key {
	case "leading":
		spec, ok := ParseLineHeight(value)
		if !ok {
			return fmt.Errorf("行距无效: %q（倍数如 1.35，或长度如 13pt）", value)
		}
		theme.Leading = spec
		return nil
	case "page":
		w, h, err := pageSize(value)
		if err != nil {
			return err
		}
		theme.Geometry.PageWidth, theme.Geometry.PageHeight = w, h
		return nil
	}

	var target *float64
	switch a.Key {
	case "margin":
		target = &theme.Geometry.Margin
	case "gap":
		target = &theme.Geometry.Gap
	case "left-width":
		target = &theme.Geometry.LeftWidth
	default:
		return fmt.Errorf("未知的主题属性 %q", a.Key)
	}
	l, ok := ParseLength(value)
	if !ok {
		return fmt.Errorf("属性 %s 的长度无效: %q", a.Key, value)
	}
	*target = l.ToPT()
	return nil
}

func parseColor(value string) (Color, error) {
	hex := strings.TrimPrefix(value, "#")
	switch len(hex) {
	case 3:
		hex = strings.Repeat(hex[0:1], 2) + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2)
	case 6, 8:
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("无效的颜色值：%s", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("无效的颜色值：%s", value)
	}
	return Color{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}, nil
}
