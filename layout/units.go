package layout

import (
	"strconv"
	"strings"
)

// 布局坐标一律使用 pt；主题文件中的长度可以带 mm/cm/in 后缀。

// PDF 点与毫米之间的换算系数。
const (
	PtToMm = 25.4 / 72
	MmToPt = 72 / 25.4
)

// Unit 是主题中长度书写时的单位。
type Unit int

const (
	UnitPT Unit = iota
	UnitMM
	UnitCM
	UnitIN
)

var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{{"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}}

// Length 保留数值及其原始单位。
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Pt 构造以点为单位的长度。
func Pt(v float64) Length { return Length{Value: v, Unit: UnitPT} }

// Cm 构造以厘米为单位的长度。
func Cm(v float64) Length { return Length{Value: v, Unit: UnitCM} }

// ToMM 返回毫米值。
func (l Length) ToMM() float64 {
	switch l.Unit {
	case UnitMM:
		return l.Value
	case UnitCM:
		return l.Value * 10
	case UnitIN:
		return l.Value * 25.4
	default:
		return l.Value * PtToMm
	}
}

// ToPT 返回点值。
func (l Length) ToPT() float64 {
	if l.Unit == UnitPT {
		return l.Value
	}
	return l.ToMM() * MmToPt
}

// ParseLength 解析 "1.4cm"、"20pt" 这样的长度，裸数字按 pt 处理，负数无效。
func ParseLength(value string) (Length, bool) {
	l, _, ok := parseLength(value)
	return l, ok
}

// parseLength 额外报告是否显式写了单位。
func parseLength(value string) (Length, bool, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	unit, hasUnit := UnitPT, false
	for _, s := range unitSuffixes {
		if strings.HasSuffix(v, s.suffix) {
			unit, hasUnit = s.unit, true
			v = strings.TrimSpace(strings.TrimSuffix(v, s.suffix))
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if v == "" || err != nil || f < 0 {
		return Length{}, false, false
	}
	return Length{Value: f, Unit: unit}, hasUnit, true
}

// LineHeightKind 区分行距是字号的倍数还是绝对长度。
type LineHeightKind int

const (
	LineHeightFactor LineHeightKind = iota
	LineHeightAbsolute
)

// LineHeightSpec 描述行距：Factor × 字号，或固定的 Len。
type LineHeightSpec struct {
	Kind   LineHeightKind `json:"kind"`
	Factor float64        `json:"factor,omitempty"`
	Len    Length         `json:"len,omitempty"`
}

// Resolve 返回字号 size（pt）下的行距（pt）。
func (s LineHeightSpec) Resolve(size float64) float64 {
	if s.Kind == LineHeightAbsolute {
		return s.Len.ToPT()
	}
	factor := s.Factor
	if factor <= 0 {
		factor = defaultLeadingFactor
	}
	return size * factor
}

// ParseLineHeight 解析主题中的行距：带单位为绝对值，裸数字为倍数。
func ParseLineHeight(value string) (LineHeightSpec, bool) {
	l, hasUnit, ok := parseLength(value)
	if !ok || l.Value == 0 {
		return LineHeightSpec{}, false
	}
	if hasUnit {
		return LineHeightSpec{Kind: LineHeightAbsolute, Len: l}, true
	}
	return LineHeightSpec{Kind: LineHeightFactor, Factor: l.Value}, true
}
