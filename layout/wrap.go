package layout

import (
	"strings"
)

// Measurer 由渲染后端实现，返回文本在给定字形与字号（pt）下的宽度（pt）。
// 布局与绘制使用同一套字体度量，换行结果才与最终输出一致。
type Measurer interface {
	TextWidth(text string, font FontWeight, size float64) float64
}

// Wrap 以贪心方式把文本按单词边界折成不超过 width 的行。
// 连续空白折叠为一个空格；显式换行开始新行，空白段（含末尾换行）被丢弃；
// 单词本身超宽时按字符拆分。全空白的输入不产生任何行。
func Wrap(content string, width float64, font FontWeight, size float64, m Measurer) []TextLine {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r", "")

	var lines []TextLine
	for _, segment := range strings.Split(content, "\n") {
		words := strings.Fields(segment)
		if len(words) == 0 {
			continue
		}
		lines = append(lines, wrapWords(words, width, font, size, m)...)
	}
	return lines
}

func wrapWords(words []string, width float64, font FontWeight, size float64, m Measurer) []TextLine {
	var lines []TextLine
	current := ""
	currentWidth := 0.0

	emit := func() {
		if current == "" {
			return
		}
		lines = append(lines, TextLine{Content: current, Width: currentWidth})
		current = ""
		currentWidth = 0
	}

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if w := m.TextWidth(candidate, font, size); w <= width {
			current, currentWidth = candidate, w
			continue
		}
		emit()
		if w := m.TextWidth(word, font, size); w <= width {
			current, currentWidth = word, w
			continue
		}
		chunks := splitWordByWidth(word, width, font, size, m)
		for _, chunk := range chunks[:len(chunks)-1] {
			lines = append(lines, TextLine{Content: chunk, Width: m.TextWidth(chunk, font, size)})
		}
		current = chunks[len(chunks)-1]
		currentWidth = m.TextWidth(current, font, size)
	}
	emit()
	return lines
}

// splitWordByWidth 把超宽单词按字符切分；单个字符本身超宽时独占一段。
func splitWordByWidth(word string, limit float64, font FontWeight, size float64, m Measurer) []string {
	var parts []string
	var b strings.Builder
	for _, r := range word {
		if b.Len() > 0 && m.TextWidth(b.String()+string(r), font, size) > limit {
			parts = append(parts, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}
