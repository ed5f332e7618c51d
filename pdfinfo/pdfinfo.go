// Package pdfinfo 读取已生成的 PDF，返回页数与逐页纯文本，供 inspect 命令与后端测试使用。
package pdfinfo

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Info 是一份 PDF 的概要。
type Info struct {
	PageCount int      `json:"pageCount"`
	Pages     []string `json:"pages"`
}

// Text 返回所有页面文本，以换页符分隔。
func (i Info) Text() string { return strings.Join(i.Pages, "\f") }

// Contains 判断任意页面是否包含 s。
func (i Info) Contains(s string) bool {
	for _, p := range i.Pages {
		if strings.Contains(p, s) {
			return true
		}
	}
	return false
}

// Inspect 打开 path 处的 PDF 并提取概要。
func Inspect(path string) (*Info, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开 PDF %s 失败: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return extract(r)
}

// Read 从内存中的 PDF 字节提取概要。
func Read(data []byte) (*Info, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("解析 PDF 失败: %w", err)
	}
	return extract(r)
}

func extract(r *pdf.Reader) (*Info, error) {
	info := &Info{PageCount: r.NumPage()}
	for i := 1; i <= info.PageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			info.Pages = append(info.Pages, "")
			continue
		}
		// 字体名只在页内唯一
		fonts := make(map[string]*pdf.Font)
		for _, name := range p.Fonts() {
			f := p.Font(name)
			fonts[name] = &f
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("读取第 %d 页失败: %w", i, err)
		}
		info.Pages = append(info.Pages, text)
	}
	return info, nil
}
