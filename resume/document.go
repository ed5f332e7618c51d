package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	metaKey = "meta"

	// DefaultLang 是 meta.default_lang 缺省时使用的语言。
	DefaultLang = "it"
	// DefaultOutput 是 meta.output 缺省时的输出路径（相对文档根目录）。
	DefaultOutput = "assets/cv/CV_Europass.pdf"
)

// Format 标识数据文件的编码格式。
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath 依据扩展名推断格式，未知扩展名按 JSON 处理。
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Meta 是渲染元数据，加载后只读。
type Meta struct {
	DefaultLang string
	Output      string
	Author      string
	Title       string
}

// Document 是按语言键组织的简历数据。
type Document struct {
	Meta Meta

	langs map[string]map[string]any
}

// LanguageError 表示请求的语言不在文档中。
type LanguageError struct {
	Lang      string
	Available []string
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("语言 '%s' 不存在于简历数据中，可用语言: %s", e.Lang, strings.Join(e.Available, ", "))
}

// Load 读取并解析数据文件。
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取简历数据 %s: %w", path, err)
	}
	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("解析简历数据 %s 失败: %w", path, err)
	}
	return doc, nil
}

// Parse 从内存中的 JSON 或 YAML 数据构建 Document。
func Parse(data []byte, format Format) (*Document, error) {
	var tree any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		tree = normalizeYAML(tree)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&tree); err != nil {
			return nil, err
		}
	}

	root, ok := tree.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("顶层必须是以语言为键的对象")
	}

	doc := &Document{
		Meta: Meta{
			DefaultLang: DefaultLang,
			Output:      DefaultOutput,
		},
		langs: map[string]map[string]any{},
	}
	for key, val := range root {
		if key == metaKey {
			doc.Meta = metaOf(val)
			continue
		}
		obj, _ := val.(map[string]any)
		doc.langs[key] = obj
	}
	return doc, nil
}

// Languages 返回除 meta 之外的全部顶层键（已排序）。
func (d *Document) Languages() []string {
	keys := make([]string, 0, len(d.langs))
	for k := range d.langs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Select 返回指定语言的记录；lang 为空时使用 meta.default_lang。
func (d *Document) Select(lang string) (*Record, string, error) {
	if lang == "" {
		lang = d.Meta.DefaultLang
	}
	m, ok := d.langs[lang]
	if !ok {
		return nil, lang, &LanguageError{Lang: lang, Available: d.Languages()}
	}
	if m == nil {
		m = map[string]any{}
	}
	return recordOf(m), lang, nil
}

func metaOf(v any) Meta {
	meta := Meta{DefaultLang: DefaultLang, Output: DefaultOutput}
	m, ok := v.(map[string]any)
	if !ok {
		return meta
	}
	if s := textOf(m["default_lang"]).Trimmed(); s != "" {
		meta.DefaultLang = s
	}
	if s := textOf(m["output"]).Trimmed(); s != "" {
		meta.Output = s
	}
	meta.Author = textOf(m["author"]).Trimmed()
	meta.Title = textOf(m["title"]).Trimmed()
	return meta
}

// normalizeYAML 把 yaml 可能产生的 map[any]any 统一为 map[string]any。
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeYAML(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	default:
		return val
	}
}
