package resume

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Text 是一个可选的文本字段：记录值以及该键是否在数据中出现过。
type Text struct {
	value string
	set   bool
}

// NewText 构造一个已设置的文本值。
func NewText(s string) Text { return Text{value: norm.NFC.String(s), set: true} }

// String 返回文本内容，未设置时为空串。
func (t Text) String() string { return t.value }

// Get 返回文本内容以及该字段是否出现过。
func (t Text) Get() (string, bool) { return t.value, t.set }

// Or 在字段缺失时返回 def。
func (t Text) Or(def string) string {
	if !t.set {
		return def
	}
	return t.value
}

// Trimmed 返回去除首尾空白后的内容。
func (t Text) Trimmed() string { return strings.TrimSpace(t.value) }

// IsSet 报告字段是否出现过。
func (t Text) IsSet() bool { return t.set }

// Strings 把文本列表展开为字符串切片。
func Strings(list []Text) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.value)
	}
	return out
}

// textOf 把任意解码后的标量转换为 Text；nil 视为缺失，布尔值写作 True / False。
func textOf(v any) Text {
	switch val := v.(type) {
	case nil:
		return Text{}
	case string:
		return NewText(val)
	case bool:
		if val {
			return NewText("True")
		}
		return NewText("False")
	case float64:
		return NewText(strconv.FormatFloat(val, 'f', -1, 64))
	case int:
		return NewText(strconv.Itoa(val))
	case int64:
		return NewText(strconv.FormatInt(val, 10))
	case uint64:
		return NewText(strconv.FormatUint(val, 10))
	default:
		return NewText(fmt.Sprint(val))
	}
}

// textListOf 把列表值转换为 []Text；单个标量视为只有一个元素的列表。
func textListOf(v any) []Text {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]Text, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, textOf(item))
		}
		return out
	case map[string]any:
		return nil
	default:
		return []Text{textOf(val)}
	}
}

// objectsOf 返回列表中的对象元素，非对象元素被跳过。
func objectsOf(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		if obj, ok := v.(map[string]any); ok {
			return []map[string]any{obj}
		}
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
