package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// UnresolvedError 列出模板中无法解析的占位符。
type UnresolvedError struct {
	Template string
	Paths    []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("模板 %q 中的占位符无法解析: %s", e.Template, strings.Join(e.Paths, ", "))
}

// Expand 把 template 中的 ${path.to.value} 替换为 scope 中对应的标量值。
// 替换值经过 PathSegment 处理，适合直接拼入文件路径。
// 任一占位符无法解析（路径不存在或指向对象/列表）时返回 *UnresolvedError。
func Expand(template string, scope map[string]any) (string, error) {
	var missing []string
	out := exprPattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		path := strings.TrimSpace(groups[1])
		val, ok := Lookup(scope, path)
		if !ok {
			missing = append(missing, path)
			return match
		}
		return PathSegment(val)
	})
	if len(missing) > 0 {
		return "", &UnresolvedError{Template: template, Paths: missing}
	}
	return out, nil
}

// Lookup 按 a.b[0].c 形式的路径取出标量并转为字符串。
func Lookup(data any, path string) (string, bool) {
	if path == "" {
		return "", false
	}
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := parseSegment(segment)
		if !ok {
			return "", false
		}
		if name != "" {
			m, isMap := current.(map[string]any)
			if !isMap {
				return "", false
			}
			if current, ok = m[name]; !ok {
				return "", false
			}
		}
		for _, idx := range indexes {
			list, isList := current.([]any)
			if !isList || idx < 0 || idx >= len(list) {
				return "", false
			}
			current = list[idx]
		}
	}
	switch v := current.(type) {
	case nil, map[string]any, []any:
		return "", false
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}

// PathSegment 把任意文本转换为安全的文件名片段：空白合并为下划线，路径分隔符与控制字符被去除。
func PathSegment(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
			continue
		case r == '/' || r == '\\' || r == ':' || unicode.IsControl(r):
			continue
		}
		b.WriteRune(r)
		lastUnderscore = r == '_'
	}
	return b.String()
}

func parseSegment(segment string) (string, []int, bool) {
	i := strings.IndexByte(segment, '[')
	if i == -1 {
		return segment, nil, true
	}
	name := segment[:i]
	rest := segment[i:]
	var indexes []int
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}
