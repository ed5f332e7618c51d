package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var builtin = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-bold":    gobold.TTF,
}

// IsBuiltin 判断 src 是否引用内置字体（"builtin:"、"built-in:" 或 "embed:" 前缀）。
func IsBuiltin(src string) bool {
	for _, prefix := range []string{"builtin:", "built-in:", "embed:"} {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}

// Load 返回内置字体的字节数据，name 可写为 "builtin:go-regular" 或直接 "go-regular"。
func Load(name string) ([]byte, error) {
	clean := name
	for _, prefix := range []string{"builtin:", "built-in:", "embed:"} {
		clean = strings.TrimPrefix(clean, prefix)
	}
	data, ok := builtin[clean]
	if !ok {
		return nil, fmt.Errorf("找不到内置字体 %s（可用: go-regular, go-bold）", name)
	}
	return data, nil
}
