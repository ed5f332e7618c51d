package dsl

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	themeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[=:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	themeParser = participle.MustBuild[Theme](
		participle.Lexer(themeLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Theme is the root AST node of a theme file.
type Theme struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Name       string         `parser:"Newline* 'theme' @Ident"`
	Statements []*Statement   `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Statement is one declaration inside the theme block.
type Statement struct {
	Color      *ColorDecl  `parser:"  @@"`
	Font       *FontDecl   `parser:"| @@"`
	Assignment *Assignment `parser:"| @@"`
}

// ColorDecl binds a palette slot: `color muted = #6e6e78`.
type ColorDecl struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"'color' @Ident '='"`
	Value string         `parser:"@Color"`
}

// FontDecl declares a font weight and its properties: `font bold { src: "..." }`.
type FontDecl struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"'font' @Ident"`
	Props []*Assignment  `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"@@"`
}

// Value is a scalar property value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// Text returns the value as written, with strings unquoted.
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// Prop returns the value of the named font property.
func (f *FontDecl) Prop(key string) (string, bool) {
	for _, p := range f.Props {
		if p.Key == key {
			return p.Value.Text(), true
		}
	}
	return "", false
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a theme from r; name is used in error positions.
func Parse(name string, r io.Reader) (*Theme, error) {
	return themeParser.Parse(name, r)
}

// ParseString parses a theme from a string.
func ParseString(input string) (*Theme, error) {
	return themeParser.ParseString("", input)
}

// ParseFile opens and parses the theme file at path.
func ParseFile(path string) (*Theme, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开主题文件 %s: %w", path, err)
	}
	defer file.Close()

	theme, err := Parse(path, file)
	if err != nil {
		return nil, fmt.Errorf("解析主题文件失败: %w", err)
	}
	return theme, nil
}
