package layout

import (
	"math"
	"testing"
)

func newTestBuilder() *Builder {
	return NewBuilder(DefaultTheme(), stubMeasurer{})
}

// TestParagraphHeightInvariant 断言：消耗的高度 == 行数 × 行距。
func TestParagraphHeightInvariant(t *testing.T) {
	cases := []struct {
		text    string
		width   float64
		size    float64
		leading float64
		lines   int
	}{
		{"short", 200, 10, 0, 1},
		{"a paragraph that is long enough to wrap over several lines of the column", 120, 9.6, 0, 0},
		{"explicit\nnewlines\n\ndrop blank lines", 300, 9.2, 0, 3},
		{"trailing newline from a block scalar\n", 300, 9.2, 0, 1},
		{"custom leading is honoured for every wrapped line", 80, 10, 16, 0},
	}
	for _, c := range cases {
		b := newTestBuilder()
		lines := Wrap(c.text, c.width, FontRegular, c.size, stubMeasurer{})
		if c.lines > 0 && len(lines) != c.lines {
			t.Fatalf("%q: wrapped into %d lines, want %d", c.text, len(lines), c.lines)
		}
		leading := c.leading
		if leading <= 0 {
			leading = c.size * 1.35
		}

		start := 500.0
		end := b.DrawParagraph(50, start, c.width, c.text, c.size, b.theme.Ink, c.leading)
		want := float64(len(lines)) * leading
		if diff := math.Abs((start - end) - want); diff > 1e-9 {
			t.Fatalf("%q: consumed %g, want %d lines × %g = %g", c.text, start-end, len(lines), leading, want)
		}

		for i, tb := range b.Pages()[0].Texts {
			if w := (stubMeasurer{}).TextWidth(tb.Content, tb.Font, tb.FontSize); w > c.width {
				t.Fatalf("%q: line %d width %g exceeds %g", c.text, i, w, c.width)
			}
		}
	}
}

func TestParagraphEmptyInput(t *testing.T) {
	b := newTestBuilder()
	if y := b.DrawParagraph(10, 300, 100, "", 10, b.theme.Ink, 0); y != 300 {
		t.Fatalf("empty paragraph moved cursor to %g", y)
	}
	if n := len(b.Pages()[0].Texts); n != 0 {
		t.Fatalf("empty paragraph emitted %d texts", n)
	}
}

func TestSectionHeading(t *testing.T) {
	b := newTestBuilder()
	y := b.DrawSectionHeading(40, 700, "Profile", 300, 11)
	if want := 700 - 11*0.55 - 11*0.9; math.Abs(y-want) > 1e-9 {
		t.Fatalf("heading advanced to %g, want %g", y, want)
	}
	page := b.Pages()[0]
	if len(page.Texts) != 1 || page.Texts[0].Font != FontBold || page.Texts[0].Content != "Profile" {
		t.Fatalf("unexpected heading texts: %+v", page.Texts)
	}
	if len(page.Lines) != 1 {
		t.Fatalf("expected one rule, got %d", len(page.Lines))
	}
	ln := page.Lines[0]
	if ln.X1 != 40 || ln.X2 != 340 || math.Abs(ln.Y1-(700-11*0.55)) > 1e-9 || ln.Color != b.theme.Rule {
		t.Fatalf("unexpected rule: %+v", ln)
	}
}

func TestBulletList(t *testing.T) {
	b := newTestBuilder()
	items := []string{"short item", "   ", "a much longer bullet item that has to wrap onto a second line"}
	size := 10.0
	y := b.DrawBulletList(20, 600, 110, items, size)

	texts := b.Pages()[0].Texts
	bullets := 0
	bodyLines := 0
	for _, tb := range texts {
		switch {
		case tb.Content == BulletGlyph:
			bullets++
			if tb.X != 20 {
				t.Fatalf("bullet at x=%g, want 20", tb.X)
			}
		default:
			bodyLines++
			if tb.X != 20+BulletIndent {
				t.Fatalf("body line %q at x=%g, want %g", tb.Content, tb.X, 20+BulletIndent)
			}
			if w := (stubMeasurer{}).TextWidth(tb.Content, FontRegular, size); w > 110-BulletIndent {
				t.Fatalf("body line %q too wide: %g", tb.Content, w)
			}
		}
	}
	if bullets != 2 {
		t.Fatalf("expected 2 bullets (blank item skipped), got %d", bullets)
	}
	if bodyLines < 3 {
		t.Fatalf("expected the long item to wrap, got %d body lines", bodyLines)
	}
	if want := 600 - float64(bodyLines)*size*1.35; math.Abs(y-want) > 1e-9 {
		t.Fatalf("list ended at %g, want %g", y, want)
	}
}

// TestBulletTrailingNewline 断言：条目末尾的换行不会额外占用一行。
func TestBulletTrailingNewline(t *testing.T) {
	size := 9.4
	for _, item := range []string{"Go", "Go\n", "Go\n\n"} {
		b := newTestBuilder()
		y := b.DrawBulletList(20, 600, 200, []string{item}, size)
		if want := 600 - size*1.35; math.Abs(y-want) > 1e-9 {
			t.Fatalf("%q: list ended at %g, want %g", item, y, want)
		}
		if n := len(b.Pages()[0].Texts); n != 2 {
			t.Fatalf("%q: expected glyph and one body line, got %d texts", item, n)
		}
	}
}

func TestParagraphTrailingNewline(t *testing.T) {
	b := newTestBuilder()
	y := b.DrawParagraph(10, 300, 200, "para\n", 10, b.theme.Ink, 0)
	if want := 300 - 10*1.35; math.Abs(y-want) > 1e-9 {
		t.Fatalf("paragraph ended at %g, want %g", y, want)
	}
}

func TestMeasureDoesNotEmit(t *testing.T) {
	b := newTestBuilder()
	h := b.Measure(400, func(y float64) float64 {
		y = b.DrawSectionHeading(0, y, "Projects", 200, 11)
		return b.DrawParagraph(0, y, 100, "some text to measure here", 10, b.theme.Ink, 0)
	})
	if h <= 0 {
		t.Fatalf("expected positive height, got %g", h)
	}
	page := b.Pages()[0]
	if len(page.Texts) != 0 || len(page.Lines) != 0 {
		t.Fatalf("Measure emitted content: %+v", page)
	}
	b.DrawText(0, 10, "after", 10, FontRegular, b.theme.Ink)
	if len(b.Pages()[0].Texts) != 1 {
		t.Fatalf("drawing after Measure should emit again")
	}
}

func TestNewPageIncrementsCounter(t *testing.T) {
	b := newTestBuilder()
	if b.PageNum() != 1 {
		t.Fatalf("new builder should start on page 1, got %d", b.PageNum())
	}
	b.DrawText(0, 0, "first", 10, FontRegular, b.theme.Ink)
	b.NewPage()
	b.DrawText(0, 0, "second", 10, FontRegular, b.theme.Ink)
	if b.PageNum() != 2 {
		t.Fatalf("PageNum = %d, want 2", b.PageNum())
	}
	pages := b.Pages()
	if pages[0].Texts[0].Content != "first" || pages[1].Texts[0].Content != "second" || pages[1].Number != 2 {
		t.Fatalf("content landed on wrong page: %+v", pages)
	}
}
