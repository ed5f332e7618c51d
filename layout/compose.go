package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/cvgen/resume"
)

// 版式常量（单位 pt）。
const (
	headingSize = 11.0

	// 右栏在项目条目之后低于 margin+projectBreakThreshold 时换页。
	projectBreakThreshold = 120.0
	// 学年相对右栏右缘的偏移。
	yearsOffset = 120.0
	// 语言等级相对左栏起点的偏移。
	levelOffset = 78.0

	footerSize = 8.0
	// before-blocks 策略下右栏内容与页脚之间保留的高度。
	footerReserve = footerSize
	creator       = "cvgen"
)

// block 在 y 处绘制一个条目并返回新的 y；同一个 block 既用于绘制也用于试算。
type block func(y float64) float64

type composer struct {
	b      *Builder
	rec    *resume.Record
	theme  Theme
	geom   Geometry
	titles Titles
	policy BreakPolicy

	trajectory []Cursor
}

// Build 把一条语言记录排版为分页结果。
// 顺序固定：页眉、左栏（联系方式、优势、语言、技能）、右栏（简介、教育、项目、证书）、页码。
func Build(rec *resume.Record, lang string, opts BuildOptions) (*Result, error) {
	if rec == nil {
		return nil, fmt.Errorf("layout: 简历记录为空")
	}
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少字体度量 Measurer")
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	if err := theme.Geometry.validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	c := &composer{
		b:      NewBuilder(theme, opts.Measurer),
		rec:    rec,
		theme:  theme,
		geom:   theme.Geometry,
		titles: ResolveTitles(lang, rec.Titles),
		policy: opts.BreakPolicy,
	}

	cur := c.header()
	cur = c.leftColumn(cur)
	c.rightColumn(cur)
	c.footer()

	pages := c.b.Pages()
	return &Result{
		Pages:      pages,
		Meta:       c.meta(opts.Meta),
		PageCount:  len(pages),
		Trajectory: c.trajectory,
	}, nil
}

func (c *composer) mark(cur Cursor) { c.trajectory = append(c.trajectory, cur) }

func (c *composer) header() Cursor {
	g, b := c.geom, c.b
	y := g.Top()
	b.DrawText(g.XRight(), y, c.rec.Name.String(), 20, FontBold, c.theme.Ink)
	y -= 26
	b.DrawText(g.XRight(), y, c.rec.Subtitle.String(), 10, FontRegular, c.theme.Muted)
	y -= 18
	b.DrawLine(g.Margin, y, g.PageWidth-g.Margin)
	y -= 18

	cur := Cursor{Left: y, Right: y}
	c.mark(cur)
	return cur
}

func (c *composer) leftColumn(cur Cursor) Cursor {
	for _, section := range []func(y float64) float64{
		c.contacts,
		c.strengths,
		c.languages,
		c.skills,
	} {
		y := section(cur.Left)
		if y != cur.Left {
			cur.Left = y
			c.mark(cur)
		}
	}
	return cur
}

func (c *composer) contacts(y float64) float64 {
	if len(c.rec.Contacts) == 0 {
		return y
	}
	x, w := c.geom.XLeft(), c.geom.LeftWidth
	y = c.b.DrawSectionHeading(x, y, c.titles.Contacts, w, headingSize)
	for _, item := range c.rec.Contacts {
		label, value := item.Label.Trimmed(), item.Value.Trimmed()
		if label == "" || value == "" {
			continue
		}
		c.b.DrawText(x, y, label, 9, FontBold, c.theme.Muted)
		y -= 12
		y = c.b.DrawParagraph(x, y, w, value, 9.2, c.theme.Ink, 0)
		y -= 6
	}
	return y
}

func (c *composer) strengths(y float64) float64 {
	return c.leftBullets(y, c.titles.Strengths, c.rec.Strengths)
}

func (c *composer) skills(y float64) float64 {
	return c.leftBullets(y, c.titles.Skills, c.rec.Skills)
}

func (c *composer) leftBullets(y float64, title string, items []resume.Text) float64 {
	if len(items) == 0 {
		return y
	}
	x, w := c.geom.XLeft(), c.geom.LeftWidth
	y = c.b.DrawSectionHeading(x, y, title, w, headingSize)
	y = c.b.DrawBulletList(x, y, w, resume.Strings(items), 9.4)
	return y - 6
}

func (c *composer) languages(y float64) float64 {
	if len(c.rec.Languages) == 0 {
		return y
	}
	x, w := c.geom.XLeft(), c.geom.LeftWidth
	y = c.b.DrawSectionHeading(x, y, c.titles.Languages, w, headingSize)
	for _, l := range c.rec.Languages {
		name, level := l.Name.Trimmed(), l.Level.Trimmed()
		if name == "" {
			continue
		}
		c.b.DrawText(x, y, name, 9.4, FontBold, c.theme.Ink)
		if level != "" {
			c.b.DrawText(x+levelOffset, y, level, 9.2, FontRegular, c.theme.Muted)
		}
		y -= 14
	}
	return y - 6
}

func (c *composer) rightColumn(cur Cursor) Cursor {
	cur = c.section(cur, c.titles.Profile, c.profileBlocks(), false)
	cur = c.section(cur, c.titles.Education, c.educationBlocks(), false)
	cur = c.section(cur, c.titles.Projects, c.projectBlocks(), true)
	cur = c.section(cur, c.titles.Certifications, c.certificationBlocks(), false)
	return cur
}

// section 在右栏绘制标题与条目。checkAfter 为真时，条目之后执行 BreakAfterProjects 检查。
func (c *composer) section(cur Cursor, title string, blocks []block, checkAfter bool) Cursor {
	if len(blocks) == 0 {
		return cur
	}
	g := c.geom
	heading := func(y float64) float64 {
		return c.b.DrawSectionHeading(g.XRight(), y, title, g.RightWidth(), headingSize)
	}

	if c.policy == BreakBeforeBlocks {
		cur = c.ensureRight(cur, c.b.Measure(cur.Right, heading)+c.b.Measure(cur.Right, blocks[0]))
	}
	cur.Right = heading(cur.Right)

	for i, draw := range blocks {
		if i > 0 && c.policy == BreakBeforeBlocks {
			cur = c.ensureRight(cur, c.b.Measure(cur.Right, draw))
		}
		cur.Right = draw(cur.Right)
		c.mark(cur)

		if checkAfter && c.policy == BreakAfterProjects && cur.Right < g.Margin+projectBreakThreshold {
			cur = c.pageBreak(cur)
		}
	}
	return cur
}

// ensureRight 在右栏剩余空间（扣除页脚预留）不足 need 时换页；已在页顶时不再换页。
func (c *composer) ensureRight(cur Cursor, need float64) Cursor {
	if cur.Right < c.geom.Top() && cur.Right-need < c.geom.Margin+footerReserve {
		return c.pageBreak(cur)
	}
	return cur
}

// pageBreak 开始新页并把两栏光标都重置到顶部；左栏已绘制的内容留在上一页。
func (c *composer) pageBreak(cur Cursor) Cursor {
	c.b.NewPage()
	cur = cur.Reset(c.geom.Top())
	c.mark(cur)
	return cur
}

func (c *composer) profileBlocks() []block {
	x, w := c.geom.XRight(), c.geom.RightWidth()
	blocks := make([]block, 0, len(c.rec.Profile))
	for _, p := range c.rec.Profile {
		text := p.String()
		blocks = append(blocks, func(y float64) float64 {
			y = c.b.DrawParagraph(x, y, w, text, 10, c.theme.Ink, 0)
			return y - 8
		})
	}
	return blocks
}

func (c *composer) educationBlocks() []block {
	x, w := c.geom.XRight(), c.geom.RightWidth()
	blocks := make([]block, 0, len(c.rec.Education))
	for _, e := range c.rec.Education {
		degree, school, years := e.Degree.Trimmed(), e.School.Trimmed(), e.Years.Trimmed()
		bullets := resume.Strings(e.Bullets)
		blocks = append(blocks, func(y float64) float64 {
			if degree != "" {
				c.b.DrawText(x, y, degree, 10.4, FontBold, c.theme.Ink)
			}
			if years != "" {
				c.b.DrawText(x+w-yearsOffset, y, years, 9.2, FontRegular, c.theme.Muted)
			}
			y -= 14
			if school != "" {
				c.b.DrawText(x, y, school, 9.4, FontRegular, c.theme.Muted)
				y -= 12
			}
			if len(bullets) > 0 {
				y = c.b.DrawBulletList(x, y, w, bullets, 9.4)
			}
			return y - 10
		})
	}
	return blocks
}

func (c *composer) projectBlocks() []block {
	x, w := c.geom.XRight(), c.geom.RightWidth()
	blocks := make([]block, 0, len(c.rec.Projects))
	for _, p := range c.rec.Projects {
		title, subtitle := p.Title.Trimmed(), p.Subtitle.Trimmed()
		desc, stack := p.Description.Trimmed(), p.Stack.Trimmed()
		blocks = append(blocks, func(y float64) float64 {
			if title != "" {
				c.b.DrawText(x, y, title, 10.2, FontBold, c.theme.Ink)
				y -= 13
			}
			if subtitle != "" {
				y = c.b.DrawParagraph(x, y, w, subtitle, 9.2, c.theme.Muted, 0)
				y -= 2
			}
			if desc != "" {
				y = c.b.DrawParagraph(x, y, w, desc, 9.6, c.theme.Ink, 0)
				y -= 4
			}
			if stack != "" {
				y = c.b.DrawParagraph(x, y, w, "Stack: "+stack, 9.2, c.theme.Muted, 0)
			}
			return y - 10
		})
	}
	return blocks
}

func (c *composer) certificationBlocks() []block {
	x, w := c.geom.XRight(), c.geom.RightWidth()
	blocks := make([]block, 0, len(c.rec.Certifications))
	for _, cert := range c.rec.Certifications {
		title, note := cert.Title.Trimmed(), cert.Note.Trimmed()
		var parts []string
		for _, s := range []string{cert.Issuer.Trimmed(), cert.Date.Trimmed()} {
			if s != "" {
				parts = append(parts, s)
			}
		}
		meta := strings.Join(parts, " • ")
		blocks = append(blocks, func(y float64) float64 {
			if title != "" {
				c.b.DrawText(x, y, title, 10, FontBold, c.theme.Ink)
				y -= 13
			}
			if meta != "" {
				y = c.b.DrawParagraph(x, y, w, meta, 9.2, c.theme.Muted, 0)
				y -= 2
			}
			if note != "" {
				y = c.b.DrawParagraph(x, y, w, note, 9.6, c.theme.Ink, 0)
			}
			return y - 10
		})
	}
	return blocks
}

// footer 在当前（最后一）页右下角绘制页码。
func (c *composer) footer() {
	g := c.geom
	c.b.DrawTextRight(g.PageWidth-g.Margin, g.Margin*0.55, strconv.Itoa(c.b.PageNum()), footerSize, FontRegular, c.theme.Muted)
}

func (c *composer) meta(override DocumentMeta) DocumentMeta {
	name := c.rec.Name.Trimmed()
	meta := DocumentMeta{
		Author:   name,
		Subject:  c.rec.Subtitle.Trimmed(),
		Creator:  creator,
		Keywords: resume.Strings(c.rec.Skills),
	}
	if name != "" {
		meta.Title = name + " - CV"
	}
	if override.Title != "" {
		meta.Title = override.Title
	}
	if override.Author != "" {
		meta.Author = override.Author
	}
	if override.Subject != "" {
		meta.Subject = override.Subject
	}
	if override.Creator != "" {
		meta.Creator = override.Creator
	}
	if len(override.Keywords) > 0 {
		meta.Keywords = override.Keywords
	}
	return meta
}
