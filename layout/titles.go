package layout

import (
	"golang.org/x/text/language"

	"github.com/ByLCY/cvgen/resume"
)

// Titles 是各分区最终使用的标题。
type Titles struct {
	Contacts       string
	Strengths      string
	Languages      string
	Skills         string
	Profile        string
	Education      string
	Projects       string
	Certifications string
}

// 第一个条目同时是无法匹配时的回退目录。
var (
	titleTags = []language.Tag{language.English, language.Italian}

	titleCatalog = []Titles{
		{
			Contacts:       "Contacts",
			Strengths:      "Strengths",
			Languages:      "Languages",
			Skills:         "Skills",
			Profile:        "Profile",
			Education:      "Education",
			Projects:       "Projects",
			Certifications: "Certifications",
		},
		{
			Contacts:       "Contatti",
			Strengths:      "Punti di forza",
			Languages:      "Lingue",
			Skills:         "Competenze",
			Profile:        "Profilo",
			Education:      "Formazione",
			Projects:       "Progetti",
			Certifications: "Certificazioni",
		},
	}

	titleMatcher = language.NewMatcher(titleTags)
)

// DefaultTitles 按语言键选择默认标题，例如 "en-GB" 使用英文目录。
func DefaultTitles(lang string) Titles {
	tag, err := language.Parse(lang)
	if err != nil {
		return titleCatalog[0]
	}
	_, idx, conf := titleMatcher.Match(tag)
	if conf == language.No {
		return titleCatalog[0]
	}
	return titleCatalog[idx]
}

// ResolveTitles 以记录中的覆盖标题优先，其余使用默认标题。
func ResolveTitles(lang string, o resume.SectionTitles) Titles {
	d := DefaultTitles(lang)
	return Titles{
		Contacts:       o.Contacts.Or(d.Contacts),
		Strengths:      o.Strengths.Or(d.Strengths),
		Languages:      o.Languages.Or(d.Languages),
		Skills:         o.Skills.Or(d.Skills),
		Profile:        o.Profile.Or(d.Profile),
		Education:      o.Education.Or(d.Education),
		Projects:       o.Projects.Or(d.Projects),
		Certifications: o.Certifications.Or(d.Certifications),
	}
}
