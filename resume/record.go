package resume

// Record 是某一种语言下的完整简历内容，所有字段均可缺省。
type Record struct {
	Name     Text
	Subtitle Text

	Contacts       []Contact
	Strengths      []Text
	Languages      []Language
	Skills         []Text
	Profile        []Text
	Education      []Education
	Projects       []Project
	Certifications []Certification

	Titles SectionTitles

	// raw 保留原始解码结果，供输出路径模板引用任意字段。
	raw map[string]any
}

// Contact 是左栏联系方式中的一项。
type Contact struct {
	Label Text
	Value Text
}

// Language 是语言能力的一行。
type Language struct {
	Name  Text
	Level Text
}

// Education 是一条教育经历。
type Education struct {
	Degree  Text
	School  Text
	Years   Text
	Bullets []Text
}

// Project 是一条项目经历。
type Project struct {
	Title       Text
	Subtitle    Text
	Description Text
	Stack       Text
}

// Certification 是一条证书记录。
type Certification struct {
	Title  Text
	Issuer Text
	Date   Text
	Note   Text
}

// SectionTitles 保存各分区的覆盖标题；未设置的分区使用默认标题。
type SectionTitles struct {
	Contacts       Text
	Strengths      Text
	Languages      Text
	Skills         Text
	Profile        Text
	Education      Text
	Projects       Text
	Certifications Text
}

// Raw 返回记录的原始键值树。
func (r *Record) Raw() map[string]any {
	if r == nil {
		return nil
	}
	return r.raw
}

func recordOf(m map[string]any) *Record {
	rec := &Record{
		Name:      textOf(m["name"]),
		Subtitle:  textOf(m["subtitle"]),
		Strengths: textListOf(m["strengths"]),
		Skills:    textListOf(m["skills"]),
		Profile:   textListOf(m["profile"]),
		Titles: SectionTitles{
			Contacts:       textOf(m["contacts_title"]),
			Strengths:      textOf(m["strengths_title"]),
			Languages:      textOf(m["languages_title"]),
			Skills:         textOf(m["skills_title"]),
			Profile:        textOf(m["profile_title"]),
			Education:      textOf(m["education_title"]),
			Projects:       textOf(m["projects_title"]),
			Certifications: textOf(m["certifications_title"]),
		},
		raw: m,
	}
	for _, obj := range objectsOf(m["contacts"]) {
		rec.Contacts = append(rec.Contacts, Contact{
			Label: textOf(obj["label"]),
			Value: textOf(obj["value"]),
		})
	}
	for _, obj := range objectsOf(m["languages"]) {
		rec.Languages = append(rec.Languages, Language{
			Name:  textOf(obj["name"]),
			Level: textOf(obj["level"]),
		})
	}
	for _, obj := range objectsOf(m["education"]) {
		rec.Education = append(rec.Education, Education{
			Degree:  textOf(obj["degree"]),
			School:  textOf(obj["school"]),
			Years:   textOf(obj["years"]),
			Bullets: textListOf(obj["bullets"]),
		})
	}
	for _, obj := range objectsOf(m["projects"]) {
		rec.Projects = append(rec.Projects, Project{
			Title:       textOf(obj["title"]),
			Subtitle:    textOf(obj["subtitle"]),
			Description: textOf(obj["description"]),
			Stack:       textOf(obj["stack"]),
		})
	}
	for _, obj := range objectsOf(m["certifications"]) {
		rec.Certifications = append(rec.Certifications, Certification{
			Title:  textOf(obj["title"]),
			Issuer: textOf(obj["issuer"]),
			Date:   textOf(obj["date"]),
			Note:   textOf(obj["note"]),
		})
	}
	return rec
}
