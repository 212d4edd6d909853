// Package content holds the static portfolio data. A Model is loaded once
// and treated as read-only by everything downstream.
package content

// Section ids in render order. Each one is observed for reveal-on-scroll.
const (
	SectionAbout          = "about"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionCoursework     = "coursework"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionEducation      = "education"
)

// Sections returns the revealable section ids in render order.
func Sections() []string {
	return []string{
		SectionAbout,
		SectionExperience,
		SectionProjects,
		SectionCoursework,
		SectionSkills,
		SectionCertifications,
		SectionEducation,
	}
}

// Model is the whole page's descriptive data.
type Model struct {
	Profile        Profile         `yaml:"profile" validate:"required"`
	About          []string        `yaml:"about" validate:"required,dive,required"`
	Experience     []Experience    `yaml:"experience" validate:"dive"`
	Projects       []Project       `yaml:"projects" validate:"dive"`
	Coursework     []Term          `yaml:"coursework" validate:"dive"`
	Skills         []SkillCategory `yaml:"skills" validate:"dive"`
	Certifications []Certification `yaml:"certifications" validate:"dive"`
	Education      []Education     `yaml:"education" validate:"dive"`
	Footer         string          `yaml:"footer"`
}

// Profile is the page header.
type Profile struct {
	Name     string `yaml:"name" validate:"required"`
	Headline string `yaml:"headline"`
	Bio      string `yaml:"bio" validate:"required"`
	Email    string `yaml:"email" validate:"omitempty,email"`
	GitHub   string `yaml:"github" validate:"omitempty,url"`
	LinkedIn string `yaml:"linkedin" validate:"omitempty,url"`
}

type Certification struct {
	Name         string  `yaml:"name" validate:"required"`
	Issuer       string  `yaml:"issuer" validate:"required"`
	Date         string  `yaml:"date"`
	CredentialID string  `yaml:"credentialId"`
	Link         *string `yaml:"link" validate:"omitempty,url"`
	Icon         string  `yaml:"icon"`
}

type Experience struct {
	Company      string   `yaml:"company" validate:"required"`
	Role         string   `yaml:"role" validate:"required"`
	Period       string   `yaml:"period"`
	Location     string   `yaml:"location"`
	Achievements []string `yaml:"achievements" validate:"dive,required"`
}

// Project is a featured project. Nil GitHub or Demo means the matching link
// is not rendered at all.
type Project struct {
	Title            string   `yaml:"title" validate:"required"`
	Description      string   `yaml:"description" validate:"required"`
	DetailedFeatures []string `yaml:"detailedFeatures" validate:"dive,required"`
	Tech             []string `yaml:"tech" validate:"dive,required"`
	GitHub           *string  `yaml:"github" validate:"omitempty,url"`
	Demo             *string  `yaml:"demo" validate:"omitempty,url"`
	Team             *string  `yaml:"team"`
	Metrics          *string  `yaml:"metrics"`
	Icon             string   `yaml:"icon"`
}

// Term is one semester of coursework.
type Term struct {
	Name    string   `yaml:"name" validate:"required"`
	Courses []Course `yaml:"courses" validate:"dive"`
}

type Course struct {
	Code  string `yaml:"code" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Focus string `yaml:"focus"`
}

// SkillCategory is a named group of skill tags. A tag is addressed by the
// category name and its index in Skills.
type SkillCategory struct {
	Name   string   `yaml:"name" validate:"required"`
	Skills []string `yaml:"skills" validate:"dive,required"`
}

type Education struct {
	Institution string `yaml:"institution" validate:"required"`
	Degree      string `yaml:"degree"`
	Year        string `yaml:"year"`
}

// Category returns the skill category with the given name.
func (m *Model) Category(name string) (SkillCategory, bool) {
	for _, c := range m.Skills {
		if c.Name == name {
			return c, true
		}
	}
	return SkillCategory{}, false
}

// HasSkill reports whether category/index addresses a rendered skill tag.
func (m *Model) HasSkill(category string, index int) bool {
	c, ok := m.Category(category)
	return ok && index >= 0 && index < len(c.Skills)
}
