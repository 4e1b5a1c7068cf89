// Package content defines the portfolio document, its built-in defaults and
// the reconciler that turns an untrusted saved document into a complete one.
package content

// IconKey names a presentational icon. Icons are never serialized: they are
// restored from the defaults whenever a document is reconciled.
type IconKey string

const (
	IconCode       IconKey = "code"
	IconDesign     IconKey = "design"
	IconDevOps     IconKey = "devops"
	IconAutomation IconKey = "automation"
)

// Document is the single persisted content record backing the site.
type Document struct {
	Name            string          `json:"userName"`
	Email           string          `json:"userEmail"`
	Location        string          `json:"userLocation"`
	HeroImage       string          `json:"heroImage"`
	HeroRoles       []string        `json:"heroRoles"`
	HeroSubheading  string          `json:"heroSubheading"`
	CareerObjective string          `json:"careerObjective"`
	ExpertiseAreas  []ExpertiseArea `json:"expertiseAreas"`
	Skills          []Skill         `json:"skillsData"`
	Projects        []Project       `json:"projectsData"`
	ContactInfo     ContactInfo     `json:"contactInfo"`
	SocialLinks     SocialLinks     `json:"socialLinks"`
}

// ContactInfo is a total record: every key is always present.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// SocialLinks maps each supported platform to a URL.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Behance   string `json:"behance"`
	Instagram string `json:"instagram"`
	Website   string `json:"website"`
	Dribbble  string `json:"dribbble"`
}

// ExpertiseArea is a named area with a short description.
type ExpertiseArea struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Skill is keyed by Name.
type Skill struct {
	Name         string   `json:"name"`
	Icon         IconKey  `json:"-"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Project is keyed by Title.
type Project struct {
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Services    []ProjectService `json:"services"`
}

// ProjectService is keyed by Name.
type ProjectService struct {
	Name string  `json:"name"`
	Icon IconKey `json:"-"`
}

// Links returns the social links as ordered platform/URL pairs.
func (s SocialLinks) Links() []Link {
	return []Link{
		{Platform: "linkedin", URL: s.LinkedIn},
		{Platform: "github", URL: s.GitHub},
		{Platform: "behance", URL: s.Behance},
		{Platform: "instagram", URL: s.Instagram},
		{Platform: "website", URL: s.Website},
		{Platform: "dribbble", URL: s.Dribbble},
	}
}

// Link is a single social platform entry.
type Link struct {
	Platform string
	URL      string
}

// Clone returns a deep copy of d. Nil slices come back empty so that a
// serialized clone always carries arrays, never null.
func Clone(d Document) Document {
	out := d
	out.HeroRoles = cloneStrings(d.HeroRoles)
	out.ExpertiseAreas = make([]ExpertiseArea, len(d.ExpertiseAreas))
	copy(out.ExpertiseAreas, d.ExpertiseAreas)
	out.Skills = make([]Skill, len(d.Skills))
	for i, s := range d.Skills {
		s.Technologies = cloneStrings(s.Technologies)
		out.Skills[i] = s
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		services := make([]ProjectService, len(p.Services))
		copy(services, p.Services)
		p.Services = services
		out.Projects[i] = p
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
