package content

const (
	defaultName     = "Alex Morgan"
	defaultEmail    = "hello@example.com"
	defaultLocation = "Lisbon, Portugal"
)

var defaultDocument = Document{
	Name:      defaultName,
	Email:     defaultEmail,
	Location:  defaultLocation,
	HeroImage: "https://i.pravatar.cc/400?u=" + defaultEmail,
	HeroRoles: []string{"Web Developer", "Designer", "Creative Thinker"},
	HeroSubheading: "Developing intelligent solutions with a creative mindset.",
	CareerObjective: "I aspire to gain higher education and global work experience, " +
		"expanding my skills and contributing effectively to my chosen field.",
	ExpertiseAreas: []ExpertiseArea{
		{Name: "Web Development", Description: "Building basic websites and web applications."},
		{Name: "Graphic Design", Description: "Creating visuals with design tools."},
	},
	Skills: []Skill{
		{
			Name:         "Web Development",
			Icon:         IconCode,
			Description:  "Building responsive and functional websites using foundational web technologies.",
			Technologies: []string{"HTML", "CSS (Basic)", "WordPress"},
		},
		{
			Name:         "Graphic Design",
			Icon:         IconDesign,
			Description:  "Creating visual content and user interface elements using design software.",
			Technologies: []string{"Photoshop"},
		},
	},
	Projects: []Project{
		{
			Category:    "Community Event",
			Title:       "NKG E-Sports Tournament",
			Description: "Organized and managed a local e-sports tournament, handling logistics and promotion.",
			Services: []ProjectService{
				{Name: "Event Management", Icon: IconAutomation},
				{Name: "Community Engagement", Icon: IconDevOps},
			},
		},
	},
	ContactInfo: ContactInfo{
		Email:    defaultEmail,
		Phone:    "Available upon request",
		Location: defaultLocation,
	},
	SocialLinks: SocialLinks{
		LinkedIn:  "#",
		GitHub:    "#",
		Behance:   "#",
		Instagram: "#",
		Website:   "#",
		Dribbble:  "#",
	},
}

// Default returns a fresh copy of the built-in document. Callers may modify
// the result freely.
func Default() Document {
	return Clone(defaultDocument)
}
