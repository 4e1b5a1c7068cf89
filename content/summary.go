package content

import (
	"fmt"
	"strings"
)

// ChatContext is the condensed view of a document handed to the chat model.
type ChatContext struct {
	Name         string
	Subheading   string
	Roles        []string
	Objective    string
	Expertise    []string
	Technologies []string
	Projects     []string
	Email        string
	Location     string
}

// Summary condenses d for the chat prompt. Technologies are de-duplicated in
// first-seen order across all skills.
func Summary(d Document) ChatContext {
	ctx := ChatContext{
		Name:       d.Name,
		Subheading: d.HeroSubheading,
		Roles:      d.HeroRoles,
		Objective:  d.CareerObjective,
		Email:      d.Email,
		Location:   d.Location,
	}
	for _, a := range d.ExpertiseAreas {
		ctx.Expertise = append(ctx.Expertise, a.Name)
	}
	seen := make(map[string]struct{})
	for _, s := range d.Skills {
		for _, t := range s.Technologies {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			ctx.Technologies = append(ctx.Technologies, t)
		}
	}
	for _, p := range d.Projects {
		ctx.Projects = append(ctx.Projects, p.Title)
	}
	return ctx
}

func (c ChatContext) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Name: %s\n", c.Name)
	fmt.Fprintf(&b, "- Summary: %s\n", c.Subheading)
	fmt.Fprintf(&b, "- Roles: %s\n", strings.Join(c.Roles, ", "))
	fmt.Fprintf(&b, "- Goal: %s\n", c.Objective)
	fmt.Fprintf(&b, "- Expertise: %s\n", strings.Join(c.Expertise, ", "))
	fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(c.Technologies, ", "))
	fmt.Fprintf(&b, "- Key Projects: %s\n", strings.Join(c.Projects, ", "))
	fmt.Fprintf(&b, "- Contact: %s, located in %s", c.Email, c.Location)
	return b.String()
}
