package content

import (
	"bytes"
	"encoding/json"
)

// Reconcile merges an untrusted saved document into defaults and returns a
// fully populated Document. saved is whatever encoding/json produced for the
// stored value (objects as map[string]any, arrays as []any); any other shape,
// including nil, is treated as an absent document.
//
// Scalars are taken from saved only when they are non-empty strings. The
// contactInfo and socialLinks records are merged key by key. heroRoles is used
// only if it is an array made entirely of strings. Keyed sequences
// (expertiseAreas, skillsData, projectsData and each project's services) drop
// entries without an identifying key and resolve every remaining entry against
// a default: same key first, then the default at the same position, then the
// first default. Icons always come from that resolved default.
func Reconcile(saved any, defaults Document) Document {
	s, _ := saved.(map[string]any)
	contact, _ := s["contactInfo"].(map[string]any)
	social, _ := s["socialLinks"].(map[string]any)

	out := Document{
		Name:            stringField(s, "userName", defaults.Name),
		Email:           stringField(s, "userEmail", defaults.Email),
		Location:        stringField(s, "userLocation", defaults.Location),
		HeroImage:       stringField(s, "heroImage", defaults.HeroImage),
		HeroSubheading:  stringField(s, "heroSubheading", defaults.HeroSubheading),
		CareerObjective: stringField(s, "careerObjective", defaults.CareerObjective),
		HeroRoles:       stringList(s["heroRoles"], defaults.HeroRoles),
		ContactInfo: ContactInfo{
			Email:    stringField(contact, "email", defaults.ContactInfo.Email),
			Phone:    stringField(contact, "phone", defaults.ContactInfo.Phone),
			Location: stringField(contact, "location", defaults.ContactInfo.Location),
		},
		SocialLinks: SocialLinks{
			LinkedIn:  stringField(social, "linkedin", defaults.SocialLinks.LinkedIn),
			GitHub:    stringField(social, "github", defaults.SocialLinks.GitHub),
			Behance:   stringField(social, "behance", defaults.SocialLinks.Behance),
			Instagram: stringField(social, "instagram", defaults.SocialLinks.Instagram),
			Website:   stringField(social, "website", defaults.SocialLinks.Website),
			Dribbble:  stringField(social, "dribbble", defaults.SocialLinks.Dribbble),
		},
		ExpertiseAreas: mergeKeyed(s["expertiseAreas"], defaults.ExpertiseAreas, "name",
			func(a ExpertiseArea) string { return a.Name },
			func(m map[string]any, def ExpertiseArea) ExpertiseArea {
				return ExpertiseArea{
					Name:        stringField(m, "name", def.Name),
					Description: stringField(m, "description", def.Description),
				}
			}),
		Skills: mergeKeyed(s["skillsData"], defaults.Skills, "name",
			func(sk Skill) string { return sk.Name },
			func(m map[string]any, def Skill) Skill {
				return Skill{
					Name:         stringField(m, "name", def.Name),
					Icon:         def.Icon,
					Description:  stringField(m, "description", def.Description),
					Technologies: stringList(m["technologies"], def.Technologies),
				}
			}),
		Projects: mergeKeyed(s["projectsData"], defaults.Projects, "title",
			func(p Project) string { return p.Title },
			func(m map[string]any, def Project) Project {
				return Project{
					Title:       stringField(m, "title", def.Title),
					Category:    stringField(m, "category", def.Category),
					Description: stringField(m, "description", def.Description),
					Services:    mergeServices(m["services"], def.Services),
				}
			}),
	}
	return Clone(out)
}

// ReconcileJSON decodes data and reconciles it. Empty or malformed input is
// treated as an absent document.
func ReconcileJSON(data []byte, defaults Document) Document {
	var saved any
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &saved); err != nil {
			saved = nil
		}
	}
	return Reconcile(saved, defaults)
}

// Marshal serializes d in its persisted form. Icons are dropped and nil
// slices are written as empty arrays.
func Marshal(d Document) ([]byte, error) {
	return json.Marshal(Clone(d))
}

func mergeServices(saved any, defaults []ProjectService) []ProjectService {
	return mergeKeyed(saved, defaults, "name",
		func(s ProjectService) string { return s.Name },
		func(m map[string]any, def ProjectService) ProjectService {
			return ProjectService{
				Name: stringField(m, "name", def.Name),
				Icon: def.Icon,
			}
		})
}

// mergeKeyed reconciles a keyed-record sequence. When saved is not an array
// the defaults are returned as they are.
func mergeKeyed[T any](saved any, defaults []T, keyField string, keyOf func(T) string, build func(map[string]any, T) T) []T {
	items, ok := saved.([]any)
	if !ok {
		return defaults
	}
	out := make([]T, 0, len(items))
	pos := 0
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		key, _ := m[keyField].(string)
		if key == "" {
			continue
		}
		def, found := matchDefault(defaults, key, pos, keyOf)
		pos++
		if !found {
			continue
		}
		out = append(out, build(m, def))
	}
	return out
}

// matchDefault resolves the default for a saved entry with the given key at
// position pos among the surviving entries.
func matchDefault[T any](defaults []T, key string, pos int, keyOf func(T) string) (T, bool) {
	for _, d := range defaults {
		if keyOf(d) == key {
			return d, true
		}
	}
	if pos < len(defaults) {
		return defaults[pos], true
	}
	if len(defaults) > 0 {
		return defaults[0], true
	}
	var zero T
	return zero, false
}

func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// stringList returns v when it is an array of strings, otherwise fallback.
// An array with a single non-string element is rejected as a whole.
func stringList(v any, fallback []string) []string {
	items, ok := v.([]any)
	if !ok {
		return fallback
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return fallback
		}
		out = append(out, s)
	}
	return out
}
