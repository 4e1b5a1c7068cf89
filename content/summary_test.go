package content

import (
	"reflect"
	"strings"
	"testing"
)

func TestSummaryDeduplicatesTechnologies(t *testing.T) {
	d := Default()
	d.Skills = []Skill{
		{Name: "A", Technologies: []string{"Go", "SQL"}},
		{Name: "B", Technologies: []string{"SQL", "HTML", "Go"}},
	}
	got := Summary(d).Technologies
	want := []string{"Go", "SQL", "HTML"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Technologies = %v, want %v", got, want)
	}
}

func TestSummaryString(t *testing.T) {
	d := Default()
	s := Summary(d).String()
	for _, want := range []string{
		"- Name: " + d.Name,
		"- Roles: Web Developer, Designer, Creative Thinker",
		"- Expertise: Web Development, Graphic Design",
		"- Key Projects: NKG E-Sports Tournament",
		"- Contact: " + d.Email + ", located in " + d.Location,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}
