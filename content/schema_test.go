package content

import (
	"strings"
	"testing"
)

func TestValidateReconciledDocuments(t *testing.T) {
	inputs := []string{
		``,
		`{"skillsData":[{"name":"Go"}],"heroRoles":[]}`,
		`{"projectsData":[{"title":"X","services":[{"name":"Y"}]}]}`,
	}
	for _, in := range inputs {
		data, err := Marshal(ReconcileJSON([]byte(in), Default()))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if err := Validate(data); err != nil {
			t.Errorf("Validate(reconcile(%q)) = %v, want nil", in, err)
		}
	}
}

func TestValidateRejectsIncompleteDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty object", `{}`},
		{"wrong type", `{"userName":1}`},
		{"not an object", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate([]byte(tt.input)); err == nil {
				t.Errorf("Validate(%s) should fail", tt.input)
			}
		})
	}
}

func TestValidateRejectsPersistedIcons(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	withIcon := strings.Replace(string(data), `"name":"Web Development","description":"Building responsive`,
		`"name":"Web Development","icon":"code","description":"Building responsive`, 1)
	if withIcon == string(data) {
		t.Fatal("test fixture did not inject an icon")
	}
	if err := Validate([]byte(withIcon)); err == nil {
		t.Error("Validate should reject a skill that carries an icon")
	}
}
