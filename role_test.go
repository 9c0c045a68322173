package tldr

import "testing"

func TestClassify(t *testing.T) {
	cases := map[string]Role{
		"# tar":                  RoleTitle,
		"> Archiving utility.":   RoleDescription,
		"- Create an archive:":   RoleBullet,
		"`tar cf {{file}}`":      RoleExample,
		"`":                      RoleExample,
		"":                       RoleBlank,
		"   \t ":                 RoleBlank,
		"#tar":                   RoleInvalid,
		">no space":              RoleInvalid,
		"-":                      RoleInvalid,
		"plain text":             RoleInvalid,
		" # indented title":      RoleInvalid,
		"## second level":        RoleInvalid,
		"# > mixed prefixes win": RoleTitle,
	}
	for line, want := range cases {
		if got := Classify(line); got != want {
			t.Fatalf("Classify(%q)=%s want %s", line, got, want)
		}
	}
}

func TestClassifyStripsPrefix(t *testing.T) {
	cases := []struct {
		line string
		body string
	}{
		{"# tar", "tar"},
		{"> desc", "desc"},
		{"- bullet", "bullet"},
		{"`ls`", "ls`"},
		{"  ", "  "},
	}
	for _, tc := range cases {
		if got := classify(tc.line).body; got != tc.body {
			t.Fatalf("classify(%q).body=%q want %q", tc.line, got, tc.body)
		}
	}
}
