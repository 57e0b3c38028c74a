package gitpilot

import "testing"

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "feat(x): add y", "feat(x): add y"},
		{"surrounding whitespace", "  feat(x): add y\n", "feat(x): add y"},
		{"double quotes", `"feat(x): add y"`, "feat(x): add y"},
		{"single quotes", `'fix(api): handle nil'`, "fix(api): handle nil"},
		{"quotes and whitespace", ` "feat(x): add y" `, "feat(x): add y"},
		{"whitespace inside quotes", `" feat(x): add y "`, "feat(x): add y"},
		{"mismatched quotes", `"feat(x): add y'`, `"feat(x): add y'`},
		{"only one layer removed", `""feat(x): add y""`, `"feat(x): add y"`},
		{"interior quotes kept", `fix: handle "null" input`, `fix: handle "null" input`},
		{"lone quote", `"`, `"`},
		{"empty", "", ""},
		{"only whitespace", "  \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanMessage(tt.in); got != tt.want {
				t.Errorf("CleanMessage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
