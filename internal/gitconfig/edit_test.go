package gitconfig

import (
	"strings"
	"testing"
)

func TestApplyChange(t *testing.T) {
	tests := []struct {
		name    string
		content string
		change  change
		want    string
	}{
		{
			name:    "ReplacesInPlace",
			content: "[user \"w\"]\n\tname = Old ; note\n\temail = e@example.com\n",
			change:  change{"user", "w", "name", "New"},
			want:    "[user \"w\"]\n\tname = New\n\temail = e@example.com\n",
		},
		{
			name:    "AppendsToExistingSection",
			content: "[user \"w\"]\n\tname = N\n\n[core]\n\teditor = vim\n",
			change:  change{"user", "w", "email", "w@example.com"},
			want:    "[user \"w\"]\n\tname = N\n\temail = w@example.com\n\n[core]\n\teditor = vim\n",
		},
		{
			name:    "AppendsToTopLevelSection",
			content: "[user]\n\tname = D\n[core]\n\teditor = vim\n",
			change:  change{"user", "", "email", "d@example.com"},
			want:    "[user]\n\tname = D\n\temail = d@example.com\n[core]\n\teditor = vim\n",
		},
		{
			name:    "NewSectionKeepsCommentsAndBareKeys",
			content: "# my comment\n[core]\n\tfsmonitor\n\tautocrlf = input ; trailing\n",
			change:  change{"user", "work", "name", "W"},
			want:    "# my comment\n[core]\n\tfsmonitor\n\tautocrlf = input ; trailing\n[user \"work\"]\n\tname = W\n",
		},
		{
			name:    "EmptyFile",
			content: "",
			change:  change{"user", "team.infra", "name", "Infra"},
			want:    "[user \"team.infra\"]\n\tname = Infra\n",
		},
		{
			name:    "NoTrailingNewline",
			content: "[core]\n\teditor = vim",
			change:  change{"user", "w", "name", "W"},
			want:    "[core]\n\teditor = vim\n[user \"w\"]\n\tname = W\n",
		},
		{
			name:    "DropsDuplicateValues",
			content: "[user \"x\"]\n\temail = a@example.com\n\temail = b@example.com\n",
			change:  change{"user", "x", "email", "c@example.com"},
			want:    "[user \"x\"]\n\temail = c@example.com\n",
		},
		{
			name:    "ReplacesContinuedValue",
			content: "[user \"x\"]\n\tname = first \\\n\tsecond\n\temail = e@example.com\n",
			change:  change{"user", "x", "name", "N"},
			want:    "[user \"x\"]\n\tname = N\n\temail = e@example.com\n",
		},
		{
			name:    "SectionAndOptionIgnoreCase",
			content: "[User \"x\"]\n\tEmail = a@example.com\n",
			change:  change{"user", "x", "email", "b@example.com"},
			want:    "[User \"x\"]\n\temail = b@example.com\n",
		},
		{
			name:    "SubsectionIsCaseSensitive",
			content: "[user \"Work\"]\n\tname = A\n",
			change:  change{"user", "work", "name", "B"},
			want:    "[user \"Work\"]\n\tname = A\n[user \"work\"]\n\tname = B\n",
		},
		{
			name:    "HeaderWithComment",
			content: "[user \"w\"] # mine\n\tname = A\n",
			change:  change{"user", "w", "name", "B"},
			want:    "[user \"w\"] # mine\n\tname = B\n",
		},
		{
			name:    "LegacyDottedHeader",
			content: "[user.w]\n\tname = A\n",
			change:  change{"user", "w", "name", "B"},
			want:    "[user.w]\n\tname = B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := applyChange(strings.Split(tt.content, "\n"), tt.change)
			if got := strings.Join(lines, "\n"); got != tt.want {
				t.Errorf("applyChange() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":      "Jane Doe",
		"":              `""`,
		" padded":       `" padded"`,
		"a#b":           `"a#b"`,
		"a;b":           `"a;b"`,
		`C:\keys\id`:    `C:\\keys\\id`,
		`say "hi"`:      `say \"hi\"`,
		"line1\nline2":  `line1\nline2`,
		"~/.ssh/id_oss": "~/.ssh/id_oss",
	}

	for in, want := range tests {
		if got := formatValue(in); got != want {
			t.Errorf("formatValue(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatHeader(t *testing.T) {
	tests := []struct {
		section, subsection, want string
	}{
		{"user", "", "[user]"},
		{"user", "team.infra", `[user "team.infra"]`},
		{"user", `we"ird\name`, `[user "we\"ird\\name"]`},
	}

	for _, tt := range tests {
		if got := formatHeader(tt.section, tt.subsection); got != tt.want {
			t.Errorf("formatHeader(%q, %q) = %q, want %q", tt.section, tt.subsection, got, tt.want)
		}
	}
}
