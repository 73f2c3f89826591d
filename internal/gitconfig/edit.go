package gitconfig

import "strings"

// change is one Set waiting to be written back to the file.
type change struct {
	section    string
	subsection string
	name       string
	value      string
}

// applyChange rewrites lines so that the option named by c holds exactly c.value.
// The first existing line of that option is replaced in place and any later
// ones are dropped. If the option does not exist yet, it goes after the last
// option of the last matching section, or into a new section appended at the
// end. Every other line is kept byte for byte, comments included.
func applyChange(lines []string, c change) []string {
	out := make([]string, 0, len(lines)+2)
	inBlock := false
	written := false
	insertAt := -1

	for i := 0; i < len(lines); i++ {
		if section, subsection, ok := parseHeader(lines[i]); ok {
			inBlock = strings.EqualFold(section, c.section) && subsection == c.subsection
			out = append(out, lines[i])
			if inBlock {
				insertAt = len(out)
			}
			continue
		}

		key, span := parseOption(lines[i:])
		if key == "" {
			out = append(out, lines[i])
			continue
		}

		if inBlock && strings.EqualFold(key, c.name) {
			if !written {
				out = append(out, formatOption(c.name, c.value))
				written = true
			}
		} else {
			out = append(out, lines[i:i+span]...)
			if inBlock {
				insertAt = len(out)
			}
		}
		i += span - 1
	}

	if written {
		return out
	}

	if insertAt >= 0 {
		out = append(out[:insertAt], append([]string{formatOption(c.name, c.value)}, out[insertAt:]...)...)
		return out
	}

	// Keep the trailing empty element that stands for the final newline.
	if n := len(out); n > 0 && out[n-1] == "" {
		out = out[:n-1]
	}
	return append(out, formatHeader(c.section, c.subsection), formatOption(c.name, c.value), "")
}

// parseHeader recognises a section header line, either [section],
// [section "subsection"] or the older [section.subsection].
func parseHeader(line string) (section, subsection string, ok bool) {
	t := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(t, "[") {
		return "", "", false
	}
	t = t[1:]

	end := strings.IndexAny(t, " \t\"]")
	if end <= 0 {
		return "", "", false
	}
	section = t[:end]

	rest := strings.TrimLeft(t[end:], " \t")
	if strings.HasPrefix(rest, "]") {
		if dot := strings.Index(section, "."); dot >= 0 {
			return section[:dot], strings.ToLower(section[dot+1:]), true
		}
		return section, "", true
	}
	if !strings.HasPrefix(rest, `"`) {
		return "", "", false
	}

	var sb strings.Builder
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			if i+1 < len(rest) {
				i++
				sb.WriteByte(rest[i])
			}
		case '"':
			return section, sb.String(), true
		default:
			sb.WriteByte(rest[i])
		}
	}
	return "", "", false
}

// parseOption returns the option name on lines[0] and how many lines the
// option spans, counting backslash continuations. Blank and comment lines
// report an empty name and a span of one.
func parseOption(lines []string) (string, int) {
	t := strings.TrimLeft(lines[0], " \t")

	n := 0
	for n < len(t) && isKeyChar(t[n]) {
		n++
	}
	if n == 0 {
		return "", 1
	}

	span := 1
	more, quoted := continues(t[n:], false)
	for more && span < len(lines) {
		more, quoted = continues(lines[span], quoted)
		span++
	}
	return t[:n], span
}

// continues reports whether a value runs on to the next line, that is whether
// it ends in a backslash outside a comment, and whether a quoted string is
// still open at the end of s.
func continues(s string, quoted bool) (bool, bool) {
	s = strings.TrimRight(s, "\r")
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i == len(s)-1 {
				return true, quoted
			}
			i++
		case '"':
			quoted = !quoted
		case '#', ';':
			if !quoted {
				return false, false
			}
		}
	}
	return false, false
}

func isKeyChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}

func formatHeader(section, subsection string) string {
	if subsection == "" {
		return "[" + section + "]"
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(subsection)
	return "[" + section + ` "` + escaped + `"]`
}

func formatOption(name, value string) string {
	return "\t" + name + " = " + formatValue(value)
}

// formatValue escapes value the way git config reads it back, quoting it when
// it has surrounding whitespace or comment characters.
func formatValue(value string) string {
	if value == "" {
		return `""`
	}

	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`).Replace(value)
	if value != strings.TrimSpace(value) || strings.ContainsAny(value, "#;") {
		return `"` + escaped + `"`
	}
	return escaped
}
