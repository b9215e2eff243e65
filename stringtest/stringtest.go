package stringtest

import "strings"

// Input dedents a raw string literal used as test input or expected output.
// It strips a single leading and a single trailing newline (the artifacts of
// writing a backtick literal on its own lines), then removes the common
// leading whitespace from every non-blank line while preserving relative
// indentation. Whitespace-only lines collapse to empty lines.
//
// Example:
//
//	stringtest.Input(`
//	    <Q1> <http://schema.org/description> "capital of Germany"@en .
//	    <Q1> <http://schema.org/description> "Hauptstadt"@de .
//	`) // -> `<Q1> ...@en .` + "\n" + `<Q1> ...@de .`
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lead := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || lead < indent {
			indent = lead
		}
	}

	if indent < 0 {
		indent = 0
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct expected test output with explicit line endings on
// Windows.
//
// Example:
//
//	want := stringtest.JoinCRLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\r\nline2\r\nline3"
func JoinCRLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}
