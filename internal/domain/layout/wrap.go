package layout

import "strings"

// Wrap splits text into lines no wider than width. Explicit newlines are
// kept, words are packed greedily and a word wider than width is broken
// across lines. An empty paragraph yields one empty line.
func Wrap(m Measurer, font Font, text string, width float64) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		out = append(out, wrapParagraph(m, font, para, width)...)
	}
	return out
}

func wrapParagraph(m Measurer, font Font, para string, width float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, w := range words {
		for m.Width(font, w) > width && len([]rune(w)) > 1 {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			var head string
			head, w = splitToWidth(m, font, w, width)
			lines = append(lines, head)
		}

		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if line != "" && m.Width(font, candidate) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitToWidth returns the longest prefix of w (at least one rune) that fits
// width, and the rest.
func splitToWidth(m Measurer, font Font, w string, width float64) (string, string) {
	r := []rune(w)
	n := 1
	for n < len(r) && m.Width(font, string(r[:n+1])) <= width {
		n++
	}
	return string(r[:n]), string(r[n:])
}
