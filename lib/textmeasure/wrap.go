package textmeasure

import (
	"strings"

	"github.com/rivo/uniseg"

	"oss.terrastruct.com/timeline/tlconfig"
)

// Lines breaks text into the lines it is drawn as.
//
// SingleLine joins everything onto one line and clips it at maxWidth.
// MultiLine breaks at Unicode line break opportunities (spaces, after hyphens,
// between ideographs), falling back to grapheme boundaries for runs wider
// than maxWidth, and keeps at most MaxLines lines. EllipsizeEnd wraps
// the same way and ends a truncated last line with an ellipsis. A maxWidth of
// zero or less disables wrapping and clipping.
func (r *Ruler) Lines(text string, style tlconfig.TextStyle, maxWidth float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if style.Mode == tlconfig.SingleLine {
		line := strings.Join(strings.Fields(text), " ")
		if maxWidth > 0 {
			line, _ = r.clip(line, style, maxWidth)
		}
		return []string{line}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, r.wrap(para, style, maxWidth)...)
	}

	if style.MaxLines > 0 && len(lines) > style.MaxLines {
		lines = lines[:style.MaxLines]
		if style.Mode == tlconfig.EllipsizeEnd {
			lines[len(lines)-1] = r.ellipsize(lines[len(lines)-1], style, maxWidth)
		}
	}
	return lines
}

func (r *Ruler) wrap(para string, style tlconfig.TextStyle, maxWidth float64) []string {
	para = strings.Join(strings.Fields(para), " ")
	if para == "" {
		// blank lines keep their height
		return []string{""}
	}
	if maxWidth <= 0 {
		return []string{para}
	}

	fits := func(s string) bool {
		return r.MeasureWidth(strings.TrimRight(s, " "), style) <= maxWidth
	}

	var lines []string
	line := ""
	state := -1
	for para != "" {
		// segments end at UAX #14 break opportunities and keep trailing spaces
		var seg string
		seg, para, _, state = uniseg.FirstLineSegmentInString(para, state)
		if fits(line + seg) {
			line += seg
			continue
		}
		if line != "" {
			lines = append(lines, strings.TrimRight(line, " "))
		}
		// the segment alone is too wide, so break it between graphemes
		for !fits(seg) {
			head, rest := r.clip(seg, style, maxWidth)
			if head == "" {
				// not even one grapheme fits
				head, rest = firstGrapheme(seg)
			}
			lines = append(lines, head)
			seg = rest
		}
		line = seg
	}
	if line = strings.TrimRight(line, " "); line != "" {
		lines = append(lines, line)
	}
	return lines
}

// clip returns the longest grapheme prefix of s that fits maxWidth, and the
// rest of s.
func (r *Ruler) clip(s string, style tlconfig.TextStyle, maxWidth float64) (head, rest string) {
	if r.MeasureWidth(s, style) <= maxWidth {
		return s, ""
	}
	gr := uniseg.NewGraphemes(s)
	end := 0
	for gr.Next() {
		_, to := gr.Positions()
		if r.MeasureWidth(s[:to], style) > maxWidth {
			break
		}
		end = to
	}
	return s[:end], s[end:]
}

func (r *Ruler) ellipsize(line string, style tlconfig.TextStyle, maxWidth float64) string {
	line = strings.TrimRight(line, " ")
	if maxWidth <= 0 {
		return line + ELLIPSIS
	}
	budget := maxWidth - r.MeasureWidth(ELLIPSIS, style)
	if budget <= 0 {
		return ELLIPSIS
	}
	head, _ := r.clip(line, style, budget)
	return strings.TrimRight(head, " ") + ELLIPSIS
}

func firstGrapheme(s string) (head, rest string) {
	gr := uniseg.NewGraphemes(s)
	if !gr.Next() {
		return s, ""
	}
	_, to := gr.Positions()
	return s[:to], s[to:]
}
