package preview

import (
	"fmt"
	"strconv"
	"strings"
)

// maxLineChars caps each raw formatter output line, escape bytes
// included, before escape interpretation. A sequence cut in half by the
// limit is dropped rather than half-applied.
const maxLineChars = 80

// Convert interprets the SGR escape sequences in formatter output and
// produces styled segments. Style state carries across lines the way a
// terminal would carry it. Non-SGR control sequences are discarded;
// a sequence containing invalid bytes fails the whole conversion.
func Convert(raw string) (Text, error) {
	raw = strings.TrimSuffix(raw, "\n")

	var text Text
	var current Style
	for _, rawLine := range strings.Split(raw, "\n") {
		rawLine = strings.TrimSuffix(rawLine, "\r")
		line, next, err := convertLine(truncateRaw(rawLine), current)
		if err != nil {
			return Text{}, err
		}
		text.Lines = append(text.Lines, line)
		current = next
	}
	return text, nil
}

func truncateRaw(line string) string {
	runes := []rune(line)
	if len(runes) > maxLineChars {
		return string(runes[:maxLineChars])
	}
	return line
}

func convertLine(line string, current Style) (Line, Style, error) {
	var out Line
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			out = append(out, Segment{Content: run.String(), Style: current})
			run.Reset()
		}
	}

	runes := []rune(line)
	i := 0
	for i < len(runes) {
		if runes[i] != 0x1b {
			run.WriteRune(runes[i])
			i++
			continue
		}
		if i+1 >= len(runes) {
			// Escape cut off by truncation or end of output.
			break
		}
		if runes[i+1] == ']' {
			// OSC sequence (hyperlinks, titles): skip through its
			// BEL or ST terminator so the payload never shows up as
			// preview text.
			i = skipOSC(runes, i+2)
			continue
		}
		if runes[i+1] != '[' {
			// Other two-rune escape; skip the introducer pair.
			i += 2
			continue
		}
		j := i + 2
		for j < len(runes) && runes[j] >= 0x20 && runes[j] <= 0x3f {
			j++
		}
		if j >= len(runes) {
			// Unterminated sequence at the cut point; drop it.
			break
		}
		final := runes[j]
		if final < 0x40 || final > 0x7e {
			return nil, Style{}, fmt.Errorf("malformed escape sequence: invalid byte %q", final)
		}
		if final == 'm' {
			flush()
			current = applySGR(string(runes[i+2:j]), current)
		}
		i = j + 1
	}
	flush()
	return out, current, nil
}

// skipOSC returns the index just past an OSC sequence whose payload
// starts at j. Unterminated sequences swallow the rest of the line.
func skipOSC(runes []rune, j int) int {
	for j < len(runes) {
		if runes[j] == 0x07 {
			return j + 1
		}
		if runes[j] == 0x1b && j+1 < len(runes) && runes[j+1] == '\\' {
			return j + 2
		}
		j++
	}
	return j
}

// applySGR folds one parameter list (the bytes between "ESC[" and "m")
// into the running style.
func applySGR(params string, st Style) Style {
	if params == "" {
		return Style{}
	}
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			st = Style{}
		case code == 1:
			st.Bold = true
		case code == 2:
			st.Faint = true
		case code == 3:
			st.Italic = true
		case code == 4:
			st.Underline = true
		case code == 7:
			st.Reverse = true
		case code == 22:
			st.Bold, st.Faint = false, false
		case code == 23:
			st.Italic = false
		case code == 24:
			st.Underline = false
		case code == 27:
			st.Reverse = false
		case code >= 30 && code <= 37:
			st.Fg = strconv.Itoa(code - 30)
		case code == 39:
			st.Fg = ""
		case code >= 40 && code <= 47:
			st.Bg = strconv.Itoa(code - 40)
		case code == 49:
			st.Bg = ""
		case code >= 90 && code <= 97:
			st.Fg = strconv.Itoa(code - 90 + 8)
		case code >= 100 && code <= 107:
			st.Bg = strconv.Itoa(code - 100 + 8)
		case code == 38 || code == 48:
			color, consumed := extendedColor(parts[i+1:])
			if consumed == 0 {
				// Invalid or incomplete 38/48 introducer; the rest of
				// the list is its tail, so abandon it rather than
				// misread the tail as standalone codes.
				return st
			}
			if code == 38 {
				st.Fg = color
			} else {
				st.Bg = color
			}
			i += consumed
		}
	}
	return st
}

// extendedColor decodes the tail of a 38/48 parameter: "5;N" for the
// 256-color palette, "2;R;G;B" for truecolor. bat emits truecolor by
// default.
func extendedColor(parts []string) (string, int) {
	if len(parts) >= 2 && parts[0] == "5" {
		if n, err := strconv.Atoi(parts[1]); err == nil && n >= 0 && n <= 255 {
			return strconv.Itoa(n), 2
		}
	}
	if len(parts) >= 4 && parts[0] == "2" {
		r, errR := strconv.Atoi(parts[1])
		g, errG := strconv.Atoi(parts[2])
		b, errB := strconv.Atoi(parts[3])
		if errR == nil && errG == nil && errB == nil &&
			r >= 0 && r <= 255 && g >= 0 && g <= 255 && b >= 0 && b <= 255 {
			return fmt.Sprintf("#%02x%02x%02x", r, g, b), 4
		}
	}
	return "", 0
}
