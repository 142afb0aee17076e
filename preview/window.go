package preview

// contextRadius is the number of context lines shown above and below
// the matched line.
const contextRadius = 15

// Window is the 1-based line range requested from the formatter.
type Window struct {
	Start int
	End   int
}

// WindowAround computes the preview range for a matched line. Start is
// floored at 1; End is left unclamped because bat silently stops at the
// end of the file.
func WindowAround(line int) Window {
	start := line - contextRadius
	if start < 1 {
		start = 1
	}
	return Window{Start: start, End: line + contextRadius}
}
