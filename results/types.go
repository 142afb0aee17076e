package results

// Match represents a single match event from the ripgrep JSON stream
type Match struct {
	Path       string // path as reported by ripgrep
	LineNumber int    // 1-based
}
