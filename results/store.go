package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Store is an ordered, immutable-after-build sequence of matches.
// Insertion order is stream arrival order.
type Store struct {
	matches []Match
}

// ReadAll drains the entire stream through ParseLine and returns the
// resulting store. Lines that are not usable match events contribute
// nothing; only a read error on the underlying stream fails the build.
// Line length is unbounded: ripgrep repeats the entire matched source
// line in each event, and a match in a minified bundle must not abort
// ingestion.
func ReadAll(r io.Reader) (*Store, error) {
	reader := bufio.NewReaderSize(r, 64*1024)

	matches := make([]Match, 0)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if m, ok := ParseLine(strings.TrimSuffix(line, "\n")); ok {
				matches = append(matches, m)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input stream: %w", err)
		}
	}

	return &Store{matches: matches}, nil
}

// FromStdin builds a store from standard input. It refuses to read from
// an interactive terminal: with nothing piped in, the read would block
// forever waiting for input that never arrives.
func FromStdin() (*Store, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, fmt.Errorf("no piped input detected: pipe `rg --json` output into rgnav")
	}
	return ReadAll(os.Stdin)
}

// Len returns the number of matches in the store.
func (s *Store) Len() int {
	return len(s.matches)
}

// Get returns the match at index i, or ok=false when i is out of range.
func (s *Store) Get(i int) (Match, bool) {
	if i < 0 || i >= len(s.matches) {
		return Match{}, false
	}
	return s.matches[i], true
}

// Paths returns the path label for every match, in store order.
func (s *Store) Paths() []string {
	paths := make([]string, len(s.matches))
	for i, m := range s.matches {
		paths[i] = m.Path
	}
	return paths
}
