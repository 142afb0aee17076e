package preview

import (
	"fmt"
	"os/exec"

	"github.com/takaishi/rgnav/results"
)

// FallbackText is shown in the preview pane when the formatter fails or
// its output cannot be converted.
const FallbackText = "Error loading preview"

// Builder turns a match into a styled preview by shelling out to the
// formatter. Nothing is cached; every call runs a fresh subprocess.
type Builder struct {
	bin string
	run func(bin string, args ...string) ([]byte, error)
}

// NewBuilder returns a Builder that invokes the given formatter binary.
func NewBuilder(bin string) *Builder {
	return &Builder{bin: bin, run: runCommand}
}

func runCommand(bin string, args ...string) ([]byte, error) {
	return exec.Command(bin, args...).Output()
}

// Load builds the preview for a match. A formatter that fails to start
// or exits non-zero, and output that fails escape conversion, all
// degrade to the fixed fallback text; a preview never ends the session.
func (b *Builder) Load(m results.Match) Text {
	w := WindowAround(m.LineNumber)
	out, err := b.run(b.bin,
		"--style", "plain",
		"--paging", "never",
		"--color", "always",
		"--line-range", fmt.Sprintf("%d:%d", w.Start, w.End),
		m.Path,
	)
	if err != nil {
		return Plain(FallbackText)
	}
	text, err := Convert(string(out))
	if err != nil {
		return Plain(FallbackText)
	}
	return text
}
