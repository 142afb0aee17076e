package preview

import (
	"fmt"
	"os/exec"
)

// formatterNames are the binary names tried in order. Debian installs
// bat as batcat.
var formatterNames = []string{"bat", "batcat"}

// DetectFormatter locates the syntax-highlighting formatter on PATH.
func DetectFormatter() (string, error) {
	for _, name := range formatterNames {
		if _, err := exec.LookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("no formatter found (looked for bat and batcat)")
}
