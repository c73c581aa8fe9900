package ghostscript

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const workspacePrefix = "pdfhero-"

// workspace is the scratch directory for one compression run. Directory names
// are unique per job, so concurrent runs never touch each other's files.
type workspace struct {
	dir string
}

func newWorkspace(input []byte) (*workspace, error) {
	dir := filepath.Join(os.TempDir(), workspacePrefix+uuid.New().String())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	ws := &workspace{dir: dir}
	if err := os.WriteFile(ws.inputPath(), input, 0o600); err != nil {
		ws.cleanup()
		return nil, fmt.Errorf("failed to write input file: %w", err)
	}

	return ws, nil
}

func (w *workspace) inputPath() string {
	return filepath.Join(w.dir, "input.pdf")
}

func (w *workspace) candidatePath(preset string) string {
	return filepath.Join(w.dir, preset+".pdf")
}

// cleanup removes the input, every candidate and the directory itself. Safe to
// call more than once.
func (w *workspace) cleanup() {
	os.RemoveAll(w.dir)
}
