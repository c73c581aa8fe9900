package ghostscript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"pdf-hero/internal/domain"

	"github.com/wb-go/wbf/zlog"
)

var (
	// ErrNotAvailable means the Ghostscript binary could not be located.
	// Callers are expected to fall back to the uncompressed input.
	ErrNotAvailable = errors.New("ghostscript is not available")

	// ErrExec means Ghostscript was found but a preset run failed.
	ErrExec = errors.New("ghostscript execution failed")
)

// Compressor shrinks PDFs by running Ghostscript under a series of presets
// and keeping the smallest output.
type Compressor struct {
	binary  string
	timeout time.Duration
	logger  *zlog.Zerolog
}

func NewCompressor(binary string, timeout time.Duration, logger *zlog.Zerolog) *Compressor {
	return &Compressor{
		binary:  binary,
		timeout: timeout,
		logger:  logger,
	}
}

// Compress writes input to a private scratch workspace, runs every preset and
// returns the smallest result. The original bytes are the baseline, so the
// output is never larger than the input. The workspace is removed on every
// exit path.
func (c *Compressor) Compress(ctx context.Context, input []byte) ([]byte, error) {
	binPath, err := exec.LookPath(c.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAvailable, c.binary)
	}

	ws, err := newWorkspace(input)
	if err != nil {
		return nil, err
	}
	defer ws.cleanup()

	best := input
	bestSize := int64(len(input))

	for _, preset := range domain.CompressionPresets() {
		candidate, err := c.runPreset(ctx, binPath, ws, preset)
		if err != nil {
			return nil, err
		}

		size := int64(len(candidate))
		c.logger.Debug().
			Str("preset", preset.Name).
			Int64("candidate_size", size).
			Int64("best_size", bestSize).
			Msg("Preset finished")

		if size < bestSize {
			best = candidate
			bestSize = size
		}
	}

	return best, nil
}

func (c *Compressor) runPreset(ctx context.Context, binPath string, ws *workspace, preset domain.CompressionPreset) ([]byte, error) {
	outputPath := ws.candidatePath(preset.Name)

	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dAutoRotatePages=/None",
	}
	args = append(args, preset.Args...)
	args = append(args, "-sOutputFile="+outputPath, ws.inputPath())

	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if runCtx.Err() != nil {
			return nil, fmt.Errorf("%w: preset %s: %v", ErrExec, preset.Name, runCtx.Err())
		}
		return nil, fmt.Errorf("%w: preset %s: %v, output: %s", ErrExec, preset.Name, err, output)
	}

	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: preset %s did not create output file", ErrExec, preset.Name)
	}

	candidate, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: preset %s: reading output: %v", ErrExec, preset.Name, err)
	}

	return candidate, nil
}

// IsAvailable reports whether the configured Ghostscript binary can be found.
func (c *Compressor) IsAvailable() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}
