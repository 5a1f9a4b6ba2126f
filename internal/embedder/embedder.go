// Package embedder is the I/O shell around the header package: it
// reads a binary input file fully into memory and writes the rendered
// C++ header to the output path.
package embedder

import (
	"fmt"
	"os"

	"github.com/bin2hdr/bin2hdr/internal/header"
)

// Result describes a completed embed for reporting at the CLI layer.
type Result struct {
	Guard string
	Bytes int
}

// Embed reads inputPath, renders the header and writes it to
// outputPath, overwriting any existing file. The input is read before
// the output is opened, so a read failure leaves the output path
// untouched. There is no atomic-write guarantee: a failure mid-write
// may leave a truncated file.
func Embed(inputPath, outputPath string) (Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}

	guard := header.GuardName(outputPath)
	if err := os.WriteFile(outputPath, header.Render(guard, data), 0644); err != nil {
		return Result{}, fmt.Errorf("write header: %w", err)
	}

	return Result{Guard: guard, Bytes: len(data)}, nil
}
