//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// samplesDir holds documents picked up by the Analyze target.
const samplesDir = "samples"

// Analyze parses every .docx and .pdf under samples/ and stores the records.
func Analyze() error {
	mg.Deps(Build)

	var files []string
	for _, pattern := range []string{"*.docx", "*.pdf"} {
		matches, err := filepath.Glob(filepath.Join(samplesDir, pattern))
		if err != nil {
			return err
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		fmt.Printf("[analyze] No documents in %s/.\n", samplesDir)
		return nil
	}

	args := append([]string{"analyze", "--save", "--format", "yaml"}, files...)
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Export writes every stored record to export/records.yaml.
func Export() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "files", "export", "--format", "yaml", "-o", filepath.Join("export", "records.yaml"))
}
