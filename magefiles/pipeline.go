package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// runCLI executes the built news-engine binary, building it first if needed.
func runCLI(args ...string) error {
	bin := filepath.Join(binDir, binName)
	if _, err := os.Stat(bin); err != nil {
		if err := Build(); err != nil {
			return err
		}
	}
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Ingest pulls the configured feeds into a dated raw capture.
func Ingest() error {
	return runCLI("ingest")
}

// Index embeds the latest capture into the vector index.
func Index() error {
	return runCLI("index")
}

// Pipeline runs ingest then index, leaving the corpus ready to query.
func Pipeline() {
	mg.SerialDeps(Ingest, Index)
}

// Serve starts the HTTP search API.
func Serve() error {
	return runCLI("serve")
}
