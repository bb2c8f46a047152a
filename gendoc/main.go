package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/fabkit-dev/fabkit/cmd"
)

func main() {
	log.Println("Generating docs...")
	outputDir := filepath.Join("docs")
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatal("Error creating docs dir: " + err.Error())
	}

	// One markdown page per command, e.g. fabkit_contract_new.md
	err := doc.GenMarkdownTree(cmd.RootCmd, outputDir)
	if err != nil {
		log.Fatal("Error generating documentation: " + err.Error())
	}
	log.Println("Documentation generated in " + outputDir)
}
