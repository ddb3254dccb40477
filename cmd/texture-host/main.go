// Package main is a minimal composition-root binary: it loads a file into
// an Editor Facade and prints its line count, themed-token count and
// language, exercising the module end to end without a terminal or GUI
// front end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/texture/internal/config"
	"github.com/dshills/texture/internal/host"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to a texture.toml configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "texture-host - editor core composition root\n\n")
		fmt.Fprintf(os.Stderr, "Usage: texture-host [options] <file>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("texture-host %s (%s)\n", version, commit)
		return 0
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		return 1
	}

	cfg, err := config.LoadEditorConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	manager := host.NewManager(cfg)
	defer manager.Shutdown(context.Background())

	id, err := manager.OpenFile(nil, files[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load %s: %v\n", files[0], err)
		return 1
	}
	defer manager.CloseEditor(id)

	e, err := manager.Editor(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	tokens, err := e.Tokens(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to highlight %s: %v\n", files[0], err)
		return 1
	}

	content, err := manager.GetEditorContent(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%s: %d lines, %d tokens, language=%s\n", files[0], content.LineCount, len(tokens), e.Language())
	return 0
}
