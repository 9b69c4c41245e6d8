// Package main provides a batch validator for level and campaign files.
// Usage: levelcheck file.lvl [campaign.yaml ...]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cory-johannsen/delve/internal/game/campaign"
	"github.com/cory-johannsen/delve/internal/game/level"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <file> [file ...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Validates .lvl level files and .yaml campaign manifests.")
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := check(path); err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func check(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return checkCampaign(path)
	default:
		_, _, err := level.LoadFile(path)
		return err
	}
}

// checkCampaign validates the manifest and every level it references.
func checkCampaign(path string) error {
	c, err := campaign.LoadFromFile(path)
	if err != nil {
		return err
	}
	base := filepath.Dir(path)
	for _, lvl := range c.Levels {
		if _, _, err := level.LoadFile(filepath.Join(base, lvl.File)); err != nil {
			return fmt.Errorf("level %q: %w", lvl.ID, err)
		}
	}
	return nil
}
