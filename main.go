// Copyright
// SPDX-License-Identifier: MIT
// daylog: terminal journal with modal vim-style editing + timestamped quick capture
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"daylog/internal/config"
	"daylog/internal/store"
	"daylog/internal/ui"
)

const Version = "0.1.0"

func main() {
	settingsPath := flag.String("settings", filepath.Join(config.DefaultDir(), "settings.json"), "path to settings file")
	dataFile := flag.String("data", "", "path to entries file (overrides settings)")
	writeSettings := flag.Bool("write-settings", false, "write resolved settings back and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("daylog", Version)
		return
	}

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fatal(err)
	}
	if *dataFile != "" {
		settings.DataFile = *dataFile
	}
	if *writeSettings {
		if err := config.Save(*settingsPath, settings); err != nil {
			fatal(err)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(settings.DataFile), 0o755); err != nil {
		fatal(err)
	}
	st, err := store.Open(settings.DataFile)
	if err != nil {
		fatal(err)
	}

	if err := ui.Run(st, settings); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "daylog:", err)
	os.Exit(1)
}
