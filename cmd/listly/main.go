// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command listly is the terminal client for a Listly server.
package main

import (
	"flag"
	"fmt"
	"os"

	"listly/client/api"
	"listly/client/cache"
	"listly/client/tui"
)

func main() {
	server := flag.String("server", "http://localhost:3000", "base URL of the Listly server")
	cachePath := flag.String("cache", "", "path to the local cache file (default: user config dir)")
	flag.Parse()

	apiClient, err := api.New(*server)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listly: %v\n", err)
		os.Exit(1)
	}

	path := *cachePath
	if path == "" {
		path, err = cache.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "listly: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(apiClient, cache.New(path)); err != nil {
		fmt.Fprintf(os.Stderr, "listly: %v\n", err)
		os.Exit(1)
	}
}
