// Package buildinfo exposes version data injected at link time, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/rosterkeeper/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build banner for the named binary to w.
func PrintBuildData(w io.Writer, binary string) {
	fmt.Fprintf(w, "%s\nBuild version: %s\nBuild date: %s\nBuild commit: %s\n", binary, Version, Date, Commit)
}
