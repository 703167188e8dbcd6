// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

// AppBuildInfo holds the version, date and commit injected with -ldflags.
// Fields left empty at link time read as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	info := AppBuildInfo{Version: version, Date: date, Commit: commit}
	for _, field := range []*string{&info.Version, &info.Date, &info.Commit} {
		if *field == "" {
			*field = notAvailable
		}
	}
	return info
}

// Known reports whether a version was linked in.
func (a AppBuildInfo) Known() bool {
	return a.Version != notAvailable
}

// WriteTo prints the three build lines shown at startup.
func (a AppBuildInfo) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
	return int64(n), err
}
