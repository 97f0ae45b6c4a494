// Package info holds the version and build metadata of the tools.
package info

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const (
	name    = "securerandom"
	license = "GPLv3"
)

var (
	// Set via ldflags.
	version   = "dev build"
	buildTime = "unknown"

	info     *Info
	loadInfo sync.Once
)

// Info holds the programs meta information.
type Info struct {
	Name    string
	Version string
	License string

	BuildTime string
	GoVersion string
	CGO       bool

	Commit     string
	CommitTime string
	Dirty      bool
}

// GetInfo returns all the meta information about the program.
func GetInfo() *Info {
	loadInfo.Do(func() {
		info = &Info{
			Name:       name,
			Version:    strings.TrimPrefix(strings.TrimSpace(version), "v"),
			License:    license,
			BuildTime:  strings.ReplaceAll(buildTime, "_", " "),
			GoVersion:  runtime.Version(),
			Commit:     "unknown",
			CommitTime: "unknown",
		}

		buildInfo, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "CGO_ENABLED":
				info.CGO = setting.Value == "1"
			case "vcs.revision":
				info.Commit = setting.Value
			case "vcs.time":
				info.CommitTime = setting.Value
			case "vcs.modified":
				info.Dirty = setting.Value == "true"
			}
		}
	})

	return info
}

// Version returns the annotated version.
func Version() string {
	return GetInfo().Version
}

// FullVersion returns the full and detailed version string.
func FullVersion() string {
	info := GetInfo()
	builder := new(strings.Builder)

	// Name and version.
	fmt.Fprintf(builder, "%s %s\n", info.Name, info.Version)

	// Build info.
	cgoInfo := "-cgo"
	if info.CGO {
		cgoInfo = "+cgo"
	}
	fmt.Fprintf(builder, "\nbuilt with %s (%s %s) for %s/%s\n", info.GoVersion, runtime.Compiler, cgoInfo, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(builder, "  at %s\n", info.BuildTime)

	// Commit info.
	dirtyInfo := "clean"
	if info.Dirty {
		dirtyInfo = "dirty"
	}
	fmt.Fprintf(builder, "\ncommit %s (%s)\n", info.Commit, dirtyInfo)
	fmt.Fprintf(builder, "  at %s\n", info.CommitTime)

	fmt.Fprintf(builder, "\nLicensed under the %s license.", info.License)

	return builder.String()
}
