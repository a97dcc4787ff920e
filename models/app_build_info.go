// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags and shown
// by both front ends.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values are reported as N/A.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

// BuildCommit returns the commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// WithFallbackVersion returns a copy of a whose version is replaced by
// version when none was injected at build time.
func (a AppBuildInfo) WithFallbackVersion(version string) AppBuildInfo {
	if a.BuildVersion() == notAvailable {
		a.buildVersion = orNotAvailable(version)
	}
	return a
}

// Short renders "version (commit)" for footers.
func (a AppBuildInfo) Short() string {
	return a.BuildVersion() + " (" + a.BuildCommit() + ")"
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
