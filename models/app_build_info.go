// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with linker flags and
// shown on the client's "about" overlay.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; blank values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}

// BuildVersion returns the release version.
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

// BuildDate returns the build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

// BuildCommit returns the commit hash of the build.
func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}
