package models

import "strings"

type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

// VersionString returns the version, suffixed with the short
// commit hash for builds of the latest development version.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	commit, ok := shortCommit(b.Commit)
	if !ok {
		return b.Version
	}
	return b.Version + "-" + commit
}

func shortCommit(commit string) (short string, ok bool) {
	const shortHashLength = 7
	if len(commit) < shortHashLength {
		return "", false
	}
	short = commit[:shortHashLength]
	const hexDigits = "0123456789abcdef"
	if strings.Trim(short, hexDigits) != "" {
		return "", false
	}
	return short, true
}
