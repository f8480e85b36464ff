// Package build describes the binary that is running.
package build

import "runtime/debug"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Resolve fills values that ldflags left empty from the embedded module
// build info, so `go install` builds still report something useful.
func (i Info) Resolve() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i.withFallbacks()
	}

	if i.GoVersion == "" {
		i.GoVersion = bi.GoVersion
	}
	if i.Version == "" || i.Version == "dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			i.Version = v
		}
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "" || i.Commit == "none" || i.Commit == "unknown" {
				i.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if i.BuildDate == "" || i.BuildDate == "unknown" {
				i.BuildDate = s.Value
			}
		}
	}
	return i.withFallbacks()
}

func (i Info) withFallbacks() Info {
	if i.Version == "" {
		i.Version = "dev"
	}
	if i.Commit == "" {
		i.Commit = "none"
	}
	if i.BuildDate == "" {
		i.BuildDate = "unknown"
	}
	if i.GoVersion == "" {
		i.GoVersion = "unknown"
	}
	return i
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/scanclip"
}
