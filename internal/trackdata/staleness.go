package trackdata

import (
	"fmt"
	"path/filepath"
)

// State is everything the regeneration decision looks at. PriorBuild and
// CurrentBuild are only meaningful when their OK flag is set; an unset flag
// means the value could not be determined this run.
type State struct {
	Force        bool
	ArtifactPath string

	ArtifactExists bool
	PriorBuild     string
	PriorBuildOK   bool

	CurrentBuild   string
	CurrentBuildOK bool
}

// Decide reports whether the artifact should be regenerated, with a reason
// either way. The rules apply in order: a forced run or a missing artifact
// always regenerates, an unreadable prior build regenerates, an unknown
// current build skips since there is nothing to compare against, and
// otherwise the two builds decide.
func Decide(s State) (bool, string) {
	if s.Force {
		return true, "forced regeneration"
	}
	if !s.ArtifactExists {
		return true, fmt.Sprintf("%s does not exist", filepath.Base(s.ArtifactPath))
	}
	if !s.PriorBuildOK {
		return true, "could not determine existing build version"
	}
	if !s.CurrentBuildOK {
		return false, "could not fetch current build"
	}
	if s.PriorBuild != s.CurrentBuild {
		return true, fmt.Sprintf("build changed: %s -> %s", s.PriorBuild, s.CurrentBuild)
	}
	return false, fmt.Sprintf("already up to date (build %s)", s.PriorBuild)
}
