// Package trackdata regenerates the addon's TrackData artifact from wago
// DB2 exports, using the build marker embedded in the previous output to
// decide whether a refresh is due.
package trackdata

import (
	"os"
	"regexp"
	"strings"
)

// markerPrefix introduces the build line embedded in every generated
// artifact. The renderer writes it and the staleness check reads it back.
const markerPrefix = "-- Build: "

var markerRe = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(markerPrefix) + `(.+)$`)

// FormatBuildMarker renders the marker line for a build version.
func FormatBuildMarker(version string) string {
	return markerPrefix + version
}

// ExtractBuildMarker pulls the build version out of generated content. The
// first marker line wins and its value comes back trimmed. The bool reports
// whether any marker was found.
func ExtractBuildMarker(content string) (string, bool) {
	m := markerRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	version := strings.TrimSpace(m[1])
	if version == "" {
		return "", false
	}
	return version, true
}

// ReadBuildMarker extracts the build marker from the artifact at path. An
// unreadable file reads the same as a missing marker.
func ReadBuildMarker(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return ExtractBuildMarker(string(data))
}
