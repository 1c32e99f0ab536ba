package trackdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMarkerRoundTrip(t *testing.T) {
	content := "-- TrackData.lua\n" + FormatBuildMarker("1.2.3.45678") + "\n\nlocal _, ns = ...\n"

	got, ok := ExtractBuildMarker(content)
	if !ok {
		t.Fatal("marker not found")
	}
	if got != "1.2.3.45678" {
		t.Errorf("build = %q, want %q", got, "1.2.3.45678")
	}
}

func TestExtractBuildMarkerFirstMatchWins(t *testing.T) {
	content := "-- Build: 1.0.0.1\n-- Build: 2.0.0.2\n"

	got, ok := ExtractBuildMarker(content)
	if !ok || got != "1.0.0.1" {
		t.Errorf("build = %q, %v, want %q, true", got, ok, "1.0.0.1")
	}
}

func TestExtractBuildMarkerRequiresLineStart(t *testing.T) {
	content := "local v = 1 -- Build: 9.9.9.9\n"

	if got, ok := ExtractBuildMarker(content); ok {
		t.Errorf("found %q in mid-line comment, want no match", got)
	}
}

func TestExtractBuildMarkerTrimsValue(t *testing.T) {
	got, ok := ExtractBuildMarker("-- Build:  1.2.3 \n")
	if !ok || got != "1.2.3" {
		t.Errorf("build = %q, %v, want %q, true", got, ok, "1.2.3")
	}
}

func TestExtractBuildMarkerMissing(t *testing.T) {
	for _, content := range []string{"", "local _, ns = ...\n", "-- Build:  \n"} {
		if got, ok := ExtractBuildMarker(content); ok {
			t.Errorf("ExtractBuildMarker(%q) = %q, want no match", content, got)
		}
	}
}

func TestReadBuildMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TrackData.lua")
	if err := os.WriteFile(path, []byte("-- Build: 11.0.0.50000\n"), 0o644); err != nil {
		t.Fatalf("writing artifact: %v", err)
	}

	got, ok := ReadBuildMarker(path)
	if !ok || got != "11.0.0.50000" {
		t.Errorf("build = %q, %v, want %q, true", got, ok, "11.0.0.50000")
	}
}

func TestReadBuildMarkerMissingFile(t *testing.T) {
	if got, ok := ReadBuildMarker(filepath.Join(t.TempDir(), "absent.lua")); ok {
		t.Errorf("build = %q, want no marker for missing file", got)
	}
}
