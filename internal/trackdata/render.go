package trackdata

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/aliensearust/LootWishlist/internal/config"
	"github.com/aliensearust/LootWishlist/internal/track"
)

// Entry is one bonus ID line of the rendered artifact.
type Entry struct {
	ID    int
	Track track.Track
}

// templateData is the input the artifact template renders against. TrackIDs
// is sorted ascending by bonus ID so output is stable across runs.
type templateData struct {
	BuildVersion string
	TrackIDs     []Entry
}

// ---------------------------------------------------------------------------
// Renderer
// ---------------------------------------------------------------------------

// Renderer renders the mapping through the artifact template and replaces
// the output file atomically. The template is loaded at construction time,
// so a missing template surfaces before any network work happens.
type Renderer struct {
	tmpl *template.Template
	path string
}

// NewRenderer loads the artifact template named in the output configuration.
func NewRenderer(cfg config.Output) (*Renderer, error) {
	tmpl, err := template.ParseFiles(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", cfg.Template, err)
	}
	return &Renderer{tmpl: tmpl, path: cfg.Path}, nil
}

// Write renders the mapping for the given build and atomically replaces the
// artifact via a temp file and rename. The rendered output must contain a
// build marker that reads back as the same version; a template that drops or
// rewrites the marker is rejected before anything is written.
func (r *Renderer) Write(mapping map[int]track.Track, buildVersion string) error {
	entries := make([]Entry, 0, len(mapping))
	for id, tr := range mapping {
		entries = append(entries, Entry{ID: id, Track: tr})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	var buf bytes.Buffer
	data := templateData{BuildVersion: buildVersion, TrackIDs: entries}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering %s: %w", r.path, err)
	}

	if got, ok := ExtractBuildMarker(buf.String()); !ok {
		return fmt.Errorf("rendered %s carries no build marker", r.path)
	} else if got != buildVersion {
		return fmt.Errorf("rendered build marker %q does not match build %q", got, buildVersion)
	}

	return r.replace(buf.Bytes())
}

// replace writes content next to the artifact and renames it into place.
func (r *Renderer) replace(content []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	return nil
}
