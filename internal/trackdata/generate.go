package trackdata

import (
	"context"
	"log/slog"
	"os"

	"github.com/aliensearust/LootWishlist/internal/config"
	"github.com/aliensearust/LootWishlist/internal/track"
	"github.com/aliensearust/LootWishlist/internal/wago"
)

// Generator wires the wago client, the table configuration, and the
// renderer into one artifact refresh.
type Generator struct {
	client *wago.Client
	tables config.Tables
	output config.Output
	render *Renderer
	log    *slog.Logger
}

// NewGenerator builds a Generator from the full configuration. It fails when
// the artifact template cannot be loaded.
func NewGenerator(client *wago.Client, cfg *config.Config) (*Generator, error) {
	render, err := NewRenderer(cfg.Output)
	if err != nil {
		return nil, err
	}
	return &Generator{
		client: client,
		tables: cfg.Tables,
		output: cfg.Output,
		render: render,
		log:    slog.Default().With("source", "trackdata"),
	}, nil
}

// Run refreshes the artifact unless the staleness check says it is already
// current. Upstream fetch failures degrade the result instead of aborting
// the run; the returned error covers rendering and writing only.
func (g *Generator) Run(ctx context.Context, force bool) error {
	current, err := g.client.LatestBuild(ctx)
	if err != nil {
		g.log.Warn("could not fetch current build version", "error", err)
	}

	state := State{
		Force:          force,
		ArtifactPath:   g.output.Path,
		CurrentBuild:   current,
		CurrentBuildOK: err == nil,
	}
	if _, statErr := os.Stat(g.output.Path); statErr == nil {
		state.ArtifactExists = true
		state.PriorBuild, state.PriorBuildOK = ReadBuildMarker(g.output.Path)
	}

	regen, reason := Decide(state)
	if !regen {
		g.log.Info("skipping generation", "reason", reason)
		return nil
	}
	g.log.Info("generating track data", "reason", reason)

	mapping := g.buildMapping(ctx)
	if len(mapping) == 0 {
		g.log.Warn("no bonus ID mappings found, generating empty file")
	}

	build := current
	if !state.CurrentBuildOK {
		build = "unknown"
	}

	if err := g.render.Write(mapping, build); err != nil {
		return err
	}

	g.log.Info("generated", "path", g.output.Path, "build", build, "entries", len(mapping))
	return nil
}

// buildMapping fetches both tables and joins them into the final mapping.
// Either table coming back empty yields an empty mapping with a warning.
func (g *Generator) buildMapping(ctx context.Context) map[int]track.Track {
	trackRows := g.client.FetchTable(ctx, g.tables.GroupTrack.Name)
	bonusRows := g.client.FetchTable(ctx, g.tables.GroupBonus.Name)
	if len(trackRows) == 0 || len(bonusRows) == 0 {
		g.log.Warn("failed to fetch required tables")
		return nil
	}

	groupTracks, trackStats := track.GroupTracks(trackRows, g.tables.GroupTrack)
	g.log.Info("parsed track groups",
		"groups", len(groupTracks),
		"rows", trackStats.Rows,
		"missing_field", trackStats.MissingField,
		"bad_number", trackStats.BadNumber,
		"unknown_track", trackStats.UnknownTrack)

	groupBonuses, bonusStats := track.GroupBonuses(bonusRows, g.tables.GroupBonus)
	g.log.Info("parsed bonus groups",
		"groups", len(groupBonuses),
		"rows", bonusStats.Rows,
		"missing_field", bonusStats.MissingField,
		"bad_number", bonusStats.BadNumber)

	mapping := track.MapBonuses(groupTracks, groupBonuses)
	g.log.Info("mapped bonus IDs", "count", len(mapping))
	return mapping
}
