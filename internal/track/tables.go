package track

import (
	"strconv"

	"github.com/aliensearust/LootWishlist/internal/config"
	"github.com/aliensearust/LootWishlist/internal/wago"
)

// TableStats counts what happened to each row while a table was folded into
// its lookup map. Discards are split by cause so a noisy upstream export is
// visible in the logs.
type TableStats struct {
	Rows         int
	Kept         int
	MissingField int
	BadNumber    int
	UnknownTrack int
}

// GroupTracks folds the bonus list group table into a lookup from group ID
// to Track. Rows with blank fields, non-numeric values, or tier numbers
// outside the known range are counted and skipped. Later rows overwrite
// earlier ones for the same group.
func GroupTracks(rows []wago.Row, table config.GroupTrackTable) (map[int]Track, TableStats) {
	out := make(map[int]Track, len(rows))
	stats := TableStats{Rows: len(rows)}

	for _, row := range rows {
		groupStr := row[table.GroupField]
		trackStr := row[table.TrackField]
		if groupStr == "" || trackStr == "" {
			stats.MissingField++
			continue
		}

		groupID, err := strconv.Atoi(groupStr)
		if err != nil {
			stats.BadNumber++
			continue
		}
		number, err := strconv.Atoi(trackStr)
		if err != nil {
			stats.BadNumber++
			continue
		}

		tr, ok := FromNumber(number)
		if !ok {
			stats.UnknownTrack++
			continue
		}

		out[groupID] = tr
		stats.Kept++
	}

	return out, stats
}

// GroupBonuses folds the group entry table into a lookup from group ID to
// its bonus list IDs, preserving row order within each group.
func GroupBonuses(rows []wago.Row, table config.GroupBonusTable) (map[int][]int, TableStats) {
	out := make(map[int][]int, len(rows))
	stats := TableStats{Rows: len(rows)}

	for _, row := range rows {
		groupStr := row[table.GroupField]
		bonusStr := row[table.BonusField]
		if groupStr == "" || bonusStr == "" {
			stats.MissingField++
			continue
		}

		groupID, err := strconv.Atoi(groupStr)
		if err != nil {
			stats.BadNumber++
			continue
		}
		bonusID, err := strconv.Atoi(bonusStr)
		if err != nil {
			stats.BadNumber++
			continue
		}

		out[groupID] = append(out[groupID], bonusID)
		stats.Kept++
	}

	return out, stats
}
