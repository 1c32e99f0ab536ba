package track

// MapBonuses joins the two table lookups into the final bonus ID to track
// assignment. Groups without a known track contribute nothing. When two
// groups claim the same bonus ID the lowest track wins, so the result does
// not depend on map iteration order.
func MapBonuses(groupTracks map[int]Track, groupBonuses map[int][]int) map[int]Track {
	out := make(map[int]Track)

	for groupID, bonusIDs := range groupBonuses {
		tr, ok := groupTracks[groupID]
		if !ok {
			continue
		}
		for _, bonusID := range bonusIDs {
			if existing, ok := out[bonusID]; ok && existing <= tr {
				continue
			}
			out[bonusID] = tr
		}
	}

	return out
}
