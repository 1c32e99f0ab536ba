package track

import (
	"reflect"
	"testing"
)

func TestMapBonuses(t *testing.T) {
	groupTracks := map[int]Track{10: Adventurer, 20: Myth}
	groupBonuses := map[int][]int{10: {100, 101}, 20: {200}}

	got := MapBonuses(groupTracks, groupBonuses)

	want := map[int]Track{100: Adventurer, 101: Adventurer, 200: Myth}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mapping = %v, want %v", got, want)
	}
}

func TestMapBonusesSkipsUntrackedGroups(t *testing.T) {
	groupTracks := map[int]Track{10: Veteran}
	groupBonuses := map[int][]int{10: {100}, 30: {300, 301}}

	got := MapBonuses(groupTracks, groupBonuses)

	want := map[int]Track{100: Veteran}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mapping = %v, want %v", got, want)
	}
}

func TestMapBonusesConflictKeepsLowestTrack(t *testing.T) {
	groupTracks := map[int]Track{10: Hero, 20: Veteran, 30: Champion}
	groupBonuses := map[int][]int{10: {500}, 20: {500}, 30: {500}}

	got := MapBonuses(groupTracks, groupBonuses)

	want := map[int]Track{500: Veteran}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mapping = %v, want %v", got, want)
	}
}

func TestMapBonusesEmptyInputs(t *testing.T) {
	if got := MapBonuses(nil, nil); len(got) != 0 {
		t.Errorf("mapping = %v, want empty", got)
	}
	if got := MapBonuses(map[int]Track{10: Myth}, nil); len(got) != 0 {
		t.Errorf("mapping = %v, want empty", got)
	}
	if got := MapBonuses(nil, map[int][]int{10: {100}}); len(got) != 0 {
		t.Errorf("mapping = %v, want empty", got)
	}
}
