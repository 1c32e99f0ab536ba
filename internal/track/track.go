// Package track derives bonus list to upgrade track assignments from DB2
// bonus list group tables.
package track

import "fmt"

// Track is an item upgrade track tier, numbered 1 through 6 from lowest to
// highest.
type Track int

const (
	Explorer Track = iota + 1
	Adventurer
	Veteran
	Champion
	Hero
	Myth
)

var trackNames = [...]string{
	Explorer:   "explorer",
	Adventurer: "adventurer",
	Veteran:    "veteran",
	Champion:   "champion",
	Hero:       "hero",
	Myth:       "myth",
}

// FromNumber converts a raw tier number into a Track. Numbers outside the
// known range are rejected.
func FromNumber(n int) (Track, bool) {
	t := Track(n)
	if t < Explorer || t > Myth {
		return 0, false
	}
	return t, true
}

// Name returns the lowercase track name used in generated data, or the empty
// string for a tier outside the known range.
func (t Track) Name() string {
	if t < Explorer || t > Myth {
		return ""
	}
	return trackNames[t]
}

func (t Track) String() string {
	if name := t.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("track(%d)", int(t))
}
