package state

import (
	"github.com/pkg/errors"
	"strings"
)

// Boost is a single-use enhancement found by growers and given to an ant.
type Boost uint8

const (
	NoBoost Boost = iota

	// FlyingLeaf extends the range of the next throw.
	FlyingLeaf

	// StickyLeaf makes the next bee hit stuck: it won't move on its next action.
	StickyLeaf

	// IcyLeaf makes the next bee hit cold: it won't sting on its next action.
	IcyLeaf

	// BugSpray makes a thrower damage every bee in its place, at the cost of its own life.
	BugSpray

	LastBoost
)

var (
	BoostNames = [LastBoost]string{"None", "FlyingLeaf", "StickyLeaf", "IcyLeaf", "BugSpray"}

	// Boosts enumerates all boosts, skipping NoBoost.
	Boosts = [LastBoost - 1]Boost{FlyingLeaf, StickyLeaf, IcyLeaf, BugSpray}

	// InitialBoosts is the number of charges of each boost a colony starts with.
	InitialBoosts = [LastBoost]int{0, 1, 1, 1, 0}
)

// String returns the boost name.
func (b Boost) String() string {
	if b >= LastBoost {
		return "Invalid"
	}
	return BoostNames[b]
}

// ParseBoost converts a boost name (case-insensitive) to a Boost.
func ParseBoost(name string) (Boost, error) {
	for _, boost := range Boosts {
		if strings.EqualFold(BoostNames[boost], name) {
			return boost, nil
		}
	}
	return NoBoost, errors.WithMessagef(ErrUnknownBoost, "%q", name)
}
