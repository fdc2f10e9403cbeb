package state

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"strconv"
	"strings"
)

// QueenPlaceName is the name of the place bees must not reach.
const QueenPlaceName = "Ant Queen"

// Colony owns the tunnels, the food and the boosts available to the ants.
//
// Tunnels are indexed by [tunnel][step], with step 0 next to the queen and the last
// step of each tunnel being an entrance for the bees.
type Colony struct {
	food       int
	places     [][]*Place
	entrances  []*Place
	queenPlace *Place
	boosts     [LastBoost]int
	rand       Rand
}

// NewColony creates the tunnels of the colony. If moatFrequency > 0, every
// moatFrequency-th step of each tunnel is water.
func NewColony(startingFood, numTunnels, tunnelLength, moatFrequency int, rng Rand) *Colony {
	if numTunnels <= 0 || tunnelLength <= 0 {
		exceptions.Panicf("NewColony(): invalid dimensions %d tunnels of length %d", numTunnels, tunnelLength)
	}
	if rng == nil {
		exceptions.Panicf("NewColony(): a Rand source is required")
	}
	c := &Colony{
		food:       startingFood,
		places:     make([][]*Place, numTunnels),
		queenPlace: NewPlace(QueenPlaceName, false, nil),
		boosts:     InitialBoosts,
		rand:       rng,
	}
	for tunnel := range numTunnels {
		c.places[tunnel] = make([]*Place, tunnelLength)
		curr := c.queenPlace
		for step := range tunnelLength {
			typeName := "tunnel"
			if moatFrequency > 0 && (step+1)%moatFrequency == 0 {
				typeName = "water"
			}
			prev := curr
			name := fmt.Sprintf("%s[%d,%d]", typeName, tunnel, step)
			curr = NewPlace(name, typeName == "water", prev)
			prev.SetEntrance(curr)
			c.places[tunnel][step] = curr
		}
		c.entrances = append(c.entrances, curr)
	}
	return c
}

// Food available.
func (c *Colony) Food() int { return c.food }

// IncreaseFood by amount.
func (c *Colony) IncreaseFood(amount int) { c.food += amount }

// Places of the colony, indexed by [tunnel][step]. The returned slices must not be modified.
func (c *Colony) Places() [][]*Place { return c.places }

// NumTunnels in the colony.
func (c *Colony) NumTunnels() int { return len(c.places) }

// TunnelLength is the number of places in each tunnel.
func (c *Colony) TunnelLength() int { return len(c.places[0]) }

// Entrances where bees invade the colony: the last place of each tunnel.
func (c *Colony) Entrances() []*Place { return c.entrances }

// QueenPlace is the home place: a bee there means the game is lost.
func (c *Colony) QueenPlace() *Place { return c.queenPlace }

// QueenHasBees returns whether any bee reached the queen.
func (c *Colony) QueenHasBees() bool { return len(c.queenPlace.bees) > 0 }

// PlaceAt parses coordinates in the "tunnel,step" format and returns the corresponding place.
func (c *Colony) PlaceAt(coordinates string) (*Place, error) {
	parts := strings.Split(coordinates, ",")
	if len(parts) != 2 {
		return nil, errors.WithMessagef(ErrIllegalLocation, "place %q", coordinates)
	}
	var idx [2]int
	for ii, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.WithMessagef(ErrIllegalLocation, "place %q", coordinates)
		}
		idx[ii] = value
	}
	tunnel, step := idx[0], idx[1]
	if tunnel < 0 || tunnel >= len(c.places) || step < 0 || step >= len(c.places[tunnel]) {
		return nil, errors.WithMessagef(ErrIllegalLocation, "place %q out of the colony", coordinates)
	}
	return c.places[tunnel][step], nil
}

// BoostCount returns the number of charges available of the given boost.
func (c *Colony) BoostCount(boost Boost) int {
	if boost >= LastBoost {
		return 0
	}
	return c.boosts[boost]
}

// Boosts returns the number of charges of every boost, indexed by Boost.
func (c *Colony) Boosts() [LastBoost]int { return c.boosts }

// AddBoost adds one charge of the boost.
func (c *Colony) AddBoost(boost Boost) {
	c.boosts[boost]++
	klog.V(1).Infof("Found a %s!", boost)
}

// DeployAnt places the ant and pays for its food cost. Nothing changes if there is not
// enough food or the place's slot is already taken.
func (c *Colony) DeployAnt(ant *Ant, place *Place) error {
	if c.food < ant.FoodCost() {
		return errors.WithMessagef(ErrInsufficientFood, "%s costs %d food, the colony has %d",
			ant.Name(), ant.FoodCost(), c.food)
	}
	if !place.AddAnt(ant) {
		return errors.WithMessagef(ErrOccupied, "%s", place)
	}
	c.food -= ant.FoodCost()
	klog.V(1).Infof("Deployed %s", ant)
	return nil
}

// RemoveAnt removes the guard of the place if there is one, otherwise its ground ant.
// It returns the removed ant, or nil.
func (c *Colony) RemoveAnt(place *Place) *Ant {
	ant := place.RemoveAnt()
	if ant != nil {
		klog.V(1).Infof("Removed %s from %s", ant.Name(), place)
	}
	return ant
}

// ApplyBoost uses one charge of the named boost on the ground ant of the place.
func (c *Colony) ApplyBoost(boostName string, place *Place) error {
	boost, err := ParseBoost(boostName)
	if err != nil {
		return err
	}
	if c.boosts[boost] < 1 {
		return errors.WithMessagef(ErrUnknownBoost, "no %s left", boost)
	}
	ant := place.GuardedAnt()
	if ant == nil {
		return errors.WithMessagef(ErrNoAnt, "%s", place)
	}
	c.boosts[boost]--
	ant.SetBoost(boost)
	return nil
}

// ForEachPlace calls fn for every place of the tunnels, tunnel by tunnel, from the queen
// outwards.
func (c *Colony) ForEachPlace(fn func(place *Place)) {
	for _, tunnel := range c.places {
		for _, place := range tunnel {
			fn(place)
		}
	}
}

// AllAnts returns every ant on the board: for each place, its guard (if any) followed by
// its ground ant (if any).
func (c *Colony) AllAnts() []*Ant {
	var ants []*Ant
	c.ForEachPlace(func(place *Place) {
		if place.guard != nil {
			ants = append(ants, place.guard)
		}
		if place.ant != nil {
			ants = append(ants, place.ant)
		}
	})
	return ants
}

// AllBees returns every bee in the tunnels. It doesn't include the bees that reached
// the queen, or that are in the hive or in an eater's stomach.
func (c *Colony) AllBees() []*Bee {
	var bees []*Bee
	c.ForEachPlace(func(place *Place) {
		bees = append(bees, place.bees...)
	})
	return bees
}

// AntsAct runs the action of every ant. A guard first runs the action of the ant it
// protects, and then its own: a guarded ant acts only through its guard.
//
// The ants are collected before any of them acts, and those removed from the board in
// the meantime are skipped.
func (c *Colony) AntsAct() {
	var actors []*Ant
	c.ForEachPlace(func(place *Place) {
		if place.guard != nil {
			if place.ant != nil {
				actors = append(actors, place.ant)
			}
			actors = append(actors, place.guard)
		} else if place.ant != nil {
			actors = append(actors, place.ant)
		}
	})
	for _, ant := range actors {
		if ant.place == nil {
			continue
		}
		ant.Act(c)
	}
}

// BeesAct runs the action of every bee in the tunnels, once. Bees removed from the board
// in the meantime are skipped.
func (c *Colony) BeesAct() {
	for _, bee := range c.AllBees() {
		if bee.place == nil {
			continue
		}
		bee.Act(c)
	}
}

// PlacesAct applies the passive effect of every place.
func (c *Colony) PlacesAct() {
	c.ForEachPlace(func(place *Place) {
		place.Act()
	})
}
