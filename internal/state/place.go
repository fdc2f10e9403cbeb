// Package state holds the simulation of the colony under attack: the tunnels (places),
// the insects (ants and bees), the hive of incoming bees, and the game turn loop.
//
// This file holds the Place, a node in the tunnel graph.
package state

import (
	"k8s.io/klog/v2"
)

// Place is one node of the tunnel graph.
//
// A place holds at most one ground ant and one guard ant, plus any number of bees
// ordered by arrival: Bees()[0] arrived first.
//
// The exit points towards the queen, the entrance towards the hive side. The queen's
// place has no exit, and the deepest place of each tunnel has no entrance.
type Place struct {
	name  string
	water bool

	ant   *Ant
	guard *Ant
	bees  []*Bee

	exit, entrance *Place
}

// NewPlace creates a disconnected place. exit may be nil.
func NewPlace(name string, water bool, exit *Place) *Place {
	return &Place{name: name, water: water, exit: exit}
}

// Name of the place, e.g.: "tunnel[0,3]".
func (p *Place) Name() string { return p.name }

// String implements fmt.Stringer.
func (p *Place) String() string { return p.name }

// IsWater returns whether the place is flooded: only submersible ants survive there.
func (p *Place) IsWater() bool { return p.water }

// Exit returns the next place towards the queen, or nil.
func (p *Place) Exit() *Place { return p.exit }

// Entrance returns the next place towards the hive, or nil.
func (p *Place) Entrance() *Place { return p.entrance }

// SetEntrance connects the place towards the hive side.
func (p *Place) SetEntrance(entrance *Place) { p.entrance = entrance }

// Ant returns the ant bees have to deal with at this place: the guard if there is one,
// otherwise the ground ant. It returns nil if the place is empty of ants.
func (p *Place) Ant() *Ant {
	if p.guard != nil {
		return p.guard
	}
	return p.ant
}

// GuardedAnt returns the ground ant, regardless of a guard being present.
func (p *Place) GuardedAnt() *Ant { return p.ant }

// Guard returns the guard ant, or nil.
func (p *Place) Guard() *Ant { return p.guard }

// Bees in the place, in arrival order. The returned slice must not be modified.
func (p *Place) Bees() []*Bee { return p.bees }

// ClosestBee walks from this place towards the hive (following the entrances) and returns
// the first bee found at a distance (in hops) between minDistance and maxDistance, inclusive.
//
// Within a place the bee that arrived first is returned. It returns nil if no bee is in
// range, or if the tunnel ends before that.
func (p *Place) ClosestBee(maxDistance, minDistance int) *Bee {
	place := p
	for dist := 0; place != nil && dist <= maxDistance; dist++ {
		if dist >= minDistance && len(place.bees) > 0 {
			return place.bees[0]
		}
		place = place.entrance
	}
	return nil
}

// AddAnt places the ant in the guard slot if it is a Guard, or in the ground slot
// otherwise. It returns false, without changes, if the slot is already taken.
func (p *Place) AddAnt(ant *Ant) bool {
	slot := &p.ant
	if ant.Kind() == Guard {
		slot = &p.guard
	}
	if *slot != nil {
		return false
	}
	*slot = ant
	ant.setPlace(p)
	return true
}

// RemoveAnt removes the guard if there is one, otherwise the ground ant. It returns the
// removed ant, or nil if there was none.
func (p *Place) RemoveAnt() *Ant {
	if p.guard != nil {
		return p.removeAntFromSlot(&p.guard)
	}
	return p.removeAntFromSlot(&p.ant)
}

// removeInsectAnt removes the given ant from whichever slot holds it.
func (p *Place) removeInsectAnt(ant *Ant) {
	switch ant {
	case p.guard:
		p.removeAntFromSlot(&p.guard)
	case p.ant:
		p.removeAntFromSlot(&p.ant)
	}
}

func (p *Place) removeAntFromSlot(slot **Ant) *Ant {
	ant := *slot
	if ant == nil {
		return nil
	}
	*slot = nil
	ant.setPlace(nil)
	return ant
}

// AddBee appends the bee to the back of the place's bees.
func (p *Place) AddBee(bee *Bee) {
	p.bees = append(p.bees, bee)
	bee.setPlace(p)
}

// RemoveBee removes the bee from the place. It is a no-op if the bee is not here.
func (p *Place) RemoveBee(bee *Bee) {
	for ii, b := range p.bees {
		if b == bee {
			p.bees = append(p.bees[:ii], p.bees[ii+1:]...)
			bee.setPlace(nil)
			return
		}
	}
}

// RemoveAllBees empties the place of bees.
func (p *Place) RemoveAllBees() {
	for _, bee := range p.bees {
		bee.setPlace(nil)
	}
	p.bees = nil
}

// ExitBee moves the bee one step towards the queen. If the place has no exit the bee
// stays where it is.
func (p *Place) ExitBee(bee *Bee) {
	if p.exit == nil {
		return
	}
	p.RemoveBee(bee)
	p.exit.AddBee(bee)
}

// Act applies the place's passive effect, once per turn after ants and bees acted:
// a water place drowns its guard and any ground ant that is not submersible.
func (p *Place) Act() {
	if !p.water {
		return
	}
	if p.guard != nil {
		klog.V(1).Infof("%s drowned", p.guard)
		p.removeAntFromSlot(&p.guard)
	}
	if p.ant != nil && !p.ant.Kind().IsSubmersible() {
		klog.V(1).Infof("%s drowned", p.ant)
		p.removeAntFromSlot(&p.ant)
	}
}
