// Package statetest provides helper functions to create tests using the colony state.
package statetest

import (
	"fmt"
	. "github.com/janpfeifer/colonyGo/internal/state"
	"strings"
)

// ScriptedRand is a state.Rand that replays fixed sequences of values. Once a sequence
// is exhausted it keeps returning its last value (or 0 if it is empty).
type ScriptedRand struct {
	Floats []float64
	Ints   []int

	floatIdx, intIdx int
}

// Assert ScriptedRand is a Rand.
var _ Rand = (*ScriptedRand)(nil)

// NewScriptedRand returns a ScriptedRand replaying the given floats. Ints can be set
// directly in the returned value.
func NewScriptedRand(floats ...float64) *ScriptedRand {
	return &ScriptedRand{Floats: floats}
}

// Float64 implements state.Rand.
func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	idx := min(r.floatIdx, len(r.Floats)-1)
	r.floatIdx++
	return r.Floats[idx]
}

// IntN implements state.Rand. Values are taken modulo n.
func (r *ScriptedRand) IntN(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	idx := min(r.intIdx, len(r.Ints)-1)
	r.intIdx++
	return r.Ints[idx] % n
}

// NewTestColony creates a colony with the given dimensions, no water and a ScriptedRand
// that always rolls 0.99 (growers find nothing) and always picks the first entrance.
func NewTestColony(food, numTunnels, tunnelLength int) *Colony {
	return NewColony(food, numTunnels, tunnelLength, 0, NewScriptedRand(0.99))
}

// AntOnBoard represents an ant to deploy on a test colony.
type AntOnBoard struct {
	Tunnel, Step int
	Kind         AntKind
}

// BeeOnBoard represents a bee to place on a test colony.
type BeeOnBoard struct {
	Tunnel, Step  int
	Armor, Damage int
}

// BuildColony places the ants and bees on the colony, without paying for the ants' food.
// It returns the ants and bees created, in the same order.
func BuildColony(colony *Colony, ants []AntOnBoard, bees []BeeOnBoard) ([]*Ant, []*Bee) {
	places := colony.Places()
	antsCreated := make([]*Ant, 0, len(ants))
	for _, a := range ants {
		ant := NewAnt(a.Kind)
		if !places[a.Tunnel][a.Step].AddAnt(ant) {
			panic(fmt.Sprintf("BuildColony: failed to place %s at %d,%d", a.Kind, a.Tunnel, a.Step))
		}
		antsCreated = append(antsCreated, ant)
	}
	beesCreated := make([]*Bee, 0, len(bees))
	for _, b := range bees {
		bee := NewBee(b.Armor, b.Damage)
		places[b.Tunnel][b.Step].AddBee(bee)
		beesCreated = append(beesCreated, bee)
	}
	return antsCreated, beesCreated
}

// PrintColony prints a compact text representation of the colony, one tunnel per line,
// useful when debugging tests. Each place is shown as [guard ant bees], e.g. "[-T2]".
func PrintColony(colony *Colony) {
	fmt.Print(ColonyString(colony))
}

// ColonyString returns the representation printed by PrintColony.
func ColonyString(colony *Colony) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Food: %d, Queen: %d bee(s)\n", colony.Food(), len(colony.QueenPlace().Bees()))
	for tunnel, places := range colony.Places() {
		fmt.Fprintf(&sb, "%d)", tunnel)
		for _, place := range places {
			sb.WriteString(" [")
			sb.WriteString(antLetter(place.Guard()))
			sb.WriteString(antLetter(place.GuardedAnt()))
			fmt.Fprintf(&sb, "%d", len(place.Bees()))
			sb.WriteString("]")
			if place.IsWater() {
				sb.WriteString("~")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func antLetter(ant *Ant) string {
	if ant == nil {
		return "-"
	}
	return ant.Name()[:1]
}
