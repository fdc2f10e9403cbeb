// Package _default registers the default players that can be included in any
// front-end for colonyGo.
//
// It includes:
//
//   - "idle": never does anything, the bees walk in.
//   - "greedy": spends all the food it can on growers and defenders, and uses the boosts
//     as soon as a bee is in sight.
//   - "random": deploys random affordable ants at random places.
package _default

import (
	"fmt"
	"github.com/janpfeifer/colonyGo/internal/parameters"
	"github.com/janpfeifer/colonyGo/internal/players"
	"github.com/janpfeifer/colonyGo/internal/state"
)

func init() {
	players.RegisterModule("idle", &IdleModule{})
	players.RegisterModule("greedy", &GreedyModule{})
	players.RegisterModule("random", &RandomModule{})
}

// coordinates formats the tunnel and step in the format accepted by the game operations.
func coordinates(tunnel, step int) string {
	return fmt.Sprintf("%d,%d", tunnel, step)
}

// canHold returns whether an ant of the given kind can be deployed (and survive) at the place.
func canHold(place *state.Place, kind state.AntKind) bool {
	if place.IsWater() && !kind.IsSubmersible() {
		return false
	}
	if kind == state.Guard {
		return place.Guard() == nil
	}
	return place.GuardedAnt() == nil
}

// IdleModule creates players that do nothing.
type IdleModule struct{}

// Assert IdleModule implements players.Module.
var _ players.Module = (*IdleModule)(nil)

// NewPlayer implements players.Module.
func (m *IdleModule) NewPlayer(_ parameters.Params) (players.Player, error) {
	return &Idle{}, nil
}

// Idle player never acts.
type Idle struct{}

// Play implements players.Player.
func (p *Idle) Play(_ *state.Game) error { return nil }

// String implements fmt.Stringer.
func (p *Idle) String() string { return "idle" }
