package _default

import (
	"fmt"
	"github.com/janpfeifer/colonyGo/internal/parameters"
	"github.com/janpfeifer/colonyGo/internal/players"
	"github.com/janpfeifer/colonyGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"slices"
)

// bugSprayMinBees is the number of bees sharing a place with a thrower to justify using
// a BugSpray, which costs the thrower's life.
const bugSprayMinBees = 3

// GreedyModule creates Greedy players. Parameters:
//
//   - kind (string): kind of defender to deploy. Default is "thrower".
//   - boost (bool): whether to use the boosts. Default is true.
//   - growers (bool): whether to first deploy one grower per tunnel. Default is true.
type GreedyModule struct{}

// Assert GreedyModule implements players.Module.
var _ players.Module = (*GreedyModule)(nil)

// NewPlayer implements players.Module.
func (m *GreedyModule) NewPlayer(params parameters.Params) (players.Player, error) {
	p := &Greedy{}
	kindName, err := parameters.PopParamOr(params, "kind", state.Thrower.String())
	if err != nil {
		return nil, err
	}
	if p.kind, err = state.ParseAntKind(kindName); err != nil {
		return nil, err
	}
	if p.useBoosts, err = parameters.PopParamOr(params, "boost", true); err != nil {
		return nil, err
	}
	if p.growers, err = parameters.PopParamOr(params, "growers", true); err != nil {
		return nil, err
	}
	return p, nil
}

// Greedy player spends all the food it can at every turn, placing defenders as deep
// (close to the queen) as possible in the tunnel most threatened.
type Greedy struct {
	kind               state.AntKind
	useBoosts, growers bool
}

// String implements fmt.Stringer.
func (p *Greedy) String() string {
	return fmt.Sprintf("greedy(kind=%s, boost=%v, growers=%v)", p.kind, p.useBoosts, p.growers)
}

// Play implements players.Player.
func (p *Greedy) Play(game *state.Game) error {
	if p.growers {
		if err := p.deployGrowers(game); err != nil {
			return err
		}
	}
	for game.Food() >= p.kind.FoodCost() {
		tunnel, step, found := p.findPlace(game)
		if !found {
			break
		}
		err := game.DeployAnt(p.kind.String(), coordinates(tunnel, step))
		if err != nil {
			return errors.WithMessagef(err, "%s failed to deploy at %d,%d", p, tunnel, step)
		}
	}
	if p.useBoosts {
		return p.applyBoosts(game)
	}
	return nil
}

// deployGrowers makes sure each tunnel has a grower, food permitting.
func (p *Greedy) deployGrowers(game *state.Game) error {
	for tunnel, places := range game.Places() {
		if game.Food() < state.Grower.FoodCost() {
			return nil
		}
		hasGrower := false
		for _, place := range places {
			if ant := place.GuardedAnt(); ant != nil && ant.Kind() == state.Grower {
				hasGrower = true
				break
			}
		}
		if hasGrower {
			continue
		}
		for step, place := range places {
			if canHold(place, state.Grower) {
				if err := game.DeployAnt(state.Grower.String(), coordinates(tunnel, step)); err != nil {
					return errors.WithMessagef(err, "%s failed to deploy a grower", p)
				}
				break
			}
		}
	}
	return nil
}

// findPlace returns the deepest place that can hold the player's kind of ant, in the
// tunnel with the bee closest to the queen. If there are no bees in the tunnels, the
// tunnel with the fewest ants is used. Other tunnels are tried if the chosen one is full.
func (p *Greedy) findPlace(game *state.Game) (tunnel, step int, found bool) {
	places := game.Places()
	numTunnels := len(places)
	frontTunnel, frontStep := -1, 0
	antsCount := make([]int, numTunnels)
	for t, tunnelPlaces := range places {
		for s, place := range tunnelPlaces {
			if place.Ant() != nil {
				antsCount[t]++
			}
			if len(place.Bees()) > 0 && (frontTunnel == -1 || s < frontStep) {
				frontTunnel, frontStep = t, s
			}
		}
	}

	// Tunnels in order of preference.
	order := make([]int, 0, numTunnels)
	if frontTunnel >= 0 {
		order = append(order, frontTunnel)
	}
	for len(order) < numTunnels {
		best := -1
		for t := range numTunnels {
			if slices.Contains(order, t) {
				continue
			}
			if best == -1 || antsCount[t] < antsCount[best] {
				best = t
			}
		}
		order = append(order, best)
	}

	for _, t := range order {
		for s, place := range places[t] {
			if canHold(place, p.kind) {
				return t, s, true
			}
		}
	}
	return 0, 0, false
}

// applyBoosts gives the available boosts to throwers without a boost that have a bee
// within FlyingLeafRange.
func (p *Greedy) applyBoosts(game *state.Game) error {
	colony := game.Colony()
	for tunnel, places := range game.Places() {
		for step, place := range places {
			ant := place.GuardedAnt()
			if ant == nil || !ant.Kind().IsThrower() || ant.Boost() != state.NoBoost {
				continue
			}
			if place.ClosestBee(state.FlyingLeafRange, 0) == nil {
				continue
			}
			boost := p.chooseBoost(colony, place)
			if boost == state.NoBoost {
				continue
			}
			klog.V(2).Infof("%s: boosting %s with %s", p, ant, boost)
			if err := game.BoostAnt(boost.String(), coordinates(tunnel, step)); err != nil {
				return errors.WithMessagef(err, "%s failed to boost %s", p, ant)
			}
		}
	}
	return nil
}

// chooseBoost returns the boost to give to the thrower in place, or NoBoost if none is available.
func (p *Greedy) chooseBoost(colony *state.Colony, place *state.Place) state.Boost {
	if len(place.Bees()) >= bugSprayMinBees && colony.BoostCount(state.BugSpray) > 0 {
		return state.BugSpray
	}
	for _, boost := range state.Boosts {
		if boost != state.BugSpray && colony.BoostCount(boost) > 0 {
			return boost
		}
	}
	return state.NoBoost
}
