package _default

import (
	"fmt"
	"github.com/janpfeifer/colonyGo/internal/parameters"
	"github.com/janpfeifer/colonyGo/internal/players"
	"github.com/janpfeifer/colonyGo/internal/state"
	"github.com/pkg/errors"
)

// RandomModule creates Random players. Parameters:
//
//   - seed (int): seed of the player's own random source. Default is 0, a random seed.
//   - p (float): probability of deploying an ant at each turn. Default is 0.5.
type RandomModule struct{}

// Assert RandomModule implements players.Module.
var _ players.Module = (*RandomModule)(nil)

// NewPlayer implements players.Module.
func (m *RandomModule) NewPlayer(params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	prob, err := parameters.PopParamOr(params, "p", 0.5)
	if err != nil {
		return nil, err
	}
	if prob < 0 || prob > 1 {
		return nil, errors.Errorf("random player probability p=%g must be in [0, 1]", prob)
	}
	return &Random{rng: state.NewRand(uint64(seed)), prob: prob}, nil
}

// Random player deploys, with some probability, a random affordable ant at a random place
// where it can survive.
type Random struct {
	rng  state.Rand
	prob float64
}

// String implements fmt.Stringer.
func (p *Random) String() string { return fmt.Sprintf("random(p=%g)", p.prob) }

// Play implements players.Player.
func (p *Random) Play(game *state.Game) error {
	if p.rng.Float64() >= p.prob {
		return nil
	}
	var kinds []state.AntKind
	for _, kind := range state.AntKinds {
		if kind.FoodCost() <= game.Food() {
			kinds = append(kinds, kind)
		}
	}
	if len(kinds) == 0 {
		return nil
	}
	kind := kinds[p.rng.IntN(len(kinds))]

	var free [][2]int
	for tunnel, places := range game.Places() {
		for step, place := range places {
			if canHold(place, kind) {
				free = append(free, [2]int{tunnel, step})
			}
		}
	}
	if len(free) == 0 {
		return nil
	}
	pos := free[p.rng.IntN(len(free))]
	if err := game.DeployAnt(kind.String(), coordinates(pos[0], pos[1])); err != nil {
		return errors.WithMessagef(err, "%s failed to deploy %s", p, kind)
	}
	return nil
}
