// Package players provides a factory of automated players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"context"
	"fmt"
	"github.com/janpfeifer/colonyGo/internal/generics"
	"github.com/janpfeifer/colonyGo/internal/parameters"
	. "github.com/janpfeifer/colonyGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"slices"
	"strings"
)

// Player is anything that is able to defend the colony.
type Player interface {
	// Play is called once before each turn is taken: it may deploy, remove or boost ants
	// using the game's operations. Rejected operations are not errors, only failures the
	// player can't recover from are.
	Play(game *Game) error

	fmt.Stringer
}

// Module creates players from their parameters. It should pop the parameters it uses
// (see parameters.PopParamOr), any parameter left is reported as an error.
type Module interface {
	NewPlayer(params parameters.Params) (Player, error)
}

var (
	// Registered modules.
	keywordToModules = make(map[string]Module)

	// DefaultPlayerConfig is used if no configuration was given to New. The value may be
	// changed by the binaries.
	DefaultPlayerConfig = "greedy"
)

// RegisterModule so it can be used by any of the front-ends.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// Modules returns the names of the registered modules, sorted.
func Modules() []string {
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

// New creates a new player given the configuration string.
//
// The config is the module name, optionally followed by a colon (":") and a comma-separated
// list of parameters, e.g.: "greedy:kind=scuba,boost=false". If empty, DefaultPlayerConfig is used.
func New(config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	moduleName, paramsConfig, _ := strings.Cut(config, ":")
	module, ok := keywordToModules[moduleName]
	if !ok {
		if len(keywordToModules) == 0 {
			return nil, errors.Errorf("unknown player %q: no modules registered. Perhaps you need to "+
				"import _ \"github.com/janpfeifer/colonyGo/internal/players/default\" to your binary ?", moduleName)
		}
		return nil, errors.Errorf("unknown player %q, registered players are %q", moduleName, Modules())
	}
	params := parameters.NewFromConfigString(paramsConfig)
	player, err := module.NewPlayer(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", moduleName)
	}
	if err = params.CheckAllUsed(); err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", moduleName)
	}
	return player, nil
}

// RunGame lets the player defend the colony until the game is finished, maxTurns turns
// were taken (if maxTurns > 0) or the context is cancelled.
//
// onTurn, if not nil, is called after each turn.
func RunGame(ctx context.Context, game *Game, player Player, maxTurns int, onTurn func(game *Game)) (Outcome, error) {
	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return Undecided, err
		}
		if maxTurns > 0 && game.Turn() >= maxTurns {
			klog.V(1).Infof("Game reached the max of %d turns", maxTurns)
			return Undecided, nil
		}
		if err := player.Play(game); err != nil {
			return Undecided, errors.WithMessagef(err, "%s failed at turn %d", player, game.Turn())
		}
		game.TakeTurn()
		if onTurn != nil {
			onTurn(game)
		}
	}
	return game.GameIsWon(), nil
}
