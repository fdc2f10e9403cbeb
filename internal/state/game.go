package state

import (
	"k8s.io/klog/v2"
)

// Outcome of a game: the colony either won, lost, or the game is still going.
type Outcome int8

const (
	Undecided Outcome = iota
	Won
	Lost
)

var outcomeNames = [...]string{"Undecided", "Won", "Lost"}

// String returns the outcome name.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "Invalid"
	}
	return outcomeNames[o]
}

// Game runs the turns of a colony attacked by a hive.
//
// It's not safe for concurrent use: a turn runs to completion before TakeTurn returns.
type Game struct {
	colony *Colony
	hive   *Hive
	turn   int
}

// NewGame creates a game at turn 0.
func NewGame(colony *Colony, hive *Hive) *Game {
	return &Game{colony: colony, hive: hive}
}

// NewGameFromConfig builds the colony and the hive described by the configuration.
func NewGameFromConfig(config *Config, rng Rand) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	colony := NewColony(config.Food, config.Tunnels, config.TunnelLength, config.MoatFrequency, rng)
	hive := NewHive(config.BeeArmor, config.BeeDamage, rng)
	for _, wave := range config.Waves {
		hive.AddWave(wave.Turn, wave.Count)
	}
	return NewGame(colony, hive), nil
}

// Colony of the game.
func (g *Game) Colony() *Colony { return g.colony }

// Hive of the game.
func (g *Game) Hive() *Hive { return g.hive }

// TakeTurn runs one turn: all ants act, then all bees, then the places' passive effects,
// and finally the bees of the current turn's wave (if any) invade the colony.
//
// Newly arrived bees only act on the following turn.
func (g *Game) TakeTurn() {
	klog.V(2).Infof("Turn %d: ants act", g.turn)
	g.colony.AntsAct()
	klog.V(2).Infof("Turn %d: bees act", g.turn)
	g.colony.BeesAct()
	g.colony.PlacesAct()
	g.hive.Invade(g.colony, g.turn)
	g.turn++
}

// Turn returns the number of turns taken so far.
func (g *Game) Turn() int { return g.turn }

// GameIsWon returns Lost if any bee reached the queen, Won if no bees are left either
// in the tunnels or in the hive, and Undecided otherwise.
func (g *Game) GameIsWon() Outcome {
	if g.colony.QueenHasBees() {
		return Lost
	}
	if len(g.colony.AllBees())+len(g.hive.Bees()) == 0 {
		return Won
	}
	return Undecided
}

// IsFinished returns whether the game was either won or lost.
func (g *Game) IsFinished() bool { return g.GameIsWon() != Undecided }

// DeployAnt creates an ant of the given kind (case-insensitive name) and deploys it at
// the given "tunnel,step" coordinates.
func (g *Game) DeployAnt(kindName, coordinates string) error {
	kind, err := ParseAntKind(kindName)
	if err != nil {
		return err
	}
	place, err := g.colony.PlaceAt(coordinates)
	if err != nil {
		return err
	}
	return g.colony.DeployAnt(NewAnt(kind), place)
}

// RemoveAnt removes the ant at the given "tunnel,step" coordinates. Removing from an
// empty place is not an error.
func (g *Game) RemoveAnt(coordinates string) error {
	place, err := g.colony.PlaceAt(coordinates)
	if err != nil {
		return err
	}
	g.colony.RemoveAnt(place)
	return nil
}

// BoostAnt gives the named boost to the ant at the given "tunnel,step" coordinates.
func (g *Game) BoostAnt(boostName, coordinates string) error {
	place, err := g.colony.PlaceAt(coordinates)
	if err != nil {
		return err
	}
	return g.colony.ApplyBoost(boostName, place)
}

// Places of the colony, indexed by [tunnel][step].
func (g *Game) Places() [][]*Place { return g.colony.Places() }

// Food available to the colony.
func (g *Game) Food() int { return g.colony.Food() }

// HiveBeesCount returns the number of bees still waiting in the hive.
func (g *Game) HiveBeesCount() int { return len(g.hive.Bees()) }

// BoostNames returns the names of the boosts with charges available.
func (g *Game) BoostNames() []string {
	var names []string
	for _, boost := range Boosts {
		if g.colony.BoostCount(boost) > 0 {
			names = append(names, boost.String())
		}
	}
	return names
}
