package players_test

import (
	"context"
	. "github.com/janpfeifer/colonyGo/internal/players"
	_ "github.com/janpfeifer/colonyGo/internal/players/default"
	"github.com/janpfeifer/colonyGo/internal/state"
	"github.com/janpfeifer/colonyGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNew(t *testing.T) {
	assert.Equal(t, []string{"greedy", "idle", "random"}, Modules())

	player, err := New("")
	require.NoError(t, err)
	assert.Contains(t, player.String(), "greedy")

	player, err = New("greedy:kind=eater,boost=false")
	require.NoError(t, err)
	assert.Equal(t, "greedy(kind=Eater, boost=false, growers=true)", player.String())

	_, err = New("minimax")
	assert.ErrorContains(t, err, "unknown player")
	_, err = New("greedy:kind=queen")
	assert.ErrorIs(t, err, state.ErrUnknownAntKind)
	_, err = New("greedy:depth=3")
	assert.ErrorContains(t, err, "unknown parameter")
	_, err = New("idle:foo")
	assert.Error(t, err)
}

func newGame(t *testing.T, config string) *state.Game {
	c, err := state.ParseConfig(config)
	require.NoError(t, err)
	game, err := state.NewGameFromConfig(c, statetest.NewScriptedRand(0.99))
	require.NoError(t, err)
	return game
}

func TestRunGame(t *testing.T) {
	player, err := New("idle")
	require.NoError(t, err)

	// Max turns reached.
	game := newGame(t, "waves=50:1")
	var turns int
	outcome, err := RunGame(context.Background(), game, player, 5, func(*state.Game) { turns++ })
	require.NoError(t, err)
	assert.Equal(t, state.Undecided, outcome)
	assert.Equal(t, 5, game.Turn())
	assert.Equal(t, 5, turns)

	// Cancelled.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcome, err = RunGame(ctx, game, player, 0, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, state.Undecided, outcome)
	assert.Equal(t, 5, game.Turn())

	// Nothing to defend against.
	outcome, err = RunGame(context.Background(), newGame(t, "waves="), player, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, state.Won, outcome)
}
